package handler

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/canteen-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	base
	cart      CartService
	favorites FavoriteService
}

func NewCartHandler(logger *slog.Logger, cart CartService, favorites FavoriteService) *CartHandler {
	return &CartHandler{base: newBase(logger, "cart"), cart: cart, favorites: favorites}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Route("/api/cart/{userID}", func(r chi.Router) {
		r.Get("/", h.Cart)
		r.Post("/", h.AddToCart)
		r.Delete("/", h.ClearCart)
		r.Delete("/{productID}", h.RemoveFromCart)
	})

	r.Route("/api/favorites/{userID}", func(r chi.Router) {
		r.Get("/", h.Favorites)
		r.Post("/", h.AddFavorite)
		r.Delete("/{productID}", h.RemoveFavorite)
	})
}

// @Summary      Get cart
// @Tags         cart
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Success      200     {array}   CartItem
// @Failure      400     {object}  utils.ValidationErrorResponse
// @Failure      500     {object}  utils.ErrorResponse
// @Router       /api/cart/{userID} [get]
func (h *CartHandler) Cart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}

	items, err := h.cart.Cart(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "failed to get cart", err, slog.Int64("user_id", userID))
		return
	}

	res := make([]CartItem, 0, len(items))
	for _, it := range items {
		res = append(res, CartItem{Product: ProductEntityToJSON(it.Product), Quantity: it.Quantity})
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// @Summary      Add to cart
// @Description  Adding a product already in the cart increases its quantity.
// @Tags         cart
// @Accept       json
// @Param        userID  path  int               true  "User ID"
// @Param        item    body  AddToCartRequest  true  "Item"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/cart/{userID} [post]
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}

	var req AddToCartRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.cart.AddToCart(ctx, userID, req.ProductID, req.Quantity); err != nil {
		h.fail(ctx, w, "failed to add to cart", err, slog.Int64("user_id", userID), slog.Int64("product_id", req.ProductID))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Remove from cart
// @Tags         cart
// @Param        userID     path  int  true  "User ID"
// @Param        productID  path  int  true  "Product ID"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/cart/{userID}/{productID} [delete]
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}
	productID, ok := h.pathID(w, r, "productID")
	if !ok {
		return
	}

	if err := h.cart.RemoveFromCart(ctx, userID, productID); err != nil {
		h.fail(ctx, w, "failed to remove from cart", err, slog.Int64("user_id", userID), slog.Int64("product_id", productID))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Clear cart
// @Tags         cart
// @Param        userID  path  int  true  "User ID"
// @Success      204
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/cart/{userID} [delete]
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}

	if err := h.cart.ClearCart(ctx, userID); err != nil {
		h.fail(ctx, w, "failed to clear cart", err, slog.Int64("user_id", userID))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      List favorites
// @Tags         favorites
// @Produce      json
// @Param        userID  path      int  true  "User ID"
// @Success      200     {array}   Favorite
// @Failure      500     {object}  utils.ErrorResponse
// @Router       /api/favorites/{userID} [get]
func (h *CartHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}

	favorites, err := h.favorites.Favorites(ctx, userID)
	if err != nil {
		h.fail(ctx, w, "failed to list favorites", err, slog.Int64("user_id", userID))
		return
	}

	res := make([]Favorite, 0, len(favorites))
	for _, f := range favorites {
		res = append(res, Favorite{Product: ProductEntityToJSON(f.Product), AddedAt: f.CreatedAt})
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// @Summary      Add favorite
// @Tags         favorites
// @Accept       json
// @Param        userID    path  int                 true  "User ID"
// @Param        favorite  body  AddFavoriteRequest  true  "Product"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/favorites/{userID} [post]
func (h *CartHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}

	var req AddFavoriteRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.favorites.AddFavorite(ctx, userID, req.ProductID); err != nil {
		h.fail(ctx, w, "failed to add favorite", err, slog.Int64("user_id", userID), slog.Int64("product_id", req.ProductID))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Remove favorite
// @Tags         favorites
// @Param        userID     path  int  true  "User ID"
// @Param        productID  path  int  true  "Product ID"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/favorites/{userID}/{productID} [delete]
func (h *CartHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.pathID(w, r, "userID")
	if !ok {
		return
	}
	productID, ok := h.pathID(w, r, "productID")
	if !ok {
		return
	}

	if err := h.favorites.RemoveFavorite(ctx, userID, productID); err != nil {
		h.fail(ctx, w, "failed to remove favorite", err, slog.Int64("user_id", userID), slog.Int64("product_id", productID))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
