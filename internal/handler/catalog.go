package handler

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/canteen-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	base
	svc CatalogService
}

func NewCatalogHandler(logger *slog.Logger, svc CatalogService) *CatalogHandler {
	return &CatalogHandler{base: newBase(logger, "catalog"), svc: svc}
}

func (h *CatalogHandler) Init(r chi.Router) {
	r.Get("/api/products", h.ListProducts)
	r.Get("/api/products/{productID}", h.GetProduct)
}

func (h *CatalogHandler) InitAdmin(r chi.Router) {
	r.Route("/api/admin/menu/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Post("/", h.CreateProduct)
		r.Get("/{productID}", h.GetProduct)
		r.Put("/{productID}", h.UpdateProduct)
		r.Delete("/{productID}", h.DeleteProduct)
	})
}

// @Summary      List menu
// @Tags         menu
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Success      200       {array}   Product
// @Failure      500       {object}  utils.ErrorResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := r.URL.Query().Get("category")

	products, err := h.svc.ListProducts(ctx, category)
	if err != nil {
		h.fail(ctx, w, "failed to list products", err, slog.String("category", category))
		return
	}

	utils.WriteJSON(w, ProductsEntityToJSON(products), http.StatusOK)
}

// @Summary      Get menu item
// @Tags         menu
// @Produce      json
// @Param        productID  path      int  true  "Product ID"
// @Success      200        {object}  Product
// @Failure      400        {object}  utils.ValidationErrorResponse
// @Failure      404        {object}  utils.ErrorResponse
// @Failure      500        {object}  utils.ErrorResponse
// @Router       /api/products/{productID} [get]
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID, ok := h.pathID(w, r, "productID")
	if !ok {
		return
	}

	product, err := h.svc.GetProduct(ctx, productID)
	if err != nil {
		h.fail(ctx, w, "failed to get product", err, slog.Int64("product_id", productID))
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// @Summary      Create menu item
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        product  body      CreateProductRequest  true  "Product"
// @Success      201      {object}  Product
// @Failure      400      {object}  utils.ValidationErrorResponse
// @Failure      401      {object}  utils.ErrorResponse
// @Failure      403      {object}  utils.ErrorResponse
// @Failure      500      {object}  utils.ErrorResponse
// @Router       /api/admin/menu/products [post]
func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateProductRequest
	if !h.decode(w, r, &req) {
		return
	}

	product, err := h.svc.CreateProduct(ctx, req.ToEntity())
	if err != nil {
		h.fail(ctx, w, "failed to create product", err)
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusCreated)
}

// @Summary      Update menu item
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        productID  path      int                   true  "Product ID"
// @Param        product    body      UpdateProductRequest  true  "Product"
// @Success      200        {object}  Product
// @Failure      400        {object}  utils.ValidationErrorResponse
// @Failure      404        {object}  utils.ErrorResponse
// @Failure      500        {object}  utils.ErrorResponse
// @Router       /api/admin/menu/products/{productID} [put]
func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID, ok := h.pathID(w, r, "productID")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if !h.decode(w, r, &req) {
		return
	}

	product, err := h.svc.UpdateProduct(ctx, productID, req.ToEntity())
	if err != nil {
		h.fail(ctx, w, "failed to update product", err, slog.Int64("product_id", productID))
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// @Summary      Delete menu item
// @Tags         admin
// @Security     BearerAuth
// @Param        productID  path  int  true  "Product ID"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/admin/menu/products/{productID} [delete]
func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID, ok := h.pathID(w, r, "productID")
	if !ok {
		return
	}

	if err := h.svc.DeleteProduct(ctx, productID); err != nil {
		h.fail(ctx, w, "failed to delete product", err, slog.Int64("product_id", productID))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
