package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

// Mixes menu reads with order lookups, a fifth of them for orders that do not exist.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base url")
	orderID := flag.String("order", "", "existing order id to look up")
	flag.Parse()

	client := &http.Client{Timeout: 5 * time.Second}
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(client, *baseURL, *orderID) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("abcdef0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func target(baseURL, orderID string) string {
	switch n := rand.Intn(5); {
	case n == 0:
		return baseURL + "/api/orders/" + randomID(32)
	case n < 3 || orderID == "":
		return fmt.Sprintf("%s/api/products?category=%s", baseURL, []string{"meals", "snacks", "drinks"}[rand.Intn(3)])
	default:
		return baseURL + "/api/orders/" + orderID
	}
}

func doRequest(client *http.Client, baseURL, orderID string) {
	url := target(baseURL, orderID)
	resp, err := client.Get(url)
	if err != nil {
		fmt.Println("request failed:", err)
		return
	}
	fmt.Println("GET", url, "->", resp.Status)
	resp.Body.Close()
}
