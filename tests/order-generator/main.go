package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type OrderLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type PlaceOrder struct {
	UserID        int64       `json:"user_id"`
	Items         []OrderLine `json:"items"`
	PaymentMethod string      `json:"payment_method"`
	PickupTime    string      `json:"pickup_time,omitempty"`
	Notes         string      `json:"notes,omitempty"`
}

var (
	paymentMethods = []string{"cash", "gcash", "card"}
	pickupSlots    = []string{"", "10:30", "12:00", "12:30", "15:00"}
	notes          = []string{"", "no onions", "extra rice", "less spicy"}
)

func pick[T any](s []T) T {
	return s[rand.Intn(len(s))]
}

func randomCommand(users, products int) PlaceOrder {
	cmd := PlaceOrder{
		UserID:        int64(rand.Intn(users) + 1),
		PaymentMethod: pick(paymentMethods),
		PickupTime:    pick(pickupSlots),
		Notes:         pick(notes),
	}

	seen := make(map[int64]bool)
	for range rand.Intn(3) + 1 {
		id := int64(rand.Intn(products) + 1)
		if seen[id] {
			continue
		}
		seen[id] = true
		cmd.Items = append(cmd.Items, OrderLine{ProductID: id, Quantity: rand.Intn(3) + 1})
	}
	return cmd
}

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "orders.place", "place-order command topic")
	interval := flag.Duration("interval", 2*time.Second, "delay between commands")
	users := flag.Int("users", 10, "user ids are drawn from 1..users")
	products := flag.Int("products", 20, "product ids are drawn from 1..products")
	flag.Parse()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:                  *topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cmd := randomCommand(*users, *products)
			data, _ := json.Marshal(cmd)
			// Keyed by user so one customer's commands stay ordered.
			key := []byte(strconv.FormatInt(cmd.UserID, 10))
			if err := writer.WriteMessages(ctx, kafka.Message{Key: key, Value: data}); err != nil {
				log.Println("failed to write command:", err)
				continue
			}
			log.Println("command sent for user", cmd.UserID, "items", len(cmd.Items))
		case <-ctx.Done():
			return
		}
	}
}
