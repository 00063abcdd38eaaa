package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	today := now.Add(-3 * time.Hour)
	yesterday := now.AddDate(0, 0, -1)

	orders := []entities.OrderSummary{
		{Status: entities.StatusPreparing, Total: decimal.RequireFromString("10.00"), CreatedAt: today},
		{Status: entities.StatusDelivered, Total: decimal.RequireFromString("15.50"), CreatedAt: today},
		{Status: entities.StatusPending, Total: decimal.RequireFromString("7.25"), CreatedAt: today},
		{Status: entities.StatusDelivered, Total: decimal.RequireFromString("100.00"), CreatedAt: yesterday},
	}

	stats := entities.ComputeStats(orders, now)

	assert.True(t, decimal.RequireFromString("15.50").Equal(stats.RevenueToday), "revenue today: %s", stats.RevenueToday)
	assert.True(t, decimal.RequireFromString("115.50").Equal(stats.TotalRevenue), "total revenue: %s", stats.TotalRevenue)
	assert.Equal(t, 4, stats.TotalOrders)
	assert.Equal(t, 3, stats.OrdersToday)
	assert.Equal(t, 1, stats.CompletedToday)
	assert.Equal(t, 2, stats.CompletedOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 1, stats.PreparingOrders)
	assert.Equal(t, 0, stats.ReadyOrders)
}

func TestComputeStats_DayBoundaries(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	now := time.Date(2026, 3, 14, 0, 30, 0, 0, loc)
	dayStart := time.Date(2026, 3, 14, 0, 0, 0, 0, loc)

	orders := []entities.OrderSummary{
		{Status: entities.StatusDelivered, Total: decimal.NewFromInt(1), CreatedAt: dayStart},
		{Status: entities.StatusDelivered, Total: decimal.NewFromInt(2), CreatedAt: dayStart.Add(-time.Nanosecond)},
		// same instant as 16:30 UTC on the previous day, still today in loc
		{Status: entities.StatusDelivered, Total: decimal.NewFromInt(4), CreatedAt: time.Date(2026, 3, 13, 16, 30, 0, 0, time.UTC)},
	}

	stats := entities.ComputeStats(orders, now)

	assert.Equal(t, 2, stats.OrdersToday)
	assert.True(t, decimal.NewFromInt(5).Equal(stats.RevenueToday))
	assert.True(t, decimal.NewFromInt(7).Equal(stats.TotalRevenue))
}

func TestComputeStats_Empty(t *testing.T) {
	stats := entities.ComputeStats(nil, time.Now())

	assert.Equal(t, 0, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.True(t, stats.RevenueToday.IsZero())
}
