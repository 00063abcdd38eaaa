package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	TotalOrders     int
	PendingOrders   int
	PreparingOrders int
	ReadyOrders     int
	CompletedOrders int
	ExpiredOrders   int
	OrdersToday     int
	CompletedToday  int
	TotalRevenue    decimal.Decimal
	RevenueToday    decimal.Decimal

	TotalUsers    int
	TotalProducts int
}

// ComputeStats aggregates order summaries. "Today" is the calendar day of now in now's location.
// Revenue only counts delivered orders.
func ComputeStats(orders []OrderSummary, now time.Time) DashboardStats {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	stats := DashboardStats{
		TotalOrders:  len(orders),
		TotalRevenue: decimal.Zero,
		RevenueToday: decimal.Zero,
	}

	for _, o := range orders {
		today := !o.CreatedAt.Before(dayStart) && o.CreatedAt.Before(dayEnd)
		if today {
			stats.OrdersToday++
		}

		switch o.Status {
		case StatusPending:
			stats.PendingOrders++
		case StatusPreparing:
			stats.PreparingOrders++
		case StatusReady:
			stats.ReadyOrders++
		case StatusExpired:
			stats.ExpiredOrders++
		case StatusDelivered:
			stats.CompletedOrders++
			stats.TotalRevenue = stats.TotalRevenue.Add(o.Total)
			if today {
				stats.CompletedToday++
				stats.RevenueToday = stats.RevenueToday.Add(o.Total)
			}
		}
	}

	return stats
}
