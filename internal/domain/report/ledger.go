package report

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/oottupura/oottupura-api/internal/domain/entity"
	"github.com/oottupura/oottupura-api/internal/domain/enum"
)

// dateKeyLayout is the grouping key format for by-date buckets, derived
// from the UTC calendar date of an order's created_at.
const dateKeyLayout = "2006-01-02"

// Totals holds the global accumulators of a ledger fold
type Totals struct {
	TotalRevenue          float64 `json:"total_revenue"`
	PlatformMarginRevenue float64 `json:"platform_margin_revenue"`
	CookPayouts           float64 `json:"cook_payouts"`
	DeliveryPayouts       float64 `json:"delivery_payouts"`
	OrderCount            int64   `json:"order_count"`
	DeliveredOrderCount   int64   `json:"delivered_order_count"`
}

// ServiceGroup aggregates ledger figures for one service type
type ServiceGroup struct {
	ServiceType    enum.ServiceType `json:"service_type"`
	TotalRevenue   float64          `json:"total_revenue"`
	PlatformMargin float64          `json:"platform_margin"`
	CookPayouts    float64          `json:"cook_payouts"`
	OrderCount     int64            `json:"order_count"`
}

// DateGroup aggregates ledger figures for one UTC calendar date.
// NetProfit deliberately equals PlatformMargin: delivery and referral
// costs are not attributed to individual dates.
type DateGroup struct {
	Date           string  `json:"date"`
	TotalRevenue   float64 `json:"total_revenue"`
	PlatformMargin float64 `json:"platform_margin"`
	NetProfit      float64 `json:"net_profit"`
	OrderCount     int64   `json:"order_count"`
}

// Ledger is the immutable result of folding a delivered-order snapshot.
// ByDate is sorted ascending by date key; ByService is an unordered map.
type Ledger struct {
	Totals    Totals
	ByService map[enum.ServiceType]ServiceGroup
	ByDate    []DateGroup

	orderIDs map[uuid.UUID]struct{}
}

// ContainsOrder reports whether the given order participated in the fold
func (l *Ledger) ContainsOrder(id uuid.UUID) bool {
	_, ok := l.orderIDs[id]
	return ok
}

// itemCredit is the ledger contribution of a single order item. Exactly
// one of the two constructors below produces it, so the margin-metadata
// fallback cannot be skipped silently.
type itemCredit struct {
	cookPayout float64
	margin     float64
}

// creditWithMargin splits an item between cook payout and platform margin
// using the food item's margin snapshot.
func creditWithMargin(item entity.OrderItem) (itemCredit, error) {
	basePrice := item.FoodItem.BasePrice(item.UnitPrice)
	perUnit, err := ComputeMargin(basePrice, item.FoodItem.PlatformMarginType, item.FoodItem.PlatformMarginValue)
	if err != nil {
		return itemCredit{}, err
	}
	qty := float64(item.Quantity)
	return itemCredit{
		cookPayout: basePrice * qty,
		margin:     perUnit * qty,
	}, nil
}

// creditWithoutMargin credits the full item revenue to the cook payout.
// This is the documented fallback for items whose catalog row was deleted
// after ordering; it contributes no platform margin.
func creditWithoutMargin(item entity.OrderItem) itemCredit {
	return itemCredit{cookPayout: item.TotalPrice}
}

// Reduce folds a set of delivered orders into running totals plus
// by-service and by-date groupings. The fold is pure: it never mutates
// its input and shares no state between calls.
func Reduce(orders []entity.Order) (*Ledger, error) {
	ledger := &Ledger{
		ByService: make(map[enum.ServiceType]ServiceGroup),
		orderIDs:  make(map[uuid.UUID]struct{}, len(orders)),
	}
	byDate := make(map[string]DateGroup)

	for _, order := range orders {
		if order.CreatedAt.IsZero() {
			return nil, fmt.Errorf("%w: order %s has no created_at timestamp", ErrInvalidOrderRecord, order.ID)
		}

		var orderMargin, orderCookPayout float64
		for _, item := range order.Items {
			var credit itemCredit
			if item.FoodItem != nil {
				var err error
				credit, err = creditWithMargin(item)
				if err != nil {
					return nil, fmt.Errorf("order %s item %s: %w", order.ID, item.ID, err)
				}
			} else {
				credit = creditWithoutMargin(item)
			}
			orderMargin += credit.margin
			orderCookPayout += credit.cookPayout
		}

		revenue := order.RevenueAmount()

		ledger.Totals.TotalRevenue += revenue
		ledger.Totals.DeliveryPayouts += order.DeliveryAmount()
		ledger.Totals.PlatformMarginRevenue += orderMargin
		ledger.Totals.CookPayouts += orderCookPayout
		ledger.Totals.OrderCount++
		// Reduce only ever sees delivered orders, so the two counts move
		// together.
		ledger.Totals.DeliveredOrderCount++
		ledger.orderIDs[order.ID] = struct{}{}

		svc := ledger.ByService[order.ServiceType]
		svc.ServiceType = order.ServiceType
		svc.TotalRevenue += revenue
		svc.PlatformMargin += orderMargin
		svc.CookPayouts += orderCookPayout
		svc.OrderCount++
		ledger.ByService[order.ServiceType] = svc

		key := order.CreatedAt.UTC().Format(dateKeyLayout)
		day := byDate[key]
		day.Date = key
		day.TotalRevenue += revenue
		day.PlatformMargin += orderMargin
		day.NetProfit = day.PlatformMargin
		day.OrderCount++
		byDate[key] = day
	}

	ledger.ByDate = make([]DateGroup, 0, len(byDate))
	for _, day := range byDate {
		ledger.ByDate = append(ledger.ByDate, day)
	}
	sort.Slice(ledger.ByDate, func(i, j int) bool {
		return ledger.ByDate[i].Date < ledger.ByDate[j].Date
	})

	return ledger, nil
}
