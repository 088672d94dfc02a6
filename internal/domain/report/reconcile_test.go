package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oottupura/oottupura-api/internal/domain/entity"
	"github.com/oottupura/oottupura-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_VehicleRentAddsToDeliveryPayouts(t *testing.T) {
	created := time.Date(2026, 2, 20, 11, 0, 0, 0, time.UTC)
	order := deliveredOrder(enum.ServiceTypeIndoorEvents, 8000, created)
	order.DeliveryEarnings = floatPtr(250)

	ledger, err := Reduce([]entity.Order{order})
	require.NoError(t, err)

	rents := []entity.VehicleRent{{ID: uuid.New(), OrderID: order.ID, RentAmount: 500}}
	summary := Reconcile(ledger, rents, nil)

	assert.InDelta(t, 750.0, summary.DeliveryPayouts, 1e-6)
}

func TestReconcile_IgnoresRentsOutsideOrderSet(t *testing.T) {
	created := time.Date(2026, 2, 20, 11, 0, 0, 0, time.UTC)
	order := deliveredOrder(enum.ServiceTypeIndoorEvents, 8000, created)

	ledger, err := Reduce([]entity.Order{order})
	require.NoError(t, err)

	rents := []entity.VehicleRent{
		{ID: uuid.New(), OrderID: order.ID, RentAmount: 500},
		{ID: uuid.New(), OrderID: uuid.New(), RentAmount: 900},
	}
	summary := Reconcile(ledger, rents, nil)

	assert.InDelta(t, 500.0, summary.DeliveryPayouts, 1e-6)
}

func TestReconcile_OnlyPaidReferralsReduceProfit(t *testing.T) {
	ledger, err := Reduce(nil)
	require.NoError(t, err)

	referrals := []entity.ReferralCommission{
		{ID: uuid.New(), ReferrerID: uuid.New(), CommissionAmount: 300, Status: enum.ReferralStatusPending},
		{ID: uuid.New(), ReferrerID: uuid.New(), CommissionAmount: 200, Status: enum.ReferralStatusPaid},
	}
	summary := Reconcile(ledger, nil, referrals)

	assert.InDelta(t, 200.0, summary.ReferralCommissions, 1e-6)
	assert.InDelta(t, -200.0, summary.NetProfit, 1e-6)
}

func TestReconcile_NetProfitInvariant(t *testing.T) {
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		deliveredOrder(enum.ServiceTypeHomemade, 220, base,
			itemWithMargin(110, 2, 100, enum.MarginTypePercent, 10)),
		deliveredOrder(enum.ServiceTypeCloudKitchen, 345, base.AddDate(0, 0, 1),
			itemWithMargin(115, 3, 100, enum.MarginTypeFixed, 15)),
	}
	orders[0].DeliveryEarnings = floatPtr(40)
	orders[1].DeliveryEarnings = floatPtr(60)

	ledger, err := Reduce(orders)
	require.NoError(t, err)

	rents := []entity.VehicleRent{{ID: uuid.New(), OrderID: orders[0].ID, RentAmount: 150}}
	referrals := []entity.ReferralCommission{
		{ID: uuid.New(), ReferrerID: uuid.New(), CommissionAmount: 25, Status: enum.ReferralStatusPaid},
		{ID: uuid.New(), ReferrerID: uuid.New(), CommissionAmount: 75, Status: enum.ReferralStatusCancelled},
	}

	summary := Reconcile(ledger, rents, referrals)

	assert.InDelta(t,
		summary.PlatformMarginRevenue-summary.DeliveryPayouts-summary.ReferralCommissions,
		summary.NetProfit, 1e-6)
	assert.InDelta(t, 65.0, summary.PlatformMarginRevenue, 1e-6)
	assert.InDelta(t, 250.0, summary.DeliveryPayouts, 1e-6)
	assert.InDelta(t, 25.0, summary.ReferralCommissions, 1e-6)
}

func TestReconcile_PerDateNetProfitEqualsMargin(t *testing.T) {
	// Delivery and referral costs are not attributed to dates; per-date
	// net profit stays equal to that date's platform margin.
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	order := deliveredOrder(enum.ServiceTypeHomemade, 220, base,
		itemWithMargin(110, 2, 100, enum.MarginTypePercent, 10))
	order.DeliveryEarnings = floatPtr(40)

	ledger, err := Reduce([]entity.Order{order})
	require.NoError(t, err)

	require.Len(t, ledger.ByDate, 1)
	assert.InDelta(t, ledger.ByDate[0].PlatformMargin, ledger.ByDate[0].NetProfit, 1e-6)
}

func TestReconcile_EmptyInputs(t *testing.T) {
	ledger, err := Reduce(nil)
	require.NoError(t, err)

	summary := Reconcile(ledger, nil, nil)

	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.NetProfit)
	assert.Zero(t, summary.OrderCount)
}
