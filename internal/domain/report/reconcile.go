package report

import (
	"github.com/oottupura/oottupura-api/internal/domain/entity"
)

// ProfitLossSummary is the fully derived profit-and-loss value object.
// It is constructed once by Reconcile and never mutated afterwards.
type ProfitLossSummary struct {
	TotalRevenue          float64 `json:"total_revenue"`
	PlatformMarginRevenue float64 `json:"platform_margin_revenue"`
	CookPayouts           float64 `json:"cook_payouts"`
	DeliveryPayouts       float64 `json:"delivery_payouts"`
	ReferralCommissions   float64 `json:"referral_commissions"`
	NetProfit             float64 `json:"net_profit"`
	OrderCount            int64   `json:"order_count"`
	DeliveredOrderCount   int64   `json:"delivered_order_count"`
}

// Reconcile merges the vehicle-rent and referral sub-ledgers into the
// reduced order ledger and derives net profit:
//
//	netProfit = platformMarginRevenue - deliveryPayouts - referralCommissions(paid)
//
// Vehicle rents only count when their order is part of the ledger's
// delivered-order set. Referral commissions count only when paid; they
// are not restricted to the report's date range (a known inconsistency
// with the other figures, preserved on purpose).
func Reconcile(ledger *Ledger, rents []entity.VehicleRent, referrals []entity.ReferralCommission) ProfitLossSummary {
	var rentTotal float64
	for _, rent := range rents {
		if ledger.ContainsOrder(rent.OrderID) {
			rentTotal += rent.RentAmount
		}
	}

	var referralPaid float64
	for _, ref := range referrals {
		if ref.Status.IsPaid() {
			referralPaid += ref.CommissionAmount
		}
	}

	deliveryPayouts := ledger.Totals.DeliveryPayouts + rentTotal

	return ProfitLossSummary{
		TotalRevenue:          ledger.Totals.TotalRevenue,
		PlatformMarginRevenue: ledger.Totals.PlatformMarginRevenue,
		CookPayouts:           ledger.Totals.CookPayouts,
		DeliveryPayouts:       deliveryPayouts,
		ReferralCommissions:   referralPaid,
		NetProfit:             ledger.Totals.PlatformMarginRevenue - deliveryPayouts - referralPaid,
		OrderCount:            ledger.Totals.OrderCount,
		DeliveredOrderCount:   ledger.Totals.DeliveredOrderCount,
	}
}
