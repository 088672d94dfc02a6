package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/oottupura/oottupura-api/internal/domain/entity"
	"github.com/oottupura/oottupura-api/internal/domain/enum"
	"github.com/oottupura/oottupura-api/internal/domain/report"
	"github.com/oottupura/oottupura-api/internal/domain/repository"
	"github.com/oottupura/oottupura-api/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

// ReportService assembles filtered record sets from the reporting store
// and runs them through the reporting engine. Every report is computed
// over a snapshot fetched for that one request, so concurrent requests
// never share state.
type ReportService struct {
	reportingRepo repository.ReportingRepository
}

// NewReportService creates a new report service
func NewReportService(reportingRepo repository.ReportingRepository) *ReportService {
	return &ReportService{reportingRepo: reportingRepo}
}

// upstreamErr marks a failed data fetch so the whole report aborts
// instead of surfacing partial financial figures.
func upstreamErr(source string, err error) error {
	return fmt.Errorf("%w: %s: %v", report.ErrUpstreamUnavailable, source, err)
}

// ProfitLossReport is the full reconciliation result: the global summary
// plus the by-service and by-date groupings.
type ProfitLossReport struct {
	Summary   report.ProfitLossSummary                 `json:"summary"`
	ByService map[enum.ServiceType]report.ServiceGroup `json:"by_service"`
	ByDate    []report.DateGroup                       `json:"by_date"`
}

// GetProfitLoss builds the profit-and-loss report for the given filters.
// The three upstream fetches are independent read-only queries; vehicle
// rents and referral commissions are fetched concurrently once the
// delivered-order set is known, and the report is only assembled after
// all of them complete.
func (s *ReportService) GetProfitLoss(ctx context.Context, params *repository.ReportFilterParams) (*ProfitLossReport, error) {
	orders, err := s.reportingRepo.ListDeliveredOrders(ctx, params)
	if err != nil {
		return nil, upstreamErr("delivered orders", err)
	}

	ledger, err := report.Reduce(orders)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
	}

	var (
		rents     []entity.VehicleRent
		referrals []entity.ReferralCommission
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rents, err = s.reportingRepo.ListVehicleRents(gctx, orderIDs)
		if err != nil {
			return upstreamErr("vehicle rents", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		referrals, err = s.reportingRepo.ListReferralCommissions(gctx)
		if err != nil {
			return upstreamErr("referral commissions", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := report.Reconcile(ledger, rents, referrals)

	return &ProfitLossReport{
		Summary:   summary,
		ByService: ledger.ByService,
		ByDate:    ledger.ByDate,
	}, nil
}

// SalesReport summarises delivered-order revenue for the sales dashboard
type SalesReport struct {
	TotalRevenue   float64               `json:"total_revenue"`
	PlatformMargin float64               `json:"platform_margin"`
	OrderCount     int64                 `json:"order_count"`
	AvgOrderValue  float64               `json:"avg_order_value"`
	ByService      []report.ServiceGroup `json:"by_service"`
	DailySales     []DailySalesPoint     `json:"daily_sales"`
}

// DailySalesPoint represents a daily sales data point
type DailySalesPoint struct {
	Date       string  `json:"date"`
	Revenue    float64 `json:"revenue"`
	Margin     float64 `json:"margin"`
	OrderCount int64   `json:"order_count"`
}

// GetSalesReport builds the sales overview from the same ledger fold the
// profit-and-loss report uses.
func (s *ReportService) GetSalesReport(ctx context.Context, params *repository.ReportFilterParams) (*SalesReport, error) {
	orders, err := s.reportingRepo.ListDeliveredOrders(ctx, params)
	if err != nil {
		return nil, upstreamErr("delivered orders", err)
	}

	ledger, err := report.Reduce(orders)
	if err != nil {
		return nil, err
	}

	result := &SalesReport{
		TotalRevenue:   ledger.Totals.TotalRevenue,
		PlatformMargin: ledger.Totals.PlatformMarginRevenue,
		OrderCount:     ledger.Totals.OrderCount,
		ByService:      make([]report.ServiceGroup, 0, len(ledger.ByService)),
		DailySales:     make([]DailySalesPoint, 0, len(ledger.ByDate)),
	}
	if ledger.Totals.OrderCount > 0 {
		result.AvgOrderValue = ledger.Totals.TotalRevenue / float64(ledger.Totals.OrderCount)
	}

	for _, svc := range enum.AllServiceTypes() {
		if group, ok := ledger.ByService[svc]; ok {
			result.ByService = append(result.ByService, group)
		}
	}
	for _, day := range ledger.ByDate {
		result.DailySales = append(result.DailySales, DailySalesPoint{
			Date:       day.Date,
			Revenue:    day.TotalRevenue,
			Margin:     day.PlatformMargin,
			OrderCount: day.OrderCount,
		})
	}

	return result, nil
}

// CookPerformanceRow aggregates delivered order items for one cook
type CookPerformanceRow struct {
	CookID       uuid.UUID `json:"cook_id"`
	CookName     string    `json:"cook_name"`
	OrdersServed int64     `json:"orders_served"`
	ItemsSold    int64     `json:"items_sold"`
	CookPayout   float64   `json:"cook_payout"`
	MarginEarned float64   `json:"margin_earned"`
}

// CookPerformanceReport lists cook payout shares over the filtered range
type CookPerformanceReport struct {
	Cooks           []CookPerformanceRow `json:"cooks"`
	TotalCookPayout float64              `json:"total_cook_payout"`
}

// GetCookPerformance aggregates delivered order items per cook using the
// same base-price credit rule as the ledger fold. Items whose catalog
// row or cook link is gone stay out of the per-cook rows.
func (s *ReportService) GetCookPerformance(ctx context.Context, params *repository.ReportFilterParams) (*CookPerformanceReport, error) {
	orders, err := s.reportingRepo.ListDeliveredOrders(ctx, params)
	if err != nil {
		return nil, upstreamErr("delivered orders", err)
	}

	type cookAgg struct {
		orders map[uuid.UUID]struct{}
		items  int64
		payout float64
		margin float64
	}
	byCook := make(map[uuid.UUID]*cookAgg)

	for _, order := range orders {
		for _, item := range order.Items {
			if item.FoodItem == nil || item.FoodItem.CookID == nil {
				continue
			}
			basePrice := item.FoodItem.BasePrice(item.UnitPrice)
			perUnit, err := report.ComputeMargin(basePrice, item.FoodItem.PlatformMarginType, item.FoodItem.PlatformMarginValue)
			if err != nil {
				return nil, err
			}

			agg := byCook[*item.FoodItem.CookID]
			if agg == nil {
				agg = &cookAgg{orders: make(map[uuid.UUID]struct{})}
				byCook[*item.FoodItem.CookID] = agg
			}
			agg.orders[order.ID] = struct{}{}
			agg.items += int64(item.Quantity)
			agg.payout += basePrice * float64(item.Quantity)
			agg.margin += perUnit * float64(item.Quantity)
		}
	}

	cookIDs := make([]uuid.UUID, 0, len(byCook))
	for id := range byCook {
		cookIDs = append(cookIDs, id)
	}
	cooks, err := s.reportingRepo.ListCooks(ctx, cookIDs)
	if err != nil {
		return nil, upstreamErr("cooks", err)
	}
	names := make(map[uuid.UUID]string, len(cooks))
	for _, cook := range cooks {
		names[cook.ID] = cook.Name
	}

	result := &CookPerformanceReport{Cooks: make([]CookPerformanceRow, 0, len(byCook))}
	for id, agg := range byCook {
		result.Cooks = append(result.Cooks, CookPerformanceRow{
			CookID:       id,
			CookName:     names[id],
			OrdersServed: int64(len(agg.orders)),
			ItemsSold:    agg.items,
			CookPayout:   agg.payout,
			MarginEarned: agg.margin,
		})
		result.TotalCookPayout += agg.payout
	}
	sort.Slice(result.Cooks, func(i, j int) bool {
		return result.Cooks[i].CookPayout > result.Cooks[j].CookPayout
	})

	return result, nil
}

// DeliverySettlementRow is one delivered order's logistics cost breakdown
type DeliverySettlementRow struct {
	OrderID          uuid.UUID        `json:"order_id"`
	ServiceType      enum.ServiceType `json:"service_type"`
	DeliveredOn      string           `json:"delivered_on"`
	DeliveryEarnings float64          `json:"delivery_earnings"`
	VehicleRent      float64          `json:"vehicle_rent"`
	Total            float64          `json:"total"`
}

// DeliverySettlementReport breaks delivery payouts down per order. Totals
// always cover the full delivered set even when rows are paginated.
type DeliverySettlementReport struct {
	Rows                  *pagination.PaginatedResult[DeliverySettlementRow] `json:"rows"`
	TotalDeliveryEarnings float64                                            `json:"total_delivery_earnings"`
	TotalVehicleRent      float64                                            `json:"total_vehicle_rent"`
	TotalPayout           float64                                            `json:"total_payout"`
}

// GetDeliverySettlement builds the per-order delivery payout breakdown
// over all delivered orders.
func (s *ReportService) GetDeliverySettlement(ctx context.Context, page *pagination.PaginationParams) (*DeliverySettlementReport, error) {
	if page == nil {
		page = pagination.DefaultPagination()
	}
	page.Validate()

	orders, err := s.reportingRepo.ListDeliveredOrders(ctx, nil)
	if err != nil {
		return nil, upstreamErr("delivered orders", err)
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
	}
	rents, err := s.reportingRepo.ListVehicleRents(ctx, orderIDs)
	if err != nil {
		return nil, upstreamErr("vehicle rents", err)
	}
	rentByOrder := make(map[uuid.UUID]float64, len(rents))
	for _, rent := range rents {
		rentByOrder[rent.OrderID] += rent.RentAmount
	}

	result := &DeliverySettlementReport{}
	rows := make([]DeliverySettlementRow, 0, len(orders))
	for _, order := range orders {
		row := DeliverySettlementRow{
			OrderID:          order.ID,
			ServiceType:      order.ServiceType,
			DeliveredOn:      order.CreatedAt.UTC().Format("2006-01-02"),
			DeliveryEarnings: order.DeliveryAmount(),
			VehicleRent:      rentByOrder[order.ID],
		}
		row.Total = row.DeliveryEarnings + row.VehicleRent
		rows = append(rows, row)
		result.TotalDeliveryEarnings += row.DeliveryEarnings
		result.TotalVehicleRent += row.VehicleRent
		result.TotalPayout += row.Total
	}

	total := int64(len(rows))
	start := page.Offset()
	if start > len(rows) {
		start = len(rows)
	}
	end := start + page.PerPage
	if end > len(rows) {
		end = len(rows)
	}
	result.Rows = pagination.NewPaginatedResult(rows[start:end], pagination.NewPagination(page.Page, page.PerPage, total))

	return result, nil
}

// ReferralRow aggregates commissions for one referrer
type ReferralRow struct {
	ReferrerID    uuid.UUID `json:"referrer_id"`
	ReferralCount int64     `json:"referral_count"`
	PaidAmount    float64   `json:"paid_amount"`
	PendingAmount float64   `json:"pending_amount"`
	TotalAmount   float64   `json:"total_amount"`
}

// ReferralReport shows every commission status for visibility; only the
// paid total feeds the profit-and-loss reconciliation.
type ReferralReport struct {
	Referrers    []ReferralRow `json:"referrers"`
	TotalPaid    float64       `json:"total_paid"`
	TotalPending float64       `json:"total_pending"`
}

// GetReferralReport aggregates all referral commissions per referrer.
func (s *ReportService) GetReferralReport(ctx context.Context) (*ReferralReport, error) {
	commissions, err := s.reportingRepo.ListReferralCommissions(ctx)
	if err != nil {
		return nil, upstreamErr("referral commissions", err)
	}

	byReferrer := make(map[uuid.UUID]*ReferralRow)
	result := &ReferralReport{}
	for _, commission := range commissions {
		row := byReferrer[commission.ReferrerID]
		if row == nil {
			row = &ReferralRow{ReferrerID: commission.ReferrerID}
			byReferrer[commission.ReferrerID] = row
		}
		row.ReferralCount++
		row.TotalAmount += commission.CommissionAmount
		switch commission.Status {
		case enum.ReferralStatusPaid:
			row.PaidAmount += commission.CommissionAmount
			result.TotalPaid += commission.CommissionAmount
		case enum.ReferralStatusPending:
			row.PendingAmount += commission.CommissionAmount
			result.TotalPending += commission.CommissionAmount
		}
	}

	result.Referrers = make([]ReferralRow, 0, len(byReferrer))
	for _, row := range byReferrer {
		result.Referrers = append(result.Referrers, *row)
	}
	sort.Slice(result.Referrers, func(i, j int) bool {
		return result.Referrers[i].TotalAmount > result.Referrers[j].TotalAmount
	})

	return result, nil
}

// VehicleRentRow is one rent charge attached to a delivered order
type VehicleRentRow struct {
	OrderID     uuid.UUID `json:"order_id"`
	VehicleName string    `json:"vehicle_name"`
	RentAmount  float64   `json:"rent_amount"`
}

// VehicleRentReport lists rents of delivered orders in the filtered range
type VehicleRentReport struct {
	Rents     []VehicleRentRow `json:"rents"`
	TotalRent float64          `json:"total_rent"`
}

// GetVehicleRentReport lists vehicle rents for delivered orders matching
// the filters.
func (s *ReportService) GetVehicleRentReport(ctx context.Context, params *repository.ReportFilterParams) (*VehicleRentReport, error) {
	orders, err := s.reportingRepo.ListDeliveredOrders(ctx, params)
	if err != nil {
		return nil, upstreamErr("delivered orders", err)
	}
	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
	}

	rents, err := s.reportingRepo.ListVehicleRents(ctx, orderIDs)
	if err != nil {
		return nil, upstreamErr("vehicle rents", err)
	}

	result := &VehicleRentReport{Rents: make([]VehicleRentRow, 0, len(rents))}
	for _, rent := range rents {
		result.Rents = append(result.Rents, VehicleRentRow{
			OrderID:     rent.OrderID,
			VehicleName: rent.VehicleName,
			RentAmount:  rent.RentAmount,
		})
		result.TotalRent += rent.RentAmount
	}

	return result, nil
}
