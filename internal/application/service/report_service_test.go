package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oottupura/oottupura-api/internal/domain/entity"
	"github.com/oottupura/oottupura-api/internal/domain/enum"
	"github.com/oottupura/oottupura-api/internal/domain/report"
	"github.com/oottupura/oottupura-api/internal/domain/repository"
	"github.com/oottupura/oottupura-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReportingRepo is an in-memory ReportingRepository test double
type fakeReportingRepo struct {
	orders    []entity.Order
	rents     []entity.VehicleRent
	referrals []entity.ReferralCommission
	cooks     []entity.Cook

	ordersErr    error
	rentsErr     error
	referralsErr error
	cooksErr     error

	lastFilters *repository.ReportFilterParams
}

func (f *fakeReportingRepo) ListDeliveredOrders(ctx context.Context, params *repository.ReportFilterParams) ([]entity.Order, error) {
	f.lastFilters = params
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}
	return f.orders, nil
}

func (f *fakeReportingRepo) ListVehicleRents(ctx context.Context, orderIDs []uuid.UUID) ([]entity.VehicleRent, error) {
	if f.rentsErr != nil {
		return nil, f.rentsErr
	}
	allowed := make(map[uuid.UUID]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		allowed[id] = struct{}{}
	}
	var result []entity.VehicleRent
	for _, rent := range f.rents {
		if _, ok := allowed[rent.OrderID]; ok {
			result = append(result, rent)
		}
	}
	return result, nil
}

func (f *fakeReportingRepo) ListReferralCommissions(ctx context.Context) ([]entity.ReferralCommission, error) {
	if f.referralsErr != nil {
		return nil, f.referralsErr
	}
	return f.referrals, nil
}

func (f *fakeReportingRepo) ListCooks(ctx context.Context, cookIDs []uuid.UUID) ([]entity.Cook, error) {
	if f.cooksErr != nil {
		return nil, f.cooksErr
	}
	return f.cooks, nil
}

func floatPtr(v float64) *float64 { return &v }

func testOrder(service enum.ServiceType, total, deliveryEarnings float64, createdAt time.Time, items ...entity.OrderItem) entity.Order {
	return entity.Order{
		ID:               uuid.New(),
		ServiceType:      service,
		Status:           enum.OrderStatusDelivered,
		TotalAmount:      floatPtr(total),
		DeliveryEarnings: floatPtr(deliveryEarnings),
		CreatedAt:        createdAt,
		Items:            items,
	}
}

func marginItem(cookID *uuid.UUID, unitPrice float64, quantity int, basePrice, marginValue float64) entity.OrderItem {
	return entity.OrderItem{
		ID:         uuid.New(),
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice * float64(quantity),
		FoodItem: &entity.FoodItem{
			ID:                  uuid.New(),
			CookID:              cookID,
			Price:               floatPtr(basePrice),
			PlatformMarginType:  enum.MarginTypePercent,
			PlatformMarginValue: marginValue,
		},
	}
}

func TestGetProfitLoss_FullReconciliation(t *testing.T) {
	created := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	order := testOrder(enum.ServiceTypeHomemade, 220, 30, created,
		marginItem(nil, 110, 2, 100, 10))

	repo := &fakeReportingRepo{
		orders: []entity.Order{order},
		rents:  []entity.VehicleRent{{ID: uuid.New(), OrderID: order.ID, RentAmount: 500}},
		referrals: []entity.ReferralCommission{
			{ID: uuid.New(), ReferrerID: uuid.New(), CommissionAmount: 200, Status: enum.ReferralStatusPaid},
			{ID: uuid.New(), ReferrerID: uuid.New(), CommissionAmount: 300, Status: enum.ReferralStatusPending},
		},
	}
	svc := NewReportService(repo)

	result, err := svc.GetProfitLoss(context.Background(), nil)
	require.NoError(t, err)

	assert.InDelta(t, 220.0, result.Summary.TotalRevenue, 1e-6)
	assert.InDelta(t, 20.0, result.Summary.PlatformMarginRevenue, 1e-6)
	assert.InDelta(t, 200.0, result.Summary.CookPayouts, 1e-6)
	assert.InDelta(t, 530.0, result.Summary.DeliveryPayouts, 1e-6)
	assert.InDelta(t, 200.0, result.Summary.ReferralCommissions, 1e-6)
	assert.InDelta(t, 20.0-530.0-200.0, result.Summary.NetProfit, 1e-6)
	assert.Equal(t, int64(1), result.Summary.DeliveredOrderCount)

	require.Len(t, result.ByDate, 1)
	assert.Equal(t, "2026-03-10", result.ByDate[0].Date)
	assert.Contains(t, result.ByService, enum.ServiceTypeHomemade)
}

func TestGetProfitLoss_UpstreamFailureAbortsReport(t *testing.T) {
	repo := &fakeReportingRepo{referralsErr: errors.New("connection refused")}
	svc := NewReportService(repo)

	result, err := svc.GetProfitLoss(context.Background(), nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, report.ErrUpstreamUnavailable)
}

func TestGetProfitLoss_OrdersFailureAbortsReport(t *testing.T) {
	repo := &fakeReportingRepo{ordersErr: errors.New("timeout")}
	svc := NewReportService(repo)

	result, err := svc.GetProfitLoss(context.Background(), nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, report.ErrUpstreamUnavailable)
}

func TestGetProfitLoss_InvalidOrderFailsBatch(t *testing.T) {
	order := testOrder(enum.ServiceTypeHomemade, 100, 0, time.Time{})
	repo := &fakeReportingRepo{orders: []entity.Order{order}}
	svc := NewReportService(repo)

	result, err := svc.GetProfitLoss(context.Background(), nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, report.ErrInvalidOrderRecord)
}

func TestGetProfitLoss_PassesFiltersThrough(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	serviceType := enum.ServiceTypeCloudKitchen
	params := &repository.ReportFilterParams{StartDate: &start, ServiceType: &serviceType}

	repo := &fakeReportingRepo{}
	svc := NewReportService(repo)

	_, err := svc.GetProfitLoss(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, params, repo.lastFilters)
}

func TestGetSalesReport_AggregatesDailyPoints(t *testing.T) {
	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	repo := &fakeReportingRepo{orders: []entity.Order{
		testOrder(enum.ServiceTypeHomemade, 100, 0, day1),
		testOrder(enum.ServiceTypeHomemade, 200, 0, day1),
		testOrder(enum.ServiceTypeCloudKitchen, 300, 0, day2),
	}}
	svc := NewReportService(repo)

	result, err := svc.GetSalesReport(context.Background(), nil)
	require.NoError(t, err)

	assert.InDelta(t, 600.0, result.TotalRevenue, 1e-6)
	assert.Equal(t, int64(3), result.OrderCount)
	assert.InDelta(t, 200.0, result.AvgOrderValue, 1e-6)
	require.Len(t, result.DailySales, 2)
	assert.Equal(t, "2026-03-10", result.DailySales[0].Date)
	assert.InDelta(t, 300.0, result.DailySales[0].Revenue, 1e-6)
	assert.Equal(t, int64(2), result.DailySales[0].OrderCount)
	require.Len(t, result.ByService, 2)
}

func TestGetCookPerformance_AggregatesPerCook(t *testing.T) {
	cookA := uuid.New()
	cookB := uuid.New()
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	repo := &fakeReportingRepo{
		orders: []entity.Order{
			testOrder(enum.ServiceTypeHomemade, 330, 0, created,
				marginItem(&cookA, 110, 2, 100, 10),
				marginItem(&cookB, 55, 2, 50, 10)),
			testOrder(enum.ServiceTypeHomemade, 110, 0, created,
				marginItem(&cookA, 110, 1, 100, 10)),
		},
		cooks: []entity.Cook{
			{ID: cookA, Name: "Amminikutty"},
			{ID: cookB, Name: "Bhavani"},
		},
	}
	svc := NewReportService(repo)

	result, err := svc.GetCookPerformance(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, result.Cooks, 2)
	// Sorted by payout descending: cook A earned 300, cook B earned 100.
	assert.Equal(t, cookA, result.Cooks[0].CookID)
	assert.Equal(t, "Amminikutty", result.Cooks[0].CookName)
	assert.Equal(t, int64(2), result.Cooks[0].OrdersServed)
	assert.Equal(t, int64(3), result.Cooks[0].ItemsSold)
	assert.InDelta(t, 300.0, result.Cooks[0].CookPayout, 1e-6)
	assert.InDelta(t, 30.0, result.Cooks[0].MarginEarned, 1e-6)

	assert.Equal(t, cookB, result.Cooks[1].CookID)
	assert.InDelta(t, 100.0, result.Cooks[1].CookPayout, 1e-6)

	assert.InDelta(t, 400.0, result.TotalCookPayout, 1e-6)
}

func TestGetCookPerformance_SkipsUnattributedItems(t *testing.T) {
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	legacyItem := entity.OrderItem{ID: uuid.New(), Quantity: 1, UnitPrice: 80, TotalPrice: 80}

	repo := &fakeReportingRepo{
		orders: []entity.Order{testOrder(enum.ServiceTypeHomemade, 80, 0, created, legacyItem)},
	}
	svc := NewReportService(repo)

	result, err := svc.GetCookPerformance(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, result.Cooks)
	assert.Zero(t, result.TotalCookPayout)
}

func TestGetDeliverySettlement_TotalsAndPagination(t *testing.T) {
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	orders := make([]entity.Order, 0, 3)
	for i := 0; i < 3; i++ {
		orders = append(orders, testOrder(enum.ServiceTypeIndoorEvents, 1000, 100, created.AddDate(0, 0, i)))
	}
	rent := entity.VehicleRent{ID: uuid.New(), OrderID: orders[0].ID, VehicleName: "Tempo", RentAmount: 500}

	repo := &fakeReportingRepo{orders: orders, rents: []entity.VehicleRent{rent}}
	svc := NewReportService(repo)

	result, err := svc.GetDeliverySettlement(context.Background(), &pagination.PaginationParams{Page: 1, PerPage: 2})
	require.NoError(t, err)

	// Totals cover every delivered order even though only one page of
	// rows is returned.
	assert.InDelta(t, 300.0, result.TotalDeliveryEarnings, 1e-6)
	assert.InDelta(t, 500.0, result.TotalVehicleRent, 1e-6)
	assert.InDelta(t, 800.0, result.TotalPayout, 1e-6)

	require.Len(t, result.Rows.Items, 2)
	assert.InDelta(t, 600.0, result.Rows.Items[0].Total, 1e-6)
	assert.Equal(t, int64(3), result.Rows.Pagination.Total)
	assert.True(t, result.Rows.Pagination.HasNext)
}

func TestGetReferralReport_GroupsByReferrer(t *testing.T) {
	referrer := uuid.New()
	repo := &fakeReportingRepo{referrals: []entity.ReferralCommission{
		{ID: uuid.New(), ReferrerID: referrer, CommissionAmount: 200, Status: enum.ReferralStatusPaid},
		{ID: uuid.New(), ReferrerID: referrer, CommissionAmount: 300, Status: enum.ReferralStatusPending},
		{ID: uuid.New(), ReferrerID: uuid.New(), CommissionAmount: 50, Status: enum.ReferralStatusCancelled},
	}}
	svc := NewReportService(repo)

	result, err := svc.GetReferralReport(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Referrers, 2)
	assert.Equal(t, referrer, result.Referrers[0].ReferrerID)
	assert.Equal(t, int64(2), result.Referrers[0].ReferralCount)
	assert.InDelta(t, 200.0, result.Referrers[0].PaidAmount, 1e-6)
	assert.InDelta(t, 300.0, result.Referrers[0].PendingAmount, 1e-6)
	assert.InDelta(t, 500.0, result.Referrers[0].TotalAmount, 1e-6)

	assert.InDelta(t, 200.0, result.TotalPaid, 1e-6)
	assert.InDelta(t, 300.0, result.TotalPending, 1e-6)
}

func TestGetVehicleRentReport_OnlyDeliveredOrdersRents(t *testing.T) {
	created := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	order := testOrder(enum.ServiceTypeIndoorEvents, 5000, 0, created)

	repo := &fakeReportingRepo{
		orders: []entity.Order{order},
		rents: []entity.VehicleRent{
			{ID: uuid.New(), OrderID: order.ID, VehicleName: "Pickup", RentAmount: 700},
			{ID: uuid.New(), OrderID: uuid.New(), VehicleName: "Stray", RentAmount: 900},
		},
	}
	svc := NewReportService(repo)

	result, err := svc.GetVehicleRentReport(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, result.Rents, 1)
	assert.Equal(t, "Pickup", result.Rents[0].VehicleName)
	assert.InDelta(t, 700.0, result.TotalRent, 1e-6)
}
