package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oottupura/oottupura-api/internal/domain/entity"
	"github.com/oottupura/oottupura-api/internal/domain/enum"
)

// ReportFilterParams contains the shared filter contract for all reports.
// Each date bound is inclusive on its side; nil means unbounded. A nil
// service type or panchayat means no filtering on that dimension.
type ReportFilterParams struct {
	StartDate   *time.Time
	EndDate     *time.Time
	ServiceType *enum.ServiceType
	PanchayatID *uuid.UUID
}

// ReportingRepository is the read-only data-access collaborator the
// reporting engine runs over. Implementations own retry policy; callers
// treat any failure as fatal for the report being built.
type ReportingRepository interface {
	// ListDeliveredOrders returns delivered orders matching the filters,
	// with items and each item's food-item margin snapshot attached.
	ListDeliveredOrders(ctx context.Context, params *ReportFilterParams) ([]entity.Order, error)

	// ListVehicleRents returns the vehicle rents attached to the given orders.
	ListVehicleRents(ctx context.Context, orderIDs []uuid.UUID) ([]entity.VehicleRent, error)

	// ListReferralCommissions returns all referral commissions regardless
	// of status or date.
	ListReferralCommissions(ctx context.Context) ([]entity.ReferralCommission, error)

	// ListCooks returns the cooks referenced by the given ids.
	ListCooks(ctx context.Context, cookIDs []uuid.UUID) ([]entity.Cook, error)
}
