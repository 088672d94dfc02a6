package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/oottupura/oottupura-api/internal/domain/entity"
	"github.com/oottupura/oottupura-api/internal/domain/enum"
	domainRepo "github.com/oottupura/oottupura-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportingRepository struct {
	db *gorm.DB
}

// NewReportingRepository creates a new reporting repository
func NewReportingRepository(db *gorm.DB) domainRepo.ReportingRepository {
	return &reportingRepository{db: db}
}

func (r *reportingRepository) ListDeliveredOrders(ctx context.Context, params *domainRepo.ReportFilterParams) ([]entity.Order, error) {
	var orders []entity.Order

	query := r.db.WithContext(ctx).
		Model(&entity.Order{}).
		Where("status = ?", enum.OrderStatusDelivered).
		Preload("Items").
		Preload("Items.FoodItem")

	if params != nil {
		if params.StartDate != nil {
			query = query.Where("created_at >= ?", *params.StartDate)
		}
		if params.EndDate != nil {
			query = query.Where("created_at <= ?", *params.EndDate)
		}
		if params.ServiceType != nil {
			query = query.Where("service_type = ?", *params.ServiceType)
		}
		if params.PanchayatID != nil {
			query = query.Where("panchayat_id = ?", *params.PanchayatID)
		}
	}

	if err := query.Order("created_at ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *reportingRepository) ListVehicleRents(ctx context.Context, orderIDs []uuid.UUID) ([]entity.VehicleRent, error) {
	if len(orderIDs) == 0 {
		return []entity.VehicleRent{}, nil
	}

	var rents []entity.VehicleRent
	err := r.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Find(&rents).Error
	if err != nil {
		return nil, err
	}
	return rents, nil
}

func (r *reportingRepository) ListReferralCommissions(ctx context.Context) ([]entity.ReferralCommission, error) {
	var commissions []entity.ReferralCommission
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&commissions).Error
	if err != nil {
		return nil, err
	}
	return commissions, nil
}

func (r *reportingRepository) ListCooks(ctx context.Context, cookIDs []uuid.UUID) ([]entity.Cook, error) {
	if len(cookIDs) == 0 {
		return []entity.Cook{}, nil
	}

	var cooks []entity.Cook
	err := r.db.WithContext(ctx).
		Where("id IN ?", cookIDs).
		Find(&cooks).Error
	if err != nil {
		return nil, err
	}
	return cooks, nil
}
