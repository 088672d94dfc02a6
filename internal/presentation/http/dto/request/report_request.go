package request

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oottupura/oottupura-api/internal/domain/enum"
	"github.com/oottupura/oottupura-api/internal/domain/repository"
)

// ReportFilterRequest represents the shared query-string filter contract
// for report endpoints. Dates use YYYY-MM-DD; the value "all" on
// service_type or panchayat_id is treated the same as leaving it out.
type ReportFilterRequest struct {
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	ServiceType string `form:"service_type"`
	PanchayatID string `form:"panchayat_id"`
}

// ToParams validates the raw filters and converts them into repository
// filter params. Date bounds are inclusive: the end date is advanced to
// the last instant of its day.
func (r *ReportFilterRequest) ToParams() (*repository.ReportFilterParams, error) {
	params := &repository.ReportFilterParams{}

	if r.StartDate != "" {
		start, err := time.ParseInLocation("2006-01-02", r.StartDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid start_date %q, expected YYYY-MM-DD", r.StartDate)
		}
		params.StartDate = &start
	}
	if r.EndDate != "" {
		end, err := time.ParseInLocation("2006-01-02", r.EndDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid end_date %q, expected YYYY-MM-DD", r.EndDate)
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
		params.EndDate = &end
	}
	if params.StartDate != nil && params.EndDate != nil && params.EndDate.Before(*params.StartDate) {
		return nil, fmt.Errorf("end_date %s is before start_date %s", r.EndDate, r.StartDate)
	}

	if r.ServiceType != "" && r.ServiceType != "all" {
		serviceType, err := enum.ParseServiceType(r.ServiceType)
		if err != nil {
			return nil, err
		}
		params.ServiceType = &serviceType
	}

	if r.PanchayatID != "" && r.PanchayatID != "all" {
		panchayatID, err := uuid.Parse(r.PanchayatID)
		if err != nil {
			return nil, fmt.Errorf("invalid panchayat_id %q", r.PanchayatID)
		}
		params.PanchayatID = &panchayatID
	}

	return params, nil
}
