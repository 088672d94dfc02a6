package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/oottupura/oottupura-api/internal/application/service"
	"github.com/oottupura/oottupura-api/internal/domain/report"
	"github.com/oottupura/oottupura-api/internal/domain/repository"
	"github.com/oottupura/oottupura-api/internal/presentation/http/dto/request"
	"github.com/oottupura/oottupura-api/internal/presentation/http/dto/response"
	"github.com/oottupura/oottupura-api/pkg/pagination"
)

// ReportHandler handles financial report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// bindFilters parses and validates the shared filter query string. A nil
// result means the response has already been written.
func bindFilters(c *gin.Context) *repository.ReportFilterParams {
	var req request.ReportFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid report filters")
		return nil
	}
	params, err := req.ToParams()
	if err != nil {
		response.BadRequest(c, err.Error())
		return nil
	}
	return params
}

// reportError translates engine error kinds into HTTP responses
func reportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, report.ErrUpstreamUnavailable):
		response.ErrorWithCode(c, 503, "Report data source unavailable")
	case errors.Is(err, report.ErrInvalidOrderRecord), errors.Is(err, report.ErrInvalidMarginInput):
		response.ErrorWithCode(c, 422, err.Error())
	default:
		response.Error(c, err)
	}
}

// GetProfitLoss handles the profit-and-loss report request
func (h *ReportHandler) GetProfitLoss(c *gin.Context) {
	params := bindFilters(c)
	if params == nil {
		return
	}

	result, err := h.reportService.GetProfitLoss(c.Request.Context(), params)
	if err != nil {
		reportError(c, err)
		return
	}

	response.OK(c, "Profit and loss report retrieved successfully", result)
}

// GetSalesReport handles the sales report request
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	params := bindFilters(c)
	if params == nil {
		return
	}

	result, err := h.reportService.GetSalesReport(c.Request.Context(), params)
	if err != nil {
		reportError(c, err)
		return
	}

	response.OK(c, "Sales report retrieved successfully", result)
}

// GetCookPerformance handles the cook performance report request
func (h *ReportHandler) GetCookPerformance(c *gin.Context) {
	params := bindFilters(c)
	if params == nil {
		return
	}

	result, err := h.reportService.GetCookPerformance(c.Request.Context(), params)
	if err != nil {
		reportError(c, err)
		return
	}

	response.OK(c, "Cook performance report retrieved successfully", result)
}

// GetDeliverySettlement handles the delivery settlement report request
func (h *ReportHandler) GetDeliverySettlement(c *gin.Context) {
	var page pagination.PaginationParams
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.reportService.GetDeliverySettlement(c.Request.Context(), &page)
	if err != nil {
		reportError(c, err)
		return
	}

	response.OK(c, "Delivery settlement report retrieved successfully", result)
}

// GetReferralReport handles the referral performance report request
func (h *ReportHandler) GetReferralReport(c *gin.Context) {
	result, err := h.reportService.GetReferralReport(c.Request.Context())
	if err != nil {
		reportError(c, err)
		return
	}

	response.OK(c, "Referral report retrieved successfully", result)
}

// GetVehicleRentReport handles the vehicle rent report request
func (h *ReportHandler) GetVehicleRentReport(c *gin.Context) {
	params := bindFilters(c)
	if params == nil {
		return
	}

	result, err := h.reportService.GetVehicleRentReport(c.Request.Context(), params)
	if err != nil {
		reportError(c, err)
		return
	}

	response.OK(c, "Vehicle rent report retrieved successfully", result)
}
