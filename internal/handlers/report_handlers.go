package handlers

import (
	"errors"
	"net/http"

	"slotmanager_backend/internal/services"
	"slotmanager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// GetDashboard returns the unscoped system-wide summary.
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	stats, err := h.reportService.Dashboard()
	if err != nil {
		utils.LogError(err, "GetDashboard: Error from reportService.Dashboard")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build dashboard.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetMachineReport returns the readings summary for one machine.
func (h *ReportHandler) GetMachineReport(c *gin.Context) {
	report, err := h.reportService.MachineReport(c.Param("id"))
	if err != nil {
		utils.LogError(err, "GetMachineReport: Error from reportService.MachineReport")
		if errors.Is(err, services.ErrMachineNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Machine not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build machine report.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetClientReport returns the readings summary across a client's machines.
func (h *ReportHandler) GetClientReport(c *gin.Context) {
	report, err := h.reportService.ClientReport(c.Param("id"))
	if err != nil {
		utils.LogError(err, "GetClientReport: Error from reportService.ClientReport")
		if errors.Is(err, services.ErrClientNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Client not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build client report.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetRegionReport returns the readings summary across a region's machines.
func (h *ReportHandler) GetRegionReport(c *gin.Context) {
	report, err := h.reportService.RegionReport(c.Param("id"))
	if err != nil {
		utils.LogError(err, "GetRegionReport: Error from reportService.RegionReport")
		if errors.Is(err, services.ErrRegionNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Region not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build region report.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, report)
}
