package handlers

import (
	"errors"
	"net/http"

	"slotmanager_backend/internal/services"
	"slotmanager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RegionHandler holds the region service.
type RegionHandler struct {
	regionService services.RegionService
}

// NewRegionHandler creates a new RegionHandler.
func NewRegionHandler(rs services.RegionService) *RegionHandler {
	return &RegionHandler{regionService: rs}
}

// CreateRegion handles the creation of a new region.
func (h *RegionHandler) CreateRegion(c *gin.Context) {
	var req services.CreateRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	region, err := h.regionService.CreateRegion(req)
	if err != nil {
		utils.LogError(err, "CreateRegion: Error from regionService.CreateRegion")
		if errors.Is(err, services.ErrRegionValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create region.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, region)
}

// GetRegions handles fetching all regions.
func (h *RegionHandler) GetRegions(c *gin.Context) {
	regions, err := h.regionService.GetRegions()
	if err != nil {
		utils.LogError(err, "GetRegions: Error from regionService.GetRegions")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch regions.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, regions)
}

// UpdateRegion handles a full replace of a region's mutable fields.
func (h *RegionHandler) UpdateRegion(c *gin.Context) {
	var req services.CreateRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	region, err := h.regionService.UpdateRegion(c.Param("id"), req)
	if err != nil {
		utils.LogError(err, "UpdateRegion: Error from regionService.UpdateRegion")
		if errors.Is(err, services.ErrRegionNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Region not found.", err.Error()))
		} else if errors.Is(err, services.ErrRegionValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update region.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, region)
}

// DeleteRegion handles deleting a region.
func (h *RegionHandler) DeleteRegion(c *gin.Context) {
	if err := h.regionService.DeleteRegion(c.Param("id")); err != nil {
		utils.LogError(err, "DeleteRegion: Error from regionService.DeleteRegion")
		if errors.Is(err, services.ErrRegionNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Region not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete region.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Region deleted"})
}
