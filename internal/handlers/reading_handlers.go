package handlers

import (
	"errors"
	"net/http"
	"strings"

	"slotmanager_backend/internal/services"
	"slotmanager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReadingHandler holds the reading service.
type ReadingHandler struct {
	readingService services.ReadingService
}

// NewReadingHandler creates a new ReadingHandler.
func NewReadingHandler(rs services.ReadingService) *ReadingHandler {
	return &ReadingHandler{readingService: rs}
}

// CreateReading handles ingestion of a single meter reading. Derived
// monetary fields are computed here, once, and stored immutably.
func (h *ReadingHandler) CreateReading(c *gin.Context) {
	var req services.CreateReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	reading, err := h.readingService.CreateReading(req)
	if err != nil {
		utils.LogError(err, "CreateReading: Error from readingService.CreateReading")
		if errors.Is(err, services.ErrMachineNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Machine not found.", err.Error()))
		} else if errors.Is(err, services.ErrClientNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Client not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create reading.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, reading)
}

// GetReadings handles fetching stored readings, most recent first.
func (h *ReadingHandler) GetReadings(c *gin.Context) {
	readings, err := h.readingService.GetReadings()
	if err != nil {
		utils.LogError(err, "GetReadings: Error from readingService.GetReadings")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch readings.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, readings)
}

// ImportReadings handles bulk CSV import. Row failures are collected and
// reported; only a non-CSV upload fails the call outright.
func (h *ReadingHandler) ImportReadings(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Missing file upload.", err.Error()))
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Only CSV files are allowed.", fileHeader.Filename))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.LogError(err, "ImportReadings: Failed to open upload")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to read upload.", "Internal error"))
		return
	}
	defer file.Close()

	result, err := h.readingService.ImportReadingsCSV(file)
	if err != nil {
		utils.LogError(err, "ImportReadings: Error from readingService.ImportReadingsCSV")
		if errors.Is(err, services.ErrReadingValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Unreadable CSV file: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to import readings.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteReading handles deleting a reading. Readings are never updated.
func (h *ReadingHandler) DeleteReading(c *gin.Context) {
	if err := h.readingService.DeleteReading(c.Param("id")); err != nil {
		utils.LogError(err, "DeleteReading: Error from readingService.DeleteReading")
		if errors.Is(err, services.ErrReadingNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Reading not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete reading.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reading deleted"})
}
