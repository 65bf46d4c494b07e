package handlers

import (
	"net/http"

	"slotmanager_backend/internal/models"
	"slotmanager_backend/internal/services"
	"slotmanager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BackupHandler holds the backup service.
type BackupHandler struct {
	backupService services.BackupService
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(bs services.BackupService) *BackupHandler {
	return &BackupHandler{backupService: bs}
}

// ExportBackup returns the full dataset as a single JSON document.
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	doc, err := h.backupService.Export()
	if err != nil {
		utils.LogError(err, "ExportBackup: Error from backupService.Export")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to export backup.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ImportBackup bulk-loads a backup document. Record failures are collected
// per record and reported; the import itself never aborts partway.
func (h *BackupHandler) ImportBackup(c *gin.Context) {
	var doc models.BackupDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid backup document: "+err.Error(), err.Error()))
		return
	}

	result, err := h.backupService.Import(&doc)
	if err != nil {
		utils.LogError(err, "ImportBackup: Error from backupService.Import")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to import backup.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, result)
}
