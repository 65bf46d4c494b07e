package handlers

import (
	"errors"
	"net/http"

	"slotmanager_backend/internal/services"
	"slotmanager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MachineHandler holds the machine service.
type MachineHandler struct {
	machineService services.MachineService
}

// NewMachineHandler creates a new MachineHandler.
func NewMachineHandler(ms services.MachineService) *MachineHandler {
	return &MachineHandler{machineService: ms}
}

// CreateMachine handles the creation of a new machine. client_id and
// region_id must reference existing records at this moment.
func (h *MachineHandler) CreateMachine(c *gin.Context) {
	var req services.CreateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	machine, err := h.machineService.CreateMachine(req)
	if err != nil {
		utils.LogError(err, "CreateMachine: Error from machineService.CreateMachine")
		if errors.Is(err, services.ErrMachineValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create machine.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, machine)
}

// GetMachines handles fetching all machines.
func (h *MachineHandler) GetMachines(c *gin.Context) {
	machines, err := h.machineService.GetMachines()
	if err != nil {
		utils.LogError(err, "GetMachines: Error from machineService.GetMachines")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch machines.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, machines)
}

// UpdateMachine handles a full replace of a machine's mutable fields.
// Existing readings keep the figures derived under the old multiplier.
func (h *MachineHandler) UpdateMachine(c *gin.Context) {
	var req services.CreateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	machine, err := h.machineService.UpdateMachine(c.Param("id"), req)
	if err != nil {
		utils.LogError(err, "UpdateMachine: Error from machineService.UpdateMachine")
		if errors.Is(err, services.ErrMachineNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Machine not found.", err.Error()))
		} else if errors.Is(err, services.ErrMachineValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update machine.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, machine)
}

// DeleteMachine handles deleting a machine. Its readings are untouched.
func (h *MachineHandler) DeleteMachine(c *gin.Context) {
	if err := h.machineService.DeleteMachine(c.Param("id")); err != nil {
		utils.LogError(err, "DeleteMachine: Error from machineService.DeleteMachine")
		if errors.Is(err, services.ErrMachineNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Machine not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete machine.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Machine deleted"})
}
