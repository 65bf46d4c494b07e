package handlers

import (
	"errors"
	"net/http"

	"slotmanager_backend/internal/services"
	"slotmanager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OperatorHandler holds the operator service.
type OperatorHandler struct {
	operatorService services.OperatorService
}

// NewOperatorHandler creates a new OperatorHandler.
func NewOperatorHandler(os services.OperatorService) *OperatorHandler {
	return &OperatorHandler{operatorService: os}
}

// CreateOperator handles the creation of a new operator.
func (h *OperatorHandler) CreateOperator(c *gin.Context) {
	var req services.CreateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	operator, err := h.operatorService.CreateOperator(req)
	if err != nil {
		utils.LogError(err, "CreateOperator: Error from operatorService.CreateOperator")
		if errors.Is(err, services.ErrOperatorValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create operator.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, operator)
}

// GetOperators handles fetching all operators.
func (h *OperatorHandler) GetOperators(c *gin.Context) {
	operators, err := h.operatorService.GetOperators()
	if err != nil {
		utils.LogError(err, "GetOperators: Error from operatorService.GetOperators")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch operators.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, operators)
}

// UpdateOperator handles a full replace of an operator's mutable fields.
func (h *OperatorHandler) UpdateOperator(c *gin.Context) {
	var req services.CreateOperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	operator, err := h.operatorService.UpdateOperator(c.Param("id"), req)
	if err != nil {
		utils.LogError(err, "UpdateOperator: Error from operatorService.UpdateOperator")
		if errors.Is(err, services.ErrOperatorNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Operator not found.", err.Error()))
		} else if errors.Is(err, services.ErrOperatorValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update operator.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, operator)
}

// DeleteOperator handles deleting an operator. Machines keep their
// operator_id; ingestion treats the dangling reference as "no operator".
func (h *OperatorHandler) DeleteOperator(c *gin.Context) {
	if err := h.operatorService.DeleteOperator(c.Param("id")); err != nil {
		utils.LogError(err, "DeleteOperator: Error from operatorService.DeleteOperator")
		if errors.Is(err, services.ErrOperatorNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Operator not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete operator.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Operator deleted"})
}
