package handlers

import (
	"errors"
	"net/http"

	"slotmanager_backend/internal/services"
	"slotmanager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// LinkHandler holds the client-operator link service.
type LinkHandler struct {
	linkService services.LinkService
}

// NewLinkHandler creates a new LinkHandler.
func NewLinkHandler(ls services.LinkService) *LinkHandler {
	return &LinkHandler{linkService: ls}
}

// CreateLink handles linking an operator to a client.
func (h *LinkHandler) CreateLink(c *gin.Context) {
	var req services.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	link, err := h.linkService.CreateLink(req)
	if err != nil {
		utils.LogError(err, "CreateLink: Error from linkService.CreateLink")
		if errors.Is(err, services.ErrClientNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Client not found.", err.Error()))
		} else if errors.Is(err, services.ErrOperatorNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Operator not found.", err.Error()))
		} else if errors.Is(err, services.ErrLinkExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Client is already linked to this operator.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create link.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, link)
}

// GetLinks handles fetching all client-operator links.
func (h *LinkHandler) GetLinks(c *gin.Context) {
	links, err := h.linkService.GetLinks()
	if err != nil {
		utils.LogError(err, "GetLinks: Error from linkService.GetLinks")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch links.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, links)
}

// DeleteLink handles removing a client-operator link.
func (h *LinkHandler) DeleteLink(c *gin.Context) {
	if err := h.linkService.DeleteLink(c.Param("id")); err != nil {
		utils.LogError(err, "DeleteLink: Error from linkService.DeleteLink")
		if errors.Is(err, services.ErrLinkNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Link not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete link.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Link deleted"})
}
