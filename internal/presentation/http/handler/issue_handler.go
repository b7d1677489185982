package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kabore/hotelier-api/internal/application/service"
	"github.com/kabore/hotelier-api/internal/domain/enum"
	"github.com/kabore/hotelier-api/internal/domain/repository"
	"github.com/kabore/hotelier-api/internal/presentation/http/dto/response"
)

// IssueHandler handles room issue HTTP requests
type IssueHandler struct {
	issueService *service.IssueService
}

// NewIssueHandler creates a new issue handler
func NewIssueHandler(issueService *service.IssueService) *IssueHandler {
	return &IssueHandler{issueService: issueService}
}

// Report files a problem against a room
func (h *IssueHandler) Report(c *gin.Context) {
	var req struct {
		RoomID      uuid.UUID `json:"room_id" binding:"required"`
		Description string    `json:"description" binding:"required"`
		Priority    string    `json:"priority"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	issue, err := h.issueService.Report(c.Request.Context(), &service.ReportIssueInput{
		RoomID:       req.RoomID,
		ReportedByID: GetUserID(c),
		Description:  req.Description,
		Priority:     req.Priority,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Issue reported successfully", issue)
}

// UpdateStatus moves an issue through its workflow
func (h *IssueHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid issue ID")
		return
	}

	var req struct {
		Status enum.IssueStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.issueService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Issue status updated successfully", nil)
}

// List lists issues with filtering
func (h *IssueHandler) List(c *gin.Context) {
	params := &repository.IssueFilterParams{}

	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.IssueStatus(statusStr)
		if !status.IsValid() {
			response.BadRequest(c, "Unknown issue status")
			return
		}
		params.Status = &status
	}
	if roomIDStr := c.Query("room_id"); roomIDStr != "" {
		if roomID, err := uuid.Parse(roomIDStr); err == nil {
			params.RoomID = &roomID
		}
	}

	issues, err := h.issueService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Issues retrieved successfully", issues)
}
