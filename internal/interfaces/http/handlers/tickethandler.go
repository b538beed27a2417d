package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/ticket/usecases"
	"quickdesk/internal/interfaces/http/middleware"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
	"quickdesk/internal/shared/sanitize"
	"quickdesk/internal/shared/utils"
)

type CreateTicketRequest struct {
	Subject     string              `json:"subject" binding:"required"`
	Description string              `json:"description" binding:"required"`
	Category    string              `json:"category" binding:"required"`
	Attachments []AttachmentRequest `json:"attachments" binding:"omitempty,max=5,dive"`
}

type AttachmentRequest struct {
	Name string `json:"name" binding:"required"`
	Size int64  `json:"size" binding:"min=0,max=5242880"`
	Type string `json:"type"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type VoteRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	changeStatusUC usecases.ChangeStatusExecutor
	assignTicketUC usecases.AssignTicketExecutor
	addCommentUC   usecases.AddCommentExecutor
	voteUC         usecases.VoteExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	getTicketUC    usecases.GetTicketExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	changeStatusUC usecases.ChangeStatusExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	addCommentUC usecases.AddCommentExecutor,
	voteUC usecases.VoteExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		changeStatusUC: changeStatusUC,
		assignTicketUC: assignTicketUC,
		addCommentUC:   addCommentUC,
		voteUC:         voteUC,
		listTicketsUC:  listTicketsUC,
		getTicketUC:    getTicketUC,
		logger:         logger,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create ticket request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, _ := middleware.ActorID(c)
	actorRole, _ := middleware.ActorRole(c)

	attachments := make([]usecases.AttachmentInput, 0, len(req.Attachments))
	for _, a := range req.Attachments {
		attachments = append(attachments, usecases.AttachmentInput{
			Name: sanitize.Text(a.Name),
			Size: a.Size,
			Type: a.Type,
		})
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		CreatorID:   actorID,
		CreatorRole: actorRole,
		Subject:     sanitize.Text(req.Subject),
		Description: sanitize.Text(req.Description),
		Category:    sanitize.Text(req.Category),
		Attachments: attachments,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully!")
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	actorID, _ := middleware.ActorID(c)
	pagination := utils.ParsePagination(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		ActorID:  actorID,
		Status:   c.Query("status"),
		Category: c.Query("category"),
		OnlyMine: c.Query("mine") == "true",
		Search:   c.Query("search"),
		Sort:     c.DefaultQuery("sort", "recent"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize, result.TotalPages)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ChangeStatus handles PATCH /tickets/:id/status
func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, _ := middleware.ActorID(c)
	actorRole, _ := middleware.ActorRole(c)

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeStatusCommand{
		TicketID:  ticketID,
		ActorID:   actorID,
		ActorRole: actorRole,
		NewStatus: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK,
		"Ticket status updated to \""+result.NewStatus+"\".", result)
}

// AssignTicket handles POST /tickets/:id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, _ := middleware.ActorID(c)
	actorRole, _ := middleware.ActorRole(c)

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID:  ticketID,
		ActorID:   actorID,
		ActorRole: actorRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned to you and status updated!", result)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actorID, _ := middleware.ActorID(c)
	actorRole, _ := middleware.ActorRole(c)

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID:  ticketID,
		ActorID:   actorID,
		ActorRole: actorRole,
		Text:      sanitize.Text(req.Text),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully!")
}

// Vote handles POST /tickets/:id/vote
func (h *TicketHandler) Vote(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.voteUC.Execute(c.Request.Context(), usecases.VoteCommand{
		TicketID:  ticketID,
		Direction: req.Direction,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}
