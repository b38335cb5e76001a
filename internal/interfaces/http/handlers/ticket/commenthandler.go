package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deskline-inc/deskline/internal/application/ticket/usecases"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
	"github.com/deskline-inc/deskline/internal/shared/utils"
)

type CommentHandler struct {
	listCommentsUC      usecases.ListCommentsExecutor
	addCommentUC        usecases.AddCommentExecutor
	updateCommentUC     usecases.UpdateCommentExecutor
	deleteCommentUC     usecases.DeleteCommentExecutor
	markCommentViewedUC usecases.MarkCommentViewedExecutor
	logger              logger.Interface
}

func NewCommentHandler(
	listCommentsUC usecases.ListCommentsExecutor,
	addCommentUC usecases.AddCommentExecutor,
	updateCommentUC usecases.UpdateCommentExecutor,
	deleteCommentUC usecases.DeleteCommentExecutor,
	markCommentViewedUC usecases.MarkCommentViewedExecutor,
	logger logger.Interface,
) *CommentHandler {
	return &CommentHandler{
		listCommentsUC:      listCommentsUC,
		addCommentUC:        addCommentUC,
		updateCommentUC:     updateCommentUC,
		deleteCommentUC:     deleteCommentUC,
		markCommentViewedUC: markCommentViewedUC,
		logger:              logger,
	}
}

// ListComments handles GET /tickets/:ticketId/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddComment handles POST /tickets/:ticketId/comments
func (h *CommentHandler) AddComment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err, "ticket_id", ticketID)
		utils.BindErrorResponse(c, err)
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:           actor,
		TicketID:        ticketID,
		Text:            req.CommentText,
		IsInternal:      req.IsInternal,
		ParentCommentID: req.ParentCommentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// UpdateComment handles PUT /comments/:commentId
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	commentID, err := parseCommentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindErrorResponse(c, err)
		return
	}

	result, err := h.updateCommentUC.Execute(c.Request.Context(), usecases.UpdateCommentCommand{
		Actor:     actor,
		CommentID: commentID,
		Text:      req.CommentText,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment updated successfully", result)
}

// DeleteComment handles DELETE /comments/:commentId
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	commentID, err := parseCommentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		Actor:     actor,
		CommentID: commentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if result.DeletedCount == 0 {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("Comment not found"))
		return
	}

	utils.NoContentResponse(c)
}

// MarkCommentViewed handles POST /comments/:commentId/mark-viewed. A
// repeated call succeeds with alreadyViewed set.
func (h *CommentHandler) MarkCommentViewed(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	commentID, err := parseCommentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markCommentViewedUC.Execute(c.Request.Context(), usecases.MarkCommentViewedCommand{
		Actor:     actor,
		CommentID: commentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Comment marked as viewed"
	if result.AlreadyViewed {
		message = "Comment was already viewed"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}
