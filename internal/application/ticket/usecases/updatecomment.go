package usecases

import (
	"context"

	"github.com/deskline-inc/deskline/internal/application/ticket/dto"
	"github.com/deskline-inc/deskline/internal/domain/ticket"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type UpdateCommentCommand struct {
	Actor     authorization.Actor
	CommentID uint
	Text      string
}

type UpdateCommentUseCase struct {
	commentRepo ticket.CommentRepository
	renderer    CommentRenderer
	logger      logger.Interface
}

func NewUpdateCommentUseCase(
	commentRepo ticket.CommentRepository,
	renderer CommentRenderer,
	logger logger.Interface,
) *UpdateCommentUseCase {
	return &UpdateCommentUseCase{
		commentRepo: commentRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

// Execute edits the comment text. Only the author may edit, and only until
// staff has viewed the comment; admins may always edit.
func (uc *UpdateCommentUseCase) Execute(ctx context.Context, cmd UpdateCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing update comment use case", "comment_id", cmd.CommentID, "user_id", cmd.Actor.UserID)

	c, err := loadComment(ctx, uc.commentRepo, cmd.CommentID, uc.logger)
	if err != nil {
		return nil, err
	}

	if decision := authorization.CanModify(cmd.Actor, c.OwnershipResource()); !decision.Allowed {
		uc.logger.Warnw("comment update denied", "comment_id", c.ID(), "user_id", cmd.Actor.UserID, "reason", decision.Reason)
		return nil, forbidden(decision.Reason)
	}

	if err := c.UpdateText(cmd.Text); err != nil {
		return nil, errors.NewValidationError("Validation failed", err.Error())
	}

	if err := uc.commentRepo.UpdateText(ctx, c); err != nil {
		uc.logger.Errorw("failed to update comment", "comment_id", c.ID(), "error", err)
		return nil, errors.NewStoreError("update comment", err)
	}

	uc.logger.Infow("comment updated successfully", "comment_id", c.ID())
	return dto.ToCommentDTO(c, render(uc.renderer, c.Text())), nil
}
