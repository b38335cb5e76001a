package usecases

import (
	"context"

	"github.com/deskline-inc/deskline/internal/domain/ticket"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type DeleteCommentCommand struct {
	Actor     authorization.Actor
	CommentID uint
}

type DeleteCommentResult struct {
	DeletedCount int64
}

type DeleteCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(commentRepo ticket.CommentRepository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) (*DeleteCommentResult, error) {
	uc.logger.Infow("executing delete comment use case", "comment_id", cmd.CommentID, "user_id", cmd.Actor.UserID)

	c, err := loadComment(ctx, uc.commentRepo, cmd.CommentID, uc.logger)
	if err != nil {
		return nil, err
	}

	if decision := authorization.CanModify(cmd.Actor, c.OwnershipResource()); !decision.Allowed {
		uc.logger.Warnw("comment delete denied", "comment_id", c.ID(), "user_id", cmd.Actor.UserID, "reason", decision.Reason)
		return nil, forbidden(decision.Reason)
	}

	n, err := uc.commentRepo.Delete(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to delete comment", "comment_id", c.ID(), "error", err)
		return nil, errors.NewStoreError("delete comment", err)
	}

	uc.logger.Infow("comment deleted successfully", "comment_id", c.ID(), "deleted", n)
	return &DeleteCommentResult{DeletedCount: n}, nil
}
