package usecases

import (
	"context"

	"github.com/deskline-inc/deskline/internal/application/ticket/dto"
	"github.com/deskline-inc/deskline/internal/domain/ticket"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/biztime"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type MarkCommentViewedCommand struct {
	Actor     authorization.Actor
	CommentID uint
}

type MarkCommentViewedResult struct {
	Comment *dto.CommentDTO `json:"comment"`
	// AlreadyViewed is true when an earlier view was already recorded.
	AlreadyViewed bool `json:"alreadyViewed"`
}

type MarkCommentViewedUseCase struct {
	commentRepo ticket.CommentRepository
	renderer    CommentRenderer
	logger      logger.Interface
}

func NewMarkCommentViewedUseCase(
	commentRepo ticket.CommentRepository,
	renderer CommentRenderer,
	logger logger.Interface,
) *MarkCommentViewedUseCase {
	return &MarkCommentViewedUseCase{
		commentRepo: commentRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

// Execute records the first staff view of a comment, which locks it against
// further edits by its author. Repeating it is a no-op.
func (uc *MarkCommentViewedUseCase) Execute(ctx context.Context, cmd MarkCommentViewedCommand) (*MarkCommentViewedResult, error) {
	uc.logger.Infow("executing mark comment viewed use case", "comment_id", cmd.CommentID, "user_id", cmd.Actor.UserID)

	if !authorization.CanMarkViewed(cmd.Actor) {
		return nil, forbidden(authorization.ReasonRoleInsufficient)
	}

	c, err := loadComment(ctx, uc.commentRepo, cmd.CommentID, uc.logger)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	set, err := uc.commentRepo.MarkViewed(ctx, c.ID(), now)
	if err != nil {
		uc.logger.Errorw("failed to mark comment viewed", "comment_id", c.ID(), "error", err)
		return nil, errors.NewStoreError("mark comment viewed", err)
	}

	if set {
		c.MarkViewed(now)
		uc.logger.Infow("comment marked as viewed", "comment_id", c.ID())
		return &MarkCommentViewedResult{Comment: dto.ToCommentDTO(c, render(uc.renderer, c.Text()))}, nil
	}

	// Another writer may have won the race after the load above.
	if !c.IsLockedForReview() {
		if c, err = loadComment(ctx, uc.commentRepo, cmd.CommentID, uc.logger); err != nil {
			return nil, err
		}
	}
	return &MarkCommentViewedResult{Comment: dto.ToCommentDTO(c, render(uc.renderer, c.Text())), AlreadyViewed: true}, nil
}
