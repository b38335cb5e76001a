package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/deskline-inc/deskline/internal/domain/ticket"
	"github.com/deskline-inc/deskline/internal/infrastructure/persistence/mappers"
	"github.com/deskline-inc/deskline/internal/infrastructure/persistence/models"
	"github.com/deskline-inc/deskline/internal/shared/biztime"
	db "github.com/deskline-inc/deskline/internal/shared/db"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

const commentViewSelect = "c.*, u.first_name AS author_first_name, " +
	"u.last_name AS author_last_name, u.role_id AS author_role_id"

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewCommentRepository(db *gorm.DB, logger logger.Interface) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

var _ ticket.CommentRepository = (*CommentRepository)(nil)

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *CommentRepository) GetByID(ctx context.Context, commentID uint) (*ticket.Comment, error) {
	var model models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, commentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return r.mapper.CommentToDomain(&model)
}

func (r *CommentRepository) ListByTicket(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.CommentView, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Table("ticket_comments AS c").
		Select(commentViewSelect).
		Joins("JOIN users u ON u.id = c.user_id").
		Where("c.ticket_id = ?", ticketID)
	if !includeInternal {
		query = query.Where("c.is_internal = ?", false)
	}

	var rows []models.CommentViewRow
	if err := query.Scopes(db.Oldest("c.created_at", "c.id")).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	views := make([]*ticket.CommentView, 0, len(rows))
	for i := range rows {
		v, err := r.mapper.CommentRowToView(&rows[i])
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *CommentRepository) UpdateText(ctx context.Context, c *ticket.Comment) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.CommentModel{}).
		Where("id = ?", c.ID()).
		UpdateColumns(map[string]interface{}{
			"comment_text": c.Text(),
			"updated_at":   biztime.ToMillis(c.UpdatedAt()),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, commentID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.CommentModel{}, commentID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *CommentRepository) DeleteByTicket(ctx context.Context, ticketID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Where("ticket_id = ?", ticketID).Delete(&models.CommentModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete ticket comments: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *CommentRepository) MarkViewed(ctx context.Context, commentID uint, at time.Time) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.CommentModel{}).
		Where("id = ? AND first_viewed_by_agent_at IS NULL", commentID).
		UpdateColumn("first_viewed_by_agent_at", biztime.ToMillis(at))
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark comment viewed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
