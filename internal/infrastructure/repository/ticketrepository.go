package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/deskline-inc/deskline/internal/domain/ticket"
	vo "github.com/deskline-inc/deskline/internal/domain/ticket/valueobjects"
	"github.com/deskline-inc/deskline/internal/infrastructure/persistence/mappers"
	"github.com/deskline-inc/deskline/internal/infrastructure/persistence/models"
	"github.com/deskline-inc/deskline/internal/shared/biztime"
	db "github.com/deskline-inc/deskline/internal/shared/db"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

const ticketListSelect = "t.*, " +
	"r.first_name AS requester_first_name, r.last_name AS requester_last_name, " +
	"a.first_name AS assignee_first_name, a.last_name AS assignee_last_name"

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

var _ ticket.TicketRepository = (*TicketRepository)(nil)

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket, columns []string) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	selected := make([]string, 0, len(columns)+1)
	selected = append(selected, columns...)
	selected = append(selected, "updated_at")

	// UpdateColumns writes the domain's updated_at instead of restamping it.
	result := tx.Model(&models.TicketModel{ID: model.ID}).
		Select(selected).
		UpdateColumns(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.ListItem, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TicketListRow
	err := tx.Table("tickets AS t").
		Select(ticketListSelect).
		Joins("JOIN users r ON r.id = t.requester_user_id").
		Joins("LEFT JOIN users a ON a.id = t.assignee_user_id").
		Scopes(
			db.OwnedBy("t.requester_user_id", filter.RequesterUserID),
			db.Newest("t.updated_at", "t.id"),
		).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	items := make([]*ticket.ListItem, len(rows))
	for i := range rows {
		items[i] = r.mapper.ListRowToItem(&rows[i])
	}
	return items, nil
}

func (r *TicketRepository) SetFirstRespondedAt(ctx context.Context, ticketID uint, at time.Time) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).
		Where("id = ? AND first_responded_at IS NULL", ticketID).
		UpdateColumn("first_responded_at", biztime.ToMillis(at))
	if result.Error != nil {
		return false, fmt.Errorf("failed to record first response: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		r.logger.Debugw("first response recorded", "ticket_id", ticketID)
	}
	return result.RowsAffected > 0, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		Status string
		Total  int64
	}
	err := tx.Model(&models.TicketModel{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	counts := make(map[vo.TicketStatus]int64, len(vo.AllStatuses()))
	for _, s := range vo.AllStatuses() {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[vo.TicketStatus(row.Status)] = row.Total
	}
	return counts, nil
}
