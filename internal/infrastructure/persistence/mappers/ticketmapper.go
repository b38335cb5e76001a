package mappers

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/deskline-inc/deskline/internal/domain/ticket"
	vo "github.com/deskline-inc/deskline/internal/domain/ticket/valueobjects"
	"github.com/deskline-inc/deskline/internal/infrastructure/persistence/models"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/biztime"
)

// TicketMapper handles the conversion between ticket aggregates and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ListRowToItem(row *models.TicketListRow) *ticket.ListItem
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	CommentRowToView(row *models.CommentViewRow) (*ticket.CommentView, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:               t.ID(),
		RequesterUserID:  t.RequesterUserID(),
		AssigneeUserID:   t.AssigneeUserID(),
		Subject:          t.Subject(),
		Description:      t.Description(),
		Status:           t.Status().String(),
		Priority:         t.Priority().String(),
		Category:         t.Category().String(),
		DueDate:          toDate(t.DueDate()),
		FirstRespondedAt: biztime.ToMillisPtr(t.FirstRespondedAt()),
		CreatedAt:        biztime.ToMillis(t.CreatedAt()),
		UpdatedAt:        biztime.ToMillis(t.UpdatedAt()),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	t, err := ticket.ReconstructTicket(
		model.ID,
		model.RequesterUserID,
		model.AssigneeUserID,
		model.Subject,
		model.Description,
		vo.TicketStatus(model.Status),
		vo.Priority(model.Priority),
		vo.Category(model.Category),
		fromDate(model.DueDate),
		biztime.FromMillisPtr(model.FirstRespondedAt),
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %d: %w", model.ID, err)
	}
	return t, nil
}

func (m *TicketMapperImpl) ListRowToItem(row *models.TicketListRow) *ticket.ListItem {
	item := &ticket.ListItem{
		ID:               row.ID,
		Subject:          row.Subject,
		Status:           vo.TicketStatus(row.Status),
		Priority:         vo.Priority(row.Priority),
		Category:         vo.Category(row.Category),
		RequesterUserID:  row.RequesterUserID,
		RequesterName:    fullName(row.RequesterFirstName, row.RequesterLastName),
		AssigneeUserID:   row.AssigneeUserID,
		FirstRespondedAt: biztime.FromMillisPtr(row.FirstRespondedAt),
		UpdatedAt:        biztime.FromMillis(row.UpdatedAt),
	}
	if row.AssigneeUserID != nil && row.AssigneeFirstName != nil {
		last := ""
		if row.AssigneeLastName != nil {
			last = *row.AssigneeLastName
		}
		name := fullName(*row.AssigneeFirstName, last)
		item.AssigneeName = &name
	}
	return item
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:                   c.ID(),
		TicketID:             c.TicketID(),
		UserID:               c.UserID(),
		CommentText:          c.Text(),
		IsInternal:           c.IsInternal(),
		ParentCommentID:      c.ParentCommentID(),
		CreatedAt:            biztime.ToMillis(c.CreatedAt()),
		UpdatedAt:            biztime.ToMillis(c.UpdatedAt()),
		FirstViewedByAgentAt: biztime.ToMillisPtr(c.FirstViewedByAgentAt()),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	c, err := ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.UserID,
		model.CommentText,
		model.IsInternal,
		model.ParentCommentID,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
		biztime.FromMillisPtr(model.FirstViewedByAgentAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct comment %d: %w", model.ID, err)
	}
	return c, nil
}

func (m *TicketMapperImpl) CommentRowToView(row *models.CommentViewRow) (*ticket.CommentView, error) {
	c, err := m.CommentToDomain(&row.CommentModel)
	if err != nil {
		return nil, err
	}
	role, err := authorization.RoleFromID(row.AuthorRoleID)
	if err != nil {
		return nil, fmt.Errorf("comment %d author: %w", row.ID, err)
	}
	return &ticket.CommentView{
		Comment: c,
		Author: ticket.CommentAuthor{
			UserID:   row.UserID,
			FullName: fullName(row.AuthorFirstName, row.AuthorLastName),
			Role:     role,
		},
	}, nil
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

func toDate(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
	return &d
}

// fromDate keeps only the calendar day; drivers differ in the location they
// attach to DATE values.
func fromDate(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	raw := time.Time(*d)
	t := time.Date(raw.Year(), raw.Month(), raw.Day(), 0, 0, 0, 0, time.UTC)
	return &t
}
