package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/deskline-inc/deskline/internal/domain/ticket"
	vo "github.com/deskline-inc/deskline/internal/domain/ticket/valueobjects"
	"github.com/deskline-inc/deskline/internal/domain/user"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc             func(ctx context.Context, id uint) (*ticket.Ticket, error)
	UpdateFunc              func(ctx context.Context, t *ticket.Ticket, columns []string) error
	DeleteFunc              func(ctx context.Context, id uint) (int64, error)
	ListFunc                func(ctx context.Context, filter ticket.ListFilter) ([]*ticket.ListItem, error)
	SetFirstRespondedAtFunc func(ctx context.Context, id uint, at time.Time) (bool, error)
	CountByStatusFunc       func(ctx context.Context) (map[vo.TicketStatus]int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return t.SetID(1)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket, columns []string) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t, columns)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 0, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.ListItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) SetFirstRespondedAt(ctx context.Context, id uint, at time.Time) (bool, error) {
	if m.SetFirstRespondedAtFunc != nil {
		return m.SetFirstRespondedAtFunc(ctx, id, at)
	}
	return true, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[vo.TicketStatus]int64{}, nil
}

type mockCommentRepository struct {
	SaveFunc           func(ctx context.Context, c *ticket.Comment) error
	GetByIDFunc        func(ctx context.Context, id uint) (*ticket.Comment, error)
	ListByTicketFunc   func(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.CommentView, error)
	UpdateTextFunc     func(ctx context.Context, c *ticket.Comment) error
	DeleteFunc         func(ctx context.Context, id uint) (int64, error)
	DeleteByTicketFunc func(ctx context.Context, ticketID uint) (int64, error)
	MarkViewedFunc     func(ctx context.Context, id uint, at time.Time) (bool, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return c.SetID(100)
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint, includeInternal bool) ([]*ticket.CommentView, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID, includeInternal)
	}
	return nil, nil
}

func (m *mockCommentRepository) UpdateText(ctx context.Context, c *ticket.Comment) error {
	if m.UpdateTextFunc != nil {
		return m.UpdateTextFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uint) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return 1, nil
}

func (m *mockCommentRepository) DeleteByTicket(ctx context.Context, ticketID uint) (int64, error) {
	if m.DeleteByTicketFunc != nil {
		return m.DeleteByTicketFunc(ctx, ticketID)
	}
	return 0, nil
}

func (m *mockCommentRepository) MarkViewed(ctx context.Context, id uint, at time.Time) (bool, error) {
	if m.MarkViewedFunc != nil {
		return m.MarkViewedFunc(ctx, id, at)
	}
	return true, nil
}

type mockUserReader struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserReader) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

// mockTransactor runs fn inline and records whether it was used.
type mockTransactor struct {
	calls int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockPublisher struct {
	mu     sync.Mutex
	events []ticket.Event
	err    error
}

func (m *mockPublisher) Publish(_ context.Context, ev ticket.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return m.err
}

func (m *mockPublisher) types() []ticket.EventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ticket.EventType, 0, len(m.events))
	for _, ev := range m.events {
		out = append(out, ev.Type)
	}
	return out
}

type stubRenderer struct{}

func (stubRenderer) Render(text string) string {
	return "<p>" + text + "</p>"
}

func newTestLogger() logger.Interface {
	return logger.NewNopLogger()
}
