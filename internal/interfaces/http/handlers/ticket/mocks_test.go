package ticket

import (
	"context"

	"github.com/deskline-inc/deskline/internal/application/ticket/dto"
	"github.com/deskline-inc/deskline/internal/application/ticket/usecases"
)

type mockCreateTicketUC struct {
	result *dto.TicketDTO
	err    error
	cmd    usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockListTicketsUC struct {
	result []dto.TicketListItemDTO
	err    error
	query  usecases.ListTicketsQuery
}

func (m *mockListTicketsUC) Execute(ctx context.Context, query usecases.ListTicketsQuery) ([]dto.TicketListItemDTO, error) {
	m.query = query
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *dto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(ctx context.Context, query usecases.GetTicketQuery) (*dto.TicketDTO, error) {
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	result *dto.TicketDTO
	err    error
	cmd    usecases.UpdateTicketCommand
	called bool
}

func (m *mockUpdateTicketUC) Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error) {
	m.cmd = cmd
	m.called = true
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	result *usecases.DeleteTicketResult
	err    error
}

func (m *mockDeleteTicketUC) Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) (*usecases.DeleteTicketResult, error) {
	return m.result, m.err
}

type mockListCommentsUC struct {
	result []dto.CommentDTO
	err    error
}

func (m *mockListCommentsUC) Execute(ctx context.Context, query usecases.ListCommentsQuery) ([]dto.CommentDTO, error) {
	return m.result, m.err
}

type mockAddCommentUC struct {
	result *dto.CommentDTO
	err    error
	cmd    usecases.AddCommentCommand
}

func (m *mockAddCommentUC) Execute(ctx context.Context, cmd usecases.AddCommentCommand) (*dto.CommentDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockUpdateCommentUC struct {
	result *dto.CommentDTO
	err    error
}

func (m *mockUpdateCommentUC) Execute(ctx context.Context, cmd usecases.UpdateCommentCommand) (*dto.CommentDTO, error) {
	return m.result, m.err
}

type mockDeleteCommentUC struct {
	result *usecases.DeleteCommentResult
	err    error
}

func (m *mockDeleteCommentUC) Execute(ctx context.Context, cmd usecases.DeleteCommentCommand) (*usecases.DeleteCommentResult, error) {
	return m.result, m.err
}

type mockMarkViewedUC struct {
	result *usecases.MarkCommentViewedResult
	err    error
}

func (m *mockMarkViewedUC) Execute(ctx context.Context, cmd usecases.MarkCommentViewedCommand) (*usecases.MarkCommentViewedResult, error) {
	return m.result, m.err
}
