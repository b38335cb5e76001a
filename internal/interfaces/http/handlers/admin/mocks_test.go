package admin

import (
	"context"

	ticketdto "github.com/deskline-inc/deskline/internal/application/ticket/dto"
	ticketusecases "github.com/deskline-inc/deskline/internal/application/ticket/usecases"
	"github.com/deskline-inc/deskline/internal/application/user/dto"
	"github.com/deskline-inc/deskline/internal/application/user/usecases"
)

type mockCreateUserUC struct {
	result *dto.UserDTO
	err    error
	cmd    usecases.CreateUserCommand
	called bool
}

func (m *mockCreateUserUC) Execute(ctx context.Context, cmd usecases.CreateUserCommand) (*dto.UserDTO, error) {
	m.cmd = cmd
	m.called = true
	return m.result, m.err
}

type mockListUsersUC struct {
	result []*dto.UserDTO
	err    error
}

func (m *mockListUsersUC) Execute(ctx context.Context) ([]*dto.UserDTO, error) {
	return m.result, m.err
}

type mockGetUserUC struct {
	result *dto.UserDTO
	err    error
	query  usecases.GetUserQuery
}

func (m *mockGetUserUC) Execute(ctx context.Context, query usecases.GetUserQuery) (*dto.UserDTO, error) {
	m.query = query
	return m.result, m.err
}

type mockUpdateUserUC struct {
	result *dto.UserDTO
	err    error
	cmd    usecases.UpdateUserCommand
}

func (m *mockUpdateUserUC) Execute(ctx context.Context, cmd usecases.UpdateUserCommand) (*dto.UserDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockGetDashboardUC struct {
	result *ticketdto.DashboardDTO
	err    error
	query  ticketusecases.GetDashboardQuery
}

func (m *mockGetDashboardUC) Execute(ctx context.Context, query ticketusecases.GetDashboardQuery) (*ticketdto.DashboardDTO, error) {
	m.query = query
	return m.result, m.err
}
