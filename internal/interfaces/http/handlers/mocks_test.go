package handlers

import (
	"context"

	"github.com/deskline-inc/deskline/internal/application/user/dto"
	"github.com/deskline-inc/deskline/internal/application/user/usecases"
)

type mockRegisterUC struct {
	result *dto.UserDTO
	err    error
	cmd    usecases.RegisterCommand
}

func (m *mockRegisterUC) Execute(ctx context.Context, cmd usecases.RegisterCommand) (*dto.UserDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *dto.LoginDTO
	err    error
	cmd    usecases.LoginCommand
}

func (m *mockLoginUC) Execute(ctx context.Context, cmd usecases.LoginCommand) (*dto.LoginDTO, error) {
	m.cmd = cmd
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

type mockRequestResetUC struct {
	result *usecases.RequestPasswordResetResult
	err    error
	called bool
}

func (m *mockRequestResetUC) Execute(ctx context.Context, cmd usecases.RequestPasswordResetCommand) (*usecases.RequestPasswordResetResult, error) {
	m.called = true
	return m.result, m.err
}

type mockResetPasswordUC struct {
	err error
	cmd usecases.ResetPasswordCommand
}

func (m *mockResetPasswordUC) Execute(ctx context.Context, cmd usecases.ResetPasswordCommand) error {
	m.cmd = cmd
	return m.err
}

type mockPinger struct {
	err error
}

func (m mockPinger) PingContext(ctx context.Context) error {
	return m.err
}
