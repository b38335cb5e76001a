package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/deskline-inc/deskline/internal/domain/user"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
)

type mockUserRepository struct {
	CreateFunc                  func(ctx context.Context, u *user.User) error
	GetByIDFunc                 func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc              func(ctx context.Context, email string) (*user.User, error)
	GetByEmailOrUsernameFunc    func(ctx context.Context, identifier string) (*user.User, error)
	ExistsByUsernameOrEmailFunc func(ctx context.Context, username, email string, excludeID uint) (bool, error)
	UpdateFunc                  func(ctx context.Context, u *user.User, columns []string) error
	ListFunc                    func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmailOrUsername(ctx context.Context, identifier string) (*user.User, error) {
	if m.GetByEmailOrUsernameFunc != nil {
		return m.GetByEmailOrUsernameFunc(ctx, identifier)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string, excludeID uint) (bool, error) {
	if m.ExistsByUsernameOrEmailFunc != nil {
		return m.ExistsByUsernameOrEmailFunc(ctx, username, email, excludeID)
	}
	return false, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User, columns []string) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u, columns)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// fakeHasher prefixes the plaintext so tests can read the stored hash.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, hash string) error {
	if strings.TrimPrefix(hash, "hashed:") != password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

// countingHasher records how often a password was compared.
type countingHasher struct {
	fakeHasher
	hashes   int
	verifies int
}

func (h *countingHasher) Hash(password string) (string, error) {
	h.hashes++
	return h.fakeHasher.Hash(password)
}

func (h *countingHasher) Verify(password, hash string) error {
	h.verifies++
	return h.fakeHasher.Verify(password, hash)
}

type mockTokenIssuer struct {
	IssueFunc func(actor authorization.Actor) (string, int64, error)
}

func (m *mockTokenIssuer) Issue(actor authorization.Actor) (string, int64, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(actor)
	}
	return fmt.Sprintf("token-%d-%d", actor.UserID, actor.Role), 3600, nil
}

type inlineTransactor struct{}

func (inlineTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
