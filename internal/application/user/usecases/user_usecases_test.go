package usecases

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskline-inc/deskline/internal/domain/user"
	vo "github.com/deskline-inc/deskline/internal/domain/user/valueobjects"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

func validRegistration() Registration {
	return Registration{
		Username:    "  JDoe ",
		Email:       "JDoe@Example.com",
		Password:    "Secret1!",
		FirstName:   "Jane",
		LastName:    "Doe",
		PhoneNumber: "555-123-4567",
	}
}

func existingUser(t *testing.T, id uint, role authorization.Role, active bool) *user.User {
	t.Helper()
	name, err := vo.NewUsername("jdoe")
	require.NoError(t, err)
	email, err := vo.NewEmail("jdoe@example.com")
	require.NoError(t, err)
	u, err := user.NewUser(name, email, "hashed:Secret1!", user.Profile{FirstName: "Jane", LastName: "Doe", PhoneNumber: "555-123-4567"}, role, active)
	require.NoError(t, err)
	require.NoError(t, u.SetID(id))
	return u
}

func TestRegisterUseCase(t *testing.T) {
	t.Run("normalizes and hashes", func(t *testing.T) {
		var created *user.User
		repo := &mockUserRepository{CreateFunc: func(_ context.Context, u *user.User) error {
			created = u
			return u.SetID(5)
		}}
		uc := NewRegisterUseCase(repo, fakeHasher{}, logger.NewNopLogger())

		got, err := uc.Execute(context.Background(), RegisterCommand{Registration: validRegistration()})
		require.NoError(t, err)
		assert.Equal(t, "jdoe", got.Username)
		assert.Equal(t, "jdoe@example.com", got.Email)
		assert.Equal(t, "user", got.Role)
		assert.True(t, got.IsActive)
		assert.Equal(t, "hashed:Secret1!", created.PasswordHash())
	})

	tests := []struct {
		name    string
		mutate  func(*Registration)
		exists  bool
		wantErr func(error) bool
	}{
		{"duplicate", func(*Registration) {}, true, errors.IsConflictError},
		{"weak password", func(r *Registration) { r.Password = "password" }, false, errors.IsValidationError},
		{"bad email", func(r *Registration) { r.Email = "not-an-email" }, false, errors.IsValidationError},
		{"short username", func(r *Registration) { r.Username = "jd" }, false, errors.IsValidationError},
		{"bad phone", func(r *Registration) { r.PhoneNumber = "12" }, false, errors.IsValidationError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{
				ExistsByUsernameOrEmailFunc: func(context.Context, string, string, uint) (bool, error) {
					return tt.exists, nil
				},
				CreateFunc: func(context.Context, *user.User) error {
					t.Fatal("create must not be called")
					return nil
				},
			}
			reg := validRegistration()
			tt.mutate(&reg)
			_, err := NewRegisterUseCase(repo, fakeHasher{}, logger.NewNopLogger()).
				Execute(context.Background(), RegisterCommand{Registration: reg})
			assert.True(t, tt.wantErr(err), "unexpected error %v", err)
		})
	}
}

func TestLoginUseCase(t *testing.T) {
	tests := []struct {
		name     string
		user     *user.User
		password string
		wantErr  bool
	}{
		{"success", existingUser(t, 7, authorization.RoleAgent, true), "Secret1!", false},
		{"unknown account", nil, "Secret1!", true},
		{"inactive account", existingUser(t, 7, authorization.RoleUser, false), "Secret1!", true},
		{"wrong password", existingUser(t, 7, authorization.RoleUser, true), "Wrong1!x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lookedUp string
			repo := &mockUserRepository{GetByEmailOrUsernameFunc: func(_ context.Context, id string) (*user.User, error) {
				lookedUp = id
				return tt.user, nil
			}}
			hasher := &countingHasher{}
			uc := NewLoginUseCase(repo, hasher, &mockTokenIssuer{}, logger.NewNopLogger())

			got, err := uc.Execute(context.Background(), LoginCommand{EmailOrUsername: " JDoe ", Password: tt.password})
			assert.Equal(t, "jdoe", lookedUp)
			assert.Equal(t, 1, hasher.verifies, "every login attempt compares one hash")
			if tt.wantErr {
				require.Error(t, err)
				authErr := errors.GetAuthError(err)
				require.NotNil(t, authErr)
				assert.Equal(t, errors.ErrorTypeInvalidCredentials, authErr.Type)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-7-3", got.Token)
			assert.Equal(t, int64(3600), got.ExpiresIn)
			assert.Equal(t, "agent", got.User.Role)
		})
	}
}

func TestLoginUseCase_UnknownAccountsShareOneDummyHash(t *testing.T) {
	repo := &mockUserRepository{GetByEmailOrUsernameFunc: func(context.Context, string) (*user.User, error) {
		return nil, nil
	}}
	hasher := &countingHasher{}
	uc := NewLoginUseCase(repo, hasher, &mockTokenIssuer{}, logger.NewNopLogger())

	for _, name := range []string{"ghost", "phantom", "nobody"} {
		_, err := uc.Execute(context.Background(), LoginCommand{EmailOrUsername: name, Password: "Secret1!"})
		require.Error(t, err)
	}
	assert.Equal(t, 1, hasher.hashes)
	assert.Equal(t, 3, hasher.verifies)
}

func TestCreateUserUseCase(t *testing.T) {
	inactive := false
	uc := NewCreateUserUseCase(&mockUserRepository{}, fakeHasher{}, logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), CreateUserCommand{
		Registration: validRegistration(),
		RoleID:       3,
		IsActive:     &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, got.RoleID)
	assert.False(t, got.IsActive)

	_, err = uc.Execute(context.Background(), CreateUserCommand{Registration: validRegistration(), RoleID: 9})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateUserUseCase(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		exists      bool
		wantErr     func(error) bool
		wantColumns []string
	}{
		{"unknown field", `{"passwordHash":"x"}`, false, errors.IsValidationError, nil},
		{"empty patch", `{}`, false, errors.IsValidationError, nil},
		{"email taken", `{"email":"taken@example.com"}`, true, errors.IsConflictError, nil},
		{"role and activation", `{"roleId":3,"isActive":false}`, false, nil, []string{"role_id", "is_active"}},
		{"password rehashed", `{"password":"Another2@"}`, false, nil, []string{"password_hash"}},
		{"clear department", `{"department":null}`, false, nil, []string{"department"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stored *user.User
			var columns []string
			repo := &mockUserRepository{
				GetByIDFunc: func(context.Context, uint) (*user.User, error) {
					return existingUser(t, 7, authorization.RoleUser, true), nil
				},
				ExistsByUsernameOrEmailFunc: func(_ context.Context, _, _ string, exclude uint) (bool, error) {
					assert.Equal(t, uint(7), exclude)
					return tt.exists, nil
				},
				UpdateFunc: func(_ context.Context, u *user.User, cols []string) error {
					stored, columns = u, cols
					return nil
				},
			}
			var fields map[string]json.RawMessage
			require.NoError(t, json.Unmarshal([]byte(tt.body), &fields))

			got, err := NewUpdateUserUseCase(repo, fakeHasher{}, logger.NewNopLogger()).
				Execute(context.Background(), UpdateUserCommand{UserID: 7, Fields: fields})
			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error %v", err)
				assert.Nil(t, stored)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantColumns, columns)
			if tt.name == "password rehashed" {
				assert.Equal(t, "hashed:Another2@", stored.PasswordHash())
			}
			if tt.name == "role and activation" {
				assert.Equal(t, "agent", got.Role)
				assert.False(t, got.IsActive)
			}
		})
	}
}

func TestUpdateUserUseCase_NotFound(t *testing.T) {
	_, err := NewUpdateUserUseCase(&mockUserRepository{}, fakeHasher{}, logger.NewNopLogger()).
		Execute(context.Background(), UpdateUserCommand{UserID: 7, Fields: map[string]json.RawMessage{"firstName": json.RawMessage(`"Jo"`)}})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRequestPasswordReset_RequiresEmail(t *testing.T) {
	uc := NewRequestPasswordResetUseCase(&mockUserRepository{}, nil, inlineTransactor{}, 0, logger.NewNopLogger())
	for _, email := range []string{"", "   ", "nope"} {
		_, err := uc.Execute(context.Background(), RequestPasswordResetCommand{Email: email})
		assert.True(t, errors.IsValidationError(err), email)
	}

	res, err := uc.Execute(context.Background(), RequestPasswordResetCommand{Email: "ghost@example.com"})
	require.NoError(t, err)
	assert.Empty(t, res.Token)
}
