package user

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/deskline-inc/deskline/internal/domain/user/valueobjects"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/biztime"
)

const nameMaxLength = 100

// User is an account. Accounts are deactivated, never deleted.
type User struct {
	id              uint
	username        string
	email           string
	passwordHash    string
	firstName       string
	lastName        string
	phoneNumber     string
	department      *string
	profileImageURL *string
	role            authorization.Role
	isActive        bool
	createdAt       time.Time
	updatedAt       time.Time
}

// Profile carries the person-describing fields of an account.
type Profile struct {
	FirstName       string
	LastName        string
	PhoneNumber     string
	Department      *string
	ProfileImageURL *string
}

func (p Profile) normalize() (Profile, error) {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)

	if err := validateName("first name", p.FirstName); err != nil {
		return p, err
	}
	if err := validateName("last name", p.LastName); err != nil {
		return p, err
	}
	if err := vo.ValidatePhoneNumber(p.PhoneNumber); err != nil {
		return p, err
	}
	return p, nil
}

// NewUser builds an account. passwordHash must already be hashed.
func NewUser(
	username vo.Username,
	email vo.Email,
	passwordHash string,
	profile Profile,
	role authorization.Role,
	isActive bool,
) (*User, error) {
	if username.String() == "" {
		return nil, fmt.Errorf("username is required")
	}
	if email.String() == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %d", role)
	}
	profile, err := profile.normalize()
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &User{
		username:        username.String(),
		email:           email.String(),
		passwordHash:    passwordHash,
		firstName:       profile.FirstName,
		lastName:        profile.LastName,
		phoneNumber:     profile.PhoneNumber,
		department:      profile.Department,
		profileImageURL: profile.ProfileImageURL,
		role:            role,
		isActive:        isActive,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(
	id uint,
	username string,
	email string,
	passwordHash string,
	profile Profile,
	role authorization.Role,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %d", role)
	}

	return &User{
		id:              id,
		username:        username,
		email:           email,
		passwordHash:    passwordHash,
		firstName:       profile.FirstName,
		lastName:        profile.LastName,
		phoneNumber:     profile.PhoneNumber,
		department:      profile.Department,
		profileImageURL: profile.ProfileImageURL,
		role:            role,
		isActive:        isActive,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

func (u *User) PhoneNumber() string {
	return u.phoneNumber
}

func (u *User) Department() *string {
	return u.department
}

func (u *User) ProfileImageURL() *string {
	return u.profileImageURL
}

func (u *User) Role() authorization.Role {
	return u.role
}

func (u *User) IsActive() bool {
	return u.isActive
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// Actor is the identity this user acts under.
func (u *User) Actor() authorization.Actor {
	return authorization.Actor{UserID: u.id, Role: u.role}
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// ChangePassword replaces the stored hash.
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = biztime.NowUTC()
	return nil
}

// Apply writes the fields present in p. newPasswordHash is required exactly
// when p carries a password.
func (u *User) Apply(p *Patch, newPasswordHash string) error {
	if p == nil || p.IsEmpty() {
		return fmt.Errorf("no fields to update")
	}
	if p.Password != nil && newPasswordHash == "" {
		return fmt.Errorf("password hash is required")
	}

	next := *u
	if p.Username != nil {
		next.username = p.Username.String()
	}
	if p.Email != nil {
		next.email = p.Email.String()
	}
	if p.Password != nil {
		next.passwordHash = newPasswordHash
	}
	if p.FirstName != nil {
		next.firstName = *p.FirstName
	}
	if p.LastName != nil {
		next.lastName = *p.LastName
	}
	if p.PhoneNumber != nil {
		next.phoneNumber = *p.PhoneNumber
	}
	if p.Department.Set {
		next.department = p.Department.Value
	}
	if p.ProfileImageURL.Set {
		next.profileImageURL = p.ProfileImageURL.Value
	}
	if p.Role != nil {
		next.role = *p.Role
	}
	if p.IsActive != nil {
		next.isActive = *p.IsActive
	}
	next.updatedAt = biztime.NowUTC()

	*u = next
	return nil
}

func validateName(label, name string) error {
	if name == "" {
		return fmt.Errorf("%s cannot be empty", label)
	}
	if utf8.RuneCountInString(name) > nameMaxLength {
		return fmt.Errorf("%s cannot exceed %d characters", label, nameMaxLength)
	}
	return nil
}
