package user

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	vo "github.com/deskline-inc/deskline/internal/domain/user/valueobjects"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/mapper"
)

type NullableString struct {
	Set   bool
	Value *string
}

// Patch is a validated partial update of an account made by an admin.
type Patch struct {
	Username        *vo.Username
	Email           *vo.Email
	Password        *string
	FirstName       *string
	LastName        *string
	PhoneNumber     *string
	Department      NullableString
	ProfileImageURL NullableString
	Role            *authorization.Role
	IsActive        *bool

	fields []string
}

// UpdatableField describes one account field an admin may change.
type UpdatableField struct {
	Name   string
	Column string
	parse  func(raw json.RawMessage, p *Patch) error
}

var updatableFields = []UpdatableField{
	field("username", "", parseUsername),
	field("email", "", parseEmail),
	field("password", "password_hash", parsePassword),
	field("firstName", "", parseName(func(p *Patch, s string) { p.FirstName = &s })),
	field("lastName", "", parseName(func(p *Patch, s string) { p.LastName = &s })),
	field("phoneNumber", "", parsePhone),
	field("department", "", parseOptional(func(p *Patch) *NullableString { return &p.Department })),
	field("profileImageUrl", "", parseOptional(func(p *Patch) *NullableString { return &p.ProfileImageURL })),
	field("roleId", "", parseRole),
	field("isActive", "", parseIsActive),
}

var updatableByName = func() map[string]UpdatableField {
	m := make(map[string]UpdatableField, len(updatableFields))
	for _, f := range updatableFields {
		m[f.Name] = f
	}
	return m
}()

// field derives the column from the API name unless column is given.
func field(name, column string, parse func(json.RawMessage, *Patch) error) UpdatableField {
	if column == "" {
		column = mapper.ToSnake(name)
	}
	return UpdatableField{Name: name, Column: column, parse: parse}
}

func UpdatableFields() []UpdatableField {
	out := make([]UpdatableField, len(updatableFields))
	copy(out, updatableFields)
	return out
}

// ParsePatch validates a raw JSON object against the account whitelist.
func ParsePatch(raw map[string]json.RawMessage) (*Patch, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	var unknown []string
	for key := range raw {
		if _, ok := updatableByName[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("fields not updatable: %s", strings.Join(unknown, ", "))
	}

	p := &Patch{}
	for _, f := range updatableFields {
		value, ok := raw[f.Name]
		if !ok {
			continue
		}
		if err := f.parse(value, p); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		p.fields = append(p.fields, f.Name)
	}
	return p, nil
}

func (p *Patch) Fields() []string {
	out := make([]string, len(p.fields))
	copy(out, p.fields)
	return out
}

// Columns lists the storage columns the patch writes.
func (p *Patch) Columns() []string {
	cols := make([]string, 0, len(p.fields))
	for _, name := range p.fields {
		cols = append(cols, updatableByName[name].Column)
	}
	return cols
}

func (p *Patch) IsEmpty() bool {
	return len(p.fields) == 0
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeString(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", fmt.Errorf("cannot be null")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("must be a string")
	}
	return s, nil
}

func parseUsername(raw json.RawMessage, p *Patch) error {
	s, err := decodeString(raw)
	if err != nil {
		return err
	}
	u, err := vo.NewUsername(s)
	if err != nil {
		return err
	}
	p.Username = &u
	return nil
}

func parseEmail(raw json.RawMessage, p *Patch) error {
	s, err := decodeString(raw)
	if err != nil {
		return err
	}
	e, err := vo.NewEmail(s)
	if err != nil {
		return err
	}
	p.Email = &e
	return nil
}

func parsePassword(raw json.RawMessage, p *Patch) error {
	s, err := decodeString(raw)
	if err != nil {
		return err
	}
	if err := vo.DefaultPasswordPolicy().ValidatePassword(s); err != nil {
		return err
	}
	p.Password = &s
	return nil
}

func parseName(set func(*Patch, string)) func(json.RawMessage, *Patch) error {
	return func(raw json.RawMessage, p *Patch) error {
		s, err := decodeString(raw)
		if err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if err := validateName("name", s); err != nil {
			return err
		}
		set(p, s)
		return nil
	}
}

func parsePhone(raw json.RawMessage, p *Patch) error {
	s, err := decodeString(raw)
	if err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if err := vo.ValidatePhoneNumber(s); err != nil {
		return err
	}
	p.PhoneNumber = &s
	return nil
}

// parseOptional treats null and blank strings as clearing the field.
func parseOptional(target func(*Patch) *NullableString) func(json.RawMessage, *Patch) error {
	return func(raw json.RawMessage, p *Patch) error {
		dst := target(p)
		dst.Set = true
		if isNull(raw) {
			return nil
		}
		s, err := decodeString(raw)
		if err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		if len(s) > 255 {
			return fmt.Errorf("cannot exceed 255 characters")
		}
		dst.Value = &s
		return nil
	}
}

func parseRole(raw json.RawMessage, p *Patch) error {
	var id int
	if isNull(raw) || json.Unmarshal(raw, &id) != nil {
		return fmt.Errorf("must be an integer")
	}
	role, err := authorization.RoleFromID(id)
	if err != nil {
		return err
	}
	p.Role = &role
	return nil
}

func parseIsActive(raw json.RawMessage, p *Patch) error {
	var b bool
	if isNull(raw) || json.Unmarshal(raw, &b) != nil {
		return fmt.Errorf("must be a boolean")
	}
	p.IsActive = &b
	return nil
}
