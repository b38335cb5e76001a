package ticket

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	vo "github.com/deskline-inc/deskline/internal/domain/ticket/valueobjects"
	"github.com/deskline-inc/deskline/internal/shared/mapper"
)

// DueDateLayout is the wire format of dueDate.
const DueDateLayout = "2006-01-02"

// NullableUint distinguishes "absent" from "explicitly null".
type NullableUint struct {
	Set   bool
	Value *uint
}

type NullableDate struct {
	Set   bool
	Value *time.Time
}

// Patch is a validated partial update of a ticket. Only fields named in
// the request are set.
type Patch struct {
	Subject        *string
	Description    *string
	AssigneeUserID NullableUint
	Status         *vo.TicketStatus
	Priority       *vo.Priority
	Category       *vo.Category
	DueDate        NullableDate

	fields []string
}

// UpdatableField describes one field a ticket update may touch.
type UpdatableField struct {
	Name string
	// Column is the storage name, derived from Name.
	Column string
	// StaffOnly fields may not be changed by the requester alone.
	StaffOnly bool
	parse     func(raw json.RawMessage, p *Patch) error
}

var updatableFields = []UpdatableField{
	field("subject", false, parseSubject),
	field("description", false, parseDescription),
	field("assigneeUserId", true, parseAssignee),
	field("status", true, parseStatus),
	field("priority", true, parsePriority),
	field("category", true, parseCategory),
	field("dueDate", true, parseDueDate),
}

var updatableByName = func() map[string]UpdatableField {
	m := make(map[string]UpdatableField, len(updatableFields))
	for _, f := range updatableFields {
		m[f.Name] = f
	}
	return m
}()

func field(name string, staffOnly bool, parse func(json.RawMessage, *Patch) error) UpdatableField {
	return UpdatableField{
		Name:      name,
		Column:    mapper.ToSnake(name),
		StaffOnly: staffOnly,
		parse:     parse,
	}
}

// UpdatableFields returns the whitelist in declaration order.
func UpdatableFields() []UpdatableField {
	out := make([]UpdatableField, len(updatableFields))
	copy(out, updatableFields)
	return out
}

// ParsePatch validates a raw JSON object against the whitelist. Unknown keys
// are rejected as a whole before any value is looked at.
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

// Fields lists the API names present in the patch, in whitelist order.
func (p *Patch) Fields() []string {
	out := make([]string, len(p.fields))
	copy(out, p.fields)
	return out
}

// Columns lists the storage columns the patch writes.
func (p *Patch) Columns() []string {
	return mapper.ColumnsFor(p.fields)
}

func (p *Patch) IsEmpty() bool {
	return len(p.fields) == 0
}

// RequiresStaff reports whether any field present is staff-only.
func (p *Patch) RequiresStaff() bool {
	for _, name := range p.fields {
		if updatableByName[name].StaffOnly {
			return true
		}
	}
	return false
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

func parseSubject(raw json.RawMessage, p *Patch) error {
	s, err := decodeString(raw)
	if err != nil {
		return err
	}
	s, err = normalizeSubject(s)
	if err != nil {
		return err
	}
	p.Subject = &s
	return nil
}

func parseDescription(raw json.RawMessage, p *Patch) error {
	s, err := decodeString(raw)
	if err != nil {
		return err
	}
	s, err = normalizeDescription(s)
	if err != nil {
		return err
	}
	p.Description = &s
	return nil
}

func parseAssignee(raw json.RawMessage, p *Patch) error {
	p.AssigneeUserID.Set = true
	if isNull(raw) {
		return nil
	}
	var id uint
	if err := json.Unmarshal(raw, &id); err != nil || id == 0 {
		return fmt.Errorf("must be a positive integer or null")
	}
	p.AssigneeUserID.Value = &id
	return nil
}

func parseStatus(raw json.RawMessage, p *Patch) error {
	s, err := decodeString(raw)
	if err != nil {
		return err
	}
	status, err := vo.NewTicketStatus(s)
	if err != nil {
		return err
	}
	p.Status = &status
	return nil
}

func parsePriority(raw json.RawMessage, p *Patch) error {
	s, err := decodeString(raw)
	if err != nil {
		return err
	}
	priority, err := vo.NewPriority(s)
	if err != nil {
		return err
	}
	p.Priority = &priority
	return nil
}

func parseCategory(raw json.RawMessage, p *Patch) error {
	s, err := decodeString(raw)
	if err != nil {
		return err
	}
	category, err := vo.NewCategory(s)
	if err != nil {
		return err
	}
	p.Category = &category
	return nil
}

// parseDueDate accepts a calendar date or a full RFC 3339 timestamp, which
// is truncated to its UTC date.
func parseDueDate(raw json.RawMessage, p *Patch) error {
	p.DueDate.Set = true
	if isNull(raw) {
		return nil
	}
	s, err := decodeString(raw)
	if err != nil {
		return err
	}
	d, err := time.Parse(DueDateLayout, s)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, s)
		if tsErr != nil {
			return fmt.Errorf("must be a date in %s format", DueDateLayout)
		}
		ts = ts.UTC()
		d = time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	}
	p.DueDate.Value = &d
	return nil
}
