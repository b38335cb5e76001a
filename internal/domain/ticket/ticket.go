package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/deskline-inc/deskline/internal/domain/ticket/valueobjects"
	"github.com/deskline-inc/deskline/internal/shared/biztime"
)

const (
	SubjectMinLength = 3
	SubjectMaxLength = 255
)

type Ticket struct {
	id               uint
	requesterUserID  uint
	assigneeUserID   *uint
	subject          string
	description      string
	status           vo.TicketStatus
	priority         vo.Priority
	category         vo.Category
	dueDate          *time.Time
	firstRespondedAt *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// NewTicket opens a ticket on behalf of requesterUserID. Subject and
// description are trimmed; the status always starts as Open.
func NewTicket(
	requesterUserID uint,
	subject string,
	description string,
	priority vo.Priority,
	category vo.Category,
) (*Ticket, error) {
	if requesterUserID == 0 {
		return nil, fmt.Errorf("requester user ID is required")
	}

	subject, err := normalizeSubject(subject)
	if err != nil {
		return nil, err
	}
	description, err = normalizeDescription(description)
	if err != nil {
		return nil, err
	}

	if priority == "" {
		priority = vo.DefaultPriority
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if category == "" {
		category = vo.DefaultCategory
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}

	now := biztime.NowUTC()
	return &Ticket{
		requesterUserID: requesterUserID,
		subject:         subject,
		description:     description,
		status:          vo.StatusOpen,
		priority:        priority,
		category:        category,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from storage.
func ReconstructTicket(
	id uint,
	requesterUserID uint,
	assigneeUserID *uint,
	subject string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	category vo.Category,
	dueDate *time.Time,
	firstRespondedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if requesterUserID == 0 {
		return nil, fmt.Errorf("requester user ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}

	return &Ticket{
		id:               id,
		requesterUserID:  requesterUserID,
		assigneeUserID:   assigneeUserID,
		subject:          subject,
		description:      description,
		status:           status,
		priority:         priority,
		category:         category,
		dueDate:          dueDate,
		firstRespondedAt: firstRespondedAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) RequesterUserID() uint {
	return t.requesterUserID
}

func (t *Ticket) AssigneeUserID() *uint {
	return t.assigneeUserID
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Category() vo.Category {
	return t.category
}

func (t *Ticket) DueDate() *time.Time {
	return t.dueDate
}

func (t *Ticket) FirstRespondedAt() *time.Time {
	return t.firstRespondedAt
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) HasFirstResponse() bool {
	return t.firstRespondedAt != nil
}

// RecordFirstResponse sets firstRespondedAt once. It returns false when a
// response time was already recorded, leaving it untouched.
func (t *Ticket) RecordFirstResponse(at time.Time) bool {
	if t.firstRespondedAt != nil {
		return false
	}
	at = at.UTC()
	t.firstRespondedAt = &at
	return true
}

// Apply writes the fields present in p and refreshes updatedAt. Nothing is
// changed when any field fails validation.
func (t *Ticket) Apply(p *Patch) error {
	if p == nil || p.IsEmpty() {
		return fmt.Errorf("no fields to update")
	}

	subject := t.subject
	if p.Subject != nil {
		s, err := normalizeSubject(*p.Subject)
		if err != nil {
			return err
		}
		subject = s
	}
	description := t.description
	if p.Description != nil {
		d, err := normalizeDescription(*p.Description)
		if err != nil {
			return err
		}
		description = d
	}

	t.subject = subject
	t.description = description
	if p.AssigneeUserID.Set {
		t.assigneeUserID = p.AssigneeUserID.Value
	}
	if p.Status != nil {
		t.status = *p.Status
	}
	if p.Priority != nil {
		t.priority = *p.Priority
	}
	if p.Category != nil {
		t.category = *p.Category
	}
	if p.DueDate.Set {
		t.dueDate = p.DueDate.Value
	}
	t.updatedAt = biztime.NowUTC()
	return nil
}

func normalizeSubject(subject string) (string, error) {
	subject = strings.TrimSpace(subject)
	n := utf8.RuneCountInString(subject)
	if n < SubjectMinLength {
		return "", fmt.Errorf("subject must be at least %d characters long", SubjectMinLength)
	}
	if n > SubjectMaxLength {
		return "", fmt.Errorf("subject cannot exceed %d characters", SubjectMaxLength)
	}
	return subject, nil
}

func normalizeDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", fmt.Errorf("description cannot be empty")
	}
	return description, nil
}
