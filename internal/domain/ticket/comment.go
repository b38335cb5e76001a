package ticket

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/biztime"
)

const CommentMaxLength = 5000

type Comment struct {
	id                   uint
	ticketID             uint
	userID               uint
	text                 string
	isInternal           bool
	parentCommentID      *uint
	createdAt            time.Time
	updatedAt            time.Time
	firstViewedByAgentAt *time.Time
}

func NewComment(
	ticketID uint,
	userID uint,
	text string,
	isInternal bool,
	parentCommentID *uint,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	text, err := normalizeCommentText(text)
	if err != nil {
		return nil, err
	}
	if parentCommentID != nil && *parentCommentID == 0 {
		return nil, fmt.Errorf("parent comment ID cannot be zero")
	}

	now := biztime.NowUTC()
	return &Comment{
		ticketID:        ticketID,
		userID:          userID,
		text:            text,
		isInternal:      isInternal,
		parentCommentID: parentCommentID,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	userID uint,
	text string,
	isInternal bool,
	parentCommentID *uint,
	createdAt, updatedAt time.Time,
	firstViewedByAgentAt *time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Comment{
		id:                   id,
		ticketID:             ticketID,
		userID:               userID,
		text:                 text,
		isInternal:           isInternal,
		parentCommentID:      parentCommentID,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
		firstViewedByAgentAt: firstViewedByAgentAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) UserID() uint {
	return c.userID
}

func (c *Comment) Text() string {
	return c.text
}

func (c *Comment) IsInternal() bool {
	return c.isInternal
}

func (c *Comment) ParentCommentID() *uint {
	return c.parentCommentID
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Comment) FirstViewedByAgentAt() *time.Time {
	return c.firstViewedByAgentAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

// IsLockedForReview reports whether staff has already seen the comment.
func (c *Comment) IsLockedForReview() bool {
	return c.firstViewedByAgentAt != nil
}

// OwnershipResource describes the comment to the modification policy.
func (c *Comment) OwnershipResource() authorization.Resource {
	return authorization.Resource{
		OwnerUserID:     c.userID,
		LockedForReview: c.IsLockedForReview(),
	}
}

// CountsAsFirstResponse reports whether this comment, written by actor,
// satisfies the first-response SLA of its ticket.
func (c *Comment) CountsAsFirstResponse(actor authorization.Actor) bool {
	return !c.isInternal && actor.Role.IsStaff()
}

func (c *Comment) UpdateText(text string) error {
	text, err := normalizeCommentText(text)
	if err != nil {
		return err
	}
	c.text = text
	c.updatedAt = biztime.NowUTC()
	return nil
}

// MarkViewed records the first staff view. It returns false when the
// comment was already viewed.
func (c *Comment) MarkViewed(at time.Time) bool {
	if c.firstViewedByAgentAt != nil {
		return false
	}
	at = at.UTC()
	c.firstViewedByAgentAt = &at
	return true
}

func normalizeCommentText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("comment cannot be empty")
	}
	if utf8.RuneCountInString(text) > CommentMaxLength {
		return "", fmt.Errorf("comment cannot exceed %d characters", CommentMaxLength)
	}
	return text, nil
}
