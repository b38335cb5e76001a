package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskline-inc/deskline/internal/shared/authorization"
)

func uintPtr(v uint) *uint { return &v }

func TestNewComment(t *testing.T) {
	tests := []struct {
		name     string
		ticketID uint
		userID   uint
		text     string
		parent   *uint
		wantErr  bool
		errMsg   string
	}{
		{name: "valid comment", ticketID: 1, userID: 2, text: "Printer is on fire"},
		{name: "text is trimmed", ticketID: 1, userID: 2, text: "  padded  "},
		{name: "reply", ticketID: 1, userID: 2, text: "ok", parent: uintPtr(9)},
		{name: "zero ticket ID", ticketID: 0, userID: 2, text: "x", wantErr: true, errMsg: "ticket ID is required"},
		{name: "zero user ID", ticketID: 1, userID: 0, text: "x", wantErr: true, errMsg: "user ID is required"},
		{name: "blank text", ticketID: 1, userID: 2, text: "   ", wantErr: true, errMsg: "comment cannot be empty"},
		{name: "text too long", ticketID: 1, userID: 2, text: strings.Repeat("a", CommentMaxLength+1), wantErr: true, errMsg: "cannot exceed"},
		{name: "zero parent", ticketID: 1, userID: 2, text: "x", parent: uintPtr(0), wantErr: true, errMsg: "parent comment ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComment(tt.ticketID, tt.userID, tt.text, false, tt.parent)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.text), c.Text())
			assert.Equal(t, tt.parent, c.ParentCommentID())
			assert.Nil(t, c.FirstViewedByAgentAt())
			assert.False(t, c.IsLockedForReview())
			assert.Equal(t, c.CreatedAt(), c.UpdatedAt())
		})
	}
}

func TestComment_MarkViewedOnce(t *testing.T) {
	c, err := NewComment(1, 2, "hello", false, nil)
	require.NoError(t, err)

	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	assert.True(t, c.MarkViewed(first))
	assert.True(t, c.IsLockedForReview())

	assert.False(t, c.MarkViewed(first.Add(time.Hour)))
	require.NotNil(t, c.FirstViewedByAgentAt())
	assert.Equal(t, first, *c.FirstViewedByAgentAt())
}

func TestComment_OwnershipResource(t *testing.T) {
	viewed := time.Now()
	c, err := ReconstructComment(5, 1, 7, "text", false, nil, viewed, viewed, &viewed)
	require.NoError(t, err)

	res := c.OwnershipResource()
	assert.Equal(t, uint(7), res.OwnerUserID)
	assert.True(t, res.LockedForReview)
}

func TestComment_CountsAsFirstResponse(t *testing.T) {
	public, _ := NewComment(1, 3, "reply", false, nil)
	internal, _ := NewComment(1, 3, "note", true, nil)

	agent := authorization.Actor{UserID: 3, Role: authorization.RoleAgent}
	admin := authorization.Actor{UserID: 1, Role: authorization.RoleAdmin}
	user := authorization.Actor{UserID: 3, Role: authorization.RoleUser}

	assert.True(t, public.CountsAsFirstResponse(agent))
	assert.True(t, public.CountsAsFirstResponse(admin))
	assert.False(t, public.CountsAsFirstResponse(user))
	assert.False(t, internal.CountsAsFirstResponse(agent))
}

func TestComment_UpdateText(t *testing.T) {
	c, err := NewComment(1, 2, "before", false, nil)
	require.NoError(t, err)

	require.NoError(t, c.UpdateText(" after "))
	assert.Equal(t, "after", c.Text())

	assert.Error(t, c.UpdateText(""))
	assert.Equal(t, "after", c.Text())
}

func TestComment_SetID(t *testing.T) {
	c, _ := NewComment(1, 2, "x", false, nil)
	assert.Error(t, c.SetID(0))
	require.NoError(t, c.SetID(4))
	assert.Error(t, c.SetID(5))
	assert.Equal(t, uint(4), c.ID())
}
