package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskline-inc/deskline/internal/domain/ticket"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/errors"
)

func TestAddCommentUseCase_FirstResponse(t *testing.T) {
	responded := time.Date(2026, 1, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		actor         authorization.Actor
		internal      bool
		alreadySet    *time.Time
		wantStamp     bool
		wantEventType []ticket.EventType
	}{
		{"agent public reply stamps", agentActor, false, nil, true,
			[]ticket.EventType{ticket.EventCommentCreated, ticket.EventFirstResponse}},
		{"admin public reply stamps", adminActor, false, nil, true,
			[]ticket.EventType{ticket.EventCommentCreated, ticket.EventFirstResponse}},
		{"agent internal note does not", agentActor, true, nil, false,
			[]ticket.EventType{ticket.EventCommentCreated}},
		{"requester reply does not", userActor, false, nil, false,
			[]ticket.EventType{ticket.EventCommentCreated}},
		{"already responded", agentActor, false, &responded, false,
			[]ticket.EventType{ticket.EventCommentCreated}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stamped := false
			tickets := &mockTicketRepository{
				GetByIDFunc: func(context.Context, uint) (*ticket.Ticket, error) {
					return existingTicket(t, 10, userActor.UserID, tt.alreadySet), nil
				},
				SetFirstRespondedAtFunc: func(context.Context, uint, time.Time) (bool, error) {
					stamped = true
					return true, nil
				},
			}
			tx := &mockTransactor{}
			pub := &mockPublisher{}
			uc := NewAddCommentUseCase(tickets, &mockCommentRepository{}, tx, stubRenderer{}, pub, newTestLogger())

			got, err := uc.Execute(context.Background(), AddCommentCommand{
				Actor:      tt.actor,
				TicketID:   10,
				Text:       "  On it  ",
				IsInternal: tt.internal,
			})
			require.NoError(t, err)
			assert.Equal(t, "On it", got.CommentText)
			assert.Equal(t, "<p>On it</p>", got.CommentHTML)
			assert.Equal(t, tt.wantStamp, stamped)
			assert.Equal(t, 1, tx.calls)
			assert.Equal(t, tt.wantEventType, pub.types())
		})
	}
}

func TestAddCommentUseCase_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		cmd      AddCommentCommand
		parent   *ticket.Comment
		wantErr  func(error) bool
		ticketID uint
	}{
		{
			name:    "user cannot post internal",
			cmd:     AddCommentCommand{Actor: userActor, TicketID: 10, Text: "psst", IsInternal: true},
			wantErr: errors.IsForbiddenError,
		},
		{
			name:    "empty text",
			cmd:     AddCommentCommand{Actor: userActor, TicketID: 10, Text: "   "},
			wantErr: errors.IsValidationError,
		},
		{
			name:    "missing ticket",
			cmd:     AddCommentCommand{Actor: agentActor, TicketID: 404, Text: "hello"},
			wantErr: errors.IsNotFoundError,
		},
		{
			name:    "not the requester",
			cmd:     AddCommentCommand{Actor: otherUser, TicketID: 10, Text: "hello"},
			wantErr: errors.IsForbiddenError,
		},
		{
			name:    "parent from another ticket",
			cmd:     AddCommentCommand{Actor: agentActor, TicketID: 10, Text: "reply", ParentCommentID: ptrUint(50)},
			parent:  existingComment(t, 50, 11, userActor.UserID, false, nil),
			wantErr: errors.IsInvalidReferenceError,
		},
		{
			name:    "parent missing",
			cmd:     AddCommentCommand{Actor: agentActor, TicketID: 10, Text: "reply", ParentCommentID: ptrUint(51)},
			wantErr: errors.IsInvalidReferenceError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tickets := &mockTicketRepository{
				GetByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
					if id == 10 {
						return existingTicket(t, 10, userActor.UserID, nil), nil
					}
					return nil, nil
				},
				SetFirstRespondedAtFunc: func(context.Context, uint, time.Time) (bool, error) {
					t.Fatal("first response must not be recorded")
					return false, nil
				},
			}
			saved := false
			comments := &mockCommentRepository{
				GetByIDFunc: func(context.Context, uint) (*ticket.Comment, error) {
					return tt.parent, nil
				},
				SaveFunc: func(context.Context, *ticket.Comment) error {
					saved = true
					return nil
				},
			}
			pub := &mockPublisher{}
			uc := NewAddCommentUseCase(tickets, comments, &mockTransactor{}, nil, pub, newTestLogger())

			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, tt.wantErr(err), "unexpected error %v", err)
			assert.False(t, saved)
			assert.Empty(t, pub.types())
		})
	}
}

// Ownership invariant: only the author (or an admin) may change a comment,
// and never after staff has viewed it unless the actor is an admin.
func TestUpdateAndDeleteComment_Ownership(t *testing.T) {
	viewed := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		actor      authorization.Actor
		viewedAt   *time.Time
		wantReason authorization.ForbiddenReason
	}{
		{"author before review", userActor, nil, ""},
		{"author after review", userActor, &viewed, authorization.ReasonLockedAfterReview},
		{"other user", otherUser, nil, authorization.ReasonNotOwner},
		{"agent not author", agentActor, nil, authorization.ReasonNotOwner},
		{"admin after review", adminActor, &viewed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			load := func(context.Context, uint) (*ticket.Comment, error) {
				return existingComment(t, 7, 10, userActor.UserID, false, tt.viewedAt), nil
			}

			var written *ticket.Comment
			deleted := false
			comments := &mockCommentRepository{
				GetByIDFunc: load,
				UpdateTextFunc: func(_ context.Context, c *ticket.Comment) error {
					written = c
					return nil
				},
				DeleteFunc: func(context.Context, uint) (int64, error) {
					deleted = true
					return 1, nil
				},
			}

			_, updErr := NewUpdateCommentUseCase(comments, nil, newTestLogger()).
				Execute(context.Background(), UpdateCommentCommand{Actor: tt.actor, CommentID: 7, Text: "edited"})
			res, delErr := NewDeleteCommentUseCase(comments, newTestLogger()).
				Execute(context.Background(), DeleteCommentCommand{Actor: tt.actor, CommentID: 7})

			if tt.wantReason == "" {
				require.NoError(t, updErr)
				require.NoError(t, delErr)
				require.NotNil(t, written)
				assert.Equal(t, "edited", written.Text())
				assert.Equal(t, int64(1), res.DeletedCount)
				return
			}
			for _, err := range []error{updErr, delErr} {
				require.True(t, errors.IsForbiddenError(err))
				assert.Equal(t, string(tt.wantReason), errors.GetAppError(err).Details)
			}
			assert.Nil(t, written)
			assert.False(t, deleted)
		})
	}
}

func TestUpdateComment_NotFoundBeforeAuthorization(t *testing.T) {
	comments := &mockCommentRepository{}
	_, err := NewUpdateCommentUseCase(comments, nil, newTestLogger()).
		Execute(context.Background(), UpdateCommentCommand{Actor: otherUser, CommentID: 1, Text: "x"})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = NewDeleteCommentUseCase(comments, newTestLogger()).
		Execute(context.Background(), DeleteCommentCommand{Actor: otherUser, CommentID: 1})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMarkCommentViewedUseCase(t *testing.T) {
	t.Run("user forbidden", func(t *testing.T) {
		uc := NewMarkCommentViewedUseCase(&mockCommentRepository{}, stubRenderer{}, newTestLogger())
		_, err := uc.Execute(context.Background(), MarkCommentViewedCommand{Actor: userActor, CommentID: 7})
		require.True(t, errors.IsForbiddenError(err))
		assert.Equal(t, string(authorization.ReasonRoleInsufficient), errors.GetAppError(err).Details)
	})

	t.Run("missing comment", func(t *testing.T) {
		uc := NewMarkCommentViewedUseCase(&mockCommentRepository{}, stubRenderer{}, newTestLogger())
		_, err := uc.Execute(context.Background(), MarkCommentViewedCommand{Actor: agentActor, CommentID: 7})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("second call is a no-op", func(t *testing.T) {
		var viewedAt *time.Time
		comments := &mockCommentRepository{
			GetByIDFunc: func(context.Context, uint) (*ticket.Comment, error) {
				return existingComment(t, 7, 10, userActor.UserID, false, viewedAt), nil
			},
			MarkViewedFunc: func(_ context.Context, _ uint, at time.Time) (bool, error) {
				if viewedAt != nil {
					return false, nil
				}
				viewedAt = ptrTime(at)
				return true, nil
			},
		}
		uc := NewMarkCommentViewedUseCase(comments, stubRenderer{}, newTestLogger())

		first, err := uc.Execute(context.Background(), MarkCommentViewedCommand{Actor: agentActor, CommentID: 7})
		require.NoError(t, err)
		assert.False(t, first.AlreadyViewed)
		require.NotNil(t, first.Comment.FirstViewedByAgentAt)
		assert.Equal(t, "<p>original text</p>", first.Comment.CommentHTML)

		second, err := uc.Execute(context.Background(), MarkCommentViewedCommand{Actor: adminActor, CommentID: 7})
		require.NoError(t, err)
		assert.True(t, second.AlreadyViewed)
		assert.Equal(t, *first.Comment.FirstViewedByAgentAt, *second.Comment.FirstViewedByAgentAt)
		assert.Equal(t, "<p>original text</p>", second.Comment.CommentHTML)
	})
}

func TestListCommentsUseCase_Visibility(t *testing.T) {
	tests := []struct {
		name         string
		actor        authorization.Actor
		wantInternal bool
		wantErr      func(error) bool
	}{
		{"requester hides internal", userActor, false, nil},
		{"agent sees internal", agentActor, true, nil},
		{"admin sees internal", adminActor, true, nil},
		{"stranger forbidden", otherUser, false, errors.IsForbiddenError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tickets := &mockTicketRepository{GetByIDFunc: func(context.Context, uint) (*ticket.Ticket, error) {
				return existingTicket(t, 10, userActor.UserID, nil), nil
			}}
			var gotInternal bool
			comments := &mockCommentRepository{ListByTicketFunc: func(_ context.Context, _ uint, include bool) ([]*ticket.CommentView, error) {
				gotInternal = include
				c := existingComment(t, 7, 10, userActor.UserID, false, nil)
				return []*ticket.CommentView{{Comment: c, Author: ticket.CommentAuthor{UserID: 2, FullName: "Uma User", Role: authorization.RoleUser}}}, nil
			}}
			uc := NewListCommentsUseCase(tickets, comments, stubRenderer{}, newTestLogger())

			got, err := uc.Execute(context.Background(), ListCommentsQuery{Actor: tt.actor, TicketID: 10})
			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantInternal, gotInternal)
			require.Len(t, got, 1)
			assert.Equal(t, "Uma User", got[0].Author.FullName)
			assert.Equal(t, "user", got[0].Author.Role)
		})
	}
}
