package ticket

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskline-inc/deskline/internal/application/ticket/dto"
	"github.com/deskline-inc/deskline/internal/application/ticket/usecases"
	"github.com/deskline-inc/deskline/internal/interfaces/http/handlers/testutil"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/errors"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

func errorType(t *testing.T, resp testutil.APIResponse) string {
	t.Helper()
	require.NotNil(t, resp.Error)
	return resp.Error.Type
}

func TestTicketHandler_CreateTicket(t *testing.T) {
	tests := []struct {
		name     string
		actor    bool
		body     interface{}
		ucErr    error
		wantCode int
		wantType string
	}{
		{
			name:     "success",
			actor:    true,
			body:     CreateTicketRequest{Subject: "Printer jam", Description: "Tray 2 is stuck", Priority: "high"},
			wantCode: http.StatusCreated,
		},
		{
			name:     "unauthenticated",
			body:     CreateTicketRequest{Subject: "Printer jam", Description: "Tray 2 is stuck"},
			wantCode: http.StatusUnauthorized,
			wantType: string(errors.ErrorTypeUnauthorized),
		},
		{
			name:     "blank subject",
			actor:    true,
			body:     CreateTicketRequest{Subject: "   ", Description: "Tray 2 is stuck"},
			wantCode: http.StatusBadRequest,
			wantType: string(errors.ErrorTypeValidation),
		},
		{
			name:     "unknown priority",
			actor:    true,
			body:     CreateTicketRequest{Subject: "Printer jam", Description: "Tray 2 is stuck", Priority: "whenever"},
			wantCode: http.StatusBadRequest,
			wantType: string(errors.ErrorTypeValidation),
		},
		{
			name:     "unknown category",
			actor:    true,
			body:     CreateTicketRequest{Subject: "Printer jam", Description: "Tray 2 is stuck", Category: "gardening"},
			wantCode: http.StatusBadRequest,
			wantType: string(errors.ErrorTypeValidation),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockCreateTicketUC{result: &dto.TicketDTO{TicketID: 1, Subject: "Printer jam", Status: "open"}, err: tt.ucErr}
			h := NewTicketHandler(uc, nil, nil, nil, nil, logger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/tickets", tt.body)
			if tt.actor {
				testutil.SetActor(c, 5, authorization.RoleUser)
			}
			h.CreateTicket(c)

			assert.Equal(t, tt.wantCode, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, errorType(t, resp))
				return
			}
			assert.Equal(t, uint(5), uc.cmd.Actor.UserID)
			assert.Equal(t, "high", uc.cmd.Priority)
		})
	}
}

func TestTicketHandler_ListTickets(t *testing.T) {
	uc := &mockListTicketsUC{result: []dto.TicketListItemDTO{{TicketID: 1}, {TicketID: 2}}}
	h := NewTicketHandler(nil, uc, nil, nil, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	testutil.SetActor(c, 3, authorization.RoleAgent)
	h.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, authorization.RoleAgent, uc.query.Actor.Role)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var items []dto.TicketListItemDTO
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	assert.Len(t, items, 2)
}

func TestTicketHandler_GetTicket(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		ucErr    error
		wantCode int
	}{
		{name: "found", param: "1", wantCode: http.StatusOK},
		{name: "bad id", param: "abc", wantCode: http.StatusBadRequest},
		{name: "not found", param: "9", ucErr: errors.NewNotFoundError("Ticket not found"), wantCode: http.StatusNotFound},
		{name: "forbidden", param: "2", ucErr: errors.NewForbiddenError("Forbidden", "not-owner"), wantCode: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockGetTicketUC{result: &dto.TicketDTO{TicketID: 1}, err: tt.ucErr}
			h := NewTicketHandler(nil, nil, uc, nil, nil, logger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodGet, "/tickets/"+tt.param, nil)
			testutil.SetActor(c, 5, authorization.RoleUser)
			testutil.SetURLParam(c, "ticketId", tt.param)
			h.GetTicket(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestTicketHandler_UpdateTicket(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		ucErr      error
		wantCode   int
		wantCalled bool
	}{
		{
			name:       "passes raw fields through",
			body:       map[string]interface{}{"status": "in_progress", "assigneeUserId": nil},
			wantCode:   http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "whitelist rejection",
			body:       map[string]interface{}{"requesterUserId": 9},
			ucErr:      errors.NewValidationError("Validation failed", "fields not updatable: requesterUserId"),
			wantCode:   http.StatusBadRequest,
			wantCalled: true,
		},
		{name: "not an object", body: "[1,2]", wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUpdateTicketUC{result: &dto.TicketDTO{TicketID: 1}, err: tt.ucErr}
			h := NewTicketHandler(nil, nil, nil, uc, nil, logger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodPut, "/tickets/1", tt.body)
			testutil.SetActor(c, 2, authorization.RoleAgent)
			testutil.SetURLParam(c, "ticketId", "1")
			h.UpdateTicket(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantCalled, uc.called)
			if tt.wantCode == http.StatusOK {
				assert.JSONEq(t, `"in_progress"`, string(uc.cmd.Fields["status"]))
				assert.JSONEq(t, `null`, string(uc.cmd.Fields["assigneeUserId"]))
			}
		})
	}
}

func TestTicketHandler_DeleteTicket(t *testing.T) {
	tests := []struct {
		name     string
		result   *usecases.DeleteTicketResult
		ucErr    error
		wantCode int
	}{
		{name: "deleted", result: &usecases.DeleteTicketResult{DeletedCount: 1}, wantCode: http.StatusOK},
		{name: "nothing deleted", result: &usecases.DeleteTicketResult{}, wantCode: http.StatusNotFound},
		{name: "not admin", ucErr: errors.NewForbiddenError("Forbidden", "role-insufficient"), wantCode: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockDeleteTicketUC{result: tt.result, err: tt.ucErr}
			h := NewTicketHandler(nil, nil, nil, nil, uc, logger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodDelete, "/tickets/4", nil)
			testutil.SetActor(c, 1, authorization.RoleAdmin)
			testutil.SetURLParam(c, "ticketId", "4")
			h.DeleteTicket(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestCommentHandler_AddComment(t *testing.T) {
	parent := uint(8)
	tests := []struct {
		name     string
		body     interface{}
		ucErr    error
		wantCode int
		wantType string
	}{
		{
			name:     "reply",
			body:     AddCommentRequest{CommentText: "Looking into it", ParentCommentID: &parent},
			wantCode: http.StatusCreated,
		},
		{
			name:     "empty text",
			body:     AddCommentRequest{CommentText: " "},
			wantCode: http.StatusBadRequest,
			wantType: string(errors.ErrorTypeValidation),
		},
		{
			name:     "parent from another ticket",
			body:     AddCommentRequest{CommentText: "hi", ParentCommentID: &parent},
			ucErr:    errors.NewInvalidReferenceError("Parent comment not found on this ticket"),
			wantCode: http.StatusBadRequest,
			wantType: string(errors.ErrorTypeInvalidReference),
		},
		{
			name:     "ticket missing",
			body:     AddCommentRequest{CommentText: "hi"},
			ucErr:    errors.NewNotFoundError("Ticket not found"),
			wantCode: http.StatusNotFound,
			wantType: string(errors.ErrorTypeNotFound),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockAddCommentUC{result: &dto.CommentDTO{CommentID: 10, TicketID: 3}, err: tt.ucErr}
			h := NewCommentHandler(nil, uc, nil, nil, nil, logger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/tickets/3/comments", tt.body)
			testutil.SetActor(c, 2, authorization.RoleAgent)
			testutil.SetURLParam(c, "ticketId", "3")
			h.AddComment(c)

			assert.Equal(t, tt.wantCode, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, errorType(t, resp))
				return
			}
			assert.Equal(t, uint(3), uc.cmd.TicketID)
			require.NotNil(t, uc.cmd.ParentCommentID)
			assert.Equal(t, parent, *uc.cmd.ParentCommentID)
		})
	}
}

func TestCommentHandler_UpdateComment_ForbiddenReasons(t *testing.T) {
	reasons := []authorization.ForbiddenReason{
		authorization.ReasonNotOwner,
		authorization.ReasonLockedAfterReview,
	}
	for _, reason := range reasons {
		t.Run(string(reason), func(t *testing.T) {
			uc := &mockUpdateCommentUC{err: errors.NewForbiddenError("Forbidden", string(reason))}
			h := NewCommentHandler(nil, nil, uc, nil, nil, logger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodPut, "/comments/5", UpdateCommentRequest{CommentText: "edit"})
			testutil.SetActor(c, 4, authorization.RoleUser)
			testutil.SetURLParam(c, "commentId", "5")
			h.UpdateComment(c)

			assert.Equal(t, http.StatusForbidden, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.Equal(t, string(reason), resp.Error.Details)
		})
	}
}

func TestCommentHandler_DeleteComment(t *testing.T) {
	tests := []struct {
		name     string
		result   *usecases.DeleteCommentResult
		ucErr    error
		wantCode int
	}{
		{name: "deleted", result: &usecases.DeleteCommentResult{DeletedCount: 1}, wantCode: http.StatusNoContent},
		{name: "nothing deleted", result: &usecases.DeleteCommentResult{}, wantCode: http.StatusNotFound},
		{name: "not found", ucErr: errors.NewNotFoundError("Comment not found"), wantCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockDeleteCommentUC{result: tt.result, err: tt.ucErr}
			h := NewCommentHandler(nil, nil, nil, uc, nil, logger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodDelete, "/comments/5", nil)
			testutil.SetActor(c, 4, authorization.RoleUser)
			testutil.SetURLParam(c, "commentId", "5")
			h.DeleteComment(c)
			c.Writer.WriteHeaderNow()

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestCommentHandler_MarkCommentViewed(t *testing.T) {
	tests := []struct {
		name        string
		result      *usecases.MarkCommentViewedResult
		wantMessage string
	}{
		{
			name:        "first view",
			result:      &usecases.MarkCommentViewedResult{Comment: &dto.CommentDTO{CommentID: 5}},
			wantMessage: "Comment marked as viewed",
		},
		{
			name:        "repeat view is a no-op",
			result:      &usecases.MarkCommentViewedResult{Comment: &dto.CommentDTO{CommentID: 5}, AlreadyViewed: true},
			wantMessage: "Comment was already viewed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockMarkViewedUC{result: tt.result}
			h := NewCommentHandler(nil, nil, nil, nil, uc, logger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/comments/5/mark-viewed", nil)
			testutil.SetActor(c, 2, authorization.RoleAgent)
			testutil.SetURLParam(c, "commentId", "5")
			h.MarkCommentViewed(c)

			assert.Equal(t, http.StatusOK, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.Equal(t, tt.wantMessage, resp.Message)

			var data struct {
				AlreadyViewed bool `json:"alreadyViewed"`
			}
			require.NoError(t, json.Unmarshal(resp.Data, &data))
			assert.Equal(t, tt.result.AlreadyViewed, data.AlreadyViewed)
		})
	}
}

func TestCommentHandler_ListComments(t *testing.T) {
	uc := &mockListCommentsUC{result: []dto.CommentDTO{{CommentID: 1}}}
	h := NewCommentHandler(uc, nil, nil, nil, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/3/comments", nil)
	testutil.SetActor(c, 2, authorization.RoleUser)
	testutil.SetURLParam(c, "ticketId", "3")
	h.ListComments(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
