package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskline-inc/deskline/internal/domain/ticket"
	vo "github.com/deskline-inc/deskline/internal/domain/ticket/valueobjects"
	"github.com/deskline-inc/deskline/internal/infrastructure/persistence/models"
	"github.com/deskline-inc/deskline/internal/shared/authorization"
	"github.com/deskline-inc/deskline/internal/shared/biztime"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

func newTicketAt(t *testing.T, requester uint, subject string, at time.Time) *ticket.Ticket {
	t.Helper()
	restore := biztime.SetClock(func() time.Time { return at })
	defer restore()
	tk, err := ticket.NewTicket(requester, subject, "details", "", "")
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_SaveAndGet(t *testing.T) {
	gdb := setupTestDB(t)
	users := newUserRepo(gdb)
	repo := NewTicketRepository(gdb, logger.NewNopLogger())
	ctx := context.Background()

	requester := createTestUser(t, users, "requester", authorization.RoleUser)
	tk := newTicketAt(t, requester.ID(), "Printer jam", time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.UTC))

	require.NoError(t, repo.Save(ctx, tk))
	require.NotZero(t, tk.ID())

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Printer jam", found.Subject())
	assert.Equal(t, vo.StatusOpen, found.Status())
	assert.Equal(t, vo.PriorityMedium, found.Priority())
	assert.Equal(t, vo.CategoryGeneralIT, found.Category())
	assert.Equal(t, tk.CreatedAt(), found.CreatedAt())
	assert.Nil(t, found.FirstRespondedAt())

	missing, err := repo.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTicketRepository_UpdateWritesSelectedColumns(t *testing.T) {
	gdb := setupTestDB(t)
	users := newUserRepo(gdb)
	repo := NewTicketRepository(gdb, logger.NewNopLogger())
	ctx := context.Background()

	requester := createTestUser(t, users, "requester", authorization.RoleUser)
	agent := createTestUser(t, users, "agent", authorization.RoleAgent)
	tk := newTicketAt(t, requester.ID(), "Printer jam", time.Now())
	require.NoError(t, repo.Save(ctx, tk))

	var raw map[string]json.RawMessage
	body := `{"status":"Pending Customer","assigneeUserId":` + jsonUint(agent.ID()) + `,"dueDate":"2026-09-30"}`
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	patch, err := ticket.ParsePatch(raw)
	require.NoError(t, err)
	require.NoError(t, tk.Apply(patch))

	require.NoError(t, repo.Update(ctx, tk, patch.Columns()))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusPendingCustomer, found.Status())
	require.NotNil(t, found.AssigneeUserID())
	assert.Equal(t, agent.ID(), *found.AssigneeUserID())
	require.NotNil(t, found.DueDate())
	assert.Equal(t, "2026-09-30", found.DueDate().Format(ticket.DueDateLayout))
	assert.Equal(t, tk.UpdatedAt(), found.UpdatedAt())
}

func TestTicketRepository_ListScopeOrderAndNames(t *testing.T) {
	gdb := setupTestDB(t)
	users := newUserRepo(gdb)
	repo := NewTicketRepository(gdb, logger.NewNopLogger())
	ctx := context.Background()

	alice := createTestUser(t, users, "alice", authorization.RoleUser)
	bob := createTestUser(t, users, "bobby", authorization.RoleUser)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	older := newTicketAt(t, alice.ID(), "Older issue", base)
	newer := newTicketAt(t, alice.ID(), "Newer issue", base.Add(time.Hour))
	bobs := newTicketAt(t, bob.ID(), "Bob's issue", base.Add(30*time.Minute))
	for _, tk := range []*ticket.Ticket{older, newer, bobs} {
		require.NoError(t, repo.Save(ctx, tk))
	}

	all, err := repo.List(ctx, ticket.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint{newer.ID(), bobs.ID(), older.ID()}, []uint{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, "Firstalice Last", all[0].RequesterName)
	assert.Nil(t, all[0].AssigneeName)

	aliceID := alice.ID()
	mine, err := repo.List(ctx, ticket.ListFilter{RequesterUserID: &aliceID})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, item := range mine {
		assert.Equal(t, alice.ID(), item.RequesterUserID)
	}
}

func TestTicketRepository_ListOrderFollowsUpdates(t *testing.T) {
	gdb := setupTestDB(t)
	users := newUserRepo(gdb)
	repo := NewTicketRepository(gdb, logger.NewNopLogger())
	ctx := context.Background()

	requester := createTestUser(t, users, "requester", authorization.RoleUser)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	older := newTicketAt(t, requester.ID(), "Older issue", base)
	newer := newTicketAt(t, requester.ID(), "Newer issue", base.Add(time.Hour))
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	editedAt := base.Add(2*time.Hour + 123*time.Millisecond)
	restore := biztime.SetClock(func() time.Time { return editedAt })
	raw := map[string]json.RawMessage{"subject": json.RawMessage(`"Older issue, edited"`)}
	patch, err := ticket.ParsePatch(raw)
	require.NoError(t, err)
	require.NoError(t, older.Apply(patch))
	restore()
	require.NoError(t, repo.Update(ctx, older, patch.Columns()))

	var stored int64
	require.NoError(t, gdb.Model(&models.TicketModel{}).Where("id = ?", older.ID()).Pluck("updated_at", &stored).Error)
	assert.Equal(t, editedAt.UnixMilli(), stored)

	found, err := repo.GetByID(ctx, older.ID())
	require.NoError(t, err)
	assert.Equal(t, editedAt, found.UpdatedAt())

	items, err := repo.List(ctx, ticket.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, []uint{older.ID(), newer.ID()}, []uint{items[0].ID, items[1].ID})
}

func TestTicketRepository_SetFirstRespondedAtOnlyOnce(t *testing.T) {
	gdb := setupTestDB(t)
	users := newUserRepo(gdb)
	repo := NewTicketRepository(gdb, logger.NewNopLogger())
	ctx := context.Background()

	requester := createTestUser(t, users, "requester", authorization.RoleUser)
	tk := newTicketAt(t, requester.ID(), "Printer jam", time.Now())
	require.NoError(t, repo.Save(ctx, tk))

	first := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	set, err := repo.SetFirstRespondedAt(ctx, tk.ID(), first)
	require.NoError(t, err)
	assert.True(t, set)

	set, err = repo.SetFirstRespondedAt(ctx, tk.ID(), first.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, set)

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, found.FirstRespondedAt())
	assert.Equal(t, first, *found.FirstRespondedAt())
	assert.Equal(t, tk.UpdatedAt(), found.UpdatedAt())
}

func TestTicketRepository_DeleteAndCount(t *testing.T) {
	gdb := setupTestDB(t)
	users := newUserRepo(gdb)
	repo := NewTicketRepository(gdb, logger.NewNopLogger())
	ctx := context.Background()

	requester := createTestUser(t, users, "requester", authorization.RoleUser)
	a := newTicketAt(t, requester.ID(), "First one", time.Now())
	b := newTicketAt(t, requester.ID(), "Second one", time.Now())
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[vo.StatusOpen])
	assert.Equal(t, int64(0), counts[vo.StatusClosed])
	assert.Len(t, counts, len(vo.AllStatuses()))

	n, err := repo.Delete(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Delete(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func jsonUint(v uint) string {
	b, _ := json.Marshal(v)
	return string(b)
}
