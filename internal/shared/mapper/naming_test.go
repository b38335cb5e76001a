package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSnakeAndBack(t *testing.T) {
	tests := []struct {
		camel string
		snake string
	}{
		{"subject", "subject"},
		{"assigneeUserId", "assignee_user_id"},
		{"firstRespondedAt", "first_responded_at"},
		{"firstViewedByAgentAt", "first_viewed_by_agent_at"},
		{"profileImageUrl", "profile_image_url"},
		{"isInternal", "is_internal"},
		{"dueDate", "due_date"},
	}

	for _, tt := range tests {
		t.Run(tt.camel, func(t *testing.T) {
			assert.Equal(t, tt.snake, ToSnake(tt.camel))
			assert.Equal(t, tt.camel, ToCamel(tt.snake))
			assert.Equal(t, tt.camel, ToCamel(ToSnake(tt.camel)))
		})
	}
}

func TestColumnsFor(t *testing.T) {
	assert.Equal(t, []string{"comment_text", "updated_at"}, ColumnsFor([]string{"commentText", "updatedAt"}))
	assert.Nil(t, ColumnsFor(nil))
}

func TestMapSliceWithError(t *testing.T) {
	got, err := MapSliceWithError([]string{"1", "2"}, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	_, err = MapSliceWithError([]string{"1", "x"}, strconv.Atoi)
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}
