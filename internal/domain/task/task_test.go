package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabel(t *testing.T) {
	assert.Equal(t, "Todo", StatusTodo.Label())
	assert.Equal(t, "In progress", StatusInProgress.Label())
	assert.Equal(t, "Review", StatusReview.Label())
	assert.Equal(t, "Completed", StatusCompleted.Label())
	assert.Equal(t, "", Status("").Label())
}

func TestStatusesBoardOrder(t *testing.T) {
	assert.Equal(t, []Status{StatusTodo, StatusInProgress, StatusReview, StatusCompleted}, Statuses())
}
