package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dragEndBody struct {
	Outcome string    `json:"outcome"`
	Board   boardBody `json:"board"`
}

func loc(id string, index int) map[string]any {
	return map[string]any{"droppableId": id, "index": index}
}

func TestDragEnd_CrossColumn(t *testing.T) {
	// Arrange
	env := setupTest(t)
	body := map[string]any{
		"draggableId": "task-2",
		"type":        "DEFAULT",
		"reason":      "DROP",
		"source":      loc("column-1", 1),
		"destination": loc("column-2", 0),
	}

	// Act
	resp := doRequest(t, env.router, "POST", "/drag-end", body)

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)
	got := decode[dragEndBody](t, resp)
	assert.Equal(t, "moved", got.Outcome)
	assert.Equal(t, []string{"task-1", "task-3", "task-4"}, got.Board.Columns["column-1"].TaskIDs)
	assert.Equal(t, []string{"task-2"}, got.Board.Columns["column-2"].TaskIDs)
}

func TestDragEnd_Reorder(t *testing.T) {
	env := setupTest(t)
	body := map[string]any{
		"draggableId": "task-1",
		"source":      loc("column-1", 0),
		"destination": loc("column-1", 2),
	}

	resp := doRequest(t, env.router, "POST", "/drag-end", body)

	require.Equal(t, http.StatusOK, resp.Code)
	got := decode[dragEndBody](t, resp)
	assert.Equal(t, []string{"task-2", "task-3", "task-1", "task-4"}, got.Board.Columns["column-1"].TaskIDs)
}

func TestDragEnd_NoDestination(t *testing.T) {
	env := setupTest(t)
	body := map[string]any{
		"draggableId": "task-1",
		"reason":      "CANCEL",
		"source":      loc("column-1", 0),
		"destination": nil,
	}

	resp := doRequest(t, env.router, "POST", "/drag-end", body)

	require.Equal(t, http.StatusOK, resp.Code)
	got := decode[dragEndBody](t, resp)
	assert.Equal(t, "discarded", got.Outcome)
	assert.Equal(t, []string{"task-1", "task-2", "task-3", "task-4"}, got.Board.Columns["column-1"].TaskIDs)
}

func TestDragEnd_SamePosition(t *testing.T) {
	env := setupTest(t)
	body := map[string]any{
		"draggableId": "task-1",
		"source":      loc("column-1", 0),
		"destination": loc("column-1", 0),
	}

	resp := doRequest(t, env.router, "POST", "/drag-end", body)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "unchanged", decode[dragEndBody](t, resp).Outcome)
}

func TestDragEnd_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   map[string]any
		status int
	}{
		{
			name:   "missing source",
			body:   map[string]any{"destination": loc("column-2", 0)},
			status: http.StatusBadRequest,
		},
		{
			name:   "negative source index",
			body:   map[string]any{"source": loc("column-1", -1), "destination": loc("column-2", 0)},
			status: http.StatusBadRequest,
		},
		{
			name:   "blank destination column",
			body:   map[string]any{"source": loc("column-1", 0), "destination": loc("  ", 0)},
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown type",
			body:   map[string]any{"type": "CARD", "source": loc("column-1", 0), "destination": loc("column-2", 0)},
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown column",
			body:   map[string]any{"source": loc("column-1", 0), "destination": loc("column-7", 0)},
			status: http.StatusNotFound,
		},
		{
			name:   "source index past end",
			body:   map[string]any{"source": loc("column-2", 0), "destination": loc("column-1", 0)},
			status: http.StatusUnprocessableEntity,
		},
		{
			name:   "stale draggable",
			body:   map[string]any{"draggableId": "task-4", "source": loc("column-1", 0), "destination": loc("column-2", 0)},
			status: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTest(t)

			resp := doRequest(t, env.router, "POST", "/drag-end", tt.body)

			assert.Equal(t, tt.status, resp.Code)
			board := decode[boardBody](t, doRequest(t, env.router, "GET", "/board", nil))
			assert.Equal(t, []string{"task-1", "task-2", "task-3", "task-4"}, board.Columns["column-1"].TaskIDs)
		})
	}
}

func TestDragEnd_ColumnReorder(t *testing.T) {
	env := setupTest(t)
	body := map[string]any{
		"draggableId": "column-1",
		"type":        "COLUMN",
		"source":      loc("board", 0),
		"destination": loc("board", 2),
	}

	resp := doRequest(t, env.router, "POST", "/drag-end", body)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []string{"column-2", "column-3", "column-1"}, decode[dragEndBody](t, resp).Board.ColumnOrder)
}
