package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boardy/internal/repository"
)

type ColumnResponse struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Tasks []TaskResponse `json:"tasks"`
}

type ColumnHandler struct {
	boardRepo *repository.BoardRepository
}

func NewColumnHandler(boardRepo *repository.BoardRepository) *ColumnHandler {
	return &ColumnHandler{boardRepo: boardRepo}
}

// GetAll lists columns in display order with their tasks
// @Summary  List columns
// @Tags     Columns
// @Produce  json
// @Success  200  {array}  ColumnResponse
// @Router   /columns [get]
func (h *ColumnHandler) GetAll(c *gin.Context) {
	columns, err := h.boardRepo.Columns(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve columns")
		return
	}

	response := make([]ColumnResponse, len(columns))
	for i, col := range columns {
		tasks := make([]TaskResponse, len(col.Tasks))
		for j, t := range col.Tasks {
			tasks[j] = newTaskResponse(t)
		}
		response[i] = ColumnResponse{ID: string(col.ID), Title: col.Title, Tasks: tasks}
	}

	c.JSON(http.StatusOK, response)
}
