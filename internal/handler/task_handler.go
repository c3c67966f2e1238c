package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boardy/internal/model"
	"boardy/internal/repository"
)

type TaskHandler struct {
	taskRepo *repository.TaskRepository
}

func NewTaskHandler(taskRepo *repository.TaskRepository) *TaskHandler {
	return &TaskHandler{taskRepo: taskRepo}
}

// UpdateTaskRequest is the body for renaming a task.
// A blank title is rejected by the board after the task lookup.
type UpdateTaskRequest struct {
	Title string `json:"title"`
}

// TaskResponse is a task with its position and resolved labels
type TaskResponse struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	ColumnID string          `json:"column_id"`
	Position int             `json:"position"`
	Labels   []LabelResponse `json:"labels"`
}

func newTaskResponse(t repository.TaskDetails) TaskResponse {
	labels := make([]LabelResponse, len(t.Labels))
	for i, l := range t.Labels {
		labels[i] = newLabelResponse(l)
	}
	return TaskResponse{
		ID:       string(t.ID),
		Title:    t.Title,
		ColumnID: string(t.ColumnID),
		Position: t.Position,
		Labels:   labels,
	}
}

// Create adds a generated task to the end of a column
// @Summary  Add a task
// @Tags     Tasks
// @Produce  json
// @Param    id  path  string  true  "Column ID"
// @Success  201  {object}  TaskResponse
// @Failure  404  {object}  map[string]string
// @Router   /columns/{id}/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	columnID := model.ColumnID(c.Param("id"))

	task, err := h.taskRepo.Create(c.Request.Context(), columnID)
	if err != nil {
		respondError(c, err, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

// GetByID returns a single task
// @Summary  Get a task
// @Tags     Tasks
// @Produce  json
// @Param    id  path  string  true  "Task ID"
// @Success  200  {object}  TaskResponse
// @Failure  404  {object}  map[string]string
// @Router   /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	task, err := h.taskRepo.GetByID(c.Request.Context(), model.TaskID(c.Param("id")))
	if err != nil {
		respondError(c, err, "Failed to retrieve task")
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Update renames a task
// @Summary  Rename a task
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Param    id    path  string             true  "Task ID"
// @Param    body  body  UpdateTaskRequest  true  "New title"
// @Success  200  {object}  TaskResponse
// @Failure  400  {object}  map[string]string
// @Failure  404  {object}  map[string]string
// @Router   /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.taskRepo.UpdateTitle(c.Request.Context(), model.TaskID(c.Param("id")), req.Title)
	if err != nil {
		respondError(c, err, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

// Delete removes a task from the board
// @Summary  Delete a task
// @Tags     Tasks
// @Produce  json
// @Param    id  path  string  true  "Task ID"
// @Success  200  {object}  map[string]string
// @Failure  404  {object}  map[string]string
// @Router   /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.taskRepo.Delete(c.Request.Context(), model.TaskID(c.Param("id"))); err != nil {
		respondError(c, err, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// AddLabel attaches a label to a task; repeating it is a no-op
// @Summary  Attach a label
// @Tags     Tasks
// @Produce  json
// @Param    id        path  string  true  "Task ID"
// @Param    label_id  path  string  true  "Label ID"
// @Success  200  {object}  TaskResponse
// @Failure  404  {object}  map[string]string
// @Router   /tasks/{id}/labels/{label_id} [post]
func (h *TaskHandler) AddLabel(c *gin.Context) {
	taskID := model.TaskID(c.Param("id"))
	labelID := model.LabelID(c.Param("label_id"))

	task, err := h.taskRepo.AddLabel(c.Request.Context(), taskID, labelID)
	if err != nil {
		respondError(c, err, "Failed to attach label")
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}
