package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boardy/internal/model"
	"boardy/internal/repository"
)

// CreateLabelRequest defines the expected request body for creating a label.
// Name and color are checked by the registry so failures reach the notice stream.
type CreateLabelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// LabelResponse is a label as rendered by clients
type LabelResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func newLabelResponse(l model.Label) LabelResponse {
	return LabelResponse{ID: string(l.ID), Name: l.Name, Color: l.Color}
}

// LabelHandler handles label-related HTTP requests
type LabelHandler struct {
	labelRepo *repository.LabelRepository
}

// NewLabelHandler creates a new LabelHandler instance
func NewLabelHandler(labelRepo *repository.LabelRepository) *LabelHandler {
	return &LabelHandler{labelRepo: labelRepo}
}

// Create creates a new label
// @Summary  Create a label
// @Tags     Labels
// @Accept   json
// @Produce  json
// @Param    body  body  CreateLabelRequest  true  "Label"
// @Success  201  {object}  LabelResponse
// @Failure  400  {object}  map[string]string
// @Router   /labels [post]
func (h *LabelHandler) Create(c *gin.Context) {
	var req CreateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	label, err := h.labelRepo.Create(c.Request.Context(), req.Name, req.Color)
	if err != nil {
		respondError(c, err, "Failed to create label")
		return
	}

	c.JSON(http.StatusCreated, newLabelResponse(label))
}

// GetByID retrieves a label by its ID
// @Summary  Get a label
// @Tags     Labels
// @Produce  json
// @Param    id  path  string  true  "Label ID"
// @Success  200  {object}  LabelResponse
// @Failure  404  {object}  map[string]string
// @Router   /labels/{id} [get]
func (h *LabelHandler) GetByID(c *gin.Context) {
	label, err := h.labelRepo.GetByID(c.Request.Context(), model.LabelID(c.Param("id")))
	if err != nil {
		respondError(c, err, "Failed to retrieve label")
		return
	}

	c.JSON(http.StatusOK, newLabelResponse(label))
}

// GetAll lists labels in creation order
// @Summary  List labels
// @Tags     Labels
// @Produce  json
// @Success  200  {array}  LabelResponse
// @Router   /labels [get]
func (h *LabelHandler) GetAll(c *gin.Context) {
	labels, err := h.labelRepo.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve labels")
		return
	}

	response := make([]LabelResponse, len(labels))
	for i, label := range labels {
		response[i] = newLabelResponse(label)
	}

	c.JSON(http.StatusOK, response)
}
