package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boardy/internal/dragdrop"
	"boardy/internal/repository"
)

// LocationRequest is a position inside a droppable area
type LocationRequest struct {
	DroppableID string `json:"droppableId" binding:"required,notblank"`
	Index       *int   `json:"index" binding:"required,min=0"`
}

// DragEndRequest mirrors the drop result emitted by the drag library
type DragEndRequest struct {
	DraggableID string           `json:"draggableId"`
	Type        string           `json:"type" binding:"omitempty,oneof=DEFAULT COLUMN"`
	Reason      string           `json:"reason" binding:"omitempty,oneof=DROP CANCEL"`
	Source      LocationRequest  `json:"source"`
	Destination *LocationRequest `json:"destination"`
}

func (r DragEndRequest) toDropResult() dragdrop.DropResult {
	result := dragdrop.DropResult{
		DraggableID: r.DraggableID,
		Type:        r.Type,
		Reason:      r.Reason,
		Source:      dragdrop.Location{DroppableID: r.Source.DroppableID, Index: *r.Source.Index},
	}
	if r.Destination != nil {
		result.Destination = &dragdrop.Location{
			DroppableID: r.Destination.DroppableID,
			Index:       *r.Destination.Index,
		}
	}
	return result
}

// DragEndResponse reports what the drop did and the resulting board
type DragEndResponse struct {
	Outcome string                   `json:"outcome"`
	Board   repository.BoardSnapshot `json:"board"`
}

type BoardHandler struct {
	boardRepo *repository.BoardRepository
}

func NewBoardHandler(boardRepo *repository.BoardRepository) *BoardHandler {
	return &BoardHandler{boardRepo: boardRepo}
}

// Get returns the whole board
// @Summary  Get the board
// @Tags     Board
// @Produce  json
// @Success  200  {object}  repository.BoardSnapshot
// @Router   /board [get]
func (h *BoardHandler) Get(c *gin.Context) {
	snap, err := h.boardRepo.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve board")
		return
	}

	c.JSON(http.StatusOK, snap)
}

// DragEnd applies a finished drag gesture
// @Summary  Apply a drop
// @Tags     Board
// @Accept   json
// @Produce  json
// @Param    body  body  DragEndRequest  true  "Drop result"
// @Success  200  {object}  DragEndResponse
// @Failure  400  {object}  map[string]string
// @Failure  404  {object}  map[string]string
// @Failure  422  {object}  map[string]string
// @Router   /drag-end [post]
func (h *BoardHandler) DragEnd(c *gin.Context) {
	var req DragEndRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	outcome, err := h.boardRepo.ApplyDrop(c.Request.Context(), req.toDropResult())
	if err != nil {
		respondError(c, err, "Failed to apply drop")
		return
	}

	snap, err := h.boardRepo.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve board")
		return
	}

	c.JSON(http.StatusOK, DragEndResponse{Outcome: outcome.String(), Board: snap})
}
