package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pkamenev/go-task-manager/internal/models"
	"github.com/pkamenev/go-task-manager/internal/services"
)

type listRequest struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name" binding:"required,max=255"`
	TaskIDs     []string `json:"task_ids,omitempty"`
	OwnerUserID string   `json:"owner_user_id,omitempty"`
}

func (r *listRequest) toModel() *models.List {
	return &models.List{
		ID:          r.ID,
		Name:        r.Name,
		TaskIDs:     r.TaskIDs,
		OwnerUserID: r.OwnerUserID,
	}
}

type listResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	TaskIDs     []string  `json:"task_ids"`
	OwnerUserID string    `json:"owner_user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newListResponse(list *models.List) listResponse {
	return listResponse{
		ID:          list.ID,
		Name:        list.Name,
		TaskIDs:     list.TaskIDs,
		OwnerUserID: list.OwnerUserID,
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}
}

func (h *handlerImpl) HandleCreateList(c *gin.Context) {
	var req listRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	list, err := h.lists.CreateList(c, req.toModel())
	if err != nil {
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().Msg("handled create list")
	c.JSON(http.StatusCreated, newListResponse(list))
}

func (h *handlerImpl) HandleGetList(c *gin.Context) {
	id := c.Param("id")
	list, err := h.lists.GetListByID(c, id)
	if err != nil {
		if errors.Is(err, services.ErrListNotFound) {
			abort(c, newNotFoundError("list not found"))
			return
		}

		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().Msg("handled get list")
	c.JSON(http.StatusOK, newListResponse(list))
}

func (h *handlerImpl) HandleGetAllLists(c *gin.Context) {
	lists, err := h.lists.GetAllLists(c)
	if err != nil {
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]listResponse, len(lists))
	for i := range lists {
		response[i] = newListResponse(&lists[i])
	}

	h.logger.Info().Msg("handled get all lists")
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleUpdateList(c *gin.Context) {
	id := c.Param("id")

	var req listRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}
	if req.ID != "" && req.ID != id {
		h.logger.Error().
			Str("path_id", id).
			Str("body_id", req.ID).
			Msg("list id mismatch")
		abort(c, newBadRequestError("list id mismatch"))
		return
	}

	list := req.toModel()
	list.ID = id

	updated, err := h.lists.UpdateList(c, list)
	if err != nil {
		if errors.Is(err, services.ErrListNotFound) {
			abort(c, newNotFoundError("list not found"))
			return
		}

		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().Msg("handled update list")
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func (h *handlerImpl) HandleDeleteList(c *gin.Context) {
	id := c.Param("id")
	err := h.lists.DeleteList(c, id)
	if err != nil {
		if errors.Is(err, services.ErrListNotFound) {
			abort(c, newNotFoundError("list not found"))
			return
		}

		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().Msg("handled delete list")
	c.Status(http.StatusOK)
}
