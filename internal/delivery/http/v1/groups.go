package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pkamenev/go-task-manager/internal/models"
	"github.com/pkamenev/go-task-manager/internal/services"
)

type groupRequest struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name" binding:"required,max=255"`
	ListIDs     []string `json:"list_ids,omitempty"`
	TaskIDs     []string `json:"task_ids,omitempty"`
	UserIDs     []string `json:"user_ids,omitempty"`
	OwnerUserID string   `json:"owner_user_id,omitempty"`
}

func (r *groupRequest) toModel() *models.Group {
	return &models.Group{
		ID:          r.ID,
		Name:        r.Name,
		ListIDs:     r.ListIDs,
		TaskIDs:     r.TaskIDs,
		UserIDs:     r.UserIDs,
		OwnerUserID: r.OwnerUserID,
	}
}

type groupResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ListIDs     []string  `json:"list_ids,omitempty"`
	TaskIDs     []string  `json:"task_ids,omitempty"`
	UserIDs     []string  `json:"user_ids,omitempty"`
	OwnerUserID string    `json:"owner_user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newGroupResponse(group *models.Group) groupResponse {
	return groupResponse{
		ID:          group.ID,
		Name:        group.Name,
		ListIDs:     group.ListIDs,
		TaskIDs:     group.TaskIDs,
		UserIDs:     group.UserIDs,
		OwnerUserID: group.OwnerUserID,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}

func (h *handlerImpl) HandleCreateGroup(c *gin.Context) {
	var req groupRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError("invalid request body"))
		return
	}

	group, err := h.groups.CreateGroup(c, req.toModel())
	if err != nil {
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().Msg("handled create group")
	c.JSON(http.StatusCreated, newGroupResponse(group))
}

func (h *handlerImpl) HandleGetGroup(c *gin.Context) {
	id := c.Param("id")
	group, err := h.groups.GetGroupByID(c, id)
	if err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			abort(c, newNotFoundError("group not found"))
			return
		}

		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().Msg("handled get group")
	c.JSON(http.StatusOK, newGroupResponse(group))
}

func (h *handlerImpl) HandleGetAllGroups(c *gin.Context) {
	groups, err := h.groups.GetAllGroups(c)
	if err != nil {
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]groupResponse, len(groups))
	for i := range groups {
		response[i] = newGroupResponse(&groups[i])
	}

	h.logger.Info().Msg("handled get all groups")
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleUpdateGroup(c *gin.Context) {
	id := c.Param("id")

	var req groupRequest
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
			Msg("group id mismatch")
		abort(c, newBadRequestError("group id mismatch"))
		return
	}

	group := req.toModel()
	group.ID = id

	updated, err := h.groups.UpdateGroup(c, group)
	if err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			abort(c, newNotFoundError("group not found"))
			return
		}

		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().Msg("handled update group")
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func (h *handlerImpl) HandleDeleteGroup(c *gin.Context) {
	id := c.Param("id")
	err := h.groups.DeleteGroup(c, id)
	if err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			abort(c, newNotFoundError("group not found"))
			return
		}

		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().Msg("handled delete group")
	c.Status(http.StatusOK)
}
