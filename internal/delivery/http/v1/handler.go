package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pkamenev/go-task-manager/internal/services"
)

type Handler interface {
	HandleRegister(c *gin.Context)
	HandleLogin(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleGetAllTasks(c *gin.Context)
	HandleGetTasksByList(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)

	HandleCreateList(c *gin.Context)
	HandleGetList(c *gin.Context)
	HandleGetAllLists(c *gin.Context)
	HandleUpdateList(c *gin.Context)
	HandleDeleteList(c *gin.Context)

	HandleCreateGroup(c *gin.Context)
	HandleGetGroup(c *gin.Context)
	HandleGetAllGroups(c *gin.Context)
	HandleUpdateGroup(c *gin.Context)
	HandleDeleteGroup(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	auth   services.AuthService
	tasks  services.TaskService
	lists  services.ListService
	groups services.GroupService
}

func New(
	logger zerolog.Logger,
	authService services.AuthService,
	taskService services.TaskService,
	listService services.ListService,
	groupService services.GroupService,
) Handler {
	return &handlerImpl{
		logger: logger,
		auth:   authService,
		tasks:  taskService,
		lists:  listService,
		groups: groupService,
	}
}
