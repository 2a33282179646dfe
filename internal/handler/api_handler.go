package handler

import (
	"team-membership-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*AssignmentHandler
	*TeamHandler
	*UserHandler
}

func NewAPIHandler(
	assignmentUseCase domain.AssignmentUseCase,
	teamUseCase domain.TeamUseCase,
	registrationUseCase domain.RegistrationUseCase,
	logger *logrus.Logger,
) *APIHandler {

	return &APIHandler{
		AssignmentHandler: NewAssignmentHandler(assignmentUseCase, logger),
		TeamHandler:       NewTeamHandler(teamUseCase, logger),
		UserHandler:       NewUserHandler(registrationUseCase, logger),
	}
}

// RegisterRoutes привязывает обработчики к маршрутам echo.
func (h *APIHandler) RegisterRoutes(e *echo.Echo) {
	// Регистрация и заявки
	e.POST("/auth/register", h.PostRegister)
	e.GET("/admin/users/pending", h.GetPendingUsers)
	e.POST("/admin/users/:userId/process", h.PostProcessUserRequest)

	// Членство в командах
	e.POST("/admin/users/:userId/team", h.PostChangeUserTeam)
	e.GET("/users/:userId/team", h.GetCurrentAssignment)
	e.GET("/users/:userId/team/history", h.GetAssignmentHistory)
	e.GET("/assignments", h.GetAssignments)
	e.GET("/teams/:teamId/roster", h.GetTeamRoster)

	// Каталог команд
	e.POST("/teams", h.PostTeam)
	e.GET("/teams", h.GetAllTeams)
	e.GET("/teams/:teamId", h.GetTeam)
	e.DELETE("/teams/:teamId", h.DeleteTeam)
	e.GET("/admin/teams", h.GetTeamsWithEffectiveUsers)
}
