package handler

import (
	"net/http"
	"strconv"

	"team-membership-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// TeamHandler обрабатывает HTTP-запросы для управления каталогом команд.
type TeamHandler struct {
	*BaseHandler
	teamUseCase domain.TeamUseCase
}

// NewTeamHandler создает новый экземпляр TeamHandler.
func NewTeamHandler(teamUseCase domain.TeamUseCase, logger *logrus.Logger) *TeamHandler {
	return &TeamHandler{
		BaseHandler: NewBaseHandler(logger),
		teamUseCase: teamUseCase,
	}
}

// PostTeam обрабатывает создание новой команды.
func (h *TeamHandler) PostTeam(c echo.Context) error {
	var req TeamRequest
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create team request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "create_team").WithField("team_name", req.Name)
	logEntry.Info("Creating team")

	team, err := h.teamUseCase.CreateTeam(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		logEntry.WithError(err).Error("Failed to create team")
		return h.respondError(c, err)
	}

	logEntry.WithField("team_id", team.ID).Info("Team created successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"team": toAPITeam(team),
	})
}

// GetTeam обрабатывает получение команды по идентификатору.
func (h *TeamHandler) GetTeam(c echo.Context) error {
	teamID, err := strconv.Atoi(c.Param("teamId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", "team id must be an integer"))
	}

	logEntry := h.logRequest(c, "get_team").WithField("team_id", teamID)

	team, err := h.teamUseCase.GetTeam(c.Request().Context(), teamID)
	if err != nil {
		logEntry.WithError(err).Warn("Team not found")
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, toAPITeam(team))
}

// GetAllTeams обрабатывает получение всех команд каталога.
func (h *TeamHandler) GetAllTeams(c echo.Context) error {
	logEntry := h.logRequest(c, "get_all_teams")

	teams, err := h.teamUseCase.GetAllTeams(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to get teams")
		return h.respondError(c, err)
	}

	result := make([]TeamResponse, len(teams))
	for i, team := range teams {
		result[i] = toAPITeam(team)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"teams": result,
	})
}

// DeleteTeam обрабатывает удаление команды из каталога.
func (h *TeamHandler) DeleteTeam(c echo.Context) error {
	teamID, err := strconv.Atoi(c.Param("teamId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", "team id must be an integer"))
	}

	logEntry := h.logRequest(c, "delete_team").WithField("team_id", teamID)
	logEntry.Info("Deleting team")

	if err := h.teamUseCase.DeleteTeam(c.Request().Context(), teamID); err != nil {
		logEntry.WithError(err).Error("Failed to delete team")
		return h.respondError(c, err)
	}

	logEntry.Info("Team deleted successfully")
	return c.NoContent(http.StatusNoContent)
}

// GetTeamsWithEffectiveUsers обрабатывает получение всех команд
// с их текущим составом.
func (h *TeamHandler) GetTeamsWithEffectiveUsers(c echo.Context) error {
	logEntry := h.logRequest(c, "get_teams_with_effective_users")

	teams, err := h.teamUseCase.GetTeamsWithEffectiveUsers(c.Request().Context())
	if err != nil {
		logEntry.WithError(err).Error("Failed to get teams with effective users")
		return h.respondError(c, err)
	}

	result := make([]TeamWithUsersResponse, len(teams))
	for i, entry := range teams {
		result[i] = TeamWithUsersResponse{
			Team:  toAPITeam(entry.Team),
			Users: toAPIUsers(entry.Users),
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"teams": result,
	})
}
