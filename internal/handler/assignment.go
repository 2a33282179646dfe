package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"team-membership-service/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// AssignmentHandler обрабатывает HTTP-запросы для управления членством
// пользователей в командах.
type AssignmentHandler struct {
	*BaseHandler
	assignmentUseCase domain.AssignmentUseCase
}

// NewAssignmentHandler создает новый экземпляр AssignmentHandler.
func NewAssignmentHandler(assignmentUseCase domain.AssignmentUseCase, logger *logrus.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		BaseHandler:       NewBaseHandler(logger),
		assignmentUseCase: assignmentUseCase,
	}
}

// PostChangeUserTeam обрабатывает перевод пользователя в другую команду.
func (h *AssignmentHandler) PostChangeUserTeam(c echo.Context) error {
	userID := c.Param("userId")

	var req ChangeTeamRequest
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind change team request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "change_user_team").WithFields(logrus.Fields{
		"user_id": userID,
		"team_id": req.TeamID,
	})
	logEntry.Info("Changing user team")

	result, err := h.assignmentUseCase.ChangeUserTeam(c.Request().Context(), userID, req.TeamID)
	if err != nil {
		// Несуществующая команда — ожидаемый отказ, ошибка хранилища — нет
		if errors.Is(err, domain.ErrTeamNotFound) {
			logEntry.Info("Requested team does not exist")
		} else {
			logEntry.WithError(err).Error("Failed to change user team")
		}
		return h.respondError(c, err)
	}

	logEntry.WithField("changed", result.Message != "").Info("User team change processed")
	return c.JSON(http.StatusOK, ChangeTeamResponse{
		PreviousAssignment: toAPIAssignment(result.Previous),
		NewAssignment:      toAPIAssignment(result.Current),
		Message:            result.Message,
	})
}

// GetCurrentAssignment обрабатывает запрос текущего назначения пользователя.
func (h *AssignmentHandler) GetCurrentAssignment(c echo.Context) error {
	userID := c.Param("userId")

	logEntry := h.logRequest(c, "get_current_assignment").WithField("user_id", userID)

	assignment, err := h.assignmentUseCase.GetCurrentAssignment(c.Request().Context(), userID)
	if err != nil {
		logEntry.WithError(err).Error("Failed to get current assignment")
		return h.respondError(c, err)
	}

	if assignment == nil {
		return c.JSON(http.StatusNotFound, toErrorResponse("NOT_FOUND", "user has no current team"))
	}

	return c.JSON(http.StatusOK, toAPIAssignment(assignment))
}

// GetAssignmentHistory обрабатывает запрос истории членства пользователя.
func (h *AssignmentHandler) GetAssignmentHistory(c echo.Context) error {
	userID := c.Param("userId")

	logEntry := h.logRequest(c, "get_assignment_history").WithField("user_id", userID)

	history, err := h.assignmentUseCase.GetAssignmentHistory(c.Request().Context(), userID)
	if err != nil {
		logEntry.WithError(err).Error("Failed to get assignment history")
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"assignments": toAPIAssignments(history),
	})
}

// GetAssignments обрабатывает выборку назначений по фильтру.
func (h *AssignmentHandler) GetAssignments(c echo.Context) error {
	filter, err := parseAssignmentFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry := h.logRequest(c, "find_assignments")

	assignments, err := h.assignmentUseCase.FindAssignments(c.Request().Context(), filter)
	if err != nil {
		logEntry.WithError(err).Error("Failed to find assignments")
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"assignments": toAPIAssignments(assignments),
	})
}

// GetTeamRoster обрабатывает запрос текущего состава команды.
func (h *AssignmentHandler) GetTeamRoster(c echo.Context) error {
	teamID, err := strconv.Atoi(c.Param("teamId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", "team id must be an integer"))
	}

	logEntry := h.logRequest(c, "get_team_roster").WithField("team_id", teamID)

	roster, err := h.assignmentUseCase.GetTeamRoster(c.Request().Context(), teamID)
	if err != nil {
		logEntry.WithError(err).Error("Failed to get team roster")
		return h.respondError(c, err)
	}

	entries := make([]RosterEntryResponse, len(roster))
	for i, entry := range roster {
		entries[i] = RosterEntryResponse{
			User:       toAPIUser(entry.User),
			Assignment: *toAPIAssignment(entry.Assignment),
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"team_id": teamID,
		"members": entries,
	})
}

// parseAssignmentFilter разбирает параметры фильтра из query string.
func parseAssignmentFilter(c echo.Context) (domain.AssignmentFilter, error) {
	var filter domain.AssignmentFilter

	if v := c.QueryParam("user_id"); v != "" {
		filter.UserID = &v
	}
	if v := c.QueryParam("team_id"); v != "" {
		teamID, err := strconv.Atoi(v)
		if err != nil {
			return filter, errors.New("team_id must be an integer")
		}
		filter.TeamID = &teamID
	}
	if v := c.QueryParam("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("from must be an RFC3339 timestamp")
		}
		filter.From = &from
	}
	if v := c.QueryParam("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("to must be an RFC3339 timestamp")
		}
		filter.To = &to
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return filter, errors.New("limit must be an integer")
		}
		filter.Limit = limit
	}
	if v := c.QueryParam("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return filter, errors.New("offset must be an integer")
		}
		filter.Offset = offset
	}

	return filter, nil
}
