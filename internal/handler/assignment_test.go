package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"team-membership-service/internal/domain"
	"team-membership-service/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAssignmentHandler() (*handler.AssignmentHandler, *MockAssignmentUseCase, *echo.Echo) {
	uc := &MockAssignmentUseCase{}
	logger := logrus.New()
	return handler.NewAssignmentHandler(uc, logger), uc, echo.New()
}

func TestAssignmentHandler_PostChangeUserTeam_Success(t *testing.T) {
	h, uc, e := setupAssignmentHandler()

	closedAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	result := &domain.TeamChangeResult{
		Previous: &domain.TeamAssignment{ID: "a1", UserID: "u1", TeamID: 2, EffectiveTo: &closedAt},
		Current:  &domain.TeamAssignment{ID: "a2", UserID: "u1", TeamID: 5, EffectiveFrom: closedAt},
		Message:  "user has been moved from team 2 to team 5",
	}
	uc.On("ChangeUserTeam", mock.Anything, "u1", 5).Return(result, nil)

	body, _ := json.Marshal(handler.ChangeTeamRequest{TeamID: 5})
	req := httptest.NewRequest(http.MethodPost, "/admin/users/u1/team", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	err := h.PostChangeUserTeam(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response handler.ChangeTeamResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotNil(t, response.PreviousAssignment)
	assert.Equal(t, 2, response.PreviousAssignment.TeamID)
	require.NotNil(t, response.NewAssignment)
	assert.Equal(t, 5, response.NewAssignment.TeamID)
	assert.Equal(t, "user has been moved from team 2 to team 5", response.Message)
}

func TestAssignmentHandler_PostChangeUserTeam_NoOpHasNoMessage(t *testing.T) {
	h, uc, e := setupAssignmentHandler()

	result := &domain.TeamChangeResult{
		Current: &domain.TeamAssignment{ID: "a1", UserID: "u1", TeamID: 5},
	}
	uc.On("ChangeUserTeam", mock.Anything, "u1", 5).Return(result, nil)

	body, _ := json.Marshal(handler.ChangeTeamRequest{TeamID: 5})
	req := httptest.NewRequest(http.MethodPost, "/admin/users/u1/team", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	err := h.PostChangeUserTeam(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.NotContains(t, response, "message")
}

func TestAssignmentHandler_PostChangeUserTeam_TeamNotFound(t *testing.T) {
	h, uc, e := setupAssignmentHandler()

	uc.On("ChangeUserTeam", mock.Anything, "u1", 99).Return(nil, domain.ErrTeamNotFound)

	body, _ := json.Marshal(handler.ChangeTeamRequest{TeamID: 99})
	req := httptest.NewRequest(http.MethodPost, "/admin/users/u1/team", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	err := h.PostChangeUserTeam(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var response domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "NOT_FOUND", response.Error.Code)
}

func TestAssignmentHandler_GetCurrentAssignment_NoneOpen(t *testing.T) {
	h, uc, e := setupAssignmentHandler()

	uc.On("GetCurrentAssignment", mock.Anything, "u1").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/u1/team", nil)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	err := h.GetCurrentAssignment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAssignmentHandler_GetAssignmentHistory_Success(t *testing.T) {
	h, uc, e := setupAssignmentHandler()

	closedAt := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	history := []*domain.TeamAssignment{
		{ID: "a1", UserID: "u1", TeamID: 1, EffectiveTo: &closedAt},
		{ID: "a2", UserID: "u1", TeamID: 3, EffectiveFrom: closedAt},
	}
	uc.On("GetAssignmentHistory", mock.Anything, "u1").Return(history, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/u1/team/history", nil)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	err := h.GetAssignmentHistory(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string][]handler.TeamAssignmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response["assignments"], 2)
}

func TestAssignmentHandler_GetAssignments_ParsesFilter(t *testing.T) {
	h, uc, e := setupAssignmentHandler()

	userID := "u1"
	teamID := 2
	expectedFilter := domain.AssignmentFilter{UserID: &userID, TeamID: &teamID, Limit: 10}
	uc.On("FindAssignments", mock.Anything, expectedFilter).Return([]*domain.TeamAssignment{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/assignments?user_id=u1&team_id=2&limit=10", nil)
	rec := httptest.NewRecorder()

	err := h.GetAssignments(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestAssignmentHandler_GetAssignments_InvalidFilter(t *testing.T) {
	h, uc, e := setupAssignmentHandler()

	req := httptest.NewRequest(http.MethodGet, "/assignments?team_id=abc", nil)
	rec := httptest.NewRecorder()

	err := h.GetAssignments(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "FindAssignments")
}

func TestAssignmentHandler_GetTeamRoster_InvalidTeamID(t *testing.T) {
	h, uc, e := setupAssignmentHandler()

	req := httptest.NewRequest(http.MethodGet, "/teams/abc/roster", nil)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("teamId")
	c.SetParamValues("abc")

	err := h.GetTeamRoster(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "GetTeamRoster")
}
