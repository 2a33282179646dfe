package handler

import (
	"net/http"

	"team-membership-service/internal/domain"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIAssignment(assignment *domain.TeamAssignment) *TeamAssignmentResponse {
	if assignment == nil {
		return nil
	}
	return &TeamAssignmentResponse{
		ID:            assignment.ID,
		UserID:        assignment.UserID,
		TeamID:        assignment.TeamID,
		EffectiveFrom: assignment.EffectiveFrom,
		EffectiveTo:   assignment.EffectiveTo,
	}
}

func toAPIAssignments(assignments []*domain.TeamAssignment) []TeamAssignmentResponse {
	result := make([]TeamAssignmentResponse, len(assignments))
	for i, assignment := range assignments {
		result[i] = *toAPIAssignment(assignment)
	}
	return result
}

func toAPIUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Permission: user.Permission,
	}
}

func toAPIUsers(users []*domain.User) []UserResponse {
	result := make([]UserResponse, len(users))
	for i, user := range users {
		result[i] = toAPIUser(user)
	}
	return result
}

func toAPITeam(team *domain.Team) TeamResponse {
	return TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
	}
}

func toErrorResponse(code, message string) domain.ErrorResponse {
	return domain.ErrorResponse{
		Error: domain.HTTPError{
			Code:    code,
			Message: message,
		},
	}
}

func getHTTPStatusCode(err error) int {
	switch err {
	// Conflict errors (409)
	case domain.ErrUserAlreadyExists, domain.ErrTeamAlreadyExists:
		return http.StatusConflict

	// Not Found errors (404)
	case domain.ErrUserNotFound, domain.ErrTeamNotFound, domain.ErrAssignmentNotFound:
		return http.StatusNotFound

	// Bad Request errors (400) - валидация
	case domain.ErrInvalidUserID, domain.ErrInvalidTeamID,
		domain.ErrInvalidTeamName, domain.ErrInvalidEmail,
		domain.ErrInvalidPermission:
		return http.StatusBadRequest

	// Нарушение инварианта хранилища — внутренняя ошибка (500)
	case domain.ErrConsistencyViolation:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}
