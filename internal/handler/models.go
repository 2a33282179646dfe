package handler

import "time"

// API модели запросов и ответов

type TeamAssignmentResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	TeamID        int        `json:"team_id"`
	EffectiveFrom time.Time  `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to"`
}

type ChangeTeamRequest struct {
	TeamID int `json:"team_id"`
}

type ChangeTeamResponse struct {
	PreviousAssignment *TeamAssignmentResponse `json:"previous_assignment"`
	NewAssignment      *TeamAssignmentResponse `json:"new_assignment"`
	Message            string                  `json:"message,omitempty"`
}

type UserResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Permission string `json:"permission"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	TeamID    *int   `json:"team_id"`
}

type RegisterResponse struct {
	User       UserResponse            `json:"user"`
	Assignment *TeamAssignmentResponse `json:"assignment"`
}

type ProcessUserRequest struct {
	Status string `json:"status"`
}

type ProcessUserResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

type TeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TeamResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type TeamWithUsersResponse struct {
	Team  TeamResponse   `json:"team"`
	Users []UserResponse `json:"users"`
}

type RosterEntryResponse struct {
	User       UserResponse           `json:"user"`
	Assignment TeamAssignmentResponse `json:"assignment"`
}
