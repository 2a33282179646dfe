package handler_test

import (
	"context"

	"team-membership-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockAssignmentUseCase struct {
	mock.Mock
}

func (m *MockAssignmentUseCase) ChangeUserTeam(ctx context.Context, userID string, teamID int) (*domain.TeamChangeResult, error) {
	args := m.Called(ctx, userID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamChangeResult), args.Error(1)
}

func (m *MockAssignmentUseCase) GetCurrentAssignment(ctx context.Context, userID string) (*domain.TeamAssignment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamAssignment), args.Error(1)
}

func (m *MockAssignmentUseCase) GetAssignmentHistory(ctx context.Context, userID string) ([]*domain.TeamAssignment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamAssignment), args.Error(1)
}

func (m *MockAssignmentUseCase) FindAssignments(ctx context.Context, filter domain.AssignmentFilter) ([]*domain.TeamAssignment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamAssignment), args.Error(1)
}

func (m *MockAssignmentUseCase) GetTeamRoster(ctx context.Context, teamID int) ([]*domain.RosterEntry, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RosterEntry), args.Error(1)
}

type MockRegistrationUseCase struct {
	mock.Mock
}

func (m *MockRegistrationUseCase) RegisterUser(ctx context.Context, req domain.RegisterUserRequest) (*domain.RegisterUserResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegisterUserResult), args.Error(1)
}

func (m *MockRegistrationUseCase) GetPendingUsers(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockRegistrationUseCase) ProcessUserRequest(ctx context.Context, userID, status string) (*domain.ProcessUserResult, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProcessUserResult), args.Error(1)
}
