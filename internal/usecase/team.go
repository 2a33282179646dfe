package usecase

import (
	"context"
	"strings"

	"team-membership-service/internal/domain"
)

// TeamUseCase реализует бизнес-логику для работы с каталогом команд.
type TeamUseCase struct {
	teamRepo domain.TeamRepository
}

// NewTeamUseCase создает новый экземпляр TeamUseCase.
func NewTeamUseCase(teamRepo domain.TeamRepository) domain.TeamUseCase {
	return &TeamUseCase{teamRepo: teamRepo}
}

// CreateTeam создает новую команду в каталоге.
func (uc *TeamUseCase) CreateTeam(ctx context.Context, name, description string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidTeamName
	}

	return uc.teamRepo.Create(ctx, &domain.Team{
		Name:        name,
		Description: description,
	})
}

// GetTeam возвращает команду по идентификатору.
func (uc *TeamUseCase) GetTeam(ctx context.Context, teamID int) (*domain.Team, error) {
	if teamID <= 0 {
		return nil, domain.ErrInvalidTeamID
	}

	return uc.teamRepo.GetByID(ctx, teamID)
}

// GetAllTeams возвращает все команды каталога.
func (uc *TeamUseCase) GetAllTeams(ctx context.Context) ([]*domain.Team, error) {
	return uc.teamRepo.GetAll(ctx)
}

// DeleteTeam удаляет команду из каталога.
func (uc *TeamUseCase) DeleteTeam(ctx context.Context, teamID int) error {
	if teamID <= 0 {
		return domain.ErrInvalidTeamID
	}

	return uc.teamRepo.Delete(ctx, teamID)
}

// GetTeamsWithEffectiveUsers возвращает все команды с их текущим составом.
func (uc *TeamUseCase) GetTeamsWithEffectiveUsers(ctx context.Context) ([]*domain.TeamWithUsers, error) {
	return uc.teamRepo.GetTeamsWithEffectiveUsers(ctx)
}
