package main

import (
	"context"
)

// ProfileUseCase contém a lógica de negócio de perfis
type ProfileUseCase struct {
	profiles ProfileRepository
}

// NewProfileUseCase cria uma nova instância de ProfileUseCase
func NewProfileUseCase(profiles ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles}
}

func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID int) (*Profile, error) {
	return uc.profiles.GetByUserID(ctx, userID)
}

// UpdateProfile grava o perfil do próprio usuário; o user_id vem sempre da
// identidade resolvida, nunca do corpo da requisição
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID int, profile *Profile) error {
	profile.UserID = userID
	return uc.profiles.Update(ctx, profile)
}
