package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository define as operações de banco de dados de perfis
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int) (*Profile, error)
	// Update grava o perfil do usuário; ErrNotFound quando não existe linha
	Update(ctx context.Context, profile *Profile) error
}

// PostgresProfileRepository implementa ProfileRepository usando PostgreSQL
type PostgresProfileRepository struct {
	db *pgxpool.Pool
}

// NewPostgresProfileRepository cria uma nova instância do repositório de perfis
func NewPostgresProfileRepository(db *pgxpool.Pool) ProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID int) (*Profile, error) {
	var profile Profile
	err := r.db.QueryRow(ctx, `
		SELECT user_id, first_name, last_name, phone, email, address, city, state, zip
		FROM profiles
		WHERE user_id = $1
	`, userID).Scan(
		&profile.UserID,
		&profile.FirstName,
		&profile.LastName,
		&profile.Phone,
		&profile.Email,
		&profile.Address,
		&profile.City,
		&profile.State,
		&profile.Zip,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("profile of user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile of user %d: %w", userID, err)
	}
	return &profile, nil
}

func (r *PostgresProfileRepository) Update(ctx context.Context, profile *Profile) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE profiles
		SET first_name = $1, last_name = $2, phone = $3, email = $4,
		    address = $5, city = $6, state = $7, zip = $8
		WHERE user_id = $9
	`, profile.FirstName, profile.LastName, profile.Phone, profile.Email,
		profile.Address, profile.City, profile.State, profile.Zip, profile.UserID)
	if err != nil {
		return fmt.Errorf("failed to update profile of user %d: %w", profile.UserID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("profile of user %d: %w", profile.UserID, ErrNotFound)
	}
	return nil
}
