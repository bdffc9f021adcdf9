package repositories

import (
	"context"
	"time"

	"brewhouse/config"
	"brewhouse/models"
)

type TokenRepository struct{}

func NewTokenRepository() *TokenRepository {
	return &TokenRepository{}
}

func (r *TokenRepository) Create(token *models.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := config.DB.Exec(context.Background(), query,
		token.Token, token.UserID, token.ExpiresAt, time.Now())
	return err
}

func (r *TokenRepository) Find(token string) (*models.RefreshToken, error) {
	query := `SELECT token, user_id, expires_at, created_at FROM refresh_tokens WHERE token = $1`

	rt := &models.RefreshToken{}
	err := config.DB.QueryRow(context.Background(), query, token).Scan(
		&rt.Token,
		&rt.UserID,
		&rt.ExpiresAt,
		&rt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return rt, nil
}

func (r *TokenRepository) Delete(token string) error {
	_, err := config.DB.Exec(context.Background(), `DELETE FROM refresh_tokens WHERE token = $1`, token)
	return err
}

func (r *TokenRepository) DeleteByUser(userID int) error {
	_, err := config.DB.Exec(context.Background(), `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	return err
}

func (r *TokenRepository) DeleteExpired() error {
	_, err := config.DB.Exec(context.Background(), `DELETE FROM refresh_tokens WHERE expires_at < $1`, time.Now())
	return err
}
