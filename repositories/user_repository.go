package repositories

import (
	"context"
	"time"

	"brewhouse/config"
	"brewhouse/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (username, email, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(
		context.Background(),
		query,
		user.Username,
		user.Email,
		user.Password,
		user.Role,
		now,
		now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	query := `SELECT id, username, email, password, role, created_at, updated_at FROM users WHERE email = $1`

	user := &models.User{}
	err := config.DB.QueryRow(context.Background(), query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindByID(id int) (*models.User, error) {
	query := `SELECT id, username, email, password, role, created_at, updated_at FROM users WHERE id = $1`

	user := &models.User{}
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindAll(page, limit int, search string) ([]models.User, int, error) {
	offset := (page - 1) * limit

	countQuery := `SELECT COUNT(*) FROM users`
	countArgs := []interface{}{}
	if search != "" {
		countQuery += ` WHERE username ILIKE $1 OR email ILIKE $1`
		countArgs = append(countArgs, "%"+search+"%")
	}

	var totalCount int
	if err := config.DB.QueryRow(context.Background(), countQuery, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, username, email, role, created_at, updated_at FROM users`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE username ILIKE $1 OR email ILIKE $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, "%"+search+"%", limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := config.DB.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}

	return users, totalCount, nil
}

func (r *UserRepository) Update(user *models.User) error {
	query := `UPDATE users SET username = $1, email = $2, role = $3, updated_at = $4 WHERE id = $5`
	_, err := config.DB.Exec(context.Background(), query,
		user.Username, user.Email, user.Role, time.Now(), user.ID)
	return err
}

func (r *UserRepository) UpdatePassword(userID int, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`
	_, err := config.DB.Exec(context.Background(), query, hashedPassword, time.Now(), userID)
	return err
}

func (r *UserRepository) Delete(id int) error {
	_, err := config.DB.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	return err
}
