package repositories

import (
	"context"
	"fmt"
	"time"

	"brewhouse/config"
	"brewhouse/models"
)

type CoffeeRepository struct{}

func NewCoffeeRepository() *CoffeeRepository {
	return &CoffeeRepository{}
}

func (r *CoffeeRepository) GetAllCategories() ([]models.Category, error) {
	query := `SELECT id, name, is_active, created_at FROM categories ORDER BY name`

	rows, err := config.DB.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.IsActive, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func (r *CoffeeRepository) Create(coffee *models.Coffee) error {
	query := `
		INSERT INTO coffees (name, description, category_id, price, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, true, $6, $7)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(context.Background(), query,
		coffee.Name, coffee.Description, coffee.CategoryID, coffee.Price, coffee.ImageURL, now, now,
	).Scan(&coffee.ID, &coffee.CreatedAt, &coffee.UpdatedAt)
}

func (r *CoffeeRepository) FindAll(page, limit int, search string) ([]models.Coffee, int, error) {
	offset := (page - 1) * limit

	where := `WHERE is_active = true`
	countArgs := []interface{}{}
	if search != "" {
		where += ` AND LOWER(name) LIKE LOWER($1)`
		countArgs = append(countArgs, "%"+search+"%")
	}

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM coffees `+where, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, description, category_id, price, COALESCE(image_url, ''), is_active, created_at, updated_at
	          FROM coffees ` + where
	args := append([]interface{}{}, countArgs...)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	coffees := []models.Coffee{}
	for rows.Next() {
		var cf models.Coffee
		if err := rows.Scan(&cf.ID, &cf.Name, &cf.Description, &cf.CategoryID, &cf.Price,
			&cf.ImageURL, &cf.IsActive, &cf.CreatedAt, &cf.UpdatedAt); err != nil {
			return nil, 0, err
		}
		coffees = append(coffees, cf)
	}
	return coffees, total, nil
}

func (r *CoffeeRepository) FindByID(id int) (*models.Coffee, error) {
	query := `SELECT id, name, description, category_id, price, COALESCE(image_url, ''), is_active, created_at, updated_at
	          FROM coffees WHERE id = $1`

	var cf models.Coffee
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&cf.ID, &cf.Name, &cf.Description, &cf.CategoryID, &cf.Price,
		&cf.ImageURL, &cf.IsActive, &cf.CreatedAt, &cf.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cf, nil
}

func (r *CoffeeRepository) Update(coffee *models.Coffee) error {
	query := `UPDATE coffees SET name = $1, description = $2, category_id = $3, price = $4,
	          image_url = $5, is_active = $6, updated_at = $7 WHERE id = $8`
	_, err := config.DB.Exec(context.Background(), query,
		coffee.Name, coffee.Description, coffee.CategoryID, coffee.Price,
		coffee.ImageURL, coffee.IsActive, time.Now(), coffee.ID,
	)
	return err
}

func (r *CoffeeRepository) Delete(id int) error {
	_, err := config.DB.Exec(context.Background(), `UPDATE coffees SET is_active = false WHERE id = $1`, id)
	return err
}
