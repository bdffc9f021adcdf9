package services

import (
	"errors"
	"log"
	"math"

	"brewhouse/libs"
	"brewhouse/models"
	"brewhouse/repositories"
)

type CoffeeService struct {
	coffeeRepo *repositories.CoffeeRepository
}

func NewCoffeeService() *CoffeeService {
	return &CoffeeService{
		coffeeRepo: repositories.NewCoffeeRepository(),
	}
}

func (s *CoffeeService) GetAllCoffees(page, limit int, search string) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	coffees, totalItems, err := s.coffeeRepo.FindAll(page, limit, search)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(limit)))

	return &models.PaginationResponse{
		Success: true,
		Message: "Coffees retrieved successfully",
		Data:    coffees,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: totalItems,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *CoffeeService) GetCoffeeByID(id int) (*models.Coffee, error) {
	return s.coffeeRepo.FindByID(id)
}

func (s *CoffeeService) CreateCoffee(req models.CreateCoffeeRequest) (*models.Coffee, error) {
	coffee := &models.Coffee{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}

	if err := s.coffeeRepo.Create(coffee); err != nil {
		return nil, err
	}

	return coffee, nil
}

func (s *CoffeeService) UpdateCoffee(id int, req models.UpdateCoffeeRequest) (*models.Coffee, error) {
	coffee, err := s.coffeeRepo.FindByID(id)
	if err != nil {
		return nil, errors.New("coffee not found")
	}
	oldImageURL := coffee.ImageURL

	if req.Name != "" {
		coffee.Name = req.Name
	}
	if req.Description != "" {
		coffee.Description = req.Description
	}
	if req.CategoryID > 0 {
		coffee.CategoryID = req.CategoryID
	}
	if req.Price > 0 {
		coffee.Price = req.Price
	}
	if req.ImageURL != "" {
		coffee.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		coffee.IsActive = *req.IsActive
	}

	if err := s.coffeeRepo.Update(coffee); err != nil {
		return nil, err
	}

	if oldImageURL != "" && coffee.ImageURL != oldImageURL {
		if err := libs.RemoveImage(oldImageURL); err != nil {
			log.Printf("Failed to remove replaced coffee image: %v", err)
		}
	}

	return coffee, nil
}

func (s *CoffeeService) DeleteCoffee(id int) error {
	if _, err := s.coffeeRepo.FindByID(id); err != nil {
		return errors.New("coffee not found")
	}
	return s.coffeeRepo.Delete(id)
}
