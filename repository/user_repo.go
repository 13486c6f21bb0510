package repository

import "portfolioapi/models"

// UserRepository defines the interface for user operations
type UserRepository interface {
	CreateUser(user *models.AppUser) error
	GetUserByUsername(username string) (*models.AppUser, error)
	GetUserByID(id int64) (*models.AppUser, error)
	UpdatePassword(id int64, passwordHash string) error
}
