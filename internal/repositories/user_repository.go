package repositories

import "github.com/swaupd/OsBlogApp/internal/models"

// UserRepository defines the interface for user data access. The Find methods
// return (nil, nil) when no user matches; an error always means the store
// itself failed.
type UserRepository interface {
	GetAll() ([]models.User, error)
	Append(user models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByCredentials(username, password string) (*models.User, error)
}
