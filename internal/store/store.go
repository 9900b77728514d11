package store

import (
	"errors"

	"github.com/bigBrother1996/devConnector/internal/models"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("record not found")

// UserStore is the user directory: identity records keyed by id and unique
// email.
type UserStore interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
	Delete(id uuid.UUID) error
}

// ProfileStore persists profile documents keyed by the owning user's id.
type ProfileStore interface {
	FindByUserID(userID uuid.UUID) (*models.Profile, error)
	// FindAll returns every profile with its owner loaded.
	FindAll() ([]models.Profile, error)
	Create(profile *models.Profile) error
	Save(profile *models.Profile) error
	// DeleteWithUser removes the profile and its owning user together.
	DeleteWithUser(userID uuid.UUID) error
}
