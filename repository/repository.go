package repository

import (
	"errors"
	"fmt"

	"user-service/models"
)

// ErrUserNotFound is matched by every "user does not exist" failure.
var ErrUserNotFound = errors.New("user does not exist")

// NotFoundError is returned when no user is stored under ID.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user with ID %d does not exist", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrUserNotFound
}

// UserRepository abstracts storage of users from the use cases.
type UserRepository interface {
	Save(user *models.User)
	Update(user *models.User) error
	Delete(user *models.User)
	GetByID(id int) (*models.User, bool)
}
