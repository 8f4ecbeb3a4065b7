package usecase

import (
	"user-service/models"
	"user-service/repository"

	"github.com/pkg/errors"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// SaveUserUseCase turns a request DTO into a new stored user.
type SaveUserUseCase struct {
	repository repository.UserRepository
}

func NewSaveUserUseCase(repository repository.UserRepository) *SaveUserUseCase {
	return &SaveUserUseCase{
		repository: repository,
	}
}

// Execute builds a transient user (no id, hashed password) and saves it.
func (uc *SaveUserUseCase) Execute(request models.UserRequestDTO) error {
	user, err := models.NewUser(nil, request.Name, request.Email, request.Password)
	if err != nil {
		logger.Error("Password hashing failed", zap.String("email", request.Email), zap.Error(err))
		return errors.Wrap(err, "failed to hash password")
	}

	uc.repository.Save(user)

	logger.Debug("User saved", zap.String("name", request.Name), zap.String("email", request.Email))
	return nil
}
