package app

import (
	"user-service/config"
	"user-service/controller"
	"user-service/models"
	"user-service/repository"
	"user-service/usecase"

	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// App holds the wired user-management components.
type App struct {
	Repository     *repository.MemoryUserRepository
	SaveUser       *usecase.SaveUserUseCase
	UserController *controller.UserController
}

// InitLogger sets up the shared logger
func InitLogger() {
	logger.Init(logger.LoggerConfig{
		CallerKey:  "file",
		TimeKey:    "timestamp",
		CallerSkip: 1,
	})
}

// New wires repository -> use case -> controller. Each App owns its own repository.
func New(cfg config.Config) *App {
	models.HashCost = cfg.HashCost

	repo := repository.NewMemoryUserRepository()
	saveUser := usecase.NewSaveUserUseCase(repo)
	userController := controller.NewUserController(saveUser)

	logger.Info("User service initialized", zap.Int("hash_cost", cfg.HashCost))

	return &App{
		Repository:     repo,
		SaveUser:       saveUser,
		UserController: userController,
	}
}

// LogUsers logs every stored user (never the password hash).
func (a *App) LogUsers() {
	users := a.Repository.GetAll()
	logger.Info("Stored users", zap.Int("count", len(users)))
	for id, user := range users {
		logger.Info("User", zap.Int("user_id", id), zap.String("name", user.Name()), zap.String("email", user.Email()))
	}
}
