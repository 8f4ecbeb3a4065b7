package controller

import (
	"user-service/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/umakantv/go-utils/errs"
	"go.uber.org/zap"
)

// UserCreatedMessage is the body returned by a successful Store.
const UserCreatedMessage = "User created"

// UserSaver is the use case the controller delegates to.
type UserSaver interface {
	Execute(request models.UserRequestDTO) error
}

// Response is what the controller hands back to its caller.
// Body is either a plain message or an errs payload.
type Response struct {
	OK   bool
	Body interface{}
	Err  error
}

// UserController adapts raw input into a UserRequestDTO for the save use case
type UserController struct {
	saveUser UserSaver
}

// NewUserController creates a new user controller
func NewUserController(saveUser UserSaver) *UserController {
	return &UserController{
		saveUser: saveUser,
	}
}

// Store creates a user from raw name/email/password input.
func (c *UserController) Store(data map[string]string) Response {
	requestID := uuid.New().String()

	name, hasName := data["name"]
	email, hasEmail := data["email"]
	password, hasPassword := data["password"]
	if !hasName || !hasEmail || !hasPassword {
		logRequest("StoreUser", requestID, "error", "Missing required fields",
			zap.Bool("name", hasName), zap.Bool("email", hasEmail), zap.Bool("password", hasPassword))
		return Response{
			Body: errs.NewValidationError("Name, email, and password are required"),
			Err:  errors.New("missing required fields"),
		}
	}

	logRequest("StoreUser", requestID, "info", "Creating user", zap.String("name", name), zap.String("email", email))

	request := models.UserRequestDTO{
		Name:     name,
		Email:    email,
		Password: password,
	}
	if err := c.saveUser.Execute(request); err != nil {
		logRequest("StoreUser", requestID, "error", "Failed to create user", zap.Error(err))
		return Response{
			Body: errs.NewInternalServerError("Failed to create user"),
			Err:  errors.Wrap(err, "store user"),
		}
	}

	logRequest("StoreUser", requestID, "info", "User created successfully")

	return Response{
		OK:   true,
		Body: UserCreatedMessage,
	}
}
