package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lgwakano/workflow-api/internals/features/users/dto"
	"github.com/lgwakano/workflow-api/internals/features/users/service"
	helper "github.com/lgwakano/workflow-api/internals/helpers"
	"github.com/lgwakano/workflow-api/internals/helpers/dberr"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login validates credentials and issues a one-hour bearer token.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.Authenticate(ctrl.DB, req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return helper.Error(c, fiber.StatusUnauthorized, "Incorrect username or password")
	}
	if err != nil {
		return dberr.Respond(c, err, "user", "Failed on login.")
	}

	token, err := service.IssueToken(user)
	if err != nil {
		return dberr.Respond(c, err, "user", "Failed on login.")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}
