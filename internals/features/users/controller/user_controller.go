package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lgwakano/workflow-api/internals/constants"
	"github.com/lgwakano/workflow-api/internals/features/users/dto"
	"github.com/lgwakano/workflow-api/internals/features/users/model"
	"github.com/lgwakano/workflow-api/internals/features/users/service"
	helper "github.com/lgwakano/workflow-api/internals/helpers"
	"github.com/lgwakano/workflow-api/internals/helpers/dberr"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := ctrl.DB.Find(&users).Error; err != nil {
		return dberr.Respond(c, err, "user", "Failed to fetch all users.")
	}
	return c.JSON(users)
}

func (ctrl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return dberr.Respond(c, err, "user", "Failed to fetch user.")
	}
	return c.JSON(user)
}

func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req dto.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user.")
	}

	user := model.UserModel{
		Username: req.Username,
		Password: hashed,
		Role:     req.Role,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return dberr.Respond(c, err, "user", "Failed to create user.")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return dberr.Respond(c, err, "user", "Failed to update user.")
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Role != "" {
		if !constants.IsValidRole(req.Role) {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid role")
		}
		user.Role = req.Role
	}
	if req.Password != "" {
		hashed, err := service.HashPassword(req.Password)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user.")
		}
		user.Password = hashed
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		return dberr.Respond(c, err, "user", "Failed to update user.")
	}
	return c.JSON(user)
}

func (ctrl *UserController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		return dberr.Respond(c, err, "user", "Failed to delete user.")
	}
	if err := ctrl.DB.Delete(&user).Error; err != nil {
		return dberr.Respond(c, err, "user", "Failed to delete user.")
	}
	return helper.Message(c, "User deleted successfully")
}
