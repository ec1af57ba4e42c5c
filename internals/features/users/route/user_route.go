package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lgwakano/workflow-api/internals/constants"
	userController "github.com/lgwakano/workflow-api/internals/features/users/controller"
	"github.com/lgwakano/workflow-api/internals/middlewares"
	authMiddleware "github.com/lgwakano/workflow-api/internals/middlewares/auth"
)

// UserRoutes registers the public login route and the admin-only user
// management routes.
func UserRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := userController.NewAuthController(db)
	userCtrl := userController.NewUserController(db)

	app.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)

	users := app.Group("/users",
		authMiddleware.AuthMiddleware(),
		authMiddleware.RequireRoles("user management", constants.RoleAdmin),
	)
	users.Get("/", userCtrl.GetAll)
	users.Get("/:id", userCtrl.GetByID)
	users.Post("/", userCtrl.Create)
	users.Put("/:id", userCtrl.Update)
	users.Delete("/:id", userCtrl.Delete)
}
