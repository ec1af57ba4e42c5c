package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	customerRoute "github.com/lgwakano/workflow-api/internals/features/customers/route"
	jobRoute "github.com/lgwakano/workflow-api/internals/features/jobs/route"
	notificationRoute "github.com/lgwakano/workflow-api/internals/features/notifications/route"
	questionRoute "github.com/lgwakano/workflow-api/internals/features/questions/route"
	userRoute "github.com/lgwakano/workflow-api/internals/features/users/route"
	workerRoute "github.com/lgwakano/workflow-api/internals/features/workers/route"
	authMiddleware "github.com/lgwakano/workflow-api/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// Login + user management carry their own middleware.
	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db)

	// Everything else requires an authenticated principal.
	api := app.Group("/", authMiddleware.AuthMiddleware())

	log.Println("[INFO] Setting up CustomerRoutes...")
	customerRoute.CustomerRoutes(api, db)

	log.Println("[INFO] Setting up QuestionRoutes...")
	questionRoute.QuestionRoutes(api, db)

	log.Println("[INFO] Setting up JobRoutes...")
	jobRoute.JobRoutes(api, db)

	log.Println("[INFO] Setting up WorkerRoutes...")
	workerRoute.WorkerRoutes(api, db)

	log.Println("[INFO] Setting up NotificationRoutes...")
	notificationRoute.NotificationRoutes(api, db)
}
