package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	controller "project-user-api/controllers"
	"project-user-api/middleware"
	"project-user-api/repository"
	"project-user-api/services"
	"project-user-api/tempstore"
)

// SetupRoutes wires the store, services and controllers into the Fiber app.
func SetupRoutes(app *fiber.App, db *gorm.DB, tempUsers tempstore.Store) {
	store := repository.NewStore(db)

	workspaceService := services.NewWorkspaceService(store)
	userService := services.NewUserService(store)
	imageService := services.NewImageService(store)

	workspaceController := controller.NewWorkspaceController(workspaceService)
	userController := controller.NewUserController(userService)
	profileController := controller.NewProfileController(userService, imageService)
	tempAuthController := controller.NewTempAuthController(tempUsers)

	requestLogger := logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	})

	// Temporary auth endpoints, public.
	temp := app.Group("/temp", requestLogger)
	temp.Post("/signup", tempAuthController.Signup)
	temp.Post("/login", tempAuthController.Login)

	api := app.Group("/api/v1", requestLogger, middleware.Protected())

	workspaces := api.Group("/workspaces")
	workspaces.Post("/", workspaceController.CreateWorkspace)
	workspaces.Get("/", workspaceController.GetUserWorkspaces)
	workspaces.Get("/:workspaceId", workspaceController.GetWorkspace)
	workspaces.Put("/:workspaceId", workspaceController.UpdateWorkspace)
	workspaces.Delete("/:workspaceId", workspaceController.DeleteWorkspace)
	workspaces.Post("/:workspaceId/reactivate", workspaceController.ReactivateWorkspace)
	workspaces.Get("/:workspaceId/settings", workspaceController.GetWorkspaceSettings)
	workspaces.Put("/:workspaceId/settings", workspaceController.UpdateWorkspaceSettings)
	workspaces.Post("/:workspaceId/default", workspaceController.SetDefaultWorkspace)

	workspaces.Get("/:workspaceId/members", workspaceController.GetWorkspaceMembers)
	workspaces.Put("/:workspaceId/members/:memberId/role", workspaceController.UpdateMemberRole)
	workspaces.Delete("/:workspaceId/members/:memberId", workspaceController.RemoveMember)

	workspaces.Post("/:workspaceId/join-requests", workspaceController.CreateJoinRequest)
	workspaces.Get("/:workspaceId/join-requests", workspaceController.GetJoinRequests)
	workspaces.Put("/:workspaceId/join-requests/:requestId", workspaceController.UpdateJoinRequest)
	workspaces.Post("/:workspaceId/join-requests/:userId/approve", workspaceController.ApproveJoinRequest)
	workspaces.Post("/:workspaceId/join-requests/:userId/reject", workspaceController.RejectJoinRequest)

	users := api.Group("/users")
	users.Get("/", userController.ListUsers)
	users.Get("/me", userController.GetMe)
	users.Delete("/me", userController.DeleteMe)
	users.Get("/search", userController.SearchUsers)
	users.Post("/batch", userController.BatchGetUsers)
	users.Post("/:userId/reactivate", userController.ReactivateUser)

	profiles := api.Group("/profiles")
	profiles.Get("/me", profileController.GetProfile)
	profiles.Put("/me", profileController.UpdateProfile)
	profiles.Get("/me/image", profileController.GetProfileImage)
	profiles.Put("/me/image", profileController.SaveProfileImage)
	profiles.Delete("/me/image", profileController.DeleteProfileImage)
}
