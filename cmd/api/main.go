package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"progee-api/internal/handler"
	"progee-api/internal/middleware"
	"progee-api/internal/model"
	"progee-api/internal/repository"
	"progee-api/internal/service"
	"progee-api/internal/ws"
	"progee-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Permission{}, &model.Role{}, &model.User{},
		&model.Language{}, &model.Framework{}, &model.Review{})

	// 3. Seed permission catalog, roles, and the super admin account
	seedPermissionsRolesAndAdmin(db)

	// 4. Setup the moderation event hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	permissionRepo := repository.NewPermissionRepo(db)
	languageRepo := repository.NewLanguageRepo(db)
	frameworkRepo := repository.NewFrameworkRepo(db)
	reviewRepo := repository.NewReviewRepo(db)

	authService := service.NewAuthService(userRepo, roleRepo)
	userService := service.NewUserService(userRepo, roleRepo)
	roleService := service.NewRoleService(roleRepo, permissionRepo)
	languageService := service.NewLanguageService(languageRepo, wsHub)
	frameworkService := service.NewFrameworkService(frameworkRepo, languageRepo, wsHub)
	reviewService := service.NewReviewService(reviewRepo, languageRepo, db, wsHub)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roleHandler := handler.NewRoleHandler(roleService)
	languageHandler := handler.NewLanguageHandler(languageService)
	frameworkHandler := handler.NewFrameworkHandler(frameworkService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Progee API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// Every request gets an actor: authenticated from a valid token,
	// anonymous otherwise. Permission checks live in the services.
	api.Use(middleware.ResolveActor(userRepo))

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/validate-token", authHandler.ValidateToken)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// Language Routes (reads are public, visibility narrowed per actor)
	api.Get("/languages", languageHandler.GetLanguages)
	api.Get("/languages/:id", languageHandler.GetLanguage)
	api.Post("/languages", middleware.RequireAuth(), languageHandler.CreateLanguage)
	api.Put("/languages/:id", middleware.RequireAuth(), languageHandler.UpdateLanguage)
	api.Patch("/languages/:id/state", middleware.RequireAuth(), languageHandler.SetLanguageState)
	api.Delete("/languages/:id", middleware.RequireAuth(), languageHandler.DeleteLanguage)

	// Framework Routes (nested under their language for list/create)
	api.Get("/languages/:id/frameworks", frameworkHandler.GetFrameworks)
	api.Post("/languages/:id/frameworks", middleware.RequireAuth(), frameworkHandler.CreateFramework)
	api.Get("/frameworks/:id", frameworkHandler.GetFramework)
	api.Put("/frameworks/:id", middleware.RequireAuth(), frameworkHandler.UpdateFramework)
	api.Patch("/frameworks/:id/state", middleware.RequireAuth(), frameworkHandler.SetFrameworkState)
	api.Delete("/frameworks/:id", middleware.RequireAuth(), frameworkHandler.DeleteFramework)

	// Review Routes
	api.Get("/languages/:id/reviews", reviewHandler.GetReviews)
	api.Post("/languages/:id/reviews", middleware.RequireAuth(), reviewHandler.CreateReview)
	api.Get("/reviews/:id", reviewHandler.GetReview)
	api.Put("/reviews/:id", middleware.RequireAuth(), reviewHandler.UpdateReview)
	api.Patch("/reviews/:id/state", middleware.RequireAuth(), reviewHandler.SetReviewState)
	api.Delete("/reviews/:id", middleware.RequireAuth(), reviewHandler.DeleteReview)
	api.Post("/reviews/:id/vote", middleware.RequireAuth(), reviewHandler.VoteReview)

	// User Management Routes
	api.Get("/users", userHandler.GetUsers)
	api.Get("/users/:id", userHandler.GetUser)
	api.Put("/users/:id", middleware.RequireAuth(), userHandler.UpdateUser)
	api.Delete("/users/:id", middleware.RequireAuth(), userHandler.DeleteUser)
	api.Put("/users/:id/role", middleware.RequireAuth(), userHandler.SetUserRole)

	// Role Routes
	api.Get("/roles", roleHandler.GetRoles)
	api.Get("/roles/:id", roleHandler.GetRole)
	api.Post("/roles", middleware.RequireAuth(), roleHandler.CreateRole)
	api.Put("/roles/:id", middleware.RequireAuth(), roleHandler.UpdateRole)
	api.Delete("/roles/:id", middleware.RequireAuth(), roleHandler.DeleteRole)

	// Permissions Route (list the catalog)
	api.Get("/permissions", func(c *fiber.Ctx) error {
		permissions, err := permissionRepo.FindAll()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch permissions"})
		}
		return c.JSON(permissions)
	})

	// WebSocket Route: live moderation event feed
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedPermissionsRolesAndAdmin creates the permission catalog, the
// default roles with their grants, and a super admin account if they
// don't exist yet
func seedPermissionsRolesAndAdmin(db *gorm.DB) {
	permissionRepo := repository.NewPermissionRepo(db)
	roleRepo := repository.NewRoleRepo(db)
	userRepo := repository.NewUserRepo(db)

	// 1. Seed permissions first
	if err := permissionRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed permissions: %v", err)
	}

	// 2. Seed roles
	if err := roleRepo.SeedDefaults(); err != nil {
		log.Printf("Warning: Failed to seed roles: %v", err)
	}

	// 3. Assign permissions to roles
	allPermissions, _ := permissionRepo.FindAll()

	// SUPER_ADMIN gets ALL permissions
	superRole, err := roleRepo.FindByTitle(model.RoleSuperAdmin)
	if err == nil && len(superRole.Permissions) == 0 {
		if err := roleRepo.ReplacePermissions(superRole, allPermissions); err == nil {
			log.Println("SUPER_ADMIN role assigned all permissions")
		}
	}

	// MODERATOR gets all content permissions, no user/role management
	moderatorRole, err := roleRepo.FindByTitle(model.RoleModerator)
	if err == nil && len(moderatorRole.Permissions) == 0 {
		moderatorPermissions := []model.Permission{}
		for _, p := range allPermissions {
			if strings.HasPrefix(p.Code, "language:") ||
				strings.HasPrefix(p.Code, "framework:") ||
				strings.HasPrefix(p.Code, "review:") {
				moderatorPermissions = append(moderatorPermissions, p)
			}
		}
		if err := roleRepo.ReplacePermissions(moderatorRole, moderatorPermissions); err == nil {
			log.Println("MODERATOR role assigned content permissions")
		}
	}

	// USER (default) gets create plus the own-resource pairs
	userRole, err := roleRepo.FindByTitle(model.RoleUser)
	if err == nil && len(userRole.Permissions) == 0 {
		userCodes := map[string]bool{
			model.PermLanguageCreate:     true,
			model.PermLanguageUpdateOwn:  true,
			model.PermLanguageDeleteOwn:  true,
			model.PermFrameworkCreate:    true,
			model.PermFrameworkUpdateOwn: true,
			model.PermFrameworkDeleteOwn: true,
			model.PermReviewCreate:       true,
			model.PermReviewUpdateOwn:    true,
			model.PermReviewDeleteOwn:    true,
			model.PermUserUpdateOwn:      true,
			model.PermUserDeleteOwn:      true,
		}
		userPermissions := []model.Permission{}
		for _, p := range allPermissions {
			if userCodes[p.Code] {
				userPermissions = append(userPermissions, p)
			}
		}
		if err := roleRepo.ReplacePermissions(userRole, userPermissions); err == nil {
			log.Println("USER role assigned default permissions")
		}
	}

	// 4. Create the super admin account
	_, err = userRepo.FindByEmail("admin@progee.dev")
	if err != nil {
		superRole, _ := roleRepo.FindByTitle(model.RoleSuperAdmin)

		admin := &model.User{
			Name:     "Super Administrator",
			Email:    "admin@progee.dev",
			Username: "superadmin",
			RoleID:   &superRole.ID,
			IsActive: true,
		}

		if err := admin.SetPassword("admin123"); err != nil {
			log.Printf("Warning: Failed to hash admin password: %v", err)
			return
		}

		if err := userRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create admin user: %v", err)
		} else {
			log.Println("Admin user created: admin@progee.dev / admin123 (SUPER_ADMIN)")
		}
	}
}
