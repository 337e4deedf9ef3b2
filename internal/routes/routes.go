package routes

import (
	"log"

	"github.com/NyaySahayak/nyaysahayak_backend/internal/config"
	"github.com/NyaySahayak/nyaysahayak_backend/internal/controllers"
	"github.com/NyaySahayak/nyaysahayak_backend/internal/middlewares"
	"github.com/NyaySahayak/nyaysahayak_backend/internal/repository"
	"github.com/NyaySahayak/nyaysahayak_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, services and controllers into a gin engine
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// repositories
	actRepo := repository.NewActRepository(db)
	savedActRepo := repository.NewSavedActRepository(db)
	lawyerRepo := repository.NewLawyerRepository(db)
	userRepo := repository.NewUserRepository(db)

	// acts lookup capability: remote acts service when configured, otherwise
	// this process's own acts table
	var actsClient services.ActsClient
	if cfg.Acts.ServiceURL != "" {
		log.Printf("using remote acts service at %s", cfg.Acts.ServiceURL)
		actsClient = services.NewActsHTTPClient(cfg.Acts.ServiceURL, cfg.Acts.Timeout)
	} else {
		actsClient = services.NewLocalActsClient(actRepo)
	}

	// services
	actService := services.NewActService(actRepo)
	savedActService := services.NewSavedActService(savedActRepo, actsClient)
	lawyerService := services.NewLawyerService(lawyerRepo)
	userService := services.NewUserService(userRepo)
	groqService := services.NewGroqService(cfg)

	// controllers
	actController := controllers.NewActController(actService)
	savedActController := controllers.NewSavedActController(savedActService)
	lawyerController := controllers.NewLawyerController(lawyerService)
	userController := controllers.NewUserController(userService)
	groqController := controllers.NewGroqController(groqService)
	healthController := controllers.NewHealthController()

	r.GET("/health", healthController.Check)

	api := r.Group("/api")
	{
		acts := api.Group("/acts")
		{
			acts.GET("", actController.List)
			acts.GET("/:id", actController.GetByID)
			acts.POST("", actController.Create)
			acts.PUT("/:id", actController.Update)
			acts.DELETE("/:id", actController.Delete)
		}

		savedActs := api.Group("/saved-acts")
		{
			savedActs.POST("", savedActController.Save)
			savedActs.GET("/user/:userEmail", savedActController.List)
			savedActs.DELETE("/user/:userEmail/act/:actId", savedActController.Remove)
			savedActs.GET("/user/:userEmail/act/:actId/is-saved", savedActController.IsSaved)
			savedActs.GET("/user/:userEmail/count", savedActController.Count)
		}

		lawyers := api.Group("/lawyers")
		{
			lawyers.GET("", lawyerController.List)
			lawyers.POST("", lawyerController.Add)
		}

		users := api.Group("/users")
		{
			users.POST("/saveUser", userController.Save)
			users.GET("/getUser", userController.Get)
		}

		groq := api.Group("/groq")
		{
			groq.POST("/summarize", groqController.Summarize)
			groq.POST("/analyze", groqController.Analyze)
			groq.POST("/get-advice", groqController.GetAdvice)
			groq.POST("/categories", groqController.Categories)
		}
	}

	return r
}
