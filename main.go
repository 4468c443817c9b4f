package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/eventlyhq/eventbackend/config"
	"github.com/eventlyhq/eventbackend/controllers"
	"github.com/eventlyhq/eventbackend/database"
	"github.com/eventlyhq/eventbackend/genai"
	"github.com/eventlyhq/eventbackend/middleware"
	"github.com/eventlyhq/eventbackend/models"
	"github.com/eventlyhq/eventbackend/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	usersCol := database.OpenCollection(client, cfg, "users")
	eventsCol := database.OpenCollection(client, cfg, "events")
	if err := database.EnsureIndexes(ctx, usersCol, eventsCol); err != nil {
		log.Fatal(err)
	}

	users := store.NewMongoUserStore(usersCol)
	events := store.NewMongoEventStore(eventsCol)
	generator := genai.NewClient(genai.Config{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	})

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	allowedOrigins := map[string]bool{}
	for _, origin := range cfg.AllowedOrigins {
		allowedOrigins[origin] = true
	}
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", controllers.Home())

	api := r.Group("/api")
	api.GET("/health", controllers.Health(client))

	api.POST("/user-signup", controllers.Signup(users, models.RoleUser))
	api.POST("/admin-signup", controllers.Signup(users, models.RoleAdmin))
	api.POST("/user-login", controllers.Login(users, models.RoleUser, cfg))
	api.POST("/admin-login", controllers.Login(users, models.RoleAdmin, cfg))
	api.POST("/token-refresh", controllers.Refresh(users, cfg))

	api.GET("/get-events", controllers.GetEvents(events))
	api.GET("/get-event/:id", controllers.GetEventDetails(events))

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(users, cfg.JWTSecret))
	{
		protected.POST("/create-event", controllers.CreateEvent(events, users))
		protected.GET("/my-events", controllers.MyEvents(events))
		protected.POST("/generate-event-description", controllers.GenerateDescription(generator))
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
