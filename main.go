package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"fbcal_workspace/bootstrap"
	"fbcal_workspace/database"
	"fbcal_workspace/internal/graph"
	"fbcal_workspace/internal/modal"
	"fbcal_workspace/internal/repository"
	"fbcal_workspace/internal/routes"
	"fbcal_workspace/services"
)

func init() {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func main() {
	cfg := database.LoadConfig()
	if cfg.InstanceSecret == "" {
		log.Fatal("INSTANCE_SECRET is required")
	}
	if cfg.FBAppID == "" || cfg.FBAppSecret == "" {
		log.Fatal("FB_APP_ID and FB_APP_SECRET are required")
	}

	client := database.ConnectMongo()
	defer database.DisconnectMongo(client)

	if err := bootstrap.EnsureWidgetIndexes(client.Database(cfg.DBName)); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	svc := &services.Service{
		Repo:  repository.NewMongoWidgetUserRepo(client, cfg.DBName),
		Graph: graph.NewClient(cfg.GraphBaseURL),
		Cfg:   cfg,
	}
	store := modal.NewStore()
	defer store.Shutdown()

	app := fiber.New()
	app.Use(cors.New())
	routes.RegisterRoutes(app, svc, store, cfg.InstanceSecret)

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
