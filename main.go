package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pokemon-battle-system/config"
	"pokemon-battle-system/handlers"
	"pokemon-battle-system/models"
	"pokemon-battle-system/pokeapi"
	"pokemon-battle-system/services"
	"pokemon-battle-system/workers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment variables directly")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatal("failed to load configuration: ", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.URL), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(
		&models.Pokemon{},
		&models.Battle{},
	); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	app := fiber.New(fiber.Config{
		AppName: fmt.Sprintf("%s %s", cfg.API.Title, cfg.API.Version),
	})
	app.Use(cors.New())
	if cfg.API.Debug {
		app.Use(logger.New())
	}

	cache := pokeapi.NewCache(cfg.Cache.PokemonTTL())
	client := pokeapi.NewClient(cfg.PokeAPI.BaseURL, cfg.PokeAPI.Timeout(), cache)

	pokemonService := services.NewPokemonService(db, client)
	battleService := services.NewBattleService(db, pokemonService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go workers.RunCacheJanitor(ctx, cache, 10*time.Minute)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "version": cfg.API.Version})
	})
	handlers.SetupPokemonRoutes(app, pokemonService)
	handlers.SetupBattleRoutes(app, battleService)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Printf("server error: %v", err)
		}
	}()
	log.Printf("%s listening on %s", cfg.API.Title, addr)

	<-ctx.Done()
	log.Println("shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
