package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mahir817/Paint-it/internal/game"
	"github.com/mahir817/Paint-it/internal/transport"
	"github.com/mahir817/Paint-it/internal/words"
	"github.com/mahir817/Paint-it/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	bank := words.DefaultBank()
	hub := transport.NewHub()
	coord := game.NewCoordinator(bank, hub, clockwork.NewRealClock())
	hub.BindCoordinator(coord)

	app := fiber.New()
	app.Use(cors.New())

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/:roomId/:name", websocket.New(func(c *websocket.Conn) {
		hub.HandleConnection(c, c.Params("roomId"), c.Params("name"))
	}))

	app.Post("/room/create", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"roomId": utils.GenShortID()})
	})

	app.Get("/api/categories", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"categories": bank.Categories()})
	})

	app.Get("/api/rooms", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"rooms": coord.RoomIDs()})
	})

	app.Get("/api/rooms/:id", func(c *fiber.Ctx) error {
		snap, err := coord.RequestState(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(snap)
	})

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	port := getEnvAsInt("PORT", 3000)
	log.Info().Int("port", port).Msg("server starting")
	if err := app.Listen(fmt.Sprintf(":%d", port)); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
