package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"velocity/internal/config"
	"velocity/internal/fixture"
	"velocity/internal/http/handlers"
	"velocity/internal/kv"
	applog "velocity/internal/log"
	"velocity/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	store, err := kv.Open(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	pol := services.Canonical()
	if cfg.Mode == "legacy" {
		pol = services.Legacy()
		log.Printf("[mode] legacy boundary emulation enabled")
	}

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Something went wrong. Please try again."})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	if cfg.SimLatencyMS > 0 {
		// Emulates the reference mock's fixed round-trip delay.
		delay := time.Duration(cfg.SimLatencyMS) * time.Millisecond
		app.Use(func(c *fiber.Ctx) error {
			time.Sleep(delay)
			return c.Next()
		})
	}

	// ---------- App handlers ----------
	deps := handlers.NewDeps(store, fixture.Default(), pol)

	// Demo pages
	app.Get("/", deps.Page.Home)

	// API
	api := app.Group("/api")
	api.Post("/auth/login", limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"detail": "too many attempts, retry soon"})
		},
	}), deps.Auth.Login)
	api.Get("/products", deps.Product.List)
	api.Get("/products/:id", deps.Product.Detail)
	api.Get("/cart/:userId", deps.Cart.Get)
	api.Post("/cart/add", deps.Cart.Add)
	api.Put("/cart/:itemId", deps.Cart.Update)
	api.Delete("/cart/:itemId", deps.Cart.Remove)
	api.Post("/orders", deps.Order.Create)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Not found"})
		}
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
