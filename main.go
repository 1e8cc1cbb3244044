// @title MDDRC Training API
// @version 1.0
// @description Training sessions, tests, feedback, checklists, attendance, certificates and reports.
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.

//go:generate swag init -g main.go -o docs

package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"mddrc-backend/bootstrap"
	"mddrc-backend/config"
	"mddrc-backend/database"
	_ "mddrc-backend/docs"
	"mddrc-backend/internal/controllers"
	"mddrc-backend/internal/logsvc"
	"mddrc-backend/internal/mailsvc"
	"mddrc-backend/internal/repository"
	"mddrc-backend/internal/repository/inmem"
	"mddrc-backend/internal/routes"
	"mddrc-backend/internal/services"
	"mddrc-backend/internal/store"
	"mddrc-backend/internal/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logsvc.New(cfg.RollbarToken, cfg.Env, cfg.Debug)
	if rl, ok := lg.(*logsvc.RollbarLogger); ok {
		defer rl.Close()
	}

	loc, _ := time.LoadLocation(cfg.Timezone)

	var st *store.Stores
	switch cfg.Storage {
	case config.StorageMemory:
		lg.Warn("STORAGE=memory, data is lost on exit")
		st = inmem.NewStores()
	default:
		client, db, err := database.ConnectMongo(context.Background(), cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			lg.Fatal("connect mongo", err)
		}
		defer database.Disconnect(client)

		if err := bootstrap.EnsureIndexes(context.Background(), db); err != nil {
			lg.Fatal("ensure indexes failed", err)
		}
		st = repository.NewStores(db)
	}

	if err := os.MkdirAll(cfg.StaticDir, 0o755); err != nil {
		lg.Fatal("create static dir", err)
	}

	svc := services.New(st, services.Options{
		Clock:                      utils.NewClock(loc),
		JWTSecret:                  cfg.JWTSecret,
		JWTTTL:                     cfg.JWTTTL,
		ResetTokenTTL:              cfg.ResetTokenTTL,
		DefaultParticipantPassword: cfg.DefaultParticipantPassword,
		TempEmailDomain:            cfg.TempEmailDomain,
		FrontendURL:                cfg.FrontendURL,
		StaticDir:                  cfg.StaticDir,
		Mailer:                     mailsvc.New(cfg.SendgridAPIKey, cfg.MailFrom, "MDDRC", lg),
		Log:                        lg,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: controllers.ErrorHandler(lg),
		BodyLimit:    20 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Static(services.StaticURLPrefix, cfg.StaticDir)

	routes.Setup(app, svc, cfg.JWTSecret)

	lg.Info("listening on :" + cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		lg.Fatal("server stopped", err)
	}
}
