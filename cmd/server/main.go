package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/adapter/storage"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/logger"
	"resume-builder/internal/model"
	"resume-builder/internal/store"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/pflag"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// infra setup
	var pool *pgxpool.Pool
	if p, err := infra.NewPool(ctx, cfg.Database.URL); err != nil {
		if !errors.Is(err, infra.ErrNoDatabase) {
			logger.Warn().Err(err).Msg("exports DB not available")
		}
	} else {
		pool = p
		defer pool.Close()
		if err := migration.RunMigrations(ctx, pool); err != nil {
			logger.Fatal().Err(err).Msg("migrations failed")
		}
	}

	writer, err := newStorage(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("storage setup failed")
	}

	renderer := infra.NewChromedpRenderer(infra.ChromedpOptions{
		ExecPath:    cfg.Renderer.ChromePath,
		Timeout:     cfg.Renderer.Timeout(),
		PaperWidth:  cfg.Renderer.PaperWidth,
		PaperHeight: cfg.Renderer.PaperHeight,
	})
	exporter := usecase.NewExporter(renderer, writer,
		usecase.WithAttempts(cfg.Renderer.Attempts),
		usecase.WithExportsRepo(repo.NewExportsRepo(pool)),
	)

	resume := store.New()
	resume.Subscribe(func(s model.Snapshot) {
		logger.Debug().Str("fullName", s.FullName).Int("skills", len(s.Skills)).Msg("resume changed")
	})

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	httpadapter.NewHandler(resume, exporter, cfg.Renderer.Timeout()*time.Duration(cfg.Renderer.Attempts+1)).Register(app)

	go func() {
		<-ctx.Done()
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	logger.Info().Str("port", cfg.Server.Port).Str("storage", cfg.Storage.Backend).Msg("server listening")
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

func newStorage(ctx context.Context, cfg *config.Config) (storage.Writer, error) {
	if cfg.Storage.Backend == "minio" {
		s, err := storage.NewMinIOStorage(ctx, cfg.Storage.MinIO, logger.Component("minio"))
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return storage.NewFileStorage(cfg.Storage.Dir), nil
}
