package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/blog-generator/internal/api"
	blogapi "github.com/futig/blog-generator/internal/api/blog"
	"github.com/futig/blog-generator/internal/api/page"
	"github.com/futig/blog-generator/internal/config"
	"github.com/futig/blog-generator/internal/integration/generator"
	"github.com/futig/blog-generator/internal/pkg/formatter"
	"github.com/futig/blog-generator/internal/pkg/logger"
	"github.com/futig/blog-generator/internal/repository"
	"github.com/futig/blog-generator/internal/telegram"
	"github.com/futig/blog-generator/internal/tui"
	"github.com/futig/blog-generator/internal/usecase/blog"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// core holds the pieces every host shares
type core struct {
	cfg       *config.Config
	logger    *zap.Logger
	generator blog.Generator
	exporter  *formatter.Factory
	usecase   *blog.Usecase
}

func buildCore(cfg *config.Config, logger *zap.Logger) *core {
	var gen blog.Generator
	if cfg.EnableMocks {
		logger.Info("Using mock generator", zap.Duration("delay", cfg.MockDelay))
		gen = generator.NewMockConnector(logger, cfg.MockDelay)
	} else {
		logger.Info("Using generation service", zap.String("endpoint", cfg.GeneratorCfg.EndpointURL))
		gen = generator.NewConnector(cfg.GeneratorCfg, logger)
	}

	sessions := repository.NewSessionCache(cfg.SessionCfg.TTL, cfg.SessionCfg.CleanupInterval, logger)
	exporter := formatter.NewFactory()

	uc := blog.NewUsecase(sessions, gen, exporter, cfg.Credits, logger)
	logger.Info("Use cases initialized", zap.Int("credits", len(cfg.Credits)))

	return &core{
		cfg:       cfg,
		logger:    logger,
		generator: gen,
		exporter:  exporter,
		usecase:   uc,
	}
}

// Build creates the web application
func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	c := buildCore(cfg, log)

	pageHandler := page.NewHandler(c.usecase, cfg.SessionCfg, cfg.LoadingRefresh)
	blogHandler := blogapi.NewHandler(c.usecase)
	log.Info("API handlers initialized")

	router := api.SetupRouter(pageHandler, blogHandler, log)
	log.Info("HTTP router configured")

	// No write timeout: the JSON API waits for generation as long as it takes
	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:  server,
		usecase: c.usecase,
		logger:  log,
	}, nil
}

// BuildTUI creates the terminal application. Logs go to LOG_FILE because the
// terminal belongs to the UI.
func BuildTUI() (*TUIApp, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.NewFile(cfg.LogLevel, cfg.Environment, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building terminal UI",
		zap.String("environment", cfg.Environment),
		zap.String("export_dir", cfg.ExportDir),
	)

	c := buildCore(cfg, log)

	ctx := ctxzap.ToContext(context.Background(), log.With(zap.String("host", "tui")))
	model := tui.NewModel(ctx, c.generator, c.exporter, cfg.Credits, cfg.ExportDir)

	return &TUIApp{
		model:  model,
		logger: log,
	}, nil
}

// BuildTelegramBot creates and initializes the Telegram bot
func BuildTelegramBot() (telegram.Bot, *zap.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.TelegramCfg.BotToken == "" {
		return nil, nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required for the telegram bot")
	}

	log.Info("Building Telegram bot",
		zap.String("environment", cfg.Environment),
	)

	c := buildCore(cfg, log)

	bot, err := telegram.NewBot(&cfg.TelegramCfg, cfg.SessionCfg, c.usecase, log)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize telegram bot: %w", err)
	}

	log.Info("Telegram bot built successfully",
		zap.String("environment", cfg.Environment),
	)

	return bot, log, nil
}
