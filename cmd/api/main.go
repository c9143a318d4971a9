package main

import (
	"context"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prepdrill/prepdrill/internal/cache"
	"github.com/prepdrill/prepdrill/internal/coach"
	"github.com/prepdrill/prepdrill/internal/config"
	"github.com/prepdrill/prepdrill/internal/database"
	"github.com/prepdrill/prepdrill/internal/evaluator"
	"github.com/prepdrill/prepdrill/internal/handler"
	"github.com/prepdrill/prepdrill/internal/logger"
	"github.com/prepdrill/prepdrill/internal/openai"
	"github.com/prepdrill/prepdrill/internal/questionbank"
	"github.com/prepdrill/prepdrill/internal/repository"
	"github.com/prepdrill/prepdrill/internal/session"
	"github.com/prepdrill/prepdrill/internal/store"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type application struct {
	Config  *config.Config
	Logger  *zap.Logger
	Handler *handler.Handler
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			sugar.Warnw("redis unavailable, question caching disabled", "err", err)
			redisClient = nil
		}
	}

	var provider questionbank.Provider
	switch {
	case cfg.Questions.Source == "remote":
		provider = questionbank.NewRemoteProvider(cfg.Questions.RemoteURL, redisClient, cfg.Questions.CacheTTL, log)
		sugar.Infof("using remote question source: %s", cfg.Questions.RemoteURL)
	case cfg.Questions.BankFile != "":
		provider, err = questionbank.NewStaticProviderFromFile(cfg.Questions.BankFile)
		if err != nil {
			sugar.Fatalw("failed to load question bank", "file", cfg.Questions.BankFile, "err", err)
		}
		sugar.Infof("loaded question bank from %s", cfg.Questions.BankFile)
	default:
		provider = questionbank.NewStaticProvider()
	}

	llmClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.Timeout)
	eval := evaluator.NewLLMEvaluator(llmClient, cfg.OpenAI.MaxTokens, log)
	engine := session.NewEngine(provider, eval)
	fileStore := store.NewFileStore(cfg.SessionsDir, cfg.ConversationsDir)

	var archive *repository.Repository
	if cfg.DB.DSN != "" {
		pool, err := database.Connect(ctx, cfg.DB.DSN)
		if err != nil {
			sugar.Fatal(err)
		}
		defer pool.Close()
		archive = repository.NewRepository(pool)
		sugar.Info("session archive enabled")
	}

	app := &application{
		Config: cfg,
		Logger: log,
		Handler: &handler.Handler{
			Logger:  log,
			Engine:  engine,
			Store:   fileStore,
			Archive: archive,
			Coach:   coach.New(llmClient, cfg.OpenAI.Temperature),
		},
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
