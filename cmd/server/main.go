// Command server starts the AI customer chat relay HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/fairyhunter13/ai-customer-chat/internal/adapter/ai"
	"github.com/fairyhunter13/ai-customer-chat/internal/adapter/ai/provider"
	"github.com/fairyhunter13/ai-customer-chat/internal/adapter/ai/stub"
	httpserver "github.com/fairyhunter13/ai-customer-chat/internal/adapter/httpserver"
	"github.com/fairyhunter13/ai-customer-chat/internal/adapter/observability"
	"github.com/fairyhunter13/ai-customer-chat/internal/adapter/repo/postgres"
	"github.com/fairyhunter13/ai-customer-chat/internal/app"
	"github.com/fairyhunter13/ai-customer-chat/internal/config"
	"github.com/fairyhunter13/ai-customer-chat/internal/domain"
	"github.com/fairyhunter13/ai-customer-chat/internal/usecase"
)

func main() {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DBURL)
	if err != nil {
		slog.Error("db connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		slog.Error("db migrate failed", slog.Any("error", err))
		os.Exit(1)
	}

	customerRepo := postgres.NewCustomerRepo(pool)
	interactionRepo := postgres.NewInteractionRepo(pool)

	prompts, err := config.LoadPrompts(cfg.PromptsFile)
	if err != nil {
		slog.Error("prompts load failed", slog.Any("error", err))
		os.Exit(1)
	}

	registry := provider.NewRegistry(cfg)
	var providers usecase.ProviderResolver = registry
	if cfg.IsDev() && cfg.MiniMaxAPIKey == "" && cfg.OpenAIAPIKey == "" {
		// No credentials in dev: serve canned replies instead of failing
		// every chat request.
		slog.Warn("no provider API keys configured; using stub provider")
		st := stub.New()
		providers = provider.NewRegistryWith(map[string]domain.ChatProvider{
			"MiniMax-M2.5": st,
			"GPT-3.5":      st,
		}, registry.Catalog())
	}

	cleaner := ai.NewResponseCleaner()
	chatSvc := usecase.NewChatService(providers, cleaner, interactionRepo, prompts.Answer, prompts.Sentiment)
	customerSvc := usecase.NewCustomerService(customerRepo, interactionRepo)
	analyticsSvc := usecase.NewAnalyticsService(customerRepo, interactionRepo)

	srv := httpserver.NewServer(cfg, chatSvc, customerSvc, analyticsSvc, registry.Catalog(), func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	handler := app.BuildRouter(cfg, srv)

	httpSrv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		slog.Info("http server listening", slog.Int("port", cfg.Port), slog.String("env", cfg.AppEnv))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", slog.Any("error", err))
	}
}
