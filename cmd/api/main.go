// cmd/api/main.go
package main

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/coachkit/coachkit/internal/config"
	"github.com/coachkit/coachkit/internal/http/routes"
	"github.com/coachkit/coachkit/internal/llm"
	"github.com/coachkit/coachkit/internal/pipeline"
	"github.com/coachkit/coachkit/internal/suggest"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("loading config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	var gen suggest.TextGenerator
	client, err := llm.New(llm.Config{
		APIKey:     cfg.OpenAIAPIKey,
		BaseURL:    cfg.OpenAIBaseURL,
		Model:      cfg.OpenAIModel,
		Timeout:    cfg.LLMTimeout,
		MaxRetries: cfg.LLMMaxRetries,
	}, logger)
	switch {
	case errors.Is(err, llm.ErrUnavailable):
		logger.Info().Msg("OPENAI_API_KEY not set, suggestions are rule-based only")
	case err != nil:
		logger.Fatal().Err(err).Msg("building llm client")
	default:
		gen = client
	}

	engine := suggest.NewEngine(gen, logger)
	proc := pipeline.New(engine, logger)

	s := routes.New(routes.ServerOptions{
		Proc:   proc,
		Log:    logger,
		APIKey: cfg.APIKey,
	})
	h := hlog.NewHandler(logger)(s.Router)

	logger.Info().Str("port", cfg.Port).Bool("llm", cfg.HasLLM()).Msg("starting api")
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
