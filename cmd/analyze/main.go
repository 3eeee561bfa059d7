// cmd/analyze reads a JSON document of trainee logs from a file or stdin and
// prints each trainee's coaching suggestions. It uses the same pipeline as
// the API server, including optional LLM augmentation when OPENAI_API_KEY is
// set.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/coachkit/coachkit/internal/config"
	"github.com/coachkit/coachkit/internal/llm"
	"github.com/coachkit/coachkit/internal/pipeline"
	"github.com/coachkit/coachkit/internal/suggest"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "help", "--help", "-h":
			fmt.Println("Usage: analyze [file.json]")
			fmt.Println("Reads trainee workout/diet logs as JSON (stdin if no file is given)")
			fmt.Println("and prints 2-4 coaching suggestions per trainee.")
			fmt.Println()
			fmt.Println("  OPENAI_API_KEY   enable LLM-augmented suggestions (optional)")
			fmt.Println("  OPENAI_MODEL     model to use (default gpt-4o-mini)")
			return nil
		case "version", "--version", "-v":
			fmt.Println("coachkit analyze v0.1.0")
			return nil
		}
	}

	_ = godotenv.Load()

	var data []byte
	var err error
	if len(args) > 0 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var batch map[string]pipeline.TraineeLogs
	if err := json.Unmarshal(data, &batch); err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var gen suggest.TextGenerator
	client, err := llm.New(llm.Config{
		APIKey:     cfg.OpenAIAPIKey,
		BaseURL:    cfg.OpenAIBaseURL,
		Model:      cfg.OpenAIModel,
		Timeout:    cfg.LLMTimeout,
		MaxRetries: cfg.LLMMaxRetries,
	}, logger)
	if err != nil && !errors.Is(err, llm.ErrUnavailable) {
		return err
	}
	if err == nil {
		gen = client
	}

	proc := pipeline.New(suggest.NewEngine(gen, logger), logger)
	results := proc.Process(context.Background(), batch)

	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		res := results[id]
		fmt.Printf("%s:\n", id)
		if res.Err != nil {
			fmt.Printf("  error: %v\n", res.Err)
			continue
		}
		for _, s := range res.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}
	return nil
}
