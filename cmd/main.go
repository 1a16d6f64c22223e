package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/gommon/log"

	"atlas/pkg/inference"
	"atlas/pkg/server"
	"atlas/pkg/store"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	inf := buildInferencer()

	dbPath := os.Getenv("ATLAS_DB")
	if dbPath == "" {
		dbPath = "atlas.db"
	}
	st, err := store.Open(os.Getenv("DATABASE_URL"), dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	srv := server.NewServer(ctx, inf, st)
	srv.Echo.Logger.SetLevel(log.DEBUG)

	addr := ":8080"
	if envAddr := os.Getenv("PORT"); envAddr != "" {
		addr = ":" + envAddr
	}

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatal(err)
		}
		done()
		close(finishedShutDown)
	}()

	log.Infof("listening at %s", addr)
	if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
	}
	<-finishedShutDown
}

// buildInferencer picks a backend from the environment. Gemini and Moonshot
// take precedence when their keys are set; without any key the OpenAI client
// points at a local OpenAI-compatible endpoint.
func buildInferencer() inference.Inferencer {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		gemini, err := inference.NewGeminiInferencer(key, os.Getenv("GEMINI_MODEL"))
		if err == nil {
			return gemini
		}
		log.Warnf("failed to init gemini backend, falling back: %v", err)
	}
	if key := os.Getenv("MOONSHOT_API_KEY"); key != "" {
		return inference.NewMoonshotInferencer(key, os.Getenv("MOONSHOT_MODEL"))
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	openAI := inference.NewOpenAIInferencer(apiKey, os.Getenv("OPENAI_MODEL"))
	if apiKey == "" {
		openAI.ChangeBaseURL("http://localhost:1234/v1")
		openAI.SetModel("")
	}
	return openAI
}
