package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go-ayuda/allocation"
	"go-ayuda/cronjobs"
	"go-ayuda/db"
	"go-ayuda/mlmodel"
	"go-ayuda/routes"
	"go-ayuda/seed"
	"go-ayuda/sms"
	"go-ayuda/training"
)

func newLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build(zap.Fields(zap.String("service", "go-ayuda")))
}

func main() {
	seedData := flag.Bool("seed", false, "load the demo NCR dataset and exit")
	corpusPath := flag.String("corpus", "", "write a synthetic training corpus CSV to this path and exit")
	flag.Parse()

	// .env is optional outside local development.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if *corpusPath != "" {
		samples := training.GenerateCorpus(10000, 42)
		if err := training.WriteCorpusCSV(*corpusPath, samples); err != nil {
			logger.Fatal("failed to write corpus", zap.Error(err))
		}
		logger.Info("wrote synthetic corpus", zap.String("path", *corpusPath), zap.Int("samples", len(samples)))
		return
	}

	dbPath := os.Getenv("AYUDA_DB_PATH")
	if dbPath == "" {
		dbPath = "data/ayuda.db"
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Fatal("failed to create data directory", zap.Error(err))
		}
	}
	store, err := db.Init(dbPath, logger)
	if err != nil {
		logger.Fatal("failed to open record store", zap.Error(err))
	}

	if *seedData {
		if err := seed.Run(store, logger); err != nil {
			logger.Fatal("seeding failed", zap.Error(err))
		}
		return
	}

	model := mlmodel.Load(logger)
	if model.Available() {
		logger.Info("ML allocation path enabled")
	} else {
		logger.Info("ML allocation path disabled, using rule-based amounts")
	}

	var openaiClient *openai.Client
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		openaiClient = openai.NewClient(key)
		logger.Info("OPENAI_API_KEY loaded, generative SMS enabled")
	} else {
		logger.Info("no OPENAI_API_KEY, SMS templates only")
	}

	resolver := allocation.NewResolver(model)
	generator := sms.NewGenerator(openaiClient, logger)

	c := cronjobs.Init(store, model, logger)
	defer c.Stop()

	r := routes.SetupRouter(routes.Deps{
		Store:     store,
		Model:     model,
		Resolver:  resolver,
		Generator: generator,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
