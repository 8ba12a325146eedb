package main

import (
	"log"

	"github.com/claudiorubilar/seguros/internal/book"
	"github.com/claudiorubilar/seguros/internal/env"
	"github.com/claudiorubilar/seguros/internal/ledger"
	"github.com/claudiorubilar/seguros/internal/ledger/types"
	"github.com/claudiorubilar/seguros/internal/logger"
	"github.com/claudiorubilar/seguros/internal/seed"
	"github.com/joho/godotenv"
)

func main() {
	const component = "Main"

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	appLogger := &logger.Logger{MinLevel: logger.LevelInfo}

	cfg := config{
		addr:       env.GetString("ADDR", ":8080"),
		ledgerPath: env.GetString("LEDGER_PATH", "data/cartera.csv"),
		win1252:    env.GetBool("LEDGER_WIN1252", false),
		ufValue:    env.GetFloat("UF_VALUE", 39640),
	}

	load := func() (*types.Book, error) {
		b, err := ledger.IngestFile(cfg.ledgerPath, ledger.Options{Win1252: cfg.win1252}, appLogger)
		if err != nil {
			return nil, err
		}
		seed.Apply(b)
		return b, nil
	}

	repo, err := book.NewRepository(load)
	if err != nil {
		appLogger.Fatal(component, "Initial ledger load failed: path=%s error=%v", cfg.ledgerPath, err)
		return
	}

	app := &application{
		config: cfg,
		repo:   repo,
		logger: appLogger,
	}

	mux := app.mount()

	log.Fatal(app.run(mux))
}
