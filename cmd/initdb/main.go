package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/devservices/backend/internal/config"
	"github.com/devservices/backend/internal/logging"
	"github.com/devservices/backend/internal/repository"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: initdb [command]

Commands:
  (default)   create missing tables / indexes
  reset       drop all quotes, consultations and services, then recreate the schema`)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("config load failed", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	if cmd != "" && cmd != "reset" {
		usage()
	}

	driver, err := cfg.StoreDriver()
	if err != nil {
		logging.Fatal("invalid store url", "error", err)
	}

	ctx := context.Background()
	store, err := repository.Open(ctx, driver, cfg.StoreURL(), cfg.Store.Name)
	if err != nil {
		logging.Fatal("connect failed", "driver", driver, "error", err)
	}
	defer store.Close(ctx)

	switch cmd {
	case "":
		if err := store.Init(ctx); err != nil {
			logging.Fatal("init failed", "error", err)
		}
		slog.Info("schema ready", "driver", driver)
	case "reset":
		if err := store.Reset(ctx); err != nil {
			logging.Fatal("reset failed", "error", err)
		}
		slog.Info("store reset", "driver", driver)
	}
}
