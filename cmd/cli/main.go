package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jonmaccc4/BookNest-library/internal/buildinfo"
	"github.com/jonmaccc4/BookNest-library/internal/client/cli"
	"github.com/jonmaccc4/BookNest-library/internal/client/config"
	"github.com/jonmaccc4/BookNest-library/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
