package main

import (
	"context"
	"log"

	"github.com/RaginiSharma01/GoPay-Lite/internal/client/cli"
	"github.com/RaginiSharma01/GoPay-Lite/internal/client/config"
	"github.com/RaginiSharma01/GoPay-Lite/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer app.Close()

	app.Root(ctx)
}
