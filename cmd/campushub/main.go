package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/ecellnce/campushub/internal/client/cli"
	"github.com/ecellnce/campushub/internal/client/config"
	"github.com/ecellnce/campushub/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg, logging.NewDefault())

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
