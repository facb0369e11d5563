package main

import (
	"context"
	"log"
	"os"

	"wodtracker/internal/client/cli"
	"wodtracker/internal/client/config"
	"wodtracker/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stderr)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
