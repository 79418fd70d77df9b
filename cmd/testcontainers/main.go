package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/beedb/internal/containers"
	"github.com/localnerve/beedb/internal/logging"
	"github.com/rs/zerolog/log"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var dbOnly bool
	flag.BoolVar(&dbOnly, "db-only", false, "start only the database container")
	flag.Parse()

	usage := `
Run the beedb testcontainers with the environment variables from the .env file.

Usage:

testcontainers [-h] [-db-only] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -f /path/to/something/.env
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	logging.Setup(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	if envFilename != "" {
		log.Info().Str("file", envFilename).Msg("Loading environment variables")
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatal().Err(err).Msg("Failed to load environment variables")
		}
	} else {
		log.Info().Msg("No environment file specified, using current environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	stack, err := containers.StartDatabase(ctx, nil, containers.OptionsFromEnv())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start database container")
	}

	if !dbOnly {
		if err := stack.StartService(ctx, nil); err != nil {
			stack.Terminate(nil)
			log.Fatal().Err(err).Msg("Failed to start beedb container")
		}
	}

	log.Info().Msg("Containers running, interrupt to terminate")
	<-ctx.Done()

	log.Info().Msg("Received signal, terminating test containers...")
	stack.Terminate(nil)
}
