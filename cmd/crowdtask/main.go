package main

import (
	"os"

	"github.com/annolab/crowdtask/internal/cli"
	"github.com/annolab/crowdtask/internal/commands"
	"github.com/annolab/crowdtask/internal/config"
	"github.com/annolab/crowdtask/internal/mturk"
	"github.com/annolab/crowdtask/internal/store"
	"github.com/annolab/crowdtask/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger.Init(os.Getenv("CROWDTASK_DEBUG") != "")
	log := logger.Get()

	registry := cli.NewRegistry()

	cfg, err := config.Load(config.DefaultPath)
	switch {
	case err == nil:
		client := mturk.NewHTTPClient(cfg.AccessKey, cfg.SecretKey, cfg.Sandbox)
		requester := mturk.NewRequester(client, cfg.Localhost)

		jobs, err := store.Open(cfg.DatabaseURL)
		if err != nil {
			log.Error().Err(err).Msg("failed to open project database")
			return 1
		}
		defer jobs.Close()

		commands.Populate(registry, commands.NewSet(requester, jobs))
	case config.IsNotPresent(err):
		commands.Populate(registry, nil)
	default:
		log.Error().Err(err).Msg("failed to load configuration")
		return 1
	}

	return cli.NewDispatcher(registry).Dispatch(args)
}
