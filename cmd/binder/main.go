// Command binder manages a local list of favorite books and asks the
// completion service for new ones.
package main

import (
	"context"
	"os"

	"github.com/JulienMartel/old-binder/internal/agent"
	"github.com/JulienMartel/old-binder/internal/config"
)

func main() {
	config.LoadEnvFiles()

	a := &app{
		storePath:  config.FavoritesPath(),
		newService: serviceFromConfig,
	}
	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}

func serviceFromConfig(ctx context.Context) (service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return agent.NewRecommenderFromConfig(ctx, cfg)
}
