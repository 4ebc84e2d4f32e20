package command

import (
	"fmt"

	"github.com/pixil98/go-dungeon/internal/commands"
	"github.com/pixil98/go-dungeon/internal/game"
	"github.com/pixil98/go-dungeon/internal/session"
	"github.com/pixil98/go-dungeon/internal/storage"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load the world definition
	dict, err := cfg.Storage.BuildDictionary()
	if err != nil {
		return nil, fmt.Errorf("building dictionary: %w", err)
	}

	narratives, err := cfg.Storage.BuildNarratives()
	if err != nil {
		return nil, fmt.Errorf("building narratives: %w", err)
	}

	// Build the world state
	world, err := game.NewWorldState(dict, cfg.Game.Scenario())
	if err != nil {
		return nil, fmt.Errorf("building world state: %w", err)
	}

	// Wire the command handler to the console
	console := session.NewConsole()
	handler, err := commands.NewHandler(world, narratives, storage.Identifier(cfg.Game.Narrative), session.NewPublisher(console))
	if err != nil {
		return nil, fmt.Errorf("creating command handler: %w", err)
	}

	// Create a worker list
	return service.WorkerList{
		"session": session.NewSession(console, world, handler),
	}, nil
}
