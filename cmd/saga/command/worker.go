package command

import (
	"fmt"

	"github.com/halcyar/go-saga/internal/engine"
	"github.com/halcyar/go-saga/internal/game"
	"github.com/halcyar/go-saga/internal/listener"
	"github.com/halcyar/go-saga/internal/messaging"
	"github.com/halcyar/go-saga/internal/session"
	"github.com/pixil98/go-service/service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	catalog, err := cfg.Storage.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	saves, err := cfg.Storage.BuildSaveStore()
	if err != nil {
		return nil, fmt.Errorf("building save store: %w", err)
	}

	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("building nats server: %w", err)
	}

	// An opening scene the catalog does not carry should fail the boot,
	// not every new character's first turn.
	chapter, scene := game.StartingChapter, game.StartingScene
	if cfg.Session.StartingChapter != "" {
		chapter = cfg.Session.StartingChapter
	}
	if cfg.Session.StartingScene != "" {
		scene = cfg.Session.StartingScene
	}
	if catalog.Scene(chapter, scene) == nil {
		return nil, fmt.Errorf("starting scene %s.%s not found in catalog", chapter, scene)
	}

	sm := session.NewManager(
		engine.New(catalog),
		saves,
		messaging.NewSessionBus(natsServer),
		session.WithStartingScene(cfg.Session.StartingChapter, cfg.Session.StartingScene),
	)

	cm := listener.NewConnectionManager(sm)

	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		w, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = w
	}

	return service.WorkerList{
		"nats":      natsServer,
		"listeners": &listeners,
	}, nil
}
