package main

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dino-battle/internal/engine/lineup"
	"github.com/KirkDiggler/dino-battle/internal/errors"
	"github.com/KirkDiggler/dino-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/dino-battle/internal/pkg/clock"
	"github.com/KirkDiggler/dino-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/dino-battle/internal/redis"
	"github.com/KirkDiggler/dino-battle/internal/repositories/roster"
)

// newRosterRepo returns the redis repository when an address is configured and
// a process-local one otherwise
func newRosterRepo() (roster.Repository, func(), error) {
	if cfg.RedisAddr == "" {
		slog.Info("Using in-memory roster storage")
		return roster.NewInMemory(clock.New()), func() {}, nil
	}

	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
		PoolSize: cfg.RedisPoolSize,
		UseTLS:   cfg.RedisTLS,
	})
	if err != nil {
		return nil, nil, err
	}

	repo, err := roster.NewRedis(&roster.RedisConfig{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	slog.Info("Using redis roster storage", "addr", cfg.RedisAddr)
	return repo, func() { _ = client.Close() }, nil
}

// newService wires the battle orchestrator. bus may be nil.
func newService(bus events.EventBus) (battle.Service, func(), error) {
	repo, closeRepo, err := newRosterRepo()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create roster repository")
	}

	var roller dice.Roller = dice.DefaultRoller
	if cfg.Seed != 0 {
		roller = lineup.NewSeededRoller(cfg.Seed)
	}

	svc, err := battle.NewOrchestrator(&battle.Config{
		RosterRepo:  repo,
		Roller:      roller,
		IDGenerator: idgen.NewUUID("dino"),
		EventBus:    bus,
		MaxRounds:   cfg.MaxRounds,
	})
	if err != nil {
		closeRepo()
		return nil, nil, errors.Wrap(err, "failed to create battle service")
	}

	return svc, closeRepo, nil
}
