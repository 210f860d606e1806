package roster

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dino-battle/internal/errors"
	"github.com/KirkDiggler/dino-battle/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/dino-battle/internal/redis"
)

const (
	lineupKeyPrefix = "roster:"
	lineupIndexKey  = "rosters"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the redis lineup repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a redis-backed lineup repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateLineup(input.Lineup); err != nil {
		return nil, err
	}

	lineup := copyLineup(input.Lineup)
	if lineup.CreatedAt.IsZero() {
		lineup.CreatedAt = r.clock.Now()
	}

	data, err := json.Marshal(lineup)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal lineup")
	}

	key := lineupKeyPrefix + lineup.ID
	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create lineup")
	}
	if !created {
		return nil, errors.AlreadyExistsf("lineup with ID %s already exists", lineup.ID)
	}

	if err := r.client.SAdd(ctx, lineupIndexKey, lineup.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index lineup")
	}

	slog.DebugContext(ctx, "lineup created",
		"lineup_id", lineup.ID,
		"size", len(lineup.Species))

	return &CreateOutput{Lineup: lineup}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errLineupIDEmpty)
	}

	result, err := r.client.Get(ctx, lineupKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("lineup with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get lineup")
	}

	var lineup Lineup
	if err := json.Unmarshal([]byte(result), &lineup); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal lineup")
	}

	return &GetOutput{Lineup: &lineup}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, lineupIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list lineup IDs")
	}

	lineups := make([]*Lineup, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "lineup not found, cleaning up index",
					"lineup_id", id)
				r.client.SRem(ctx, lineupIndexKey, id)
				continue
			}
			return nil, err
		}
		lineups = append(lineups, out.Lineup)
	}

	sortLineups(lineups)
	return &ListOutput{Lineups: lineups}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errLineupIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, lineupKeyPrefix+input.ID)
	pipe.SRem(ctx, lineupIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete lineup")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("lineup with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
