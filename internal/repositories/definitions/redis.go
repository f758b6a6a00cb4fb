package definitions

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	dnderr "github.com/KirkDiggler/creaturescripts/internal/errors"
	"github.com/KirkDiggler/creaturescripts/internal/manifest"
	"github.com/KirkDiggler/creaturescripts/internal/uuid"
)

const indexKey = "creatureevents"

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
}

// NewRedisRepository creates a Redis-backed definition repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		cfg.UUIDGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
	}
}

// NewRedis creates a Redis-backed definition repository with random ids
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("creatureevent:%s", id)
}

func (r *redisRepo) Create(ctx context.Context, definition *manifest.Definition) error {
	if definition == nil {
		return dnderr.InvalidArgument("definition cannot be nil")
	}
	if definition.ID == "" {
		definition.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, r.key(definition.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check definition existence: %w", err)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("definition with ID '%s' already exists", definition.ID).
			WithMeta("definition_id", definition.ID)
	}

	jsonData, err := json.Marshal(definition)
	if err != nil {
		return fmt.Errorf("failed to marshal definition: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(definition.ID), string(jsonData), 0)
	pipe.RPush(ctx, indexKey, definition.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create definition: %w", err)
	}

	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*manifest.Definition, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("definition ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("definition with ID '%s' not found", id).
			WithMeta("definition_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get definition: %w", err)
	}

	var definition manifest.Definition
	if err := json.Unmarshal(jsonData, &definition); err != nil {
		return nil, fmt.Errorf("failed to unmarshal definition: %w", err)
	}

	return &definition, nil
}

func (r *redisRepo) List(ctx context.Context) ([]*manifest.Definition, error) {
	ids, err := r.client.LRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list definition IDs: %w", err)
	}

	found := make([]*manifest.Definition, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			definition, err := r.Get(gctx, id)
			if dnderr.IsNotFound(err) {
				log.Printf("DefinitionRepository.List: index references missing definition %s", id)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get definition %s: %w", id, err)
			}
			found[i] = definition
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	definitions := make([]*manifest.Definition, 0, len(found))
	for _, definition := range found {
		if definition != nil {
			definitions = append(definitions, definition)
		}
	}

	return definitions, nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("definition ID is required")
	}

	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, r.key(id))
	pipe.LRem(ctx, indexKey, 0, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete definition: %w", err)
	}

	if del.Val() == 0 {
		return dnderr.NotFoundf("definition with ID '%s' not found", id).
			WithMeta("definition_id", id)
	}

	return nil
}
