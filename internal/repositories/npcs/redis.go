package npcs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/character-vault/internal/domain/npc"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
)

const npcIndexKey = "npcs"

// redisRepo implements the Repository interface using Redis. Entries
// are stored as JSON under npc:<id> with a set as the index.
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed bestiary repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	return &redisRepo{
		client: cfg.Client,
	}
}

// key generates the Redis key for a bestiary entry
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("npc:%s", id)
}

// Create stores a new bestiary entry
func (r *redisRepo) Create(ctx context.Context, data *npc.NPCData) error {
	if data == nil {
		return dnderr.InvalidArgument("npc data cannot be nil")
	}
	if data.ID == "" {
		return dnderr.InvalidArgument("npc ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(data.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check npc existence: %w", err)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("npc with ID '%s' already exists", data.ID).
			WithMeta("npc_id", data.ID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal npc: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(data.ID), jsonData, 0)
	pipe.SAdd(ctx, npcIndexKey, data.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create npc: %w", err)
	}

	return nil
}

// Get retrieves a bestiary entry by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*npc.NPCData, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("npc ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("npc with ID '%s' not found", id).
			WithMeta("npc_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get npc: %w", err)
	}

	var data npc.NPCData
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &data); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal npc: %w", unmarshalErr)
	}

	return &data, nil
}

// List retrieves every bestiary entry
func (r *redisRepo) List(ctx context.Context) ([]*npc.NPCData, error) {
	ids, err := r.client.SMembers(ctx, npcIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list npc IDs: %w", err)
	}

	result := make([]*npc.NPCData, 0, len(ids))
	for _, id := range ids {
		data, err := r.Get(ctx, id)
		if err != nil {
			// Skip entries that can't be loaded
			continue
		}
		result = append(result, data)
	}

	return result, nil
}

// Update replaces an existing bestiary entry
func (r *redisRepo) Update(ctx context.Context, data *npc.NPCData) error {
	if data == nil {
		return dnderr.InvalidArgument("npc data cannot be nil")
	}
	if data.ID == "" {
		return dnderr.InvalidArgument("npc ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(data.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check npc existence: %w", err)
	}
	if exists == 0 {
		return dnderr.NotFoundf("npc with ID '%s' not found", data.ID).
			WithMeta("npc_id", data.ID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal npc: %w", err)
	}

	if err := r.client.Set(ctx, r.key(data.ID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to update npc: %w", err)
	}

	return nil
}

// Delete removes a bestiary entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("npc ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to check npc existence: %w", err)
	}
	if exists == 0 {
		return dnderr.NotFoundf("npc with ID '%s' not found", id).
			WithMeta("npc_id", id)
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, npcIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete npc: %w", err)
	}

	return nil
}
