package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/character-vault/internal/domain/character"
	dnderr "github.com/KirkDiggler/character-vault/internal/errors"
)

// redisRepo implements the Repository interface using Redis. Snapshots
// are stored as JSON under character:<id> with a set per owner as a
// secondary index.
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed character repository
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

// key generates the Redis key for a character
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// ownerCharactersKey generates the Redis key for an owner's character list
func (r *redisRepo) ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

// Create stores a new character snapshot
func (r *redisRepo) Create(ctx context.Context, data *character.CoreData) error {
	if data == nil {
		return dnderr.InvalidArgument("character data cannot be nil")
	}
	if data.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(data.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", data.ID).
			WithMeta("character_id", data.ID)
	}

	stored := data.Clone()
	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt

	jsonData, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(data.ID), jsonData, 0)
	if data.OwnerID != "" {
		pipe.SAdd(ctx, r.ownerCharactersKey(data.OwnerID), data.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	return nil
}

// Get retrieves a character snapshot by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.CoreData, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data character.CoreData
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &data); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", unmarshalErr)
	}

	return &data, nil
}

// GetByOwner retrieves all character snapshots for a specific owner
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.CoreData, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerCharactersKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}

	result := make([]*character.CoreData, 0, len(ids))
	for _, id := range ids {
		data, err := r.Get(ctx, id)
		if err != nil {
			// Skip snapshots that can't be loaded
			continue
		}
		result = append(result, data)
	}

	return result, nil
}

// Update replaces an existing character snapshot
func (r *redisRepo) Update(ctx context.Context, data *character.CoreData) error {
	if data == nil {
		return dnderr.InvalidArgument("character data cannot be nil")
	}
	if data.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	existing, err := r.Get(ctx, data.ID)
	if err != nil {
		return err
	}

	stored := data.Clone()
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now().UTC()

	jsonData, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	if err := r.client.Set(ctx, r.key(data.ID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	return nil
}

// Delete removes a character snapshot
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	existing, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	if existing.OwnerID != "" {
		pipe.SRem(ctx, r.ownerCharactersKey(existing.OwnerID), id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}
