package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jfcamacho/vuelacol/internal/models"
)

// Persistence is the durable backing for trip state, one serialized blob per
// session. It is what lets a trip survive a full page reload (and a server
// restart when Redis backs it).
type Persistence interface {
	Load(ctx context.Context, sessionID string) (*models.TripState, bool)
	Save(ctx context.Context, sessionID string, state *models.TripState) error
	Delete(ctx context.Context, sessionID string) error
	Close() error
}

type RedisPersistence struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      24 * time.Hour,
	}
}

func NewRedisPersistence(cfg RedisConfig) (*RedisPersistence, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisPersistence{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (p *RedisPersistence) Load(ctx context.Context, sessionID string) (*models.TripState, bool) {
	data, err := p.client.Get(ctx, tripKey(sessionID)).Bytes()
	if err != nil {
		return nil, false
	}

	var state models.TripState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, false
	}

	return &state, true
}

func (p *RedisPersistence) Save(ctx context.Context, sessionID string, state *models.TripState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	return p.client.Set(ctx, tripKey(sessionID), data, p.ttl).Err()
}

func (p *RedisPersistence) Delete(ctx context.Context, sessionID string) error {
	return p.client.Del(ctx, tripKey(sessionID)).Err()
}

func (p *RedisPersistence) Close() error {
	return p.client.Close()
}

func tripKey(sessionID string) string {
	return "trip:" + sessionID
}

// MemoryPersistence keeps serialized blobs in process memory. Used when Redis
// is disabled and in tests; serializing through JSON keeps its semantics
// identical to the Redis path.
type MemoryPersistence struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{
		blobs: make(map[string][]byte),
	}
}

func (p *MemoryPersistence) Load(ctx context.Context, sessionID string) (*models.TripState, bool) {
	p.mu.RLock()
	data, ok := p.blobs[sessionID]
	p.mu.RUnlock()
	if !ok {
		return nil, false
	}

	var state models.TripState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, false
	}

	return &state, true
}

func (p *MemoryPersistence) Save(ctx context.Context, sessionID string, state *models.TripState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.blobs[sessionID] = data
	p.mu.Unlock()
	return nil
}

func (p *MemoryPersistence) Delete(ctx context.Context, sessionID string) error {
	p.mu.Lock()
	delete(p.blobs, sessionID)
	p.mu.Unlock()
	return nil
}

func (p *MemoryPersistence) Close() error {
	return nil
}
