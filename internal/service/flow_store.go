package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"careerquest/internal/domain"
)

// ErrFlowNotFound indica que no existe contexto de flujo para ese id.
var ErrFlowNotFound = errors.New("flow not found")

// FlowStore guarda el contexto de flujo entre etapas (onboarding, avatar,
// cuestionario, resultados) con expiracion. Delete es el "clear" explicito
// al terminar o abandonar, para que el estado no se filtre a un flujo nuevo.
type FlowStore interface {
	Save(ctx context.Context, flow domain.FlowContext) error
	Get(ctx context.Context, id string) (domain.FlowContext, error)
	Delete(ctx context.Context, id string) error
}

type memoryFlowStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]memoryFlowEntry
}

type memoryFlowEntry struct {
	flow      domain.FlowContext
	expiresAt time.Time
}

func NewMemoryFlowStore(ttl time.Duration) FlowStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &memoryFlowStore{
		ttl:   ttl,
		items: make(map[string]memoryFlowEntry),
	}
}

func (s *memoryFlowStore) Save(_ context.Context, flow domain.FlowContext) error {
	if strings.TrimSpace(flow.ID) == "" {
		return ErrFlowNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[flow.ID] = memoryFlowEntry{
		flow:      flow,
		expiresAt: time.Now().UTC().Add(s.ttl),
	}
	return nil
}

func (s *memoryFlowStore) Get(_ context.Context, id string) (domain.FlowContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.items[id]
	if !ok {
		return domain.FlowContext{}, ErrFlowNotFound
	}
	if time.Now().UTC().After(entry.expiresAt) {
		delete(s.items, id)
		return domain.FlowContext{}, ErrFlowNotFound
	}
	return entry.flow, nil
}

func (s *memoryFlowStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

type redisFlowStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisFlowStore guarda los contextos serializados como JSON con TTL.
func NewRedisFlowStore(client *redis.Client, ttl time.Duration) FlowStore {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &redisFlowStore{
		client: client,
		ttl:    ttl,
		prefix: "flow:",
	}
}

func (s *redisFlowStore) Save(ctx context.Context, flow domain.FlowContext) error {
	if strings.TrimSpace(flow.ID) == "" {
		return ErrFlowNotFound
	}
	payload, err := json.Marshal(flow)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+flow.ID, payload, s.ttl).Err()
}

func (s *redisFlowStore) Get(ctx context.Context, id string) (domain.FlowContext, error) {
	raw, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.FlowContext{}, ErrFlowNotFound
	}
	if err != nil {
		return domain.FlowContext{}, err
	}
	var flow domain.FlowContext
	if err := json.Unmarshal(raw, &flow); err != nil {
		return domain.FlowContext{}, err
	}
	return flow, nil
}

func (s *redisFlowStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.prefix+id).Err()
}
