// Package store provides repository adapters for sealed models: an in-memory
// map for tests and single-process deployments, and a Redis-backed adapter.
package store

import (
	"context"
	"sync"

	"macrolib/internal/domain"
)

// Memory keeps models in a map. Saves are idempotent for identical (id,
// model) pairs.
type Memory struct {
	mu     sync.RWMutex
	models map[string]domain.Model
	order  []string
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{models: make(map[string]domain.Model)}
}

func (s *Memory) Save(ctx context.Context, id string, m domain.Model) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.models[id]; !exists {
		s.order = append(s.order, id)
	}
	s.models[id] = m
	return nil
}

func (s *Memory) Find(ctx context.Context, id string) (domain.Model, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.models[id]
	if !ok {
		return domain.Model{}, domain.ErrModelNotFound(id)
	}
	return m, nil
}

func (s *Memory) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.models[id]; !ok {
		return domain.ErrModelNotFound(id)
	}
	delete(s.models, id)
	for i, stored := range s.order {
		if stored == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns stored models in insertion order, filtered by canonical model
// name when modelName is non-empty.
func (s *Memory) List(ctx context.Context, modelName string) ([]domain.Model, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Model, 0, len(s.order))
	for _, id := range s.order {
		m := s.models[id]
		if modelName != "" && m.ModelName() != modelName {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
