package repository

import (
	"context"
	"sync"

	"smartassist-bot/internal/domain"
)

// Memory is an in-process state store for local runs. State is lost on exit.
type Memory struct {
	mu    sync.RWMutex
	conv  map[string]domain.ConversationData
	users map[string]domain.UserData
}

func NewMemory() *Memory {
	return &Memory{
		conv:  make(map[string]domain.ConversationData),
		users: make(map[string]domain.UserData),
	}
}

func (m *Memory) GetConversationData(ctx context.Context, key string) (domain.ConversationData, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.ConversationData{}, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.conv[key]
	return d, ok, nil
}

func (m *Memory) SaveConversationData(ctx context.Context, key string, data domain.ConversationData) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conv[key] = data
	return nil
}

func (m *Memory) GetUserData(ctx context.Context, key string) (domain.UserData, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserData{}, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.users[key]
	return d, ok, nil
}

func (m *Memory) SaveUserData(ctx context.Context, key string, data domain.UserData) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[key] = data
	return nil
}
