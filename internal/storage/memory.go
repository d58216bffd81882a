package storage

import "context"

// Memory is a process-local store. State is lost on exit.
type Memory struct {
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.values = map[string]string{}
	return nil
}

func (m *Memory) Close() error { return nil }
