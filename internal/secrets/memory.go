package secrets

import (
	"context"
	"sync"
)

type memorySecrets struct {
	mu      sync.Mutex
	cookies *string
}

// NewMemorySecrets returns a [Secrets] that lives only as long as the
// process.
func NewMemorySecrets() Secrets {
	return &memorySecrets{}
}

func (m *memorySecrets) Get(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cookies == nil {
		return "", ErrSecretNotFound
	}
	return *m.cookies, nil
}

func (m *memorySecrets) Set(_ context.Context, cookies string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cookies = &cookies
	return nil
}

func (m *memorySecrets) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cookies = nil
	return nil
}

func (m *memorySecrets) Close() error { return nil }
