// Package credstore provides CredentialStore implementations: a plain
// in-memory store and a durable file-backed store for interactive sessions.
package credstore

import "sync"

// Memory is an in-process credential store. Useful for tests and for
// short-lived sessions that should not outlive the process.
type Memory struct {
	mu    sync.Mutex
	token string
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.token != ""
}

func (m *Memory) Set(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}
