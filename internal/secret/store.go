package secret

import "sync"

// Store abstracts a secure credentials store (e.g., OS keyring) keyed by
// SMB host and share. Implementations should be safe to call from
// multiple goroutines.
type Store interface {
	Get(host, share string) (domain, user, pass string, found bool, err error)
	Set(host, share, domain, user, pass string) error
	Delete(host, share string) error
}

type entry struct {
	domain, user, pass string
}

// memoryStore keeps credentials for the lifetime of the process. It is the
// fallback when the OS keyring cannot be opened.
type memoryStore struct {
	mu    sync.RWMutex
	items map[string]entry
}

// NewMemoryStore creates an in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{items: make(map[string]entry)}
}

func (s *memoryStore) Get(host, share string) (string, string, string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.items[makeKey(host, share)]
	if !ok {
		return "", "", "", false, nil
	}
	return e.domain, e.user, e.pass, true, nil
}

func (s *memoryStore) Set(host, share, domain, user, pass string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[makeKey(host, share)] = entry{domain: domain, user: user, pass: pass}
	return nil
}

func (s *memoryStore) Delete(host, share string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, makeKey(host, share))
	return nil
}

func makeKey(host, share string) string { return host + "|" + share }
