package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"wascrap/internal/usecase/interfaces"
)

type otpEntry struct {
	value     string
	expiresAt time.Time
}

// OTPMemoryStore is the single-process fallback used when Redis is not configured.
type OTPMemoryStore struct {
	mu      sync.Mutex
	entries map[string]otpEntry
	now     func() time.Time
}

var _ interfaces.IOTPStore = (*OTPMemoryStore)(nil)

func NewOTPMemoryStore() *OTPMemoryStore {
	return &OTPMemoryStore{entries: map[string]otpEntry{}, now: time.Now}
}

func (s *OTPMemoryStore) Save(_ context.Context, key, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = otpEntry{value: code, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *OTPMemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(key)
	if !ok {
		return "", false, nil
	}
	return e.value, true, nil
}

func (s *OTPMemoryStore) IncrementAttempts(_ context.Context, key string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(key)
	if !ok {
		e = otpEntry{value: "0", expiresAt: s.now().Add(ttl)}
	}
	n, err := strconv.ParseInt(e.value, 10, 64)
	if err != nil {
		return 0, err
	}
	n++
	e.value = strconv.FormatInt(n, 10)
	s.entries[key] = e
	return n, nil
}

func (s *OTPMemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// live must be called with mu held; expired entries are dropped on access.
func (s *OTPMemoryStore) live(key string) (otpEntry, bool) {
	e, ok := s.entries[key]
	if !ok {
		return otpEntry{}, false
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return otpEntry{}, false
	}
	return e, true
}
