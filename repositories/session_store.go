package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"ClinicDesk/util"
	"ClinicDesk/wizard"

	goredis "github.com/redis/go-redis/v9"
)

const (
	minPayLockTTL = time.Minute
	payLockMargin = 30 * time.Second
)

// The pay lock has to outlive the simulated gateway wait.
func PayLockTTL(payDelay time.Duration) time.Duration {
	ttl := payDelay + payLockMargin
	if ttl < minPayLockTTL {
		return minPayLockTTL
	}
	return ttl
}

// RedisSessionStore keeps wizard sessions as JSON under WIZARD:<id>.
type RedisSessionStore struct {
	client  *goredis.Client
	ttl     time.Duration
	lockTTL time.Duration
}

func NewRedisSessionStore(client *goredis.Client, ttl, payDelay time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl, lockTTL: PayLockTTL(payDelay)}
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (wizard.Session, error) {
	data, err := s.client.Get(ctx, util.WizardKey+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return wizard.Session{}, util.ErrSessionNotFound
	}
	if err != nil {
		return wizard.Session{}, err
	}
	var session wizard.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return wizard.Session{}, err
	}
	return session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session wizard.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, util.WizardKey+session.ID, data, s.ttl).Err()
}

func (s *RedisSessionStore) Lock(ctx context.Context, id string) (bool, error) {
	return s.client.SetNX(ctx, util.WizardPayKey+id, 1, s.lockTTL).Result()
}

func (s *RedisSessionStore) Unlock(ctx context.Context, id string) error {
	return s.client.Del(ctx, util.WizardPayKey+id).Err()
}

// MemorySessionStore is used when the cache is disabled; sessions die with the process.
type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memorySession
	locks    map[string]bool
}

type memorySession struct {
	session wizard.Session
	expires time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memorySession),
		locks:    make(map[string]bool),
	}
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok || (s.ttl > 0 && s.now().After(entry.expires)) {
		delete(s.sessions, id)
		return wizard.Session{}, util.ErrSessionNotFound
	}
	return entry.session, nil
}

func (s *MemorySessionStore) Save(_ context.Context, session wizard.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = memorySession{session: session, expires: s.now().Add(s.ttl)}
	return nil
}

func (s *MemorySessionStore) Lock(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks[id] {
		return false, nil
	}
	s.locks[id] = true
	return true, nil
}

func (s *MemorySessionStore) Unlock(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.locks, id)
	return nil
}
