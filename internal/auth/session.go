package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Sessions maps opaque login tokens to user emails.
type Sessions interface {
	Create(ctx context.Context, email string, ttl time.Duration) (string, error)
	Lookup(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
	// RevokeUser drops every session of email.
	RevokeUser(ctx context.Context, email string) error
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

type memSession struct {
	email   string
	expires time.Time
}

// MemorySessions keeps sessions in process. Expired entries are dropped on
// lookup and swept whenever a new session is created.
type MemorySessions struct {
	mu       sync.Mutex
	sessions map[string]memSession
	now      func() time.Time
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{
		sessions: make(map[string]memSession),
		now:      time.Now,
	}
}

func (s *MemorySessions) Create(_ context.Context, email string, ttl time.Duration) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for t, sess := range s.sessions {
		if !now.Before(sess.expires) {
			delete(s.sessions, t)
		}
	}
	s.sessions[token] = memSession{email: email, expires: now.Add(ttl)}
	return token, nil
}

func (s *MemorySessions) Lookup(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return "", ErrInvalidToken
	}
	if !s.now().Before(sess.expires) {
		delete(s.sessions, token)
		return "", ErrInvalidToken
	}
	return sess.email, nil
}

func (s *MemorySessions) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *MemorySessions) RevokeUser(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, sess := range s.sessions {
		if sess.email == email {
			delete(s.sessions, token)
		}
	}
	return nil
}

// RedisSessions stores sessions as expiring keys so several server replicas
// share logins. Each user also has a set of their tokens for RevokeUser.
type RedisSessions struct {
	client *redis.Client
	prefix string
}

func NewRedisSessions(client *redis.Client) *RedisSessions {
	return &RedisSessions{client: client, prefix: "dbconsole:session:"}
}

func (s *RedisSessions) userKey(email string) string {
	return s.prefix + "user:" + email
}

func (s *RedisSessions) Create(ctx context.Context, email string, ttl time.Duration) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.prefix+token, email, ttl)
	pipe.SAdd(ctx, s.userKey(email), token)
	pipe.Expire(ctx, s.userKey(email), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *RedisSessions) Lookup(ctx context.Context, token string) (string, error) {
	email, err := s.client.Get(ctx, s.prefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", fmt.Errorf("lookup session: %w", err)
	}
	return email, nil
}

func (s *RedisSessions) Revoke(ctx context.Context, token string) error {
	email, err := s.Lookup(ctx, token)
	if errors.Is(err, ErrInvalidToken) {
		return nil
	}
	if err != nil {
		return err
	}
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.prefix+token)
	pipe.SRem(ctx, s.userKey(email), token)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *RedisSessions) RevokeUser(ctx context.Context, email string) error {
	tokens, err := s.client.SMembers(ctx, s.userKey(email)).Result()
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	keys := []string{s.userKey(email)}
	for _, t := range tokens {
		keys = append(keys, s.prefix+t)
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return nil
}
