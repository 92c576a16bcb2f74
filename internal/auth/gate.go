package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Gate is the single-user password gate. A submitted password is
// hashed and compared against the configured reference hash; a match
// yields an opaque session token kept in memory until it expires. The
// plaintext password is never stored.
type Gate struct {
	referenceHash string
	ttl           time.Duration

	mu       sync.Mutex
	sessions map[string]time.Time
}

func NewGate(referenceHash string, ttl time.Duration) *Gate {
	return &Gate{
		referenceHash: strings.ToLower(strings.TrimSpace(referenceHash)),
		ttl:           ttl,
		sessions:      make(map[string]time.Time),
	}
}

// HashPassword returns the hex SHA-256 digest used as the reference
// hash format.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Login checks the password and, on success, issues a session token.
func (g *Gate) Login(password string) (string, bool) {
	digest := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(g.referenceHash)) != 1 {
		return "", false
	}

	token := uuid.New().String()

	g.mu.Lock()
	defer g.mu.Unlock()
	g.pruneLocked()
	g.sessions[token] = time.Now().Add(g.ttl)

	return token, true
}

// Valid reports whether the token belongs to a live session.
func (g *Gate) Valid(token string) bool {
	if token == "" {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	expiry, ok := g.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(g.sessions, token)
		return false
	}
	return true
}

func (g *Gate) pruneLocked() {
	now := time.Now()
	for token, expiry := range g.sessions {
		if now.After(expiry) {
			delete(g.sessions, token)
		}
	}
}
