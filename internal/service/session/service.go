package session

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"log"
	"strings"
	"sync"

	"tingz-storefront/internal/domain"
)

// Service is the email gate. Any email with an "@" authenticates; the admin
// flag comes from a case-insensitive match against one configured address.
// There is no password and no credential store here — a real deployment
// would check the email against a database.
type Service struct {
	adminEmail string
	logger     *log.Logger

	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func New(adminEmail string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		adminEmail: adminEmail,
		logger:     logger,
		sessions:   make(map[string]domain.Session),
	}
}

// Authenticate validates the email shape, issues a bearer token and records
// the session. Sessions never expire; they live until the process stops.
func (s *Service) Authenticate(email string) (domain.Session, error) {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return domain.Session{}, domain.ValidationError("email is required")
	}

	token, err := randomToken()
	if err != nil {
		return domain.Session{}, err
	}
	sess := domain.Session{
		Token:   token,
		Email:   email,
		IsAdmin: strings.EqualFold(email, s.adminEmail),
	}

	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()

	s.logger.Printf("session: authenticated email=%s admin=%t", email, sess.IsAdmin)
	return sess, nil
}

// Lookup resolves a bearer token to its session.
func (s *Service) Lookup(token string) (domain.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return domain.Session{}, domain.ErrInvalidToken
	}
	return sess, nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
