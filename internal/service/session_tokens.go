package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/infra/observability"
	"github.com/boddenberg/donor-bfa-go/internal/port"
	"github.com/boddenberg/donor-bfa-go/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var sessionTracer = otel.Tracer("service/session")

const tokenIssuer = "donor-bfa"

// Session is one signed-in donor: the account container plus the
// per-session bookmark list.
type Session struct {
	ID      string
	Account *session.Container

	mu        sync.Mutex
	bookmarks []string
}

// SessionService issues and resolves session tokens.
type SessionService struct {
	sessions  port.Cache[*Session]
	catalog   port.CatalogReader
	latency   port.Latency
	authDelay time.Duration
	clock     port.Clock
	jwtSecret []byte
	ttl       time.Duration
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(
	sessions port.Cache[*Session],
	catalog port.CatalogReader,
	latency port.Latency,
	authDelay time.Duration,
	clock port.Clock,
	jwtSecret string,
	ttl time.Duration,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		sessions:  sessions,
		catalog:   catalog,
		latency:   latency,
		authDelay: authDelay,
		clock:     clock,
		jwtSecret: []byte(jwtSecret),
		ttl:       ttl,
		metrics:   metrics,
		logger:    logger,
	}
}

// ============================================================
// Login / Signup: POST /v1/auth/login, /v1/auth/signup
// ============================================================

// Login signs in. When current is non-nil its container is reused, so a
// signed-in session is rejected until it logs out.
func (s *SessionService) Login(ctx context.Context, current *Session, req *domain.LoginRequest) (*domain.SessionResponse, error) {
	ctx, span := sessionTracer.Start(ctx, "SessionService.Login")
	defer span.End()

	sess := s.sessionFor(current)
	acc, err := sess.Account.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, sess, acc)
}

// Signup creates a fresh account.
func (s *SessionService) Signup(ctx context.Context, current *Session, req *domain.SignupRequest) (*domain.SessionResponse, error) {
	ctx, span := sessionTracer.Start(ctx, "SessionService.Signup")
	defer span.End()

	sess := s.sessionFor(current)
	acc, err := sess.Account.Signup(ctx, req.Name, req.Email, req.Password, req.GovernmentID)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, sess, acc)
}

func (s *SessionService) sessionFor(current *Session) *Session {
	if current != nil {
		return current
	}
	return &Session{
		ID:      uuid.NewString(),
		Account: session.NewContainer(s.latency, s.authDelay, s.clock, s.metrics, s.logger),
	}
}

func (s *SessionService) issue(ctx context.Context, sess *Session, acc *domain.Account) (*domain.SessionResponse, error) {
	_, span := sessionTracer.Start(ctx, "SessionService.issue")
	defer span.End()
	span.SetAttributes(attribute.String("account.id", acc.ID))

	token, err := s.signSessionToken(sess.ID, acc.ID)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	s.sessions.Set(sess.ID, sess)
	s.metrics.SetActiveSessions(s.sessions.Len())

	s.logger.Info("session started",
		zap.String("session_id", sess.ID),
		zap.String("account_id", acc.ID),
	)
	return &domain.SessionResponse{
		AccessToken: token,
		ExpiresIn:   int(s.ttl.Seconds()),
		Account:     acc,
	}, nil
}

// ============================================================
// Logout: POST /v1/auth/logout
// ============================================================

// Logout clears the account and ends the session. Views mounted under it
// keep their reference but the account listener becomes a no-op.
func (s *SessionService) Logout(ctx context.Context, sess *Session) error {
	_, span := sessionTracer.Start(ctx, "SessionService.Logout")
	defer span.End()

	sess.Account.Logout()
	s.sessions.Delete(sess.ID)
	s.metrics.SetActiveSessions(s.sessions.Len())

	s.logger.Info("session ended", zap.String("session_id", sess.ID))
	return nil
}

// ============================================================
// Profile: GET /v1/profile
// ============================================================

// Profile returns the account with its fixture donation history.
func (s *SessionService) Profile(ctx context.Context, sess *Session) (*domain.ProfileResponse, error) {
	ctx, span := sessionTracer.Start(ctx, "SessionService.Profile")
	defer span.End()

	acc, ok := sess.Account.Account()
	if !ok {
		return nil, &domain.ErrUnauthorized{Message: "not signed in"}
	}

	donations, err := s.catalog.UserDonations(ctx, acc.ID)
	if err != nil {
		return nil, fmt.Errorf("user donations: %w", err)
	}

	var total int64
	for _, d := range donations {
		total += d.Amount
	}
	return &domain.ProfileResponse{
		Account:      acc,
		Donations:    donations,
		HistoryTotal: total,
	}, nil
}

// ============================================================
// Authenticate: used by middleware
// ============================================================

// SessionClaims are the claims of a session token.
type SessionClaims struct {
	Sub  string `json:"sub"`
	Sid  string `json:"sid"`
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// Authenticate resolves a bearer token to a live session.
func (s *SessionService) Authenticate(tokenString string) (*Session, error) {
	claims, err := s.ValidateSessionToken(tokenString)
	if err != nil {
		return nil, err
	}

	sess, ok := s.sessions.Get(claims.Sid)
	if !ok {
		return nil, &domain.ErrUnauthorized{Message: "session expired"}
	}
	s.sessions.Touch(claims.Sid)
	return sess, nil
}

// ValidateSessionToken parses and checks a session token.
func (s *SessionService) ValidateSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.clock.Now), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, &domain.ErrUnauthorized{Message: "invalid or expired token"}
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, &domain.ErrUnauthorized{Message: "invalid token"}
	}
	if claims.Type != "session" || claims.Sid == "" {
		return nil, &domain.ErrUnauthorized{Message: "invalid token type"}
	}
	return claims, nil
}

func (s *SessionService) signSessionToken(sessionID, accountID string) (string, error) {
	now := s.clock.Now()
	claims := SessionClaims{
		Sub:  accountID,
		Sid:  sessionID,
		Type: "session",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			Issuer:    tokenIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
