// Package session owns the signed-in donor of one session. A Container is
// created per session, initialised by Login or Signup, torn down by Logout,
// and passed by reference to the views that report donations into it.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/infra/observability"
	"github.com/boddenberg/donor-bfa-go/internal/infra/resilience"
	"github.com/boddenberg/donor-bfa-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("session")

// Seed values of the demo account returned by Login.
const (
	DemoAccountID    = "user-1"
	DemoGovernmentID = "XXXX-XXXX-1234"
	DemoTotalDonated = 525
	DemoImpactScore  = 87
)

// Container holds at most one account.
type Container struct {
	latency port.Latency
	delay   time.Duration
	clock   port.Clock
	metrics *observability.Metrics
	logger  *zap.Logger

	slot *resilience.Bulkhead

	mu      sync.RWMutex
	account *domain.Account
}

// NewContainer creates an empty container. delay is the simulated auth
// round trip.
func NewContainer(latency port.Latency, delay time.Duration, clock port.Clock, metrics *observability.Metrics, logger *zap.Logger) *Container {
	return &Container{
		latency: latency,
		delay:   delay,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
		slot:    resilience.NewBulkhead(1),
	}
}

// Login signs in the demo account under the given email. The password is
// not checked. A signed-in container must log out first.
func (c *Container) Login(ctx context.Context, email, _ string) (*domain.Account, error) {
	ctx, span := tracer.Start(ctx, "Container.Login")
	defer span.End()

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, &domain.ErrValidation{Field: "email", Message: "email is required"}
	}

	acc := &domain.Account{
		ID:           DemoAccountID,
		Name:         DisplayName(email),
		Email:        email,
		GovernmentID: DemoGovernmentID,
		TotalDonated: DemoTotalDonated,
		ImpactScore:  DemoImpactScore,
	}
	if err := c.authenticate(ctx, "login", acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// Signup creates a fresh account with no donation history. The password is
// not stored.
func (c *Container) Signup(ctx context.Context, name, email, _ string, governmentID string) (*domain.Account, error) {
	ctx, span := tracer.Start(ctx, "Container.Signup")
	defer span.End()

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, &domain.ErrValidation{Field: "name", Message: "name is required"}
	}
	if email == "" {
		return nil, &domain.ErrValidation{Field: "email", Message: "email is required"}
	}

	acc := &domain.Account{
		ID:           fmt.Sprintf("user-%d", c.clock.Now().UnixMilli()),
		Name:         name,
		Email:        email,
		GovernmentID: MaskGovernmentID(governmentID),
	}
	if err := c.authenticate(ctx, "signup", acc); err != nil {
		return nil, err
	}
	return acc, nil
}

func (c *Container) authenticate(ctx context.Context, op string, acc *domain.Account) error {
	if !c.slot.TryAcquire() {
		c.logger.Warn("session: auth operation already in progress", zap.String("operation", op))
		return &domain.ErrConcurrentSubmission{Operation: op}
	}
	defer c.slot.Release()

	if c.Authenticated() {
		c.logger.Warn("session: already signed in", zap.String("operation", op))
		return &domain.ErrValidation{Field: "session", Message: "already signed in; log out first"}
	}

	// A started auth operation runs to completion.
	ctx = context.WithoutCancel(ctx)
	if err := c.latency.Wait(ctx, c.delay); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	stored := *acc
	c.mu.Lock()
	c.account = &stored
	c.mu.Unlock()

	c.metrics.IncrAuth(op)
	c.logger.Info("session: signed in",
		zap.String("operation", op),
		zap.String("account_id", acc.ID),
	)
	return nil
}

// Logout clears the account.
func (c *Container) Logout() {
	c.mu.Lock()
	id := ""
	if c.account != nil {
		id = c.account.ID
	}
	c.account = nil
	c.mu.Unlock()

	c.metrics.IncrAuth("logout")
	c.logger.Info("session: signed out", zap.String("account_id", id))
}

// RecordDonation adds amount to the account total and raises the impact
// score by amount/10, capped at MaxImpactScore. Without an account it does
// nothing.
func (c *Container) RecordDonation(amount int64) {
	if amount <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.account == nil {
		return
	}
	c.account.TotalDonated += amount
	c.account.ImpactScore = raiseImpact(c.account.ImpactScore, amount)
}

// OnDonation applies a published donation event.
func (c *Container) OnDonation(_ context.Context, ev *domain.DonationEvent) error {
	if ev == nil {
		return nil
	}
	c.RecordDonation(ev.Amount)
	return nil
}

// Account returns a copy of the current account.
func (c *Container) Account() (*domain.Account, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.account == nil {
		return nil, false
	}
	acc := *c.account
	return &acc, true
}

// Authenticated reports whether an account is present.
func (c *Container) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.account != nil
}

func raiseImpact(score int, amount int64) int {
	gain := amount / 10
	if gain >= domain.MaxImpactScore {
		return domain.MaxImpactScore
	}
	score += int(gain)
	if score > domain.MaxImpactScore {
		return domain.MaxImpactScore
	}
	return score
}

// DisplayName capitalises the first letter of the email local part and
// leaves the rest untouched: "jane.doe@example.com" → "Jane.doe".
func DisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(local)
	return string(unicode.ToUpper(r)) + local[size:]
}

// MaskGovernmentID keeps only the last four characters.
func MaskGovernmentID(id string) string {
	id = strings.ReplaceAll(strings.TrimSpace(id), " ", "")
	if len(id) <= 4 {
		return "XXXX-XXXX-" + id
	}
	return "XXXX-XXXX-" + id[len(id)-4:]
}
