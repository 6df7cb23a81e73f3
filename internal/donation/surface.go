// Package donation implements the donation input surface of a detail view:
// a single-flight Idle → Processing → Success state machine that charges the
// (simulated) gateway, builds a receipt and reports the donation upward.
package donation

import (
	"context"
	"fmt"
	"sync"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/infra/observability"
	"github.com/boddenberg/donor-bfa-go/internal/infra/resilience"
	"github.com/boddenberg/donor-bfa-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("donation")

// ReportFunc receives the event of a completed submission.
type ReportFunc func(ctx context.Context, ev *domain.DonationEvent)

// Surface is the donation form of one detail view.
type Surface struct {
	org      *domain.Organization
	gateway  port.PaymentGateway
	clock    port.Clock
	onDonate ReportFunc
	metrics  *observability.Metrics
	logger   *zap.Logger

	slot *resilience.Bulkhead

	mu      sync.Mutex
	state   domain.SurfaceState
	outcome domain.DonationOutcome
	receipt *domain.ReceiptRecord
}

// NewSurface creates an idle surface for org.
func NewSurface(
	org *domain.Organization,
	gateway port.PaymentGateway,
	clock port.Clock,
	onDonate ReportFunc,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Surface {
	return &Surface{
		org:      org,
		gateway:  gateway,
		clock:    clock,
		onDonate: onDonate,
		metrics:  metrics,
		logger:   logger,
		slot:     resilience.NewBulkhead(1),
		state:    domain.SurfaceIdle,
		outcome:  domain.DonationOutcome{State: domain.SurfaceIdle},
	}
}

// Submit validates and processes one donation. A second call while one is
// outstanding fails fast with ErrConcurrentSubmission. Once the slot is taken
// the caller's cancellation no longer applies. On success the report
// callback runs exactly once with the new event.
func (s *Surface) Submit(ctx context.Context, amount int64, target string, anonymous bool) (*domain.DonationOutcome, error) {
	ctx, span := tracer.Start(ctx, "Surface.Submit")
	defer span.End()
	span.SetAttributes(
		attribute.String("ngo.id", s.org.ID),
		attribute.Int64("donation.amount", amount),
	)

	if target == "" {
		target = domain.GeneralFund
	}
	if err := domain.ValidateDonationAmount(amount); err != nil {
		s.metrics.IncrRejected("validation")
		return nil, err
	}
	targetName, err := domain.TargetName(s.org, target)
	if err != nil {
		s.metrics.IncrRejected("validation")
		return nil, err
	}

	if !s.slot.TryAcquire() {
		s.metrics.IncrRejected("concurrent")
		s.logger.Warn("donation: submission already in progress", zap.String("ngo_id", s.org.ID))
		return nil, &domain.ErrConcurrentSubmission{Operation: "donation"}
	}
	defer s.slot.Release()

	// A started submission runs to completion even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	s.mu.Lock()
	if s.state == domain.SurfaceSuccess {
		s.mu.Unlock()
		s.metrics.IncrRejected("completed")
		return nil, &domain.ErrValidation{Field: "state", Message: "donation already completed for this view"}
	}
	s.state = domain.SurfaceProcessing
	s.outcome = domain.DonationOutcome{State: domain.SurfaceProcessing, Amount: amount, Target: target, Anonymous: anonymous}
	s.mu.Unlock()

	ev := &domain.DonationEvent{Amount: amount, Target: target, Anonymous: anonymous}

	if err := s.gateway.Charge(ctx, ev); err != nil {
		s.mu.Lock()
		s.state = domain.SurfaceIdle
		s.outcome = domain.DonationOutcome{State: domain.SurfaceIdle}
		s.mu.Unlock()

		s.metrics.IncrGatewayError()
		s.logger.Error("donation: charge failed",
			zap.String("ngo_id", s.org.ID),
			zap.Int64("amount", amount),
			zap.Error(err),
		)
		return nil, fmt.Errorf("charge donation: %w", err)
	}

	now := s.clock.Now()
	outcome := domain.DonationOutcome{
		State:      domain.SurfaceSuccess,
		Amount:     amount,
		Target:     target,
		ImpactText: domain.ImpactText(amount),
		Anonymous:  anonymous,
	}
	if anonymous {
		outcome.AnonymityNote = domain.AnonymityNote
	}
	receipt := &domain.ReceiptRecord{
		SerialNumber:     NewSerialNumber(now),
		Amount:           amount,
		Date:             now.Format(domain.ReceiptDateLayout),
		NGOName:          s.org.Name,
		NGOVerification:  s.org.VerificationID,
		TargetName:       targetName,
		TaxDeductionNote: domain.TaxDeductionNote,
	}

	s.mu.Lock()
	s.state = domain.SurfaceSuccess
	s.outcome = outcome
	s.receipt = receipt
	s.mu.Unlock()

	s.metrics.RecordDonation(s.org.ID, amount)
	s.logger.Info("donation: completed",
		zap.String("ngo_id", s.org.ID),
		zap.Int64("amount", amount),
		zap.String("target", target),
		zap.Bool("anonymous", anonymous),
		zap.String("serial", receipt.SerialNumber),
	)

	if s.onDonate != nil {
		s.onDonate(ctx, ev)
	}

	result := outcome
	return &result, nil
}

// Receipt returns the receipt of the completed submission. Repeated calls
// return the same receipt.
func (s *Surface) Receipt() (*domain.ReceiptRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.receipt == nil {
		return nil, &domain.ErrNotFound{Resource: "receipt", ID: s.org.ID}
	}
	r := *s.receipt
	return &r, nil
}

// Outcome returns what the surface currently displays.
func (s *Surface) Outcome() domain.DonationOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// State returns the lifecycle state.
func (s *Surface) State() domain.SurfaceState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
