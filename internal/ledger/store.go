// Package ledger holds the per-view public ledger: an ordered, capped list of
// transaction records, newest first, seeded from fixtures.
package ledger

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/port"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("ledger")

const (
	// DefaultCapacity is the retention cap when none is configured.
	DefaultCapacity = 10
	// VisibleRecords is how many rows a viewer ever sees.
	VisibleRecords = 10
)

// Store is the ledger of one mounted detail view. It is discarded with the
// view; a fresh view starts again from the seed.
type Store struct {
	mu            sync.Mutex
	org           *domain.Organization
	records       []domain.TransactionRecord
	capacity      int
	lastProcessed *domain.DonationEvent
	clock         port.Clock
	logger        *zap.Logger
}

// New creates a ledger for org seeded with a copy of seed (newest first).
// capacity below VisibleRecords is raised to VisibleRecords.
func New(org *domain.Organization, seed []domain.TransactionRecord, capacity int, clock port.Clock, logger *zap.Logger) *Store {
	if capacity < VisibleRecords {
		capacity = DefaultCapacity
	}
	records := make([]domain.TransactionRecord, 0, capacity+1)
	for _, r := range seed {
		if len(records) == capacity {
			break
		}
		records = append(records, r)
	}
	return &Store{
		org:      org,
		records:  records,
		capacity: capacity,
		clock:    clock,
		logger:   logger,
	}
}

// RecordDonation turns a donation event into a Program row and prepends it.
// Re-applying the event last processed is a no-op reported as applied=false.
func (s *Store) RecordDonation(ctx context.Context, ev *domain.DonationEvent) (domain.TransactionRecord, bool, error) {
	_, span := tracer.Start(ctx, "Store.RecordDonation")
	defer span.End()
	span.SetAttributes(attribute.String("ngo.id", s.org.ID))

	s.mu.Lock()
	defer s.mu.Unlock()

	if ev == nil {
		return domain.TransactionRecord{}, false, &domain.ErrValidation{Field: "event", Message: "must not be nil"}
	}
	if ev == s.lastProcessed {
		s.logger.Debug("ledger: event already processed", zap.String("ngo_id", s.org.ID))
		return s.records[0], false, nil
	}

	target, err := domain.TargetName(s.org, ev.Target)
	if err != nil {
		return domain.TransactionRecord{}, false, err
	}

	now := s.clock.Now()
	rec, err := domain.NewTransactionRecord(
		"tx-"+uuid.NewString(),
		now.Format(domain.LedgerDateLayout),
		describe(ev.Anonymous, target),
		ev.Amount,
		domain.CategoryProgram,
		newReceiptID(now.Year()),
		s.org.ID,
	)
	if err != nil {
		return domain.TransactionRecord{}, false, fmt.Errorf("build ledger record: %w", err)
	}

	s.records = append([]domain.TransactionRecord{rec}, s.records...)
	if len(s.records) > s.capacity {
		s.records = s.records[:s.capacity]
	}
	s.lastProcessed = ev

	s.logger.Info("ledger: donation recorded",
		zap.String("ngo_id", s.org.ID),
		zap.String("record_id", rec.ID),
		zap.String("receipt_id", rec.ReceiptID),
		zap.Int64("amount", rec.Amount),
	)
	return rec, true, nil
}

// OnDonation implements port.DonationListener.
func (s *Store) OnDonation(ctx context.Context, ev *domain.DonationEvent) error {
	_, _, err := s.RecordDonation(ctx, ev)
	return err
}

// Records returns a copy of the visible rows, newest first.
func (s *Store) Records() []domain.TransactionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.records)
	if n > VisibleRecords {
		n = VisibleRecords
	}
	out := make([]domain.TransactionRecord, n)
	copy(out, s.records[:n])
	return out
}

// Len returns the number of retained rows.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Snapshot returns the visible ledger.
func (s *Store) Snapshot() domain.LedgerSnapshot {
	records := s.Records()
	return domain.LedgerSnapshot{
		NGOID:   s.org.ID,
		Records: records,
		Count:   s.Len(),
	}
}

func describe(anonymous bool, target string) string {
	who := "User"
	if anonymous {
		who = "Anonymous"
	}
	return fmt.Sprintf("%s Donation - %s", who, target)
}

// newReceiptID returns RCP-<year>-<1000..9999>.
func newReceiptID(year int) string {
	return fmt.Sprintf("RCP-%d-%d", year, rand.Intn(9000)+1000)
}
