package service

import (
	"context"
	"sync"
	"time"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/donation"
	"github.com/boddenberg/donor-bfa-go/internal/event"
	"github.com/boddenberg/donor-bfa-go/internal/infra/observability"
	"github.com/boddenberg/donor-bfa-go/internal/ledger"
	"github.com/boddenberg/donor-bfa-go/internal/port"
	"github.com/boddenberg/donor-bfa-go/internal/session"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var viewTracer = otel.Tracer("service/views")

// Listener names, in delivery order.
const (
	ListenerCounters = "counters"
	ListenerLedger   = "ledger"
	ListenerAccount  = "account"
)

// DetailView is one mounted organization page. It owns its ledger, counters
// and donation surface; the account container, if any, belongs to the
// session and outlives the view.
type DetailView struct {
	ID        string
	Org       *domain.Organization
	MountedAt time.Time

	counters *AggregateCounters
	ledger   *ledger.Store
	surface  *donation.Surface
	bus      *event.Bus

	mu         sync.Mutex
	hasDonated bool
}

// Snapshot returns the current state of the view.
func (v *DetailView) Snapshot() *domain.ViewSnapshot {
	v.mu.Lock()
	donated := v.hasDonated
	v.mu.Unlock()

	return &domain.ViewSnapshot{
		ViewID:       v.ID,
		Organization: domain.Summarize(v.Org),
		Totals:       v.counters.Totals(),
		Ledger:       v.ledger.Snapshot(),
		Donation:     v.surface.Outcome(),
		HasDonated:   donated,
		Divergence:   domain.DivergenceNote,
		MountedAt:    v.MountedAt,
	}
}

// Listeners returns the bus listener names in delivery order.
func (v *DetailView) Listeners() []string { return v.bus.Listeners() }

// ViewService mounts detail views and routes donations through them.
type ViewService struct {
	catalog        port.CatalogReader
	views          port.Cache[*DetailView]
	gateway        port.PaymentGateway
	clock          port.Clock
	ledgerCapacity int
	metrics        *observability.Metrics
	logger         *zap.Logger
}

// NewViewService creates a new view service.
func NewViewService(
	catalog port.CatalogReader,
	views port.Cache[*DetailView],
	gateway port.PaymentGateway,
	clock port.Clock,
	ledgerCapacity int,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *ViewService {
	return &ViewService{
		catalog:        catalog,
		views:          views,
		gateway:        gateway,
		clock:          clock,
		ledgerCapacity: ledgerCapacity,
		metrics:        metrics,
		logger:         logger,
	}
}

// ============================================================
// Mount / Unmount: POST, DELETE /v1/views
// ============================================================

// Mount creates a detail view for ngoID with a fresh ledger. account may be
// nil for an anonymous visitor.
func (s *ViewService) Mount(ctx context.Context, ngoID string, account *session.Container) (*DetailView, error) {
	ctx, span := viewTracer.Start(ctx, "ViewService.Mount")
	defer span.End()
	span.SetAttributes(attribute.String("ngo.id", ngoID))

	org, err := s.catalog.GetOrganization(ctx, ngoID)
	if err != nil {
		return nil, err
	}
	seed, err := s.catalog.SeedLedger(ctx, ngoID)
	if err != nil {
		return nil, err
	}

	v := &DetailView{
		ID:        uuid.NewString(),
		Org:       org,
		MountedAt: s.clock.Now(),
		counters:  NewAggregateCounters(org.TotalRaised, org.TotalDonors),
		ledger:    ledger.New(org, seed, s.ledgerCapacity, s.clock, s.logger),
		bus:       event.NewBus(s.metrics, s.logger),
	}

	v.bus.Subscribe(ListenerCounters, v.counters)
	v.bus.Subscribe(ListenerLedger, v.ledger)
	if account != nil {
		v.bus.Subscribe(ListenerAccount, account)
	}

	v.surface = donation.NewSurface(org, s.gateway, s.clock, s.reporter(v), s.metrics, s.logger)

	s.views.Set(v.ID, v)
	s.metrics.SetActiveViews(s.views.Len())
	s.metrics.SetLedgerRecords(org.ID, v.ledger.Len())

	s.logger.Info("view mounted",
		zap.String("view_id", v.ID),
		zap.String("ngo_id", org.ID),
		zap.Bool("signed_in", account != nil),
	)
	return v, nil
}

// reporter is the surface callback: it flags the view and fans the event out
// to the listeners. A failing listener is logged and does not undo the
// others.
func (s *ViewService) reporter(v *DetailView) donation.ReportFunc {
	return func(ctx context.Context, ev *domain.DonationEvent) {
		v.mu.Lock()
		v.hasDonated = true
		v.mu.Unlock()

		if err := v.bus.Publish(ctx, ev); err != nil {
			s.logger.Warn("view: donation listeners diverged",
				zap.String("view_id", v.ID),
				zap.Error(err),
			)
		}
		s.metrics.SetLedgerRecords(v.Org.ID, v.ledger.Len())
	}
}

// Unmount discards a view and its ledger.
func (s *ViewService) Unmount(ctx context.Context, viewID string) error {
	_, span := viewTracer.Start(ctx, "ViewService.Unmount")
	defer span.End()

	if _, err := s.lookup(viewID); err != nil {
		return err
	}
	s.views.Delete(viewID)
	s.metrics.SetActiveViews(s.views.Len())

	s.logger.Info("view unmounted", zap.String("view_id", viewID))
	return nil
}

func (s *ViewService) lookup(viewID string) (*DetailView, error) {
	v, ok := s.views.Get(viewID)
	if !ok {
		return nil, &domain.ErrNotFound{Resource: "view", ID: viewID}
	}
	s.views.Touch(viewID)
	return v, nil
}

// Get returns the snapshot of a mounted view.
func (s *ViewService) Get(ctx context.Context, viewID string) (*domain.ViewSnapshot, error) {
	_, span := viewTracer.Start(ctx, "ViewService.Get")
	defer span.End()

	v, err := s.lookup(viewID)
	if err != nil {
		return nil, err
	}
	return v.Snapshot(), nil
}

// ============================================================
// Donate: POST /v1/views/{viewId}/donations
// ============================================================

// Donate submits a donation on the view's surface and returns the updated
// snapshot.
func (s *ViewService) Donate(ctx context.Context, viewID string, req *domain.DonationRequest) (*domain.ViewSnapshot, error) {
	ctx, span := viewTracer.Start(ctx, "ViewService.Donate")
	defer span.End()
	span.SetAttributes(
		attribute.String("view.id", viewID),
		attribute.Int64("donation.amount", req.Amount),
	)

	v, err := s.lookup(viewID)
	if err != nil {
		return nil, err
	}
	if _, err := v.surface.Submit(ctx, req.Amount, req.Target, req.Anonymous); err != nil {
		return nil, err
	}
	return v.Snapshot(), nil
}

// Receipt returns the receipt of the view's completed donation.
func (s *ViewService) Receipt(ctx context.Context, viewID string) (*domain.ReceiptRecord, error) {
	_, span := viewTracer.Start(ctx, "ViewService.Receipt")
	defer span.End()

	v, err := s.lookup(viewID)
	if err != nil {
		return nil, err
	}
	return v.surface.Receipt()
}
