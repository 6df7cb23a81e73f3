package service

import (
	"context"

	"github.com/boddenberg/donor-bfa-go/internal/domain"
	"github.com/boddenberg/donor-bfa-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var bookmarkTracer = otel.Tracer("service/bookmarks")

// MinComparison is the number of bookmarks needed to compare.
const MinComparison = 2

// BookmarkService manages the bookmark list of a session.
type BookmarkService struct {
	catalog port.CatalogReader
	logger  *zap.Logger
}

// NewBookmarkService creates a new bookmark service.
func NewBookmarkService(catalog port.CatalogReader, logger *zap.Logger) *BookmarkService {
	return &BookmarkService{catalog: catalog, logger: logger}
}

// Toggle adds ngoID to the bookmarks or removes it if present. It returns
// the new list and whether ngoID is now bookmarked.
func (s *BookmarkService) Toggle(ctx context.Context, sess *Session, ngoID string) ([]string, bool, error) {
	ctx, span := bookmarkTracer.Start(ctx, "BookmarkService.Toggle")
	defer span.End()
	span.SetAttributes(attribute.String("ngo.id", ngoID))

	if _, err := s.catalog.GetOrganization(ctx, ngoID); err != nil {
		return nil, false, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	for i, id := range sess.bookmarks {
		if id == ngoID {
			sess.bookmarks = append(sess.bookmarks[:i:i], sess.bookmarks[i+1:]...)
			return copyIDs(sess.bookmarks), false, nil
		}
	}
	sess.bookmarks = append(sess.bookmarks, ngoID)
	return copyIDs(sess.bookmarks), true, nil
}

// List returns the bookmarked ids in the order they were added.
func (s *BookmarkService) List(_ context.Context, sess *Session) []string {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return copyIDs(sess.bookmarks)
}

// Clear removes every bookmark.
func (s *BookmarkService) Clear(_ context.Context, sess *Session) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.bookmarks = nil
}

// Compare returns the bookmarked organizations side by side. It needs at
// least MinComparison bookmarks.
func (s *BookmarkService) Compare(ctx context.Context, sess *Session) ([]domain.ComparisonEntry, error) {
	ctx, span := bookmarkTracer.Start(ctx, "BookmarkService.Compare")
	defer span.End()

	ids := s.List(ctx, sess)
	if len(ids) < MinComparison {
		return nil, &domain.ErrValidation{
			Field:   "bookmarks",
			Message: "bookmark at least 2 organizations to compare",
		}
	}

	entries := make([]domain.ComparisonEntry, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			o, err := s.catalog.GetOrganization(gctx, id)
			if err != nil {
				return err
			}
			entries[i] = domain.ComparisonEntry{
				ID:              o.ID,
				Name:            o.Name,
				Category:        o.Category,
				TrustScore:      o.TrustScore,
				TrustTier:       domain.TrustTier(o.TrustScore),
				TotalRaised:     o.TotalRaised,
				ProjectsFunded:  o.ProjectsFunded,
				TotalDonors:     o.TotalDonors,
				FundUtilization: o.FundUtilization,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug("bookmarks compared", zap.Int("count", len(entries)))
	return entries, nil
}

func copyIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
