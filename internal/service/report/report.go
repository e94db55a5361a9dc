// Package report exposes the medical report collection scoped to the calling
// principal. Reports are read-only in the portal; they enter the system
// through the seed dataset.
package report

import (
	"context"

	"github.com/jobra/portal_backend/internal/catalog"
	"github.com/jobra/portal_backend/pkg/reqctx"
)

type Service interface {
	// ListFor returns the reports visible to the principal: own reports for
	// patients and doctors, the whole collection for admins.
	ListFor(ctx context.Context, p reqctx.Principal) ([]catalog.Report, error)
}

type reportService struct {
	store *catalog.Store
}

func New(store *catalog.Store) Service {
	return &reportService{store: store}
}

func (s *reportService) ListFor(ctx context.Context, p reqctx.Principal) ([]catalog.Report, error) {
	return s.store.ReportsFor(p.ID, catalog.Role(p.Role)), nil
}
