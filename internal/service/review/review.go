// Package review covers the doctor review lifecycle: patients submit, admins
// moderate, everyone sees their own slice of the collection.
package review

import (
	"context"
	"log/slog"

	"github.com/jobra/portal_backend/internal/catalog"
	"github.com/jobra/portal_backend/pkg/reqctx"
)

type SubmitRequest struct {
	DoctorID int    `json:"doctor_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type Service interface {
	// ListFor returns the reviews visible to the principal: own reviews for
	// patients and doctors, the whole collection for admins.
	ListFor(ctx context.Context, p reqctx.Principal) ([]catalog.Review, error)
	// Submit files a new review. New reviews always enter as pending,
	// whatever the caller sends.
	Submit(ctx context.Context, p reqctx.Principal, req SubmitRequest) (catalog.Review, error)
	// SetStatus is the admin moderation action.
	SetStatus(ctx context.Context, id int, status string) (catalog.Review, error)
}

type reviewService struct {
	store *catalog.Store
}

func New(store *catalog.Store) Service {
	return &reviewService{store: store}
}

func (s *reviewService) ListFor(ctx context.Context, p reqctx.Principal) ([]catalog.Review, error) {
	return s.store.ReviewsFor(p.ID, catalog.Role(p.Role)), nil
}

func (s *reviewService) Submit(ctx context.Context, p reqctx.Principal, req SubmitRequest) (catalog.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return catalog.Review{}, ErrInvalidRating
	}
	doctor, ok := s.store.UserByID(req.DoctorID)
	if !ok || doctor.Role != catalog.RoleDoctor {
		return catalog.Review{}, ErrDoctorNotFound
	}
	patient, ok := s.store.UserByID(p.ID)
	if !ok {
		return catalog.Review{}, ErrUnknownPatient
	}

	created := s.store.AddReview(catalog.Review{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		PatientName: patient.Name,
		DoctorName:  doctor.Name,
		Rating:      req.Rating,
		Comment:     req.Comment,
	})
	slog.Info("review submitted",
		"review_id", created.ID,
		"patient_id", created.PatientID,
		"doctor_id", created.DoctorID,
		"rating", created.Rating,
	)
	return created, nil
}

func (s *reviewService) SetStatus(ctx context.Context, id int, status string) (catalog.Review, error) {
	st := catalog.ReviewStatus(status)
	if !st.Valid() {
		return catalog.Review{}, ErrInvalidStatus
	}
	updated, ok := s.store.UpdateReviewStatus(id, st)
	if !ok {
		return catalog.Review{}, ErrReviewNotFound
	}
	slog.Info("review moderated", "review_id", id, "status", st)
	return updated, nil
}
