// Package user exposes read access to the principal directory. Every result
// is credential-stripped before it leaves the catalog.
package user

import (
	"context"

	"github.com/jobra/portal_backend/internal/catalog"
)

type Service interface {
	GetByID(ctx context.Context, id int) (catalog.User, error)
	// Doctors returns the doctor directory shown on the booking and review
	// pages.
	Doctors(ctx context.Context) ([]catalog.User, error)
	Patients(ctx context.Context) ([]catalog.User, error)
	All(ctx context.Context) ([]catalog.User, error)
}

type userService struct {
	store *catalog.Store
}

func New(store *catalog.Store) Service {
	return &userService{store: store}
}

func (s *userService) GetByID(ctx context.Context, id int) (catalog.User, error) {
	u, ok := s.store.UserByID(id)
	if !ok {
		return catalog.User{}, ErrUserNotFound
	}
	return u, nil
}

func (s *userService) Doctors(ctx context.Context) ([]catalog.User, error) {
	return s.store.UsersByRole(catalog.RoleDoctor), nil
}

func (s *userService) Patients(ctx context.Context) ([]catalog.User, error) {
	return s.store.UsersByRole(catalog.RolePatient), nil
}

func (s *userService) All(ctx context.Context) ([]catalog.User, error) {
	return s.store.AllUsers(), nil
}
