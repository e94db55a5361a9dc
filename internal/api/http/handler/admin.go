package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/samber/lo"

	"github.com/jobra/portal_backend/internal/api/http/middleware"
	"github.com/jobra/portal_backend/internal/catalog"
	"github.com/jobra/portal_backend/internal/service/review"
	"github.com/jobra/portal_backend/internal/service/stats"
	"github.com/jobra/portal_backend/internal/service/user"
)

type AdminHandler struct {
	users   user.Service
	reviews review.Service
	stats   stats.Service
}

func NewAdminHandler(users user.Service, reviews review.Service, stats stats.Service) *AdminHandler {
	return &AdminHandler{users: users, reviews: reviews, stats: stats}
}

// GET /admin/dashboard
func (h *AdminHandler) Dashboard(c fiber.Ctx) error {
	p, _ := middleware.PrincipalFromFiber(c)

	overview, err := h.stats.Overview(c.Context())
	if err != nil {
		return internalError(c)
	}
	all, err := h.reviews.ListFor(c.Context(), p)
	if err != nil {
		return internalError(c)
	}
	pending := lo.Filter(all, func(r catalog.Review, _ int) bool {
		return r.Status == catalog.ReviewPending
	})

	return ok(c, fiber.Map{
		"stats":           overview,
		"pending_reviews": pending,
	})
}

// GET /admin/users
func (h *AdminHandler) Users(c fiber.Ctx) error {
	all, err := h.users.All(c.Context())
	if err != nil {
		return internalError(c)
	}
	doctors, err := h.users.Doctors(c.Context())
	if err != nil {
		return internalError(c)
	}
	patients, err := h.users.Patients(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, fiber.Map{
		"users":    all,
		"doctors":  doctors,
		"patients": patients,
	})
}

// GET /admin/reviews
func (h *AdminHandler) Reviews(c fiber.Ctx) error {
	p, _ := middleware.PrincipalFromFiber(c)
	all, err := h.reviews.ListFor(c.Context(), p)
	if err != nil {
		return internalError(c)
	}
	return ok(c, all)
}

// PATCH /admin/reviews/:id
func (h *AdminHandler) ModerateReview(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid review id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	updated, err := h.reviews.SetStatus(c.Context(), id, body.Status)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrInvalidStatus):
			return badRequest(c, err.Error())
		case errors.Is(err, review.ErrReviewNotFound):
			return notFound(c, err.Error())
		default:
			return internalError(c)
		}
	}
	return ok(c, updated)
}

// GET /admin/statistics
func (h *AdminHandler) Statistics(c fiber.Ctx) error {
	overview, err := h.stats.Overview(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, overview)
}
