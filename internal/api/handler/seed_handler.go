package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trw5157-hue/garage/internal/core/ports"
)

// SeedHandler exposes the demo-data bootstrap.
type SeedHandler struct {
	service ports.SeedService
}

func NewSeedHandler(service ports.SeedService) *SeedHandler {
	return &SeedHandler{service: service}
}

type seedResponse struct {
	Message string `json:"message"`
	Users   int    `json:"users,omitempty"`
	Jobs    int    `json:"jobs,omitempty"`
}

// Seed handles POST /seed. Idempotent: once any user exists it reports
// "already seeded" and creates nothing.
//
// @Summary      Bootstrap demo data
// @Tags         seed
// @Produce      json
// @Success      200  {object}  seedResponse
// @Router       /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	result, err := h.service.Seed(c.Request().Context())
	if err != nil {
		return err
	}

	if result.AlreadySeeded {
		return c.JSON(http.StatusOK, seedResponse{Message: "Database already seeded"})
	}

	return c.JSON(http.StatusOK, seedResponse{
		Message: "Database seeded successfully",
		Users:   result.Users,
		Jobs:    result.Jobs,
	})
}
