package http

import (
	"net/http"

	"parcelshift/internal/core/application/usecases/commands"
	"parcelshift/internal/core/application/usecases/queries"
	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/rider"

	"github.com/labstack/echo/v4"
)

type applyAsRiderRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	District string `json:"district"`
}

// ApplyAsRider files a new rider application. One application per email.
func (s *Server) ApplyAsRider(c echo.Context) error {
	var req applyAsRiderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: "invalid request body"})
	}

	riderID := kernel.NewUUID()
	cmd, err := commands.NewApplyAsRiderCommand(riderID, req.Name, req.Email, req.District)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.ApplyAsRider.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, statusResponse{Success: true, Message: "application submitted"})
}

// GetPendingRiders lists applications awaiting an admin's verdict.
func (s *Server) GetPendingRiders(c echo.Context) error {
	return s.ridersByStatus(c, rider.Pending)
}

// GetApprovedRiders lists the active rider roster.
func (s *Server) GetApprovedRiders(c echo.Context) error {
	return s.ridersByStatus(c, rider.Approved)
}

func (s *Server) ridersByStatus(c echo.Context, status rider.Status) error {
	query, err := queries.NewGetRidersQuery(status)
	if err != nil {
		return respondError(c, err)
	}

	riders, err := s.queries.GetRiders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toRiderResponses(riders))
}

// GetAvailableRiders lists approved, idle riders in the given district.
func (s *Server) GetAvailableRiders(c echo.Context) error {
	query, err := queries.NewGetAvailableRidersQuery(c.QueryParam("district"))
	if err != nil {
		return respondError(c, err)
	}

	riders, err := s.queries.GetAvailableRiders.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toRiderResponses(riders))
}

type reviewRiderRequest struct {
	Decision string `json:"decision"`
}

// ReviewRider applies an admin's verdict to a rider application or an
// active rider. Admin only.
func (s *Server) ReviewRider(c echo.Context) error {
	var req reviewRiderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: "invalid request body"})
	}

	riderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewReviewRiderCommand(riderID, commands.ReviewDecision(req.Decision))
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.ReviewRider.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "rider reviewed"})
}
