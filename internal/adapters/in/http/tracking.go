package http

import (
	"net/http"

	"parcelshift/internal/core/application/usecases/commands"
	"parcelshift/internal/core/application/usecases/queries"
	"parcelshift/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type appendTrackingRequest struct {
	ParcelID string `json:"parcelId"`
	Step     string `json:"step"`
}

// AppendTracking records one step of a parcel's journey.
func (s *Server) AppendTracking(c echo.Context) error {
	var req appendTrackingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: "invalid request body"})
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAppendTrackingCommand(parcelID, req.Step)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.AppendTracking.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, statusResponse{Success: true, Message: "tracking recorded"})
}

// GetTrackingTrail lists a parcel's tracking steps in the order they were
// recorded. An unknown parcel yields an empty trail.
func (s *Server) GetTrackingTrail(c echo.Context) error {
	parcelID, err := kernel.UUIDFromString(c.Param("parcelId"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetTrackingTrailQuery(parcelID)
	if err != nil {
		return respondError(c, err)
	}

	trail, err := s.queries.GetTrackingTrail.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]trackingEventResponse, 0, len(trail))
	for _, event := range trail {
		out = append(out, trackingEventResponse{
			ID:       event.ID.String(),
			ParcelID: event.ParcelID.String(),
			Step:     event.Step,
			Time:     event.Time,
		})
	}

	return c.JSON(http.StatusOK, out)
}
