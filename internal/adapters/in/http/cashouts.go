package http

import (
	"errors"
	"net/http"

	"parcelshift/internal/core/application/usecases/commands"
	"parcelshift/internal/core/application/usecases/queries"
	"parcelshift/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type requestCashoutRequest struct {
	ParcelID string `json:"parcelId"`
}

// RequestCashout settles the authenticated rider's delivered, not yet
// cashed-out parcels into a pending cashout. Responds with the settled total.
func (s *Server) RequestCashout(c echo.Context) error {
	var req requestCashoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: "invalid request body"})
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewRequestCashoutCommand(callerEmail(c), parcelID)
	if err != nil {
		return respondError(c, err)
	}

	total, err := s.commands.RequestCashout.Handle(c.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrNoEligibleParcels) {
			return c.JSON(http.StatusNotFound, errorResponse{
				Success: false,
				Message: "no eligible parcels to cash out",
			})
		}
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, cashoutTotalResponse{Success: true, TotalAmount: total})
}

// GetCashoutHistory lists the authenticated rider's own cashout requests,
// newest first. The filter comes from the token, never from the request.
func (s *Server) GetCashoutHistory(c echo.Context) error {
	cashouts, err := s.queries.GetCashouts.Handle(
		c.Request().Context(),
		queries.NewGetCashoutsQuery(callerEmail(c), false),
	)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toCashoutResponses(cashouts))
}

// GetPendingCashouts lists every cashout awaiting approval. Admin only.
func (s *Server) GetPendingCashouts(c echo.Context) error {
	cashouts, err := s.queries.GetCashouts.Handle(
		c.Request().Context(),
		queries.NewGetCashoutsQuery("", true),
	)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toCashoutResponses(cashouts))
}

// ApproveCashout marks a pending cashout as paid out. Admin only.
func (s *Server) ApproveCashout(c echo.Context) error {
	cashoutID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewApproveCashoutCommand(cashoutID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.ApproveCashout.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "cashout approved"})
}
