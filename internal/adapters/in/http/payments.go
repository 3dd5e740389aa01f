package http

import (
	"net/http"

	"parcelshift/internal/core/application/usecases/commands"
	"parcelshift/internal/core/application/usecases/queries"
	"parcelshift/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createPaymentIntentRequest struct {
	// Amount in the smallest currency unit (cents).
	Amount int64 `json:"amount"`
}

type createPaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentIntent opens a card payment intent with the payment provider
// and hands the client secret back so the frontend can confirm the charge.
func (s *Server) CreatePaymentIntent(c echo.Context) error {
	var req createPaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: "invalid request body"})
	}

	clientSecret, err := s.gateway.CreateIntent(c.Request().Context(), req.Amount, "usd")
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, createPaymentIntentResponse{ClientSecret: clientSecret})
}

type recordPaymentRequest struct {
	ParcelID      string  `json:"parcelId"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transactionId"`
}

// RecordPayment marks a parcel as paid and stores the payment record under
// the authenticated caller.
func (s *Server) RecordPayment(c echo.Context) error {
	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: "invalid request body"})
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewRecordPaymentCommand(parcelID, callerEmail(c), req.Amount, req.TransactionID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.RecordPayment.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, statusResponse{Success: true, Message: "payment recorded"})
}

// GetPayments lists the authenticated caller's payment history, newest first.
func (s *Server) GetPayments(c echo.Context) error {
	query, err := queries.NewGetPaymentsQuery(callerEmail(c))
	if err != nil {
		return respondError(c, err)
	}

	payments, err := s.queries.GetPayments.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, paymentResponse{
			ID:            p.ID.String(),
			ParcelID:      p.ParcelID.String(),
			Email:         p.PayerEmail,
			Amount:        p.Amount,
			TransactionID: p.TransactionID,
			PaidAt:        p.PaidAt,
		})
	}

	return c.JSON(http.StatusOK, out)
}
