package http

import (
	"errors"
	"net/http"
	"time"

	"parcelshift/internal/core/application/usecases/queries"
	"parcelshift/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the envelope for every failed request.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// statusResponse is the envelope for mutations that return no payload.
type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// cashoutTotalResponse reports the settled amount of a cashout request.
type cashoutTotalResponse struct {
	Success     bool    `json:"success"`
	TotalAmount float64 `json:"totalAmount"`
}

// parcelResponse mirrors the wire shape consumers of the parcel listings
// already depend on; the mixed key casing is part of the contract.
type parcelResponse struct {
	ID                    string    `json:"id"`
	CreatedBy             string    `json:"created_by"`
	Title                 string    `json:"title"`
	SenderServiceCenter   string    `json:"senderServiceCenter"`
	ReceiverServiceCenter string    `json:"receiverServiceCenter"`
	DeliveryCost          float64   `json:"deliveryCost"`
	PaymentStatus         string    `json:"payment_status"`
	DeliveryStatus        string    `json:"delivery_status"`
	AssignedRiderName     string    `json:"assigned_rider_name,omitempty"`
	AssignedRiderEmail    string    `json:"assigned_rider_email,omitempty"`
	CashoutStatus         bool      `json:"cashout_status"`
	CreationDate          time.Time `json:"creation_date"`
}

func toParcelResponse(p queries.ParcelQueryResponse) parcelResponse {
	return parcelResponse{
		ID:                    p.ID.String(),
		CreatedBy:             p.CreatedBy,
		Title:                 p.Title,
		SenderServiceCenter:   p.SenderServiceCenter,
		ReceiverServiceCenter: p.ReceiverServiceCenter,
		DeliveryCost:          p.DeliveryCost,
		PaymentStatus:         p.PaymentStatus,
		DeliveryStatus:        p.DeliveryStatus,
		AssignedRiderName:     p.RiderName,
		AssignedRiderEmail:    p.RiderEmail,
		CashoutStatus:         p.CashedOut,
		CreationDate:          p.CreatedAt,
	}
}

func toParcelResponses(parcels []queries.ParcelQueryResponse) []parcelResponse {
	out := make([]parcelResponse, 0, len(parcels))
	for _, p := range parcels {
		out = append(out, toParcelResponse(p))
	}
	return out
}

type riderResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	District   string    `json:"district"`
	Status     string    `json:"status"`
	WorkStatus string    `json:"work_status"`
	AppliedAt  time.Time `json:"applied_at"`
}

func toRiderResponses(riders []queries.RiderQueryResponse) []riderResponse {
	out := make([]riderResponse, 0, len(riders))
	for _, r := range riders {
		out = append(out, riderResponse{
			ID:         r.ID.String(),
			Name:       r.Name,
			Email:      r.Email,
			District:   r.District,
			Status:     r.Status,
			WorkStatus: r.WorkStatus,
			AppliedAt:  r.AppliedAt,
		})
	}
	return out
}

type cashoutResponse struct {
	ID          string    `json:"id"`
	RiderEmail  string    `json:"riderEmail"`
	TotalAmount float64   `json:"totalAmount"`
	Status      string    `json:"status"`
	ParcelCount int       `json:"parcelCount"`
	RequestDate time.Time `json:"request_date"`
}

func toCashoutResponses(cashouts []queries.CashoutQueryResponse) []cashoutResponse {
	out := make([]cashoutResponse, 0, len(cashouts))
	for _, c := range cashouts {
		out = append(out, cashoutResponse{
			ID:          c.ID.String(),
			RiderEmail:  c.RiderEmail,
			TotalAmount: c.TotalAmount,
			Status:      c.Status,
			ParcelCount: c.ParcelCount,
			RequestDate: c.RequestedAt,
		})
	}
	return out
}

type trackingEventResponse struct {
	ID       string    `json:"id"`
	ParcelID string    `json:"parcelId"`
	Step     string    `json:"step"`
	Time     time.Time `json:"time"`
}

type accountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type paymentResponse struct {
	ID            string    `json:"id"`
	ParcelID      string    `json:"parcelId"`
	Email         string    `json:"email"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId"`
	PaidAt        time.Time `json:"paid_at"`
}

// respondError maps the error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is a 500 with a generic message so storage internals never
// leak to callers.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Success: false, Message: err.Error()})
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrPartialApplication):
		return c.JSON(http.StatusConflict, errorResponse{Success: false, Message: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Success: false,
			Message: "internal server error",
		})
	}
}
