package http

import (
	"net/http"

	"parcelshift/internal/core/application/usecases/commands"
	"parcelshift/internal/core/application/usecases/queries"
	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
)

type createParcelRequest struct {
	Title                 string  `json:"title"`
	SenderServiceCenter   string  `json:"senderServiceCenter"`
	ReceiverServiceCenter string  `json:"receiverServiceCenter"`
	DeliveryCost          float64 `json:"deliveryCost"`
}

type createParcelResponse struct {
	Success bool    `json:"success"`
	ID      string  `json:"id"`
	Cost    float64 `json:"cost"`
}

// CreateParcel registers a new parcel for the authenticated caller.
func (s *Server) CreateParcel(c echo.Context) error {
	var req createParcelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: "invalid request body"})
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(
		parcelID,
		callerEmail(c),
		req.Title,
		req.SenderServiceCenter,
		req.ReceiverServiceCenter,
		req.DeliveryCost,
	)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.CreateParcel.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, createParcelResponse{
		Success: true,
		ID:      parcelID.String(),
		Cost:    req.DeliveryCost,
	})
}

// GetAllParcels lists every parcel in creation order, newest first.
func (s *Server) GetAllParcels(c echo.Context) error {
	parcels, err := s.queries.GetParcels.Handle(c.Request().Context(), queries.NewGetParcelsQuery(""))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toParcelResponses(parcels))
}

// GetMyParcels lists the parcels created by the authenticated caller.
func (s *Server) GetMyParcels(c echo.Context) error {
	parcels, err := s.queries.GetParcels.Handle(
		c.Request().Context(),
		queries.NewGetParcelsQuery(callerEmail(c)),
	)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toParcelResponses(parcels))
}

// GetParcelByID returns a single parcel.
func (s *Server) GetParcelByID(c echo.Context) error {
	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetParcelByIDQuery(parcelID)
	if err != nil {
		return respondError(c, err)
	}

	found, err := s.queries.GetParcelByID.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toParcelResponse(found))
}

// GetRiderPendingParcels lists a rider's active assignments.
func (s *Server) GetRiderPendingParcels(c echo.Context) error {
	return s.riderParcels(c, false)
}

// GetRiderCompletedParcels lists a rider's delivered parcels.
func (s *Server) GetRiderCompletedParcels(c echo.Context) error {
	return s.riderParcels(c, true)
}

func (s *Server) riderParcels(c echo.Context, completedOnly bool) error {
	query, err := queries.NewGetRiderParcelsQuery(c.QueryParam("email"), completedOnly)
	if err != nil {
		return respondError(c, err)
	}

	parcels, err := s.queries.GetRiderParcels.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toParcelResponses(parcels))
}

type deliveryStatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// GetDeliveryStatusBreakdown reports parcel counts per delivery status.
func (s *Server) GetDeliveryStatusBreakdown(c echo.Context) error {
	counts, err := s.queries.GetDeliveryStatusBreakdown.Handle(
		c.Request().Context(),
		queries.NewGetDeliveryStatusBreakdownQuery(),
	)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]deliveryStatusCountResponse, 0, len(counts))
	for _, row := range counts {
		out = append(out, deliveryStatusCountResponse{Status: row.Status, Count: row.Count})
	}

	return c.JSON(http.StatusOK, out)
}

type assignRiderRequest struct {
	ParcelID string `json:"parcelId"`
	RiderID  string `json:"riderId"`
	// Rider name and email come from the rider record, not the request,
	// but older clients still send them.
	RiderName  string `json:"riderName"`
	RiderEmail string `json:"riderEmail"`
}

// AssignRider attaches an approved, idle rider to a paid parcel.
func (s *Server) AssignRider(c echo.Context) error {
	var req assignRiderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: "invalid request body"})
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return respondError(c, err)
	}
	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAssignRiderCommand(parcelID, riderID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.AssignRider.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "rider assigned"})
}

type advanceDeliveryRequest struct {
	DeliveryStatus string `json:"delivery_status"`
	// The rider's email is implied by the assignment; accepted for
	// compatibility and ignored.
	RiderEmail string `json:"riderEmail"`
}

// AdvanceDelivery moves a parcel along the rider-assigned -> in-transit ->
// delivered progression. Delivery also releases the rider back to idle.
func (s *Server) AdvanceDelivery(c echo.Context) error {
	var req advanceDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Success: false, Message: "invalid request body"})
	}

	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	target, err := parcel.DeliveryStatusFromString(req.DeliveryStatus)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAdvanceDeliveryCommand(parcelID, target)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.AdvanceDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "delivery status updated"})
}

// DeleteParcel removes a parcel. Admin only.
func (s *Server) DeleteParcel(c echo.Context) error {
	parcelID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.commands.DeleteParcel.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, statusResponse{Success: true, Message: "parcel deleted"})
}
