// Package http exposes the service over an echo server. Handlers translate
// requests into commands and queries; a declarative route table pairs every
// path with the capability it requires (public, authenticated, admin).
package http

import (
	"net/http"

	"parcelshift/internal/core/application/usecases/commands"
	"parcelshift/internal/core/application/usecases/queries"
	"parcelshift/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// CommandHandlers bundles every command handler the server dispatches to.
type CommandHandlers struct {
	CreateParcel    commands.CreateParcelCommandHandler
	DeleteParcel    commands.DeleteParcelCommandHandler
	RecordPayment   commands.RecordPaymentCommandHandler
	AssignRider     commands.AssignRiderCommandHandler
	AdvanceDelivery commands.AdvanceDeliveryCommandHandler
	RequestCashout  commands.RequestCashoutCommandHandler
	ApproveCashout  commands.ApproveCashoutCommandHandler
	AppendTracking  commands.AppendTrackingCommandHandler
	ApplyAsRider    commands.ApplyAsRiderCommandHandler
	ReviewRider     commands.ReviewRiderCommandHandler
	RegisterAccount commands.RegisterAccountCommandHandler
	SetAccountRole  commands.SetAccountRoleCommandHandler
}

// QueryHandlers bundles every query handler the server dispatches to.
type QueryHandlers struct {
	GetParcels                 queries.GetParcelsQueryHandler
	GetParcelByID              queries.GetParcelByIDQueryHandler
	GetRiderParcels            queries.GetRiderParcelsQueryHandler
	GetDeliveryStatusBreakdown queries.GetDeliveryStatusBreakdownQueryHandler
	GetCashouts                queries.GetCashoutsQueryHandler
	GetTrackingTrail           queries.GetTrackingTrailQueryHandler
	GetRiders                  queries.GetRidersQueryHandler
	GetAvailableRiders         queries.GetAvailableRidersQueryHandler
	SearchAccounts             queries.SearchAccountsQueryHandler
	GetAccountRole             queries.GetAccountRoleQueryHandler
	GetPayments                queries.GetPaymentsQueryHandler
}

// Server coordinates between HTTP handlers and the application use cases.
type Server struct {
	commands   CommandHandlers
	queries    QueryHandlers
	gateway    ports.PaymentGateway
	uowFactory ports.UnitOfWorkFactory
	auth       *Auth
}

// NewServer creates an HTTP server over the given use case handlers. The
// unit of work factory is used only for credential verification on login.
func NewServer(
	commandHandlers CommandHandlers,
	queryHandlers QueryHandlers,
	gateway ports.PaymentGateway,
	uowFactory ports.UnitOfWorkFactory,
	auth *Auth,
) *Server {
	return &Server{
		commands:   commandHandlers,
		queries:    queryHandlers,
		gateway:    gateway,
		uowFactory: uowFactory,
		auth:       auth,
	}
}

// capability is the access level a route requires.
type capability int

const (
	capPublic capability = iota
	capAuthenticated
	capAdmin
)

// route pairs one endpoint with its handler and required capability.
type route struct {
	method     string
	path       string
	handler    echo.HandlerFunc
	capability capability
}

func (s *Server) routes() []route {
	return []route{
		// Parcel lifecycle.
		{http.MethodPost, "/parcels", s.CreateParcel, capAuthenticated},
		{http.MethodGet, "/allparcel", s.GetAllParcels, capPublic},
		{http.MethodGet, "/myparcels", s.GetMyParcels, capAuthenticated},
		{http.MethodGet, "/parcels/rider-pending", s.GetRiderPendingParcels, capPublic},
		{http.MethodGet, "/rider/completed-parcels", s.GetRiderCompletedParcels, capPublic},
		{http.MethodGet, "/parcel/aggrigate/delivery_status", s.GetDeliveryStatusBreakdown, capPublic},
		{http.MethodGet, "/parcels/:id", s.GetParcelByID, capPublic},
		{http.MethodPatch, "/parcels/:id/status", s.AdvanceDelivery, capPublic},
		{http.MethodDelete, "/parcels/:id", s.DeleteParcel, capAdmin},
		{http.MethodPatch, "/assign-rider", s.AssignRider, capPublic},

		// Cashout reconciliation.
		{http.MethodPost, "/cashout", s.RequestCashout, capAuthenticated},
		{http.MethodGet, "/cashouts", s.GetCashoutHistory, capAuthenticated},
		{http.MethodGet, "/cashouts/allow", s.GetPendingCashouts, capAdmin},
		{http.MethodPatch, "/cashouts/:id", s.ApproveCashout, capAdmin},

		// Tracking log.
		{http.MethodPost, "/tracking", s.AppendTracking, capPublic},
		{http.MethodGet, "/tracking/:parcelId", s.GetTrackingTrail, capPublic},

		// Riders.
		{http.MethodPost, "/riders", s.ApplyAsRider, capPublic},
		{http.MethodGet, "/riders/pending", s.GetPendingRiders, capAdmin},
		{http.MethodGet, "/riders/approved", s.GetApprovedRiders, capPublic},
		{http.MethodGet, "/riders/available", s.GetAvailableRiders, capPublic},
		{http.MethodPatch, "/riders/:id", s.ReviewRider, capAdmin},

		// Accounts and auth.
		{http.MethodPost, "/users", s.RegisterAccount, capPublic},
		{http.MethodGet, "/users", s.SearchAccounts, capPublic},
		{http.MethodGet, "/users/role", s.GetAccountRole, capPublic},
		{http.MethodPatch, "/users/role/:id", s.SetAccountRole, capAdmin},
		{http.MethodPost, "/auth/login", s.Login, capPublic},

		// Payments.
		{http.MethodPost, "/create-payment-intent", s.CreatePaymentIntent, capPublic},
		{http.MethodPost, "/payments", s.RecordPayment, capAuthenticated},
		{http.MethodGet, "/payments", s.GetPayments, capAuthenticated},
	}
}

// RegisterRoutes wires the route table into the echo instance, applying the
// auth middleware each route's capability demands.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	for _, r := range s.routes() {
		switch r.capability {
		case capAuthenticated:
			e.Add(r.method, r.path, r.handler, s.auth.Authenticate)
		case capAdmin:
			e.Add(r.method, r.path, r.handler, s.auth.Authenticate, s.auth.RequireAdmin)
		default:
			e.Add(r.method, r.path, r.handler)
		}
	}
}
