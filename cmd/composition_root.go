package cmd

import (
	"log/slog"

	httpadapter "parcelshift/internal/adapters/in/http"
	"parcelshift/internal/adapters/out/postgres"
	"parcelshift/internal/adapters/out/stripepay"
	"parcelshift/internal/core/application/usecases/commands"
	"parcelshift/internal/core/application/usecases/queries"
	"parcelshift/internal/core/ports"
	"parcelshift/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateAppendTrackingCommandHandler() commands.AppendTrackingCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendTrackingCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateAutoAssignRiderCommandHandler() commands.AutoAssignRiderCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoAssignRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceDeliveryCommandHandler() commands.AdvanceDeliveryCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestCashoutCommandHandler() commands.RequestCashoutCommandHandler {
	var f commands.CashoutUoWFactory = FuncCashoutUoWFactory(func() commands.CashoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestCashoutCommandHandler(f, c.config.CashoutFlagWholeBatch)
}

func (c *CompositionRoot) CreateApproveCashoutCommandHandler() commands.ApproveCashoutCommandHandler {
	var f commands.CashoutApprovalUoWFactory = FuncCashoutApprovalUoWFactory(func() commands.CashoutApprovalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveCashoutCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyAsRiderCommandHandler() commands.ApplyAsRiderCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyAsRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewRiderCommandHandler() commands.ReviewRiderCommandHandler {
	var f commands.RiderReviewUoWFactory = FuncRiderReviewUoWFactory(func() commands.RiderReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateSetAccountRoleCommandHandler() commands.SetAccountRoleCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetAccountRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateCommandHandlers() httpadapter.CommandHandlers {
	return httpadapter.CommandHandlers{
		CreateParcel:    c.CreateCreateParcelCommandHandler(),
		DeleteParcel:    c.CreateDeleteParcelCommandHandler(),
		RecordPayment:   c.CreateRecordPaymentCommandHandler(),
		AssignRider:     c.CreateAssignRiderCommandHandler(),
		AdvanceDelivery: c.CreateAdvanceDeliveryCommandHandler(),
		RequestCashout:  c.CreateRequestCashoutCommandHandler(),
		ApproveCashout:  c.CreateApproveCashoutCommandHandler(),
		AppendTracking:  c.CreateAppendTrackingCommandHandler(),
		ApplyAsRider:    c.CreateApplyAsRiderCommandHandler(),
		ReviewRider:     c.CreateReviewRiderCommandHandler(),
		RegisterAccount: c.CreateRegisterAccountCommandHandler(),
		SetAccountRole:  c.CreateSetAccountRoleCommandHandler(),
	}
}

func (c *CompositionRoot) CreateQueryHandlers() httpadapter.QueryHandlers {
	return httpadapter.QueryHandlers{
		GetParcels:                 queries.NewGetParcelsQueryHandler(c.gormDB),
		GetParcelByID:              queries.NewGetParcelByIDQueryHandler(c.gormDB),
		GetRiderParcels:            queries.NewGetRiderParcelsQueryHandler(c.gormDB),
		GetDeliveryStatusBreakdown: queries.NewGetDeliveryStatusBreakdownQueryHandler(c.gormDB),
		GetCashouts:                queries.NewGetCashoutsQueryHandler(c.gormDB),
		GetTrackingTrail:           queries.NewGetTrackingTrailQueryHandler(c.gormDB),
		GetRiders:                  queries.NewGetRidersQueryHandler(c.gormDB),
		GetAvailableRiders:         queries.NewGetAvailableRidersQueryHandler(c.gormDB),
		SearchAccounts:             queries.NewSearchAccountsQueryHandler(c.gormDB),
		GetAccountRole:             queries.NewGetAccountRoleQueryHandler(c.gormDB),
		GetPayments:                queries.NewGetPaymentsQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateUnitOfWorkFactory() ports.UnitOfWorkFactory {
	return c.uowFactory
}

func (c *CompositionRoot) CreatePaymentGateway() (ports.PaymentGateway, error) {
	return stripepay.NewGateway(c.config.StripeSecretKey)
}

func (c *CompositionRoot) CreateAuth() (*httpadapter.Auth, error) {
	return httpadapter.NewAuth(c.config.JWTSecret)
}

func (c *CompositionRoot) CreateHTTPServer() (*httpadapter.Server, error) {
	gateway, err := c.CreatePaymentGateway()
	if err != nil {
		return nil, err
	}

	auth, err := c.CreateAuth()
	if err != nil {
		return nil, err
	}

	return httpadapter.NewServer(
		c.CreateCommandHandlers(),
		c.CreateQueryHandlers(),
		gateway,
		c.CreateUnitOfWorkFactory(),
		auth,
	), nil
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAutoAssignRiderCommandHandler(),
		c.config.AssignmentJobSchedule,
		logger,
	)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncCashoutUoWFactory func() commands.CashoutUoW

func (f FuncCashoutUoWFactory) Create() commands.CashoutUoW {
	return f()
}

type FuncCashoutApprovalUoWFactory func() commands.CashoutApprovalUoW

func (f FuncCashoutApprovalUoWFactory) Create() commands.CashoutApprovalUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncRiderReviewUoWFactory func() commands.RiderReviewUoW

func (f FuncRiderReviewUoWFactory) Create() commands.RiderReviewUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
