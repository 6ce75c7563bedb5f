package services

import (
	portsrepo "github.com/dukapoint/pos_backend/internal/core/ports/repositories"
	portssvc "github.com/dukapoint/pos_backend/internal/core/ports/services"
	"github.com/dukapoint/pos_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, gateway portssvc.PaymentGatewaySvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Customer service first since checkout depends on it for redemptions
	container.Customer = NewCustomerService(repos.CustomerRepo)

	container.Checkout = NewCheckoutService(repos.SaleRepo, repos.ShiftRepo, container.Customer, cfg)
	container.Shift = NewShiftService(repos.ShiftRepo, repos.SaleRepo, repos.CashflowRepo)
	container.Reporting = NewReportingService(repos.ShiftRepo, repos.SaleRepo, repos.CashflowRepo)
	container.User = NewUserService(repos.UserRepo)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	container.PaymentGateway = gateway

	return container
}
