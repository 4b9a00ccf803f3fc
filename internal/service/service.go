package service

import (
	"github.com/roomdesk/roomdesk/internal/config"
	"github.com/roomdesk/roomdesk/internal/pg"
	"github.com/roomdesk/roomdesk/internal/provider"
	"github.com/roomdesk/roomdesk/internal/repo"
	"github.com/roomdesk/roomdesk/internal/service/accountservice"
	"github.com/roomdesk/roomdesk/internal/service/admission"
	"github.com/roomdesk/roomdesk/internal/service/fulfillmentservice"
	"github.com/roomdesk/roomdesk/internal/service/orderservice"
	"github.com/roomdesk/roomdesk/internal/service/watchservice"
)

type Services struct {
	AdmissionService   *admission.Service
	OrderService       *orderservice.Service
	FulfillmentService *fulfillmentservice.Service
	WatchService       *watchservice.Service
	AccountService     *accountservice.Service
}

func New(cfg *config.Config, repos *repo.Repositories, txManager pg.TXManager, providerAPI provider.API) *Services {
	admissionService := admission.New(repos.PermissionRepo, repos.AgreementRepo, repos.OrderRepo, cfg)
	orderService := orderservice.New(repos.OrderRepo, admissionService, txManager)
	fulfillmentService := fulfillmentservice.New(repos.OrderRepo, repos.AccountRepo, providerAPI)
	watchService := watchservice.New(repos.WatchRepo)
	accountService := accountservice.New(repos.AccountRepo, repos.PermissionRepo, repos.AgreementRepo)

	return &Services{
		AdmissionService:   admissionService,
		OrderService:       orderService,
		FulfillmentService: fulfillmentService,
		WatchService:       watchService,
		AccountService:     accountService,
	}
}
