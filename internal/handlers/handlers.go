package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/roomdesk/roomdesk/docs"
	accounthandlers "github.com/roomdesk/roomdesk/internal/handlers/accounts"
	ordershandlers "github.com/roomdesk/roomdesk/internal/handlers/orders"
	watchhandlers "github.com/roomdesk/roomdesk/internal/handlers/watch"
	"github.com/roomdesk/roomdesk/internal/service"
	"github.com/roomdesk/roomdesk/pkg/auth"
)

type OrderHandler interface {
	CreateBooking(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	SubmitItem(w http.ResponseWriter, r *http.Request)
	RetryItem(w http.ResponseWriter, r *http.Request)
	RefreshItem(w http.ResponseWriter, r *http.Request)
	CancelItem(w http.ResponseWriter, r *http.Request)
	PaymentLink(w http.ResponseWriter, r *http.Request)
	DetailLink(w http.ResponseWriter, r *http.Request)
	SubmitAll(w http.ResponseWriter, r *http.Request)
	CancelAll(w http.ResponseWriter, r *http.Request)
	RefreshAll(w http.ResponseWriter, r *http.Request)
}

type WatchHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Pause(w http.ResponseWriter, r *http.Request)
	Resume(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
	SetOnline(w http.ResponseWriter, r *http.Request)
	GetPermissions(w http.ResponseWriter, r *http.Request)
	PutPermission(w http.ResponseWriter, r *http.Request)
	PutOverride(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OrderHandler   OrderHandler
	WatchHandler   WatchHandler
	AccountHandler AccountHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		OrderHandler:   ordershandlers.New(s.OrderService, s.FulfillmentService),
		WatchHandler:   watchhandlers.New(s.WatchService),
		AccountHandler: accounthandlers.New(s.AccountService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.CreateBooking)
				r.Get("/", h.OrderHandler.GetOrders)
				r.Route("/{groupID}", func(r chi.Router) {
					r.Get("/", h.OrderHandler.GetOrder)
					r.Post("/submit-all", h.OrderHandler.SubmitAll)
					r.Post("/cancel-all", h.OrderHandler.CancelAll)
					r.Post("/refresh-all", h.OrderHandler.RefreshAll)
					r.Route("/items/{itemID}", func(r chi.Router) {
						r.Post("/submit", h.OrderHandler.SubmitItem)
						r.Post("/retry", h.OrderHandler.RetryItem)
						r.Post("/refresh", h.OrderHandler.RefreshItem)
						r.Post("/cancel", h.OrderHandler.CancelItem)
						r.Get("/payment-link", h.OrderHandler.PaymentLink)
						r.Get("/detail-link", h.OrderHandler.DetailLink)
					})
				})
			})
			r.Route("/watch", func(r chi.Router) {
				r.Post("/", h.WatchHandler.Create)
				r.Get("/", h.WatchHandler.List)
				r.Route("/{taskID}", func(r chi.Router) {
					r.Get("/", h.WatchHandler.Get)
					r.Delete("/", h.WatchHandler.Delete)
					r.Post("/pause", h.WatchHandler.Pause)
					r.Post("/resume", h.WatchHandler.Resume)
				})
			})
			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminOnly)
				r.Route("/accounts", func(r chi.Router) {
					r.Get("/", h.AccountHandler.List)
					r.Post("/import", h.AccountHandler.Import)
					r.Post("/{accountID}/online", h.AccountHandler.SetOnline)
				})
				r.Route("/permissions", func(r chi.Router) {
					r.Put("/", h.AccountHandler.PutPermission)
					r.Put("/overrides", h.AccountHandler.PutOverride)
					r.Get("/{agentID}", h.AccountHandler.GetPermissions)
				})
			})
		})
	})

	return r
}
