package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/roomdesk/roomdesk/internal/domain"
	"github.com/roomdesk/roomdesk/internal/dto"
	"github.com/roomdesk/roomdesk/internal/service/admission"
	"github.com/roomdesk/roomdesk/internal/service/fulfillmentservice"
	"github.com/roomdesk/roomdesk/internal/service/orderservice"
	"github.com/roomdesk/roomdesk/pkg/auth"
	"github.com/roomdesk/roomdesk/pkg/utils"
)

const dateLayout = "2006-01-02"

type OrderService interface {
	CreateBooking(ctx context.Context, agentID int, req orderservice.BookingRequest) (*domain.OrderGroup, error)
	GetOrders(ctx context.Context, agentID int) ([]domain.OrderGroup, error)
	GetOrder(ctx context.Context, agentID int, groupID string) (*domain.OrderGroup, error)
}

type FulfillmentService interface {
	ConfirmSubmit(ctx context.Context, agentID int, itemID string) error
	Retry(ctx context.Context, agentID int, itemID string) error
	RefreshItem(ctx context.Context, agentID int, itemID string) error
	CancelItem(ctx context.Context, agentID int, itemID string) error
	SubmitAll(ctx context.Context, agentID int, groupID string) ([]fulfillmentservice.ItemOutcome, error)
	CancelAll(ctx context.Context, agentID int, groupID string) ([]fulfillmentservice.ItemOutcome, error)
	RefreshAll(ctx context.Context, agentID int, groupID string) ([]fulfillmentservice.ItemOutcome, error)
	PaymentLink(ctx context.Context, agentID int, itemID string) (string, error)
	DetailLink(ctx context.Context, agentID int, itemID string) (string, error)
}

type OrderHandler struct {
	orderService       OrderService
	fulfillmentService FulfillmentService
	validate           *validator.Validate
}

func New(orderService OrderService, fulfillmentService FulfillmentService) *OrderHandler {
	return &OrderHandler{
		orderService:       orderService,
		fulfillmentService: fulfillmentService,
		validate:           validator.New(),
	}
}

// CreateBooking godoc
//
//	@Summary		Create a booking
//	@Description	Run the booking through admission checks and create the order group with its split items.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			booking	body	dto.CreateBookingRequestDTO	true	"Booking request"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.OrderGroupResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed request"
//	@Failure		401	{object}	utils.Response	"Agent not authorized"
//	@Failure		403	{object}	utils.Response	"Admission rejected with a typed reason"
//	@Failure		422	{object}	utils.Response	"Validation failed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	agentID := r.Context().Value(auth.AgentIDKey).(int)

	var req dto.CreateBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	booking, err := bookingFromDTO(req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	group, err := h.orderService.CreateBooking(r.Context(), agentID, booking)
	if err != nil {
		var rejection *admission.RejectionError
		switch {
		case errors.As(err, &rejection):
			utils.RespondWithError(w, http.StatusForbidden, string(rejection.Reason))
		case errors.Is(err, orderservice.ErrInvalidDates),
			errors.Is(err, orderservice.ErrNoItems),
			errors.Is(err, orderservice.ErrAmountMismatch):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, groupToDTO(group, true))
}

func bookingFromDTO(req dto.CreateBookingRequestDTO) (orderservice.BookingRequest, error) {
	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return orderservice.BookingRequest{}, errors.New("check_in must be YYYY-MM-DD")
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return orderservice.BookingRequest{}, errors.New("check_out must be YYYY-MM-DD")
	}

	booking := orderservice.BookingRequest{
		Channel:       domain.Channel(req.Channel),
		CorporateName: req.CorporateName,
		HotelID:       req.HotelID,
		HotelName:     req.HotelName,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		TotalAmount:   req.TotalAmount,
		SaveAsPlan:    req.SaveAsPlan,
	}
	for _, split := range req.Splits {
		s := orderservice.SplitRequest{
			RoomType:  split.RoomType,
			RoomCount: split.RoomCount,
			Amount:    split.Amount,
		}
		if split.CheckIn != "" {
			if s.CheckIn, err = time.Parse(dateLayout, split.CheckIn); err != nil {
				return orderservice.BookingRequest{}, errors.New("split check_in must be YYYY-MM-DD")
			}
		}
		if split.CheckOut != "" {
			if s.CheckOut, err = time.Parse(dateLayout, split.CheckOut); err != nil {
				return orderservice.BookingRequest{}, errors.New("split check_out must be YYYY-MM-DD")
			}
		}
		booking.Splits = append(booking.Splits, s)
	}
	return booking, nil
}

// GetOrders godoc
//
//	@Summary		List the agent's orders
//	@Tags			Orders
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderGroupResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"Agent not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	agentID := r.Context().Value(auth.AgentIDKey).(int)

	groups, err := h.orderService.GetOrders(r.Context(), agentID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(groups) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.OrderGroupResponseDTO, 0, len(groups))
	for i := range groups {
		response = append(response, groupToDTO(&groups[i], false))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary		Get one order with its split items
//	@Tags			Orders
//	@Produce		json
//	@Param			groupID	path	string	true	"Order group id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderGroupResponseDTO
//	@Failure		401	{object}	utils.Response	"Agent not authorized"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{groupID} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	agentID := r.Context().Value(auth.AgentIDKey).(int)
	groupID := chi.URLParam(r, "groupID")

	group, err := h.orderService.GetOrder(r.Context(), agentID, groupID)
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, groupToDTO(group, true))
}

func (h *OrderHandler) itemAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, agentID int, itemID string) error) {
	agentID := r.Context().Value(auth.AgentIDKey).(int)
	itemID := chi.URLParam(r, "itemID")

	if err := action(r.Context(), agentID, itemID); err != nil {
		switch {
		case errors.Is(err, fulfillmentservice.ErrItemNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, fulfillmentservice.ErrInvalidTransition),
			errors.Is(err, fulfillmentservice.ErrSubmitInFlight):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, fulfillmentservice.ErrCancelFailed):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}

// SubmitItem godoc
//
//	@Summary	Confirm a drafted split item for submission
//	@Tags		Items
//	@Produce	json
//	@Param		groupID	path	string	true	"Order group id"
//	@Param		itemID	path	string	true	"Split item id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Item not found"
//	@Failure	409	{object}	utils.Response	"Transition not allowed"
//	@Router		/api/orders/{groupID}/items/{itemID}/submit [post]
func (h *OrderHandler) SubmitItem(w http.ResponseWriter, r *http.Request) {
	h.itemAction(w, r, h.fulfillmentService.ConfirmSubmit)
}

// RetryItem godoc
//
//	@Summary	Re-queue a failed split item
//	@Tags		Items
//	@Produce	json
//	@Param		groupID	path	string	true	"Order group id"
//	@Param		itemID	path	string	true	"Split item id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Item not found"
//	@Failure	409	{object}	utils.Response	"Item is not in FAILED"
//	@Router		/api/orders/{groupID}/items/{itemID}/retry [post]
func (h *OrderHandler) RetryItem(w http.ResponseWriter, r *http.Request) {
	h.itemAction(w, r, h.fulfillmentService.Retry)
}

// RefreshItem godoc
//
//	@Summary	Re-poll the provider for a split item's status
//	@Tags		Items
//	@Produce	json
//	@Param		groupID	path	string	true	"Order group id"
//	@Param		itemID	path	string	true	"Split item id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Item not found"
//	@Router		/api/orders/{groupID}/items/{itemID}/refresh [post]
func (h *OrderHandler) RefreshItem(w http.ResponseWriter, r *http.Request) {
	h.itemAction(w, r, h.fulfillmentService.RefreshItem)
}

// CancelItem godoc
//
//	@Summary	Cancel a split item
//	@Tags		Items
//	@Produce	json
//	@Param		groupID	path	string	true	"Order group id"
//	@Param		itemID	path	string	true	"Split item id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Item not found"
//	@Failure	409	{object}	utils.Response	"Submission in flight"
//	@Failure	502	{object}	utils.Response	"Provider refused the cancellation"
//	@Router		/api/orders/{groupID}/items/{itemID}/cancel [post]
func (h *OrderHandler) CancelItem(w http.ResponseWriter, r *http.Request) {
	h.itemAction(w, r, h.fulfillmentService.CancelItem)
}

func (h *OrderHandler) itemLink(w http.ResponseWriter, r *http.Request, fetch func(ctx context.Context, agentID int, itemID string) (string, error)) {
	agentID := r.Context().Value(auth.AgentIDKey).(int)
	itemID := chi.URLParam(r, "itemID")

	link, err := fetch(r.Context(), agentID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, fulfillmentservice.ErrItemNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, fulfillmentservice.ErrLinkUnavailable):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LinkResponseDTO{URL: link})
}

// PaymentLink godoc
//
//	@Summary	Get the payment link for a placed split item
//	@Tags		Items
//	@Produce	json
//	@Param		groupID	path	string	true	"Order group id"
//	@Param		itemID	path	string	true	"Split item id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.LinkResponseDTO
//	@Failure	404	{object}	utils.Response	"Item not found"
//	@Failure	409	{object}	utils.Response	"Order not placed yet"
//	@Router		/api/orders/{groupID}/items/{itemID}/payment-link [get]
func (h *OrderHandler) PaymentLink(w http.ResponseWriter, r *http.Request) {
	h.itemLink(w, r, h.fulfillmentService.PaymentLink)
}

// DetailLink godoc
//
//	@Summary	Get the provider detail link for a placed split item
//	@Tags		Items
//	@Produce	json
//	@Param		groupID	path	string	true	"Order group id"
//	@Param		itemID	path	string	true	"Split item id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.LinkResponseDTO
//	@Failure	404	{object}	utils.Response	"Item not found"
//	@Failure	409	{object}	utils.Response	"Order not placed yet"
//	@Router		/api/orders/{groupID}/items/{itemID}/detail-link [get]
func (h *OrderHandler) DetailLink(w http.ResponseWriter, r *http.Request) {
	h.itemLink(w, r, h.fulfillmentService.DetailLink)
}

func (h *OrderHandler) groupAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, agentID int, groupID string) ([]fulfillmentservice.ItemOutcome, error)) {
	agentID := r.Context().Value(auth.AgentIDKey).(int)
	groupID := chi.URLParam(r, "groupID")

	outcomes, err := action(r.Context(), agentID, groupID)
	if err != nil {
		if errors.Is(err, fulfillmentservice.ErrItemNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "order not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ItemOutcomeDTO, 0, len(outcomes))
	for _, outcome := range outcomes {
		response = append(response, dto.ItemOutcomeDTO{
			ItemID:     outcome.ItemID,
			SplitIndex: outcome.SplitIndex,
			OK:         outcome.OK,
			Error:      outcome.Error,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SubmitAll godoc
//
//	@Summary	Confirm every drafted item in the group
//	@Tags		Orders
//	@Produce	json
//	@Param		groupID	path	string	true	"Order group id"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.ItemOutcomeDTO
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Router		/api/orders/{groupID}/submit-all [post]
func (h *OrderHandler) SubmitAll(w http.ResponseWriter, r *http.Request) {
	h.groupAction(w, r, h.fulfillmentService.SubmitAll)
}

// CancelAll godoc
//
//	@Summary	Cancel every item in the group, tolerating partial failure
//	@Tags		Orders
//	@Produce	json
//	@Param		groupID	path	string	true	"Order group id"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.ItemOutcomeDTO
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Router		/api/orders/{groupID}/cancel-all [post]
func (h *OrderHandler) CancelAll(w http.ResponseWriter, r *http.Request) {
	h.groupAction(w, r, h.fulfillmentService.CancelAll)
}

// RefreshAll godoc
//
//	@Summary	Re-poll the provider for every in-flight item in the group
//	@Tags		Orders
//	@Produce	json
//	@Param		groupID	path	string	true	"Order group id"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.ItemOutcomeDTO
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Router		/api/orders/{groupID}/refresh-all [post]
func (h *OrderHandler) RefreshAll(w http.ResponseWriter, r *http.Request) {
	h.groupAction(w, r, h.fulfillmentService.RefreshAll)
}

func groupToDTO(group *domain.OrderGroup, withItems bool) dto.OrderGroupResponseDTO {
	resp := dto.OrderGroupResponseDTO{
		ID:            group.ID,
		OrderNo:       group.OrderNo,
		Channel:       string(group.Channel),
		HotelID:       group.HotelID,
		HotelName:     group.HotelName,
		CustomerName:  group.CustomerName,
		CheckIn:       group.CheckIn.Format(dateLayout),
		CheckOut:      group.CheckOut.Format(dateLayout),
		TotalNights:   group.TotalNights,
		TotalAmount:   group.TotalAmount,
		Status:        string(group.Status),
		PaymentStatus: string(group.PaymentStatus),
		SplitCount:    group.SplitCount,
		CreatedAt:     group.CreatedAt,
	}
	if !withItems {
		return resp
	}
	for _, item := range group.Items {
		itemDTO := dto.SplitItemResponseDTO{
			ID:              item.ID,
			SplitIndex:      item.SplitIndex,
			SplitTotal:      item.SplitTotal,
			RoomType:        item.RoomType,
			RoomCount:       item.RoomCount,
			CheckIn:         item.CheckIn.Format(dateLayout),
			CheckOut:        item.CheckOut.Format(dateLayout),
			Amount:          item.Amount,
			ExecutionStatus: string(item.ExecutionStatus),
		}
		if item.AccountPhone != nil {
			itemDTO.AccountPhone = *item.AccountPhone
		}
		if item.ProviderOrderID != nil {
			itemDTO.ProviderOrderID = *item.ProviderOrderID
		}
		if item.FailReason != nil {
			itemDTO.FailReason = *item.FailReason
		}
		resp.Items = append(resp.Items, itemDTO)
	}
	return resp
}
