package orderservice

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roomdesk/roomdesk/internal/domain"
	"github.com/roomdesk/roomdesk/internal/pg"
	"github.com/roomdesk/roomdesk/internal/service/admission"
	"github.com/roomdesk/roomdesk/pkg/validate"
)

type Repo interface {
	CreateGroup(ctx context.Context, group *domain.OrderGroup) error
	FindGroupByID(ctx context.Context, id string) (*domain.OrderGroup, error)
	FindGroupsByAgent(ctx context.Context, agentID int) ([]domain.OrderGroup, error)
	FindItemsByGroup(ctx context.Context, groupID string) ([]domain.OrderSplitItem, error)
}

type Admitter interface {
	TryAdmit(ctx context.Context, agentID int, channel domain.Channel, corporateName string, requestedAmount float64) (*admission.Result, error)
}

type Service struct {
	repo      Repo
	admitter  Admitter
	txManager pg.TXManager
}

func New(repo Repo, admitter Admitter, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		admitter:  admitter,
		txManager: txManager,
	}
}

var (
	ErrInvalidDates   = errors.New("check-out must be at least one night after check-in")
	ErrNoItems        = errors.New("booking needs at least one split item")
	ErrAmountMismatch = errors.New("split amounts must add up to the total amount")
	ErrOrderNotFound  = errors.New("order not found")
)

// SplitRequest is one fulfillment unit of a booking request. Dates may
// differ from the group's when the agent splits across accounts per
// night-range; zero dates inherit the group's.
type SplitRequest struct {
	RoomType  string
	RoomCount int
	CheckIn   time.Time
	CheckOut  time.Time
	Amount    float64
}

type BookingRequest struct {
	Channel       domain.Channel
	CorporateName string
	HotelID       string
	HotelName     string
	CustomerName  string
	CustomerPhone string
	CheckIn       time.Time
	CheckOut      time.Time
	TotalAmount   float64
	SaveAsPlan    bool
	Splits        []SplitRequest
}

func nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// CreateBooking admits the request and persists the group with all items
// in one transaction. The quota decrement inside TryAdmit commits or rolls
// back together with the insert.
func (s *Service) CreateBooking(ctx context.Context, agentID int, req BookingRequest) (*domain.OrderGroup, error) {
	totalNights := nights(req.CheckIn, req.CheckOut)
	if totalNights < 1 {
		return nil, ErrInvalidDates
	}
	if len(req.Splits) == 0 {
		return nil, ErrNoItems
	}

	var sum float64
	for _, split := range req.Splits {
		sum += split.Amount
	}
	if math.Abs(sum-req.TotalAmount) > 1e-6 {
		return nil, ErrAmountMismatch
	}

	execStatus := domain.ExecQueued
	if req.SaveAsPlan {
		execStatus = domain.ExecPlanPending
	}

	now := time.Now()
	group := &domain.OrderGroup{
		ID:            uuid.NewString(),
		OrderNo:       validate.NewOrderNo(),
		Channel:       req.Channel,
		HotelID:       req.HotelID,
		HotelName:     req.HotelName,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		TotalNights:   totalNights,
		TotalAmount:   req.TotalAmount,
		Status:        domain.GroupProcessing,
		PaymentStatus: domain.PaymentUnpaid,
		CreatedBy:     agentID,
		SplitCount:    len(req.Splits),
		CreatedAt:     now,
	}

	for i, split := range req.Splits {
		checkIn, checkOut := split.CheckIn, split.CheckOut
		if checkIn.IsZero() {
			checkIn = req.CheckIn
		}
		if checkOut.IsZero() {
			checkOut = req.CheckOut
		}
		if nights(checkIn, checkOut) < 1 {
			return nil, ErrInvalidDates
		}
		group.Items = append(group.Items, domain.OrderSplitItem{
			ID:              uuid.NewString(),
			GroupID:         group.ID,
			SplitIndex:      i + 1,
			SplitTotal:      len(req.Splits),
			RoomType:        split.RoomType,
			RoomCount:       split.RoomCount,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			Amount:          split.Amount,
			Status:          domain.GroupProcessing,
			PaymentStatus:   domain.PaymentUnpaid,
			ExecutionStatus: execStatus,
			UpdatedAt:       now,
		})
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		result, err := s.admitter.TryAdmit(ctx, agentID, req.Channel, req.CorporateName, req.TotalAmount)
		if err != nil {
			return err
		}
		if !result.Admitted {
			return &admission.RejectionError{Reason: result.Reason}
		}
		group.AgreementID = result.AgreementID

		if err := s.repo.CreateGroup(ctx, group); err != nil {
			zap.L().Error("can't save booking", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("booking created",
		zap.String("orderNo", group.OrderNo),
		zap.String("channel", string(group.Channel)),
		zap.Int("splits", group.SplitCount),
	)
	return group, nil
}

func (s *Service) GetOrders(ctx context.Context, agentID int) ([]domain.OrderGroup, error) {
	groups, err := s.repo.FindGroupsByAgent(ctx, agentID)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return groups, nil
}

func (s *Service) GetOrder(ctx context.Context, agentID int, groupID string) (*domain.OrderGroup, error) {
	group, err := s.repo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil || group.CreatedBy != agentID {
		return nil, ErrOrderNotFound
	}
	return group, nil
}
