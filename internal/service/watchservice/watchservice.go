package watchservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/roomdesk/roomdesk/internal/domain"
)

// intradayWindow bounds the per-task price ring at 5-minute cadence for
// one day.
const intradayWindow = 288

type Repo interface {
	Create(ctx context.Context, task *domain.PriceMonitorTask) error
	FindByID(ctx context.Context, id string) (*domain.PriceMonitorTask, error)
	FindByAgent(ctx context.Context, agentID int) ([]domain.PriceMonitorTask, error)
	FindForEvaluation(ctx context.Context, limit uint32) ([]domain.PriceMonitorTask, error)
	Update(ctx context.Context, task *domain.PriceMonitorTask) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

var (
	ErrTaskNotFound    = errors.New("watch task not found")
	ErrInvalidDates    = errors.New("check-out must be after check-in")
	ErrInvalidTarget   = errors.New("target price must be positive")
	ErrAlreadyResolved = errors.New("only paused tasks can be resumed")
)

type CreateRequest struct {
	HotelID     string
	HotelName   string
	RoomType    string
	CheckIn     time.Time
	CheckOut    time.Time
	TargetPrice float64
	Note        string
}

func (s *Service) Create(ctx context.Context, agentID int, req CreateRequest) (*domain.PriceMonitorTask, error) {
	if !req.CheckOut.After(req.CheckIn) {
		return nil, ErrInvalidDates
	}
	if req.TargetPrice <= 0 {
		return nil, ErrInvalidTarget
	}
	task := &domain.PriceMonitorTask{
		ID:          uuid.NewString(),
		AgentID:     agentID,
		HotelID:     req.HotelID,
		HotelName:   req.HotelName,
		RoomType:    req.RoomType,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		TargetPrice: req.TargetPrice,
		Status:      domain.WatchMonitoring,
		Candles:     []domain.Candle{},
		Intraday:    []domain.PricePoint{},
		Note:        req.Note,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *Service) List(ctx context.Context, agentID int) ([]domain.PriceMonitorTask, error) {
	return s.repo.FindByAgent(ctx, agentID)
}

func (s *Service) Get(ctx context.Context, agentID int, taskID string) (*domain.PriceMonitorTask, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.AgentID != agentID {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *Service) Delete(ctx context.Context, agentID int, taskID string) error {
	task, err := s.Get(ctx, agentID, taskID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, task.ID)
}

// Pause freezes the task's status; evaluation keeps recording history.
func (s *Service) Pause(ctx context.Context, agentID int, taskID string) error {
	task, err := s.Get(ctx, agentID, taskID)
	if err != nil {
		return err
	}
	if task.Status == domain.WatchPaused {
		return nil
	}
	task.Status = domain.WatchPaused
	return s.repo.Update(ctx, task)
}

// Resume puts a paused task back under the price invariant, recomputed
// from the last known snapshot.
func (s *Service) Resume(ctx context.Context, agentID int, taskID string) error {
	task, err := s.Get(ctx, agentID, taskID)
	if err != nil {
		return err
	}
	if task.Status != domain.WatchPaused {
		return ErrAlreadyResolved
	}
	task.Status = statusFor(task)
	return s.repo.Update(ctx, task)
}

func statusFor(task *domain.PriceMonitorTask) domain.WatchStatus {
	if task.HasInventory && task.CurrentPrice <= task.TargetPrice {
		return domain.WatchReached
	}
	return domain.WatchMonitoring
}

// Evaluate applies one provider snapshot to a task. It is pure: the task
// is updated in place and nothing is persisted here.
//
// A snapshot older than the newest recorded point is a late arrival and
// is dropped so it can't roll currentPrice backwards. A calendar-day
// change folds the previous day's intraday points into one candle before
// the new day's first point lands.
func Evaluate(task *domain.PriceMonitorTask, snap domain.PriceSnapshot) {
	if n := len(task.Intraday); n > 0 && !snap.At.After(task.Intraday[n-1].Time) {
		return
	}

	if n := len(task.Intraday); n > 0 {
		last := task.Intraday[n-1].Time
		if dayOf(snap.At) != dayOf(last) {
			task.Candles = append(task.Candles, foldCandle(dayOf(last), task.Intraday))
			task.Intraday = task.Intraday[:0]
		}
	}

	task.Intraday = append(task.Intraday, domain.PricePoint{Time: snap.At, Price: snap.Price})
	if len(task.Intraday) > intradayWindow {
		task.Intraday = task.Intraday[len(task.Intraday)-intradayWindow:]
	}

	task.CurrentPrice = snap.Price
	task.HasInventory = snap.HasInventory
	if task.Status != domain.WatchPaused {
		task.Status = statusFor(task)
	}
}

func dayOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func foldCandle(date string, points []domain.PricePoint) domain.Candle {
	c := domain.Candle{
		Date:  date,
		Open:  points[0].Price,
		Close: points[len(points)-1].Price,
		High:  points[0].Price,
		Low:   points[0].Price,
	}
	for _, p := range points[1:] {
		if p.Price > c.High {
			c.High = p.Price
		}
		if p.Price < c.Low {
			c.Low = p.Price
		}
	}
	return c
}

// ApplySnapshot runs Evaluate against the stored task and persists the
// result. The engine calls this once per poll per task.
func (s *Service) ApplySnapshot(ctx context.Context, taskID string, snap domain.PriceSnapshot) error {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}
	Evaluate(task, snap)
	return s.repo.Update(ctx, task)
}

// Due lists tasks the engine should poll this cycle.
func (s *Service) Due(ctx context.Context, limit uint32) ([]domain.PriceMonitorTask, error) {
	return s.repo.FindForEvaluation(ctx, limit)
}
