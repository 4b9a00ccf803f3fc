package fulfillmentservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/roomdesk/roomdesk/internal/domain"
	"github.com/roomdesk/roomdesk/internal/provider"
)

type OrderRepo interface {
	FindItemByID(ctx context.Context, id string) (*domain.OrderSplitItem, error)
	FindGroupByID(ctx context.Context, id string) (*domain.OrderGroup, error)
	FindItemsByGroup(ctx context.Context, groupID string) ([]domain.OrderSplitItem, error)
	TransitionItem(ctx context.Context, itemID string, from []domain.ExecStatus, to domain.ExecStatus) (bool, error)
	UpdateItem(ctx context.Context, item *domain.OrderSplitItem) error
	UpdateGroupStatus(ctx context.Context, groupID string, status domain.GroupStatus) error
}

type AccountRepo interface {
	PickEligible(ctx context.Context, channel domain.Channel, agreementID *int) (*domain.PoolAccount, error)
	ConsumeDailyOrder(ctx context.Context, accountID int) (bool, error)
}

type Service struct {
	orders   OrderRepo
	accounts AccountRepo
	provider provider.API
}

func New(orders OrderRepo, accounts AccountRepo, providerAPI provider.API) *Service {
	return &Service{
		orders:   orders,
		accounts: accounts,
		provider: providerAPI,
	}
}

var (
	ErrItemNotFound      = errors.New("split item not found")
	ErrInvalidTransition = errors.New("transition not allowed from current execution state")
	ErrSubmitInFlight    = errors.New("submission in flight, cancel after it settles")
	ErrCancelFailed      = errors.New("provider-side cancellation failed")
	ErrLinkUnavailable   = errors.New("link available only after the order is placed")

	reasonNoAccount = "no eligible pool account"
)

// ItemOutcome is one item's result inside a group-level batch operation.
type ItemOutcome struct {
	ItemID     string `json:"item_id"`
	SplitIndex int    `json:"split_index"`
	OK         bool   `json:"ok"`
	Error      string `json:"error,omitempty"`
}

func (s *Service) itemForAgent(ctx context.Context, agentID int, itemID string) (*domain.OrderSplitItem, error) {
	item, err := s.orders.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	group, err := s.orders.FindGroupByID(ctx, item.GroupID)
	if err != nil {
		return nil, err
	}
	if group == nil || group.CreatedBy != agentID {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// ConfirmSubmit moves a drafted item into the queue. Re-confirming an item
// that is already queued or in flight is a no-op, not an error.
func (s *Service) ConfirmSubmit(ctx context.Context, agentID int, itemID string) error {
	item, err := s.itemForAgent(ctx, agentID, itemID)
	if err != nil {
		return err
	}
	return s.confirmSubmit(ctx, item)
}

func (s *Service) confirmSubmit(ctx context.Context, item *domain.OrderSplitItem) error {
	switch item.ExecutionStatus {
	case domain.ExecQueued, domain.ExecSubmitting, domain.ExecWaitConfirm:
		return nil
	case domain.ExecPlanPending:
		_, err := s.orders.TransitionItem(ctx, item.ID, []domain.ExecStatus{domain.ExecPlanPending}, domain.ExecQueued)
		return err
	default:
		return ErrInvalidTransition
	}
}

// Retry re-queues a failed item; retry is a distinct, explicit agent
// action, never automatic.
func (s *Service) Retry(ctx context.Context, agentID int, itemID string) error {
	item, err := s.itemForAgent(ctx, agentID, itemID)
	if err != nil {
		return err
	}
	if item.ExecutionStatus != domain.ExecFailed {
		return ErrInvalidTransition
	}
	ok, err := s.orders.TransitionItem(ctx, item.ID, []domain.ExecStatus{domain.ExecFailed}, domain.ExecQueued)
	if err != nil {
		return err
	}
	if ok {
		item.ExecutionStatus = domain.ExecQueued
		item.FailReason = nil
		item.Status = domain.GroupProcessing
		if err := s.orders.UpdateItem(ctx, item); err != nil {
			return err
		}
		return s.syncGroupStatus(ctx, item.GroupID)
	}
	return nil
}

// SubmitQueued executes one queued item: claim, pick an account, call the
// provider, record the outcome. The QUEUED -> SUBMITTING compare-and-swap
// is the single entry into "in flight"; losing it means another actor owns
// the item and this call quietly backs off.
func (s *Service) SubmitQueued(ctx context.Context, item domain.OrderSplitItem) error {
	claimed, err := s.orders.TransitionItem(ctx, item.ID, []domain.ExecStatus{domain.ExecQueued}, domain.ExecSubmitting)
	if err != nil {
		return err
	}
	if !claimed {
		return nil
	}
	item.ExecutionStatus = domain.ExecSubmitting

	group, err := s.orders.FindGroupByID(ctx, item.GroupID)
	if err != nil {
		return err
	}
	if group == nil {
		return fmt.Errorf("split item %s has no group", item.ID)
	}

	account, err := s.accounts.PickEligible(ctx, group.Channel, group.AgreementID)
	if err != nil {
		return err
	}
	if account == nil {
		return s.markFailed(ctx, &item, reasonNoAccount)
	}
	return s.submit(ctx, &item, account)
}

// submit performs the provider call for a claimed item and records the
// outcome. The item id travels as the idempotency key, so replaying the
// same submission is safe.
func (s *Service) submit(ctx context.Context, item *domain.OrderSplitItem, account *domain.PoolAccount) error {
	item.AccountID = &account.ID
	item.AccountPhone = &account.Phone

	result, err := s.provider.Submit(ctx, item, account)
	if err != nil {
		var rejected *provider.RejectedError
		switch {
		case errors.As(err, &rejected):
			return s.markFailed(ctx, item, rejected.Reason)
		default:
			// Transient or timed out: the provider side effect is in
			// doubt, so the item stays SUBMITTING until a refresh
			// resolves it.
			zap.L().Warn("submission outcome in doubt",
				zap.String("itemID", item.ID), zap.Error(err))
			if upErr := s.orders.UpdateItem(ctx, item); upErr != nil {
				return upErr
			}
			return nil
		}
	}

	item.ProviderOrderID = &result.ProviderOrderID
	if result.Confirmed {
		s.settle(ctx, item, domain.ExecOrdered)
	} else {
		item.ExecutionStatus = domain.ExecWaitConfirm
	}
	if err := s.orders.UpdateItem(ctx, item); err != nil {
		return err
	}
	return s.syncGroupStatus(ctx, item.GroupID)
}

// resubmit resolves a SUBMITTING item whose submission never yielded a
// provider order id. The previously chosen account is reused when known;
// when the original attempt died before the pick, a fresh one is drawn.
func (s *Service) resubmit(ctx context.Context, item *domain.OrderSplitItem) error {
	if item.AccountID != nil && item.AccountPhone != nil {
		return s.submit(ctx, item, &domain.PoolAccount{ID: *item.AccountID, Phone: *item.AccountPhone})
	}
	group, err := s.orders.FindGroupByID(ctx, item.GroupID)
	if err != nil {
		return err
	}
	if group == nil {
		return fmt.Errorf("split item %s has no group", item.ID)
	}
	account, err := s.accounts.PickEligible(ctx, group.Channel, group.AgreementID)
	if err != nil {
		return err
	}
	if account == nil {
		return s.markFailed(ctx, item, reasonNoAccount)
	}
	return s.submit(ctx, item, account)
}

// settle moves an item into ORDERED or DONE, burning the account's daily
// slot and filling links on the first arrival.
func (s *Service) settle(ctx context.Context, item *domain.OrderSplitItem, to domain.ExecStatus) {
	alreadySettled := item.ExecutionStatus == domain.ExecOrdered || item.ExecutionStatus == domain.ExecDone
	item.ExecutionStatus = to
	item.Status = domain.GroupConfirmed
	if to == domain.ExecDone {
		item.Status = domain.GroupCompleted
	}

	if !alreadySettled && item.AccountID != nil {
		if ok, err := s.accounts.ConsumeDailyOrder(ctx, *item.AccountID); err != nil {
			zap.L().Error("can't consume account daily order", zap.Error(err))
		} else if !ok {
			zap.L().Warn("account had no daily orders left at settle time",
				zap.Int("accountID", *item.AccountID))
		}
	}

	if item.ProviderOrderID == nil {
		return
	}
	if item.PaymentLink == nil {
		if link, err := s.provider.PaymentLink(ctx, *item.ProviderOrderID); err == nil {
			item.PaymentLink = &link
		}
	}
	if item.DetailLink == nil {
		if link, err := s.provider.DetailLink(ctx, *item.ProviderOrderID); err == nil {
			item.DetailLink = &link
		}
	}
}

func (s *Service) markFailed(ctx context.Context, item *domain.OrderSplitItem, reason string) error {
	item.ExecutionStatus = domain.ExecFailed
	item.Status = domain.GroupFailed
	item.FailReason = &reason
	if err := s.orders.UpdateItem(ctx, item); err != nil {
		return err
	}
	return s.syncGroupStatus(ctx, item.GroupID)
}

// RefreshItem re-polls the provider for an in-doubt or awaiting item.
// Idempotent and freely repeatable; transient read failures leave state
// unchanged for the next poll.
func (s *Service) RefreshItem(ctx context.Context, agentID int, itemID string) error {
	item, err := s.itemForAgent(ctx, agentID, itemID)
	if err != nil {
		return err
	}
	return s.refresh(ctx, item)
}

// RefreshInFlight is the driver-side entry to the same refresh pipeline.
func (s *Service) RefreshInFlight(ctx context.Context, item domain.OrderSplitItem) error {
	return s.refresh(ctx, &item)
}

func (s *Service) refresh(ctx context.Context, item *domain.OrderSplitItem) error {
	switch item.ExecutionStatus {
	case domain.ExecSubmitting, domain.ExecWaitConfirm, domain.ExecOrdered:
	default:
		return nil
	}
	if item.ProviderOrderID == nil {
		if item.ExecutionStatus != domain.ExecSubmitting {
			return nil
		}
		// The original call never got far enough to yield an order id,
		// so there is nothing to poll. Replay the submission under the
		// item's idempotency key instead; the provider dedupes on it.
		return s.resubmit(ctx, item)
	}

	state, reason, err := s.provider.RefreshStatus(ctx, *item.ProviderOrderID)
	if err != nil {
		if errors.Is(err, provider.ErrTransient) {
			zap.L().Warn("status refresh failed transiently",
				zap.String("itemID", item.ID), zap.Error(err))
			return nil
		}
		return err
	}

	switch state {
	case provider.StatePending:
		return nil
	case provider.StateConfirmed:
		s.settle(ctx, item, domain.ExecOrdered)
	case provider.StateCompleted:
		s.settle(ctx, item, domain.ExecDone)
	case provider.StateRejected:
		if item.ExecutionStatus == domain.ExecOrdered {
			// A confirmed order never regresses to failed. Keep the
			// state and surface the disagreement for operators.
			zap.L().Error("provider reports rejection for a confirmed order",
				zap.String("itemID", item.ID), zap.String("reason", reason))
			return nil
		}
		return s.markFailed(ctx, item, reason)
	default:
		zap.L().Warn("unrecognized provider state",
			zap.String("itemID", item.ID), zap.String("state", string(state)))
		return nil
	}

	if err := s.orders.UpdateItem(ctx, item); err != nil {
		return err
	}
	return s.syncGroupStatus(ctx, item.GroupID)
}

// CancelItem cancels one item. Items the provider may already hold a live
// reservation for are cancelled provider-first: a failed external cancel
// leaves the item exactly where it was.
func (s *Service) CancelItem(ctx context.Context, agentID int, itemID string) error {
	item, err := s.itemForAgent(ctx, agentID, itemID)
	if err != nil {
		return err
	}
	return s.cancel(ctx, item)
}

func (s *Service) cancel(ctx context.Context, item *domain.OrderSplitItem) error {
	switch item.ExecutionStatus {
	case domain.ExecCancelled:
		return nil
	case domain.ExecSubmitting:
		return ErrSubmitInFlight
	case domain.ExecPlanPending, domain.ExecQueued, domain.ExecFailed:
		ok, err := s.orders.TransitionItem(ctx, item.ID,
			[]domain.ExecStatus{domain.ExecPlanPending, domain.ExecQueued, domain.ExecFailed}, domain.ExecCancelled)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvalidTransition
		}
		item.ExecutionStatus = domain.ExecCancelled
		item.Status = domain.GroupCancelled
		if err := s.orders.UpdateItem(ctx, item); err != nil {
			return err
		}
	case domain.ExecWaitConfirm, domain.ExecOrdered, domain.ExecDone:
		if item.ProviderOrderID == nil {
			return fmt.Errorf("%w: no provider order id", ErrCancelFailed)
		}
		if err := s.provider.Cancel(ctx, *item.ProviderOrderID); err != nil {
			return fmt.Errorf("%w: %v", ErrCancelFailed, err)
		}
		item.ExecutionStatus = domain.ExecCancelled
		item.Status = domain.GroupCancelled
		if err := s.orders.UpdateItem(ctx, item); err != nil {
			return err
		}
	}
	return s.syncGroupStatus(ctx, item.GroupID)
}

func (s *Service) groupForAgent(ctx context.Context, agentID int, groupID string) (*domain.OrderGroup, error) {
	group, err := s.orders.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil || group.CreatedBy != agentID {
		return nil, ErrItemNotFound
	}
	return group, nil
}

// SubmitAll confirms every drafted item in the group. Outcomes are
// per-item; one ineligible item never blocks the rest.
func (s *Service) SubmitAll(ctx context.Context, agentID int, groupID string) ([]ItemOutcome, error) {
	return s.batch(ctx, agentID, groupID, func(ctx context.Context, item *domain.OrderSplitItem) error {
		if item.ExecutionStatus != domain.ExecPlanPending {
			return nil
		}
		return s.confirmSubmit(ctx, item)
	})
}

func (s *Service) CancelAll(ctx context.Context, agentID int, groupID string) ([]ItemOutcome, error) {
	return s.batch(ctx, agentID, groupID, s.cancel)
}

func (s *Service) RefreshAll(ctx context.Context, agentID int, groupID string) ([]ItemOutcome, error) {
	return s.batch(ctx, agentID, groupID, s.refresh)
}

func (s *Service) batch(ctx context.Context, agentID int, groupID string, op func(ctx context.Context, item *domain.OrderSplitItem) error) ([]ItemOutcome, error) {
	group, err := s.groupForAgent(ctx, agentID, groupID)
	if err != nil {
		return nil, err
	}

	outcomes := make([]ItemOutcome, 0, len(group.Items))
	for i := range group.Items {
		item := group.Items[i]
		outcome := ItemOutcome{ItemID: item.ID, SplitIndex: item.SplitIndex, OK: true}
		if err := op(ctx, &item); err != nil {
			outcome.OK = false
			outcome.Error = err.Error()
		}
		outcomes = append(outcomes, outcome)
	}

	if err := s.syncGroupStatus(ctx, groupID); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (s *Service) PaymentLink(ctx context.Context, agentID int, itemID string) (string, error) {
	return s.itemLink(ctx, agentID, itemID, s.provider.PaymentLink, func(item *domain.OrderSplitItem) **string {
		return &item.PaymentLink
	})
}

func (s *Service) DetailLink(ctx context.Context, agentID int, itemID string) (string, error) {
	return s.itemLink(ctx, agentID, itemID, s.provider.DetailLink, func(item *domain.OrderSplitItem) **string {
		return &item.DetailLink
	})
}

func (s *Service) itemLink(ctx context.Context, agentID int, itemID string, fetch func(ctx context.Context, providerOrderID string) (string, error), field func(*domain.OrderSplitItem) **string) (string, error) {
	item, err := s.itemForAgent(ctx, agentID, itemID)
	if err != nil {
		return "", err
	}
	if stored := *field(item); stored != nil {
		return *stored, nil
	}
	if item.ExecutionStatus != domain.ExecOrdered && item.ExecutionStatus != domain.ExecDone {
		return "", ErrLinkUnavailable
	}
	if item.ProviderOrderID == nil {
		return "", ErrLinkUnavailable
	}
	link, err := fetch(ctx, *item.ProviderOrderID)
	if err != nil {
		return "", err
	}
	*field(item) = &link
	if err := s.orders.UpdateItem(ctx, item); err != nil {
		return "", err
	}
	return link, nil
}

// syncGroupStatus recomputes the group status from its items after any
// item-level change.
func (s *Service) syncGroupStatus(ctx context.Context, groupID string) error {
	items, err := s.orders.FindItemsByGroup(ctx, groupID)
	if err != nil {
		return err
	}
	return s.orders.UpdateGroupStatus(ctx, groupID, domain.DeriveGroupStatus(items))
}
