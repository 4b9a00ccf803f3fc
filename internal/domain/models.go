package domain

import "time"

// Channel is the booking eligibility category a request is admitted against.
type Channel string

const (
	ChannelNewUser   Channel = "NEW_USER"
	ChannelPlatinum  Channel = "PLATINUM"
	ChannelCorporate Channel = "CORPORATE"
)

// Unlimited marks a daily limit or quota balance with no finite cap.
const Unlimited = -1

type GroupStatus string

const (
	GroupProcessing GroupStatus = "PROCESSING"
	GroupConfirmed  GroupStatus = "CONFIRMED"
	GroupCompleted  GroupStatus = "COMPLETED"
	GroupCancelled  GroupStatus = "CANCELLED"
	GroupFailed     GroupStatus = "FAILED"
)

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "UNPAID"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPaid    PaymentStatus = "PAID"
)

// ExecStatus is the per-item execution state machine position.
type ExecStatus string

const (
	ExecPlanPending ExecStatus = "PLAN_PENDING"
	ExecQueued      ExecStatus = "QUEUED"
	ExecSubmitting  ExecStatus = "SUBMITTING"
	ExecWaitConfirm ExecStatus = "WAIT_CONFIRM"
	ExecOrdered     ExecStatus = "ORDERED"
	ExecDone        ExecStatus = "DONE"
	ExecFailed      ExecStatus = "FAILED"
	ExecCancelled   ExecStatus = "CANCELLED"
)

type WatchStatus string

const (
	WatchMonitoring WatchStatus = "MONITORING"
	WatchReached    WatchStatus = "REACHED"
	WatchPaused     WatchStatus = "PAUSED"
)

// ChannelPermission is one agent's entitlement on one channel.
// DailyLimit and QuotaBalance use Unlimited (-1) for "no cap".
type ChannelPermission struct {
	AgentID      int     `db:"agent_id"`
	Channel      Channel `db:"channel"`
	Allowed      bool    `db:"allowed"`
	DailyLimit   int     `db:"daily_limit"`
	QuotaBalance int     `db:"quota_balance"`
}

// CorporateAgreement is a contract name resolvable through the registry.
type CorporateAgreement struct {
	ID     int    `db:"id"`
	Name   string `db:"name"`
	Active bool   `db:"active"`
}

// AgreementOverride replaces the corporate channel-level daily limit and
// quota for one (agent, agreement) pair. A nil field falls back to the
// channel-level value.
type AgreementOverride struct {
	AgentID      int  `db:"agent_id"`
	AgreementID  int  `db:"agreement_id"`
	DailyLimit   *int `db:"daily_limit"`
	QuotaBalance *int `db:"quota_balance"`
}

type OrderGroup struct {
	ID            string        `db:"id"`
	OrderNo       string        `db:"order_no"`
	Channel       Channel       `db:"channel"`
	AgreementID   *int          `db:"agreement_id"`
	HotelID       string        `db:"hotel_id"`
	HotelName     string        `db:"hotel_name"`
	CustomerName  string        `db:"customer_name"`
	CustomerPhone string        `db:"customer_phone"`
	CheckIn       time.Time     `db:"check_in"`
	CheckOut      time.Time     `db:"check_out"`
	TotalNights   int           `db:"total_nights"`
	TotalAmount   float64       `db:"total_amount"`
	Status        GroupStatus   `db:"status"`
	PaymentStatus PaymentStatus `db:"payment_status"`
	CreatedBy     int           `db:"created_by"`
	SplitCount    int           `db:"split_count"`
	CreatedAt     time.Time     `db:"created_at"`

	Items []OrderSplitItem `db:"-"`
}

type OrderSplitItem struct {
	ID              string        `db:"id"`
	GroupID         string        `db:"group_id"`
	SplitIndex      int           `db:"split_index"`
	SplitTotal      int           `db:"split_total"`
	RoomType        string        `db:"room_type"`
	RoomCount       int           `db:"room_count"`
	CheckIn         time.Time     `db:"check_in"`
	CheckOut        time.Time     `db:"check_out"`
	Amount          float64       `db:"amount"`
	Status          GroupStatus   `db:"status"`
	PaymentStatus   PaymentStatus `db:"payment_status"`
	ExecutionStatus ExecStatus    `db:"execution_status"`
	AccountID       *int          `db:"account_id"`
	AccountPhone    *string       `db:"account_phone"`
	ProviderOrderID *string       `db:"provider_order_id"`
	FailReason      *string       `db:"fail_reason"`
	PaymentLink     *string       `db:"payment_link"`
	DetailLink      *string       `db:"detail_link"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

// PoolAccount is a shared loyalty account bookings execute against.
type PoolAccount struct {
	ID                  int        `db:"id"`
	Phone               string     `db:"phone"`
	IsNewUser           bool       `db:"is_new_user"`
	IsPlatinum          bool       `db:"is_platinum"`
	Online              bool       `db:"online"`
	Points              int        `db:"points"`
	DailyOrdersLeft     int        `db:"daily_orders_left"`
	BreakfastCoupons    int        `db:"breakfast_coupons"`
	UpgradeCoupons      int        `db:"upgrade_coupons"`
	LateCheckoutCoupons int        `db:"late_checkout_coupons"`
	SlipperCoupons      int        `db:"slipper_coupons"`
	LastCheckinAt       *time.Time `db:"last_checkin_at"`
	LastCheckinResult   string     `db:"last_checkin_result"`
	LastLotteryAt       *time.Time `db:"last_lottery_at"`
	LastLotteryResult   string     `db:"last_lottery_result"`
	LastScanAt          *time.Time `db:"last_scan_at"`
	LastScanResult      string     `db:"last_scan_result"`
	CreatedAt           time.Time  `db:"created_at"`
}

// Candle is one day of the monitored price series.
type Candle struct {
	Date  string  `json:"date"`
	Open  float64 `json:"open"`
	Close float64 `json:"close"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
}

// PricePoint is one intraday observation.
type PricePoint struct {
	Time  time.Time `json:"time"`
	Price float64   `json:"price"`
}

// PriceSnapshot is what the provider reported for a watched room at At.
type PriceSnapshot struct {
	Price        float64
	HasInventory bool
	At           time.Time
}

type PriceMonitorTask struct {
	ID           string       `db:"id"`
	AgentID      int          `db:"agent_id"`
	HotelID      string       `db:"hotel_id"`
	HotelName    string       `db:"hotel_name"`
	RoomType     string       `db:"room_type"`
	CheckIn      time.Time    `db:"check_in"`
	CheckOut     time.Time    `db:"check_out"`
	TargetPrice  float64      `db:"target_price"`
	CurrentPrice float64      `db:"current_price"`
	HasInventory bool         `db:"has_inventory"`
	Status       WatchStatus  `db:"status"`
	Candles      []Candle     `db:"candles"`
	Intraday     []PricePoint `db:"intraday"`
	Note         string       `db:"note"`
	UpdatedAt    time.Time    `db:"updated_at"`
}
