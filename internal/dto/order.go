package dto

import "time"

type SplitItemRequestDTO struct {
	RoomType  string  `json:"room_type" validate:"required" example:"king"`
	RoomCount int     `json:"room_count" validate:"required,min=1" example:"1"`
	CheckIn   string  `json:"check_in,omitempty" example:"2025-11-20"`
	CheckOut  string  `json:"check_out,omitempty" example:"2025-11-22"`
	Amount    float64 `json:"amount" validate:"required,gt=0" example:"640"`
}

type CreateBookingRequestDTO struct {
	Channel       string                `json:"channel" validate:"required,oneof=NEW_USER PLATINUM CORPORATE" example:"PLATINUM"`
	CorporateName string                `json:"corporate_name,omitempty" example:"Acme Travel Ltd"`
	HotelID       string                `json:"hotel_id" validate:"required" example:"H-88"`
	HotelName     string                `json:"hotel_name" example:"Harbor View Hotel"`
	CustomerName  string                `json:"customer_name" validate:"required" example:"Li Wei"`
	CustomerPhone string                `json:"customer_phone" example:"13900001234"`
	CheckIn       string                `json:"check_in" validate:"required" example:"2025-11-20"`
	CheckOut      string                `json:"check_out" validate:"required" example:"2025-11-22"`
	TotalAmount   float64               `json:"total_amount" validate:"required,gt=0" example:"1280"`
	SaveAsPlan    bool                  `json:"save_as_plan" example:"false"`
	Splits        []SplitItemRequestDTO `json:"splits" validate:"required,min=1,dive"`
}

type SplitItemResponseDTO struct {
	ID              string  `json:"id" example:"7d4a0b54-9c3e-4f1a-8a85-1f0d2c9b6a11"`
	SplitIndex      int     `json:"split_index" example:"1"`
	SplitTotal      int     `json:"split_total" example:"2"`
	RoomType        string  `json:"room_type" example:"king"`
	RoomCount       int     `json:"room_count" example:"1"`
	CheckIn         string  `json:"check_in" example:"2025-11-20"`
	CheckOut        string  `json:"check_out" example:"2025-11-22"`
	Amount          float64 `json:"amount" example:"640"`
	ExecutionStatus string  `json:"execution_status" example:"QUEUED"`
	AccountPhone    string  `json:"account_phone,omitempty" example:"13900000042"`
	ProviderOrderID string  `json:"provider_order_id,omitempty" example:"H-1001"`
	FailReason      string  `json:"fail_reason,omitempty" example:"room sold out"`
}

type OrderGroupResponseDTO struct {
	ID            string                 `json:"id" example:"3c9e6b1a-2f84-47d0-9a3e-5b8c1d7f2e90"`
	OrderNo       string                 `json:"order_no" example:"17321960001234"`
	Channel       string                 `json:"channel" example:"PLATINUM"`
	HotelID       string                 `json:"hotel_id" example:"H-88"`
	HotelName     string                 `json:"hotel_name" example:"Harbor View Hotel"`
	CustomerName  string                 `json:"customer_name" example:"Li Wei"`
	CheckIn       string                 `json:"check_in" example:"2025-11-20"`
	CheckOut      string                 `json:"check_out" example:"2025-11-22"`
	TotalNights   int                    `json:"total_nights" example:"2"`
	TotalAmount   float64                `json:"total_amount" example:"1280"`
	Status        string                 `json:"status" example:"PROCESSING"`
	PaymentStatus string                 `json:"payment_status" example:"UNPAID"`
	SplitCount    int                    `json:"split_count" example:"2"`
	CreatedAt     time.Time              `json:"created_at" example:"2025-11-10T16:09:57+03:00"`
	Items         []SplitItemResponseDTO `json:"items,omitempty"`
}

type ItemOutcomeDTO struct {
	ItemID     string `json:"item_id" example:"7d4a0b54-9c3e-4f1a-8a85-1f0d2c9b6a11"`
	SplitIndex int    `json:"split_index" example:"1"`
	OK         bool   `json:"ok" example:"true"`
	Error      string `json:"error,omitempty" example:"non-refundable rate"`
}

type LinkResponseDTO struct {
	URL string `json:"url" example:"https://pay.example.com/H-1001"`
}
