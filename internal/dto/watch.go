package dto

import "time"

type CreateWatchRequestDTO struct {
	HotelID     string  `json:"hotel_id" validate:"required" example:"H-88"`
	HotelName   string  `json:"hotel_name" example:"Harbor View Hotel"`
	RoomType    string  `json:"room_type" validate:"required" example:"king"`
	CheckIn     string  `json:"check_in" validate:"required" example:"2025-11-20"`
	CheckOut    string  `json:"check_out" validate:"required" example:"2025-11-22"`
	TargetPrice float64 `json:"target_price" validate:"required,gt=0" example:"2800"`
	Note        string  `json:"note,omitempty" example:"prefer high floor"`
}

type CandleDTO struct {
	Date  string  `json:"date" example:"2025-11-10"`
	Open  float64 `json:"open" example:"3100"`
	Close float64 `json:"close" example:"3000"`
	High  float64 `json:"high" example:"3300"`
	Low   float64 `json:"low" example:"2900"`
}

type WatchTaskResponseDTO struct {
	ID           string      `json:"id" example:"91f7a6d2-0c4b-4e7a-b8d3-6a5e2f1c8b40"`
	HotelID      string      `json:"hotel_id" example:"H-88"`
	HotelName    string      `json:"hotel_name" example:"Harbor View Hotel"`
	RoomType     string      `json:"room_type" example:"king"`
	CheckIn      string      `json:"check_in" example:"2025-11-20"`
	CheckOut     string      `json:"check_out" example:"2025-11-22"`
	TargetPrice  float64     `json:"target_price" example:"2800"`
	CurrentPrice float64     `json:"current_price" example:"2750"`
	HasInventory bool        `json:"has_inventory" example:"true"`
	Status       string      `json:"status" example:"REACHED"`
	Candles      []CandleDTO `json:"candles,omitempty"`
	Note         string      `json:"note,omitempty" example:"prefer high floor"`
	UpdatedAt    time.Time   `json:"updated_at" example:"2025-11-10T16:09:57+03:00"`
}
