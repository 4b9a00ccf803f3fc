package dto

type ImportAccountDTO struct {
	Phone           string `json:"phone" validate:"required" example:"13900000042"`
	IsNewUser       bool   `json:"is_new_user" example:"false"`
	IsPlatinum      bool   `json:"is_platinum" example:"true"`
	DailyOrdersLeft int    `json:"daily_orders_left" validate:"min=0" example:"3"`
	Points          int    `json:"points" validate:"min=0" example:"12000"`
}

type ImportAccountsRequestDTO struct {
	Accounts []ImportAccountDTO `json:"accounts" validate:"required,min=1,dive"`
}

type ImportAccountsResponseDTO struct {
	Imported int `json:"imported" example:"7"`
}

type AccountResponseDTO struct {
	ID              int    `json:"id" example:"42"`
	Phone           string `json:"phone" example:"13900000042"`
	IsNewUser       bool   `json:"is_new_user" example:"false"`
	IsPlatinum      bool   `json:"is_platinum" example:"true"`
	Online          bool   `json:"online" example:"true"`
	Points          int    `json:"points" example:"12000"`
	DailyOrdersLeft int    `json:"daily_orders_left" example:"3"`
}

type SetOnlineRequestDTO struct {
	Online bool `json:"online" example:"false"`
}

type PermissionDTO struct {
	Channel      string `json:"channel" validate:"required,oneof=NEW_USER PLATINUM CORPORATE" example:"PLATINUM"`
	Allowed      bool   `json:"allowed" example:"true"`
	DailyLimit   int    `json:"daily_limit" example:"-1"`
	QuotaBalance int    `json:"quota_balance" example:"20"`
}

type PutPermissionRequestDTO struct {
	AgentID int `json:"agent_id" validate:"required" example:"7"`
	PermissionDTO
}

type PutOverrideRequestDTO struct {
	AgentID      int  `json:"agent_id" validate:"required" example:"7"`
	AgreementID  int  `json:"agreement_id" validate:"required" example:"3"`
	DailyLimit   *int `json:"daily_limit,omitempty" example:"2"`
	QuotaBalance *int `json:"quota_balance,omitempty" example:"10"`
}
