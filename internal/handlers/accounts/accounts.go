package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/roomdesk/roomdesk/internal/domain"
	"github.com/roomdesk/roomdesk/internal/dto"
	"github.com/roomdesk/roomdesk/internal/service/accountservice"
	"github.com/roomdesk/roomdesk/pkg/utils"
)

type Service interface {
	ListAccounts(ctx context.Context) ([]domain.PoolAccount, error)
	ImportAccounts(ctx context.Context, accounts []domain.PoolAccount) (int, error)
	SetAccountOnline(ctx context.Context, id int, online bool) error
	GetPermissions(ctx context.Context, agentID int) ([]domain.ChannelPermission, error)
	PutPermission(ctx context.Context, perm *domain.ChannelPermission) error
	PutOverride(ctx context.Context, override *domain.AgreementOverride) error
}

// AccountHandler is the admin surface; every route behind it requires
// the admin role.
type AccountHandler struct {
	accountService Service
	validate       *validator.Validate
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		validate:       validator.New(),
	}
}

// List godoc
//
//	@Summary	List pool accounts
//	@Tags		Accounts
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.AccountResponseDTO
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/accounts [get]
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.ListAccounts(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.AccountResponseDTO, 0, len(accounts))
	for _, account := range accounts {
		response = append(response, dto.AccountResponseDTO{
			ID:              account.ID,
			Phone:           account.Phone,
			IsNewUser:       account.IsNewUser,
			IsPlatinum:      account.IsPlatinum,
			Online:          account.Online,
			Points:          account.Points,
			DailyOrdersLeft: account.DailyOrdersLeft,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Import godoc
//
//	@Summary	Import pool accounts
//	@Tags		Accounts
//	@Accept		json
//	@Produce	json
//	@Param		accounts	body	dto.ImportAccountsRequestDTO	true	"Accounts to import"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.ImportAccountsResponseDTO
//	@Failure	400	{object}	utils.Response	"Malformed request"
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Failure	422	{object}	utils.Response	"Validation failed"
//	@Router		/api/admin/accounts/import [post]
func (h *AccountHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req dto.ImportAccountsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	accounts := make([]domain.PoolAccount, 0, len(req.Accounts))
	for _, account := range req.Accounts {
		accounts = append(accounts, domain.PoolAccount{
			Phone:           account.Phone,
			IsNewUser:       account.IsNewUser,
			IsPlatinum:      account.IsPlatinum,
			DailyOrdersLeft: account.DailyOrdersLeft,
			Points:          account.Points,
			Online:          true,
		})
	}

	imported, err := h.accountService.ImportAccounts(r.Context(), accounts)
	if err != nil {
		if errors.Is(err, accountservice.ErrNoAccounts) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ImportAccountsResponseDTO{Imported: imported})
}

// SetOnline godoc
//
//	@Summary	Toggle a pool account's availability
//	@Tags		Accounts
//	@Accept		json
//	@Produce	json
//	@Param		accountID	path	int						true	"Account id"
//	@Param		online		body	dto.SetOnlineRequestDTO	true	"Desired state"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Account not found"
//	@Router		/api/admin/accounts/{accountID}/online [post]
func (h *AccountHandler) SetOnline(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Account id must be an integer")
		return
	}

	var req dto.SetOnlineRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if err := h.accountService.SetAccountOnline(r.Context(), accountID, req.Online); err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}

// GetPermissions godoc
//
//	@Summary	Get an agent's channel permissions
//	@Tags		Permissions
//	@Produce	json
//	@Param		agentID	path	int	true	"Agent id"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.PermissionDTO
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Router		/api/admin/permissions/{agentID} [get]
func (h *AccountHandler) GetPermissions(w http.ResponseWriter, r *http.Request) {
	agentID, err := strconv.Atoi(chi.URLParam(r, "agentID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Agent id must be an integer")
		return
	}

	permissions, err := h.accountService.GetPermissions(r.Context(), agentID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PermissionDTO, 0, len(permissions))
	for _, perm := range permissions {
		response = append(response, dto.PermissionDTO{
			Channel:      string(perm.Channel),
			Allowed:      perm.Allowed,
			DailyLimit:   perm.DailyLimit,
			QuotaBalance: perm.QuotaBalance,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PutPermission godoc
//
//	@Summary	Write an agent's channel permission
//	@Tags		Permissions
//	@Accept		json
//	@Produce	json
//	@Param		permission	body	dto.PutPermissionRequestDTO	true	"Permission row"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	400	{object}	utils.Response	"Invalid limits"
//	@Failure	403	{object}	utils.Response	"Admin role required"
//	@Router		/api/admin/permissions [put]
func (h *AccountHandler) PutPermission(w http.ResponseWriter, r *http.Request) {
	var req dto.PutPermissionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	err := h.accountService.PutPermission(r.Context(), &domain.ChannelPermission{
		AgentID:      req.AgentID,
		Channel:      domain.Channel(req.Channel),
		Allowed:      req.Allowed,
		DailyLimit:   req.DailyLimit,
		QuotaBalance: req.QuotaBalance,
	})
	if err != nil {
		if errors.Is(err, accountservice.ErrInvalidLimit) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}

// PutOverride godoc
//
//	@Summary	Write a per-agreement limit/quota override
//	@Tags		Permissions
//	@Accept		json
//	@Produce	json
//	@Param		override	body	dto.PutOverrideRequestDTO	true	"Override row"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	400	{object}	utils.Response	"Invalid limits"
//	@Failure	403	{object}	utils.Response	"Agreement not on the agent's allow-list"
//	@Router		/api/admin/permissions/overrides [put]
func (h *AccountHandler) PutOverride(w http.ResponseWriter, r *http.Request) {
	var req dto.PutOverrideRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	err := h.accountService.PutOverride(r.Context(), &domain.AgreementOverride{
		AgentID:      req.AgentID,
		AgreementID:  req.AgreementID,
		DailyLimit:   req.DailyLimit,
		QuotaBalance: req.QuotaBalance,
	})
	if err != nil {
		switch {
		case errors.Is(err, accountservice.ErrInvalidLimit):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, accountservice.ErrOverrideForbidden):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}
