package watch

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
	"github.com/roomdesk/roomdesk/internal/service/watchservice"
	"github.com/roomdesk/roomdesk/pkg/auth"
	"github.com/roomdesk/roomdesk/pkg/utils"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, agentID int, req watchservice.CreateRequest) (*domain.PriceMonitorTask, error)
	List(ctx context.Context, agentID int) ([]domain.PriceMonitorTask, error)
	Get(ctx context.Context, agentID int, taskID string) (*domain.PriceMonitorTask, error)
	Delete(ctx context.Context, agentID int, taskID string) error
	Pause(ctx context.Context, agentID int, taskID string) error
	Resume(ctx context.Context, agentID int, taskID string) error
}

type WatchHandler struct {
	watchService Service
	validate     *validator.Validate
}

func New(watchService Service) *WatchHandler {
	return &WatchHandler{
		watchService: watchService,
		validate:     validator.New(),
	}
}

// Create godoc
//
//	@Summary		Create a price watch task
//	@Description	Start monitoring one (hotel, room type, date range) tuple against a target price.
//	@Tags			Watch
//	@Accept			json
//	@Produce		json
//	@Param			task	body	dto.CreateWatchRequestDTO	true	"Watch task"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.WatchTaskResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed request"
//	@Failure		422	{object}	utils.Response	"Validation failed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/watch [post]
func (h *WatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	agentID := r.Context().Value(auth.AgentIDKey).(int)

	var req dto.CreateWatchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "check_in must be YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "check_out must be YYYY-MM-DD")
		return
	}

	task, err := h.watchService.Create(r.Context(), agentID, watchservice.CreateRequest{
		HotelID:     req.HotelID,
		HotelName:   req.HotelName,
		RoomType:    req.RoomType,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		TargetPrice: req.TargetPrice,
		Note:        req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, watchservice.ErrInvalidDates), errors.Is(err, watchservice.ErrInvalidTarget):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, taskToDTO(task))
}

// List godoc
//
//	@Summary	List the agent's watch tasks
//	@Tags		Watch
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.WatchTaskResponseDTO
//	@Failure	204	{object}	utils.Response	"No data available"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/watch [get]
func (h *WatchHandler) List(w http.ResponseWriter, r *http.Request) {
	agentID := r.Context().Value(auth.AgentIDKey).(int)

	tasks, err := h.watchService.List(r.Context(), agentID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(tasks) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.WatchTaskResponseDTO, 0, len(tasks))
	for i := range tasks {
		response = append(response, taskToDTO(&tasks[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary	Get one watch task
//	@Tags		Watch
//	@Produce	json
//	@Param		taskID	path	string	true	"Watch task id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.WatchTaskResponseDTO
//	@Failure	404	{object}	utils.Response	"Task not found"
//	@Router		/api/watch/{taskID} [get]
func (h *WatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	agentID := r.Context().Value(auth.AgentIDKey).(int)
	taskID := chi.URLParam(r, "taskID")

	task, err := h.watchService.Get(r.Context(), agentID, taskID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, taskToDTO(task))
}

// Delete godoc
//
//	@Summary	Delete a watch task
//	@Tags		Watch
//	@Produce	json
//	@Param		taskID	path	string	true	"Watch task id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Task not found"
//	@Router		/api/watch/{taskID} [delete]
func (h *WatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.taskAction(w, r, h.watchService.Delete)
}

// Pause godoc
//
//	@Summary	Pause a watch task
//	@Tags		Watch
//	@Produce	json
//	@Param		taskID	path	string	true	"Watch task id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Task not found"
//	@Router		/api/watch/{taskID}/pause [post]
func (h *WatchHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.taskAction(w, r, h.watchService.Pause)
}

// Resume godoc
//
//	@Summary	Resume a paused watch task
//	@Tags		Watch
//	@Produce	json
//	@Param		taskID	path	string	true	"Watch task id"
//	@Security	BearerAuth
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Task not found"
//	@Failure	409	{object}	utils.Response	"Task is not paused"
//	@Router		/api/watch/{taskID}/resume [post]
func (h *WatchHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.taskAction(w, r, h.watchService.Resume)
}

func (h *WatchHandler) taskAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, agentID int, taskID string) error) {
	agentID := r.Context().Value(auth.AgentIDKey).(int)
	taskID := chi.URLParam(r, "taskID")

	if err := action(r.Context(), agentID, taskID); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}

func (h *WatchHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, watchservice.ErrTaskNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, watchservice.ErrAlreadyResolved):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func taskToDTO(task *domain.PriceMonitorTask) dto.WatchTaskResponseDTO {
	resp := dto.WatchTaskResponseDTO{
		ID:           task.ID,
		HotelID:      task.HotelID,
		HotelName:    task.HotelName,
		RoomType:     task.RoomType,
		CheckIn:      task.CheckIn.Format(dateLayout),
		CheckOut:     task.CheckOut.Format(dateLayout),
		TargetPrice:  task.TargetPrice,
		CurrentPrice: task.CurrentPrice,
		HasInventory: task.HasInventory,
		Status:       string(task.Status),
		Note:         task.Note,
		UpdatedAt:    task.UpdatedAt,
	}
	for _, candle := range task.Candles {
		resp.Candles = append(resp.Candles, dto.CandleDTO{
			Date:  candle.Date,
			Open:  candle.Open,
			Close: candle.Close,
			High:  candle.High,
			Low:   candle.Low,
		})
	}
	return resp
}
