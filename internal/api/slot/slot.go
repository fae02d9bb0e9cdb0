package slot

import (
	"context"
	"errors"
	"net/http"
	dto "slot_backend/internal/api/dto/slot"
	"slot_backend/internal/converter"
	"slot_backend/internal/middleware"
	"slot_backend/internal/model"
	"slot_backend/internal/service"
	"slot_backend/pkg/req"
	"slot_backend/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.SlotService
	Log  *zap.Logger
}

type Handler struct {
	serv service.SlotService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, log: deps.Log.Named("slot_api")}
}

// Spin - новый ход или розыгрыш ожидающего второго шанса.
// Ответ приходит после окончания показа барабанов
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	result, err := h.serv.Spin(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

// SetBet - отклоненная ставка не ошибка: 200 и accepted=false
func (h *Handler) SetBet(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	st, err := h.serv.SetBet(r.Context(), sessionID, payload.Amount)
	if err != nil && !errors.Is(err, model.ErrInvalidBetSelection) {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BetResponse{
		Accepted: err == nil,
		Ledger:   converter.ToLedger(st),
	})
}

func (h *Handler) ActivateFreeSpins(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	st, err := h.serv.ActivateFreeSpins(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLedger(st))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	st, err := h.serv.State(r.Context(), sessionID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(st, h.serv.Config().Reels))
}

func (h *Handler) Config(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToConfigResponse(h.serv.Config()))
}

func (h *Handler) Stats(w http.ResponseWriter, _ *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "no session")
	}
	return sessionID, ok
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	playerID, _ := middleware.PlayerIDFromContext(r.Context())

	switch {
	case errors.Is(err, context.Canceled):
		// клиент ушел, ход все равно будет рассчитан
		h.log.Debug("client gone before settle", zap.Int("player_id", playerID), zap.Error(err))
	case errors.Is(err, context.DeadlineExceeded):
		// ход все равно будет рассчитан, результат виден в /slot/state
		h.log.Debug("deadline before settle", zap.Int("player_id", playerID), zap.Error(err))
		resp.WriteError(w, http.StatusGatewayTimeout, "spin is still settling")
	case errors.Is(err, model.ErrBlockedBySpin), errors.Is(err, model.ErrFreeSpinsActive):
		resp.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrInsufficientFunds):
		resp.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, model.ErrSessionNotFound):
		// сессия закрыта или истекла, access токен еще жив
		resp.WriteError(w, http.StatusUnauthorized, "session closed")
	default:
		h.log.Error("slot request failed", zap.Int("player_id", playerID), zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
