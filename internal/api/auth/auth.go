package auth

import (
	"errors"
	"net/http"
	dto "slot_backend/internal/api/dto/auth"
	"slot_backend/internal/converter"
	"slot_backend/internal/middleware"
	"slot_backend/internal/model"
	"slot_backend/internal/service"
	"slot_backend/pkg/req"
	"slot_backend/pkg/resp"
	"time"

	"go.uber.org/zap"
)

const (
	sessionIDCookie    = "session_id"
	refreshTokenCookie = "refresh_token"
)

type HandlerDeps struct {
	Serv service.AuthService
	Log  *zap.Logger
	// RefreshTTL - срок жизни cookies, совпадает со сроком refresh токена
	RefreshTTL time.Duration
}

type Handler struct {
	serv       service.AuthService
	log        *zap.Logger
	refreshTTL time.Duration
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:       deps.Serv,
		log:        deps.Log.Named("auth_api"),
		refreshTTL: deps.RefreshTTL,
	}
}

// Register создаёт игрока, открывает сессию.
// access_token и session_id возвращаются в теле, refresh_token и session_id - в cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	body, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil || body.Login == "" || body.Password == "" {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Register(r.Context(), converter.RegisterRequestToPlayerModel(&body))
	if err != nil {
		h.log.Warn("register failed", zap.String("login", body.Login), zap.Error(err))
		resp.WriteError(w, http.StatusConflict, "register failed")
		return
	}

	h.setSessionCookies(w, data)
	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToAuthResponse(data))
}

// Login открывает новую сессию
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	body, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Login(r.Context(), body.Login, body.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			resp.WriteError(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.log.Error("login failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "login failed")
		return
	}

	h.setSessionCookies(w, data)
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAuthResponse(data))
}

// Refresh выдает новый access_token. session_id и refresh_token берутся из cookies,
// а если их нет - из тела запроса
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	data, ok := authDataFromCookies(r)
	if !ok {
		body, err := req.Decode[dto.RefreshRequest](r.Body)
		if err != nil || body.SessionID == "" || body.RefreshToken == "" {
			resp.WriteError(w, http.StatusUnauthorized, "no refresh token")
			return
		}
		data = &model.AuthData{SessionID: body.SessionID, RefreshToken: body.RefreshToken}
	}

	access, err := h.serv.Refresh(r.Context(), data)
	if err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			resp.WriteError(w, http.StatusUnauthorized, "refresh failed")
			return
		}
		h.log.Error("refresh failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "refresh failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.AuthResponse{AccessToken: access, SessionID: data.SessionID})
}

// Logout закрывает сессию из access токена вместе с игровой сессией
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "no session")
		return
	}

	if err := h.serv.Logout(r.Context(), sessionID); err != nil {
		h.log.Error("logout failed", zap.String("session_id", sessionID), zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "logout failed")
		return
	}

	clearCookie(w, sessionIDCookie, "/")
	clearCookie(w, refreshTokenCookie, "/auth")
	w.WriteHeader(http.StatusNoContent)
}

func authDataFromCookies(r *http.Request) (*model.AuthData, bool) {
	sid, err := r.Cookie(sessionIDCookie)
	if err != nil || sid.Value == "" {
		return nil, false
	}
	rt, err := r.Cookie(refreshTokenCookie)
	if err != nil || rt.Value == "" {
		return nil, false
	}
	return &model.AuthData{SessionID: sid.Value, RefreshToken: rt.Value}, true
}

func (h *Handler) setSessionCookies(w http.ResponseWriter, data *model.AuthData) {
	maxAge := int(h.refreshTTL.Seconds())

	http.SetCookie(w, &http.Cookie{
		Name:     sessionIDCookie,
		Value:    data.SessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	})
	// refresh_token нужен только ручкам /auth
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    data.RefreshToken,
		Path:     "/auth",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   maxAge,
	})
}

// clearCookie - путь должен совпадать с путем при установке, иначе браузер cookie не удалит
func clearCookie(w http.ResponseWriter, name, path string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
