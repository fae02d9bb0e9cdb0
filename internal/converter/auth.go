package converter

import (
	dto "slot_backend/internal/api/dto/auth"
	"slot_backend/internal/model"
)

func RegisterRequestToPlayerModel(req *dto.RegisterRequest) *model.Player {
	return &model.Player{
		Name:     req.Name,
		Login:    req.Login,
		Password: req.Password,
	}
}

func ToAuthResponse(data *model.AuthData) dto.AuthResponse {
	return dto.AuthResponse{
		AccessToken: data.AccessToken,
		SessionID:   data.SessionID,
	}
}
