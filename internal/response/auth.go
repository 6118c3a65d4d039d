package response

import "task-manager-service/internal/dto"

type LoginResponse struct {
	Token string      `json:"token"`
	User  dto.UserDTO `json:"user"`
}

type PaymentResponse struct {
	Payment dto.PaymentStateDTO `json:"payment"`
}
