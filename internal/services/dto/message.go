package dto

import "time"

type CreateMessageRequest struct {
	ClientName  string `json:"client_name" binding:"required" validate:"required"`
	ClientPhone string `json:"client_phone" binding:"required" validate:"required"`
	ClientEmail string `json:"client_email" validate:"omitempty,email"`
	MessageText string `json:"message_text" binding:"required" validate:"required"`
}

type MessageResponse struct {
	ID          uint      `json:"id"`
	ProviderID  uint      `json:"provider_id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	ClientEmail string    `json:"client_email,omitempty"`
	MessageText string    `json:"message_text"`
	CreatedAt   time.Time `json:"created_at"`
}
