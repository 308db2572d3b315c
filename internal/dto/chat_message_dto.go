package dto

import "time"

type CreateChatMessageRequest struct {
	Sender  string                 `json:"sender" validate:"required"`
	Content string                 `json:"content" validate:"required"`
	Context map[string]interface{} `json:"context"`
}

type ChatMessageResponse struct {
	Id        string                 `json:"id"`
	SessionId string                 `json:"session_id"`
	Sender    string                 `json:"sender"`
	Content   string                 `json:"content"`
	Context   map[string]interface{} `json:"context,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

type PaginatedChatMessagesResponse struct {
	Messages []*ChatMessageResponse `json:"messages"`
	Total    int64                  `json:"total"`
	Page     int                    `json:"page"`
	PageSize int                    `json:"page_size"`
}
