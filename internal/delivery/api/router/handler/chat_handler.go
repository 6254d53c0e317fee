package handler

import (
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
}

// ChatHandler serves buyer conversations
type ChatHandler struct {
	chatUC usecase.ChatUsecase
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{chatUC: params.ChatUC}
}

// OpenChatRequest names the two participants of a chat
type OpenChatRequest struct {
	UserID  uint `json:"user_id" validate:"required"`
	BuyerID uint `json:"buyer_id" validate:"required,nefield=UserID"`
}

// SendMessageRequest represents the request body for posting a message
type SendMessageRequest struct {
	SenderID uint   `json:"sender_id" validate:"required"`
	Text     string `json:"text" validate:"required,max=2000"`
}

// Open handles POST /chats
func (h *ChatHandler) Open(c echo.Context) error {
	var req OpenChatRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid chat input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	chat, err := h.chatUC.OpenChat(c.Request().Context(), req.UserID, req.BuyerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, chat)
}

// ListForBuyer handles GET /buyers/:id/chats
func (h *ChatHandler) ListForBuyer(c echo.Context) error {
	buyerID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	chats, err := h.chatUC.ListChatsForBuyer(c.Request().Context(), buyerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, chats)
}

// ListMessages handles GET /chats/:id/messages
func (h *ChatHandler) ListMessages(c echo.Context) error {
	chatID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	messages, err := h.chatUC.ListMessages(c.Request().Context(), chatID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages)
}

// SendMessage handles POST /chats/:id/messages
func (h *ChatHandler) SendMessage(c echo.Context) error {
	chatID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	message, err := h.chatUC.SendMessage(c.Request().Context(), chatID, req.SenderID, req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, message)
}
