package handler

import (
	"github.com/labstack/echo/v4"

	"osta/internal/domain/entity"
	"osta/internal/usecase"
	"osta/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{chatUseCase: chatUseCase}
}

func (h *ChatHandler) GetThread(c echo.Context) error {
	thread, err := h.chatUseCase.GetThread(c.Request().Context(), c.Param("requestId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, thread)
}

type sendMessageRequest struct {
	SenderID string `json:"senderId"`
	Text     string `json:"text"`
	Type     string `json:"type"`
	FileURL  string `json:"fileUrl"`
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	chat, err := h.chatUseCase.SendMessage(c.Request().Context(), usecase.SendMessageInput{
		RequestID: c.Param("requestId"),
		SenderID:  req.SenderID,
		Text:      req.Text,
		Type:      req.Type,
		FileURL:   req.FileURL,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, chat)
}

type markSeenRequest struct {
	ViewerID string `json:"viewerId" validate:"required"`
}

func (h *ChatHandler) MarkSeen(c echo.Context) error {
	var req markSeenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	chat, err := h.chatUseCase.MarkSeen(c.Request().Context(), c.Param("requestId"), req.ViewerID)
	if err != nil {
		return response.Error(c, err)
	}
	if chat == nil {
		// No thread yet; nothing was marked.
		return response.Success(c, map[string]interface{}{
			"messages": []entity.Message{},
		})
	}
	return response.Success(c, chat)
}

type closeChatRequest struct {
	CloserID string `json:"closerId"`
}

func (h *ChatHandler) Close(c echo.Context) error {
	var req closeChatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	chat, err := h.chatUseCase.CloseChat(c.Request().Context(), c.Param("requestId"), req.CloserID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, chat)
}

type reviewRequest struct {
	ReviewerID string   `json:"reviewerId"`
	Rating     *float64 `json:"rating"`
	Review     string   `json:"review"`
	Skip       bool     `json:"skip"`
}

func (h *ChatHandler) Review(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	chat, err := h.chatUseCase.SubmitReview(c.Request().Context(), usecase.ReviewInput{
		RequestID:  c.Param("requestId"),
		ReviewerID: req.ReviewerID,
		Rating:     req.Rating,
		Review:     req.Review,
		Skip:       req.Skip,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, chat)
}
