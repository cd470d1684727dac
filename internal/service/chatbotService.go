package service

import (
	"context"
	"fmt"

	"github.com/volunteen/notify-server/internal/entity"
	"github.com/volunteen/notify-server/internal/llm"
)

type chatbotUseCase struct {
	client llm.Client
}

func NewChatbotUseCase(client llm.Client) ChatbotUseCase {
	return &chatbotUseCase{client: client}
}

func (uc *chatbotUseCase) GenerateResponse(ctx context.Context, req *entity.ChatbotRequest) (string, error) {
	response, err := uc.client.GenerateCompletion(ctx, req.SystemMessage, req.UserText)
	if err != nil {
		return "", fmt.Errorf("failed to generate chatbot response: %w", err)
	}
	return response, nil
}
