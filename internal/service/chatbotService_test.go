package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volunteen/notify-server/internal/entity"
)

type fakeLLMClient struct {
	lastSystem string
	lastUser   string
	response   string
	err        error
}

func (f *fakeLLMClient) GenerateCompletion(ctx context.Context, systemMessage, userText string) (string, error) {
	f.lastSystem = systemMessage
	f.lastUser = userText
	return f.response, f.err
}

func TestGenerateResponse(t *testing.T) {
	client := &fakeLLMClient{response: "You could organize a food drive."}
	uc := NewChatbotUseCase(client)

	got, err := uc.GenerateResponse(context.Background(), &entity.ChatbotRequest{
		SystemMessage: "You are a volunteering assistant.",
		UserText:      "What can I do this weekend?",
	})

	require.NoError(t, err)
	assert.Equal(t, "You could organize a food drive.", got)
	assert.Equal(t, "You are a volunteering assistant.", client.lastSystem)
	assert.Equal(t, "What can I do this weekend?", client.lastUser)
}

func TestGenerateResponseError(t *testing.T) {
	client := &fakeLLMClient{err: errors.New("service unavailable")}
	uc := NewChatbotUseCase(client)

	_, err := uc.GenerateResponse(context.Background(), &entity.ChatbotRequest{
		SystemMessage: "sys",
		UserText:      "hi",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate chatbot response")
}
