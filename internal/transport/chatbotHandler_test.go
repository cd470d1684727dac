package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volunteen/notify-server/internal/entity"
)

type fakeChatbotUseCase struct {
	response string
	err      error
}

func (f *fakeChatbotUseCase) GenerateResponse(ctx context.Context, req *entity.ChatbotRequest) (string, error) {
	return f.response, f.err
}

func newChatbotTestRouter(uc *fakeChatbotUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/generate-chatbot-response", NewChatbotHandler(uc).GenerateResponse)
	return router
}

func TestGenerateResponseHandler(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		response   string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid request",
			payload:    `{"userText":"hello","systemMessage":"be helpful"}`,
			response:   "hi there",
			wantStatus: http.StatusOK,
			wantBody:   `"response":"hi there"`,
		},
		{
			name:       "missing user text",
			payload:    `{"systemMessage":"be helpful"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "No user text provided.",
		},
		{
			name:       "missing system message",
			payload:    `{"userText":"hello"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "No system message provided.",
		},
		{
			name:       "service failure",
			payload:    `{"userText":"hello","systemMessage":"be helpful"}`,
			serviceErr: errors.New("upstream unavailable"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "upstream unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeChatbotUseCase{response: tt.response, err: tt.serviceErr}
			router := newChatbotTestRouter(uc)

			req := httptest.NewRequest(http.MethodPost, "/generate-chatbot-response", strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
