package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volunteen/notify-server/config"
)

func TestGetFirebaseCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	creds := config.FirebaseConfig{
		APIKey:            "key",
		AuthDomain:        "volunteen.firebaseapp.com",
		ProjectID:         "volunteen",
		StorageBucket:     "volunteen.appspot.com",
		MessagingSenderID: "123",
		AppID:             "1:123:web:abc",
		MeasurementID:     "G-XYZ",
	}

	router := gin.New()
	router.GET("/get-firebase-credentials", NewCredentialsHandler(creds).GetFirebaseCredentials)

	req := httptest.NewRequest(http.MethodGet, "/get-firebase-credentials", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "key", got["apiKey"])
	assert.Equal(t, "volunteen.firebaseapp.com", got["authDomain"])
	assert.Equal(t, "volunteen", got["projectId"])
	assert.Equal(t, "volunteen.appspot.com", got["storageBucket"])
	assert.Equal(t, "123", got["messagingSenderId"])
	assert.Equal(t, "1:123:web:abc", got["appId"])
	assert.Equal(t, "G-XYZ", got["measurementId"])
}
