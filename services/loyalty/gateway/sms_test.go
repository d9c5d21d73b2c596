package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unistep/loyalty-backend/internal/pkg/models"
)

func smsTestConfig(baseURL string) *models.Config {
	return &models.Config{
		SMS: models.SMSConfig{
			BaseURL: baseURL,
			APIKey:  "test-key",
			Sender:  "UniStep",
			Timeout: 2 * time.Second,
		},
	}
}

func TestSendSMS_Success(t *testing.T) {
	var received goSMSRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sendsms", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := NewGoSMSClient(smsTestConfig(server.URL))

	err := client.SendSMS(context.Background(), "555123456", "Your code is 1234")

	require.NoError(t, err)
	assert.Equal(t, "test-key", received.APIKey)
	assert.Equal(t, "555123456", received.To)
	assert.Equal(t, "UniStep", received.From)
	assert.Equal(t, "Your code is 1234", received.Text)
}

func TestSendSMS_ProviderRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "message": "insufficient balance"}`))
	}))
	defer server.Close()

	client := NewGoSMSClient(smsTestConfig(server.URL))

	err := client.SendSMS(context.Background(), "555123456", "Your code is 1234")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient balance")
}

func TestSendSMS_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewGoSMSClient(smsTestConfig(server.URL))

	err := client.SendSMS(context.Background(), "555123456", "Your code is 1234")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
