package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unistep/loyalty-backend/internal/pkg/apexerr"
	"github.com/unistep/loyalty-backend/internal/pkg/models"
)

// countingTransport fails every request and records how many were attempted
type countingTransport struct {
	calls int
}

func (t *countingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	t.calls++
	return nil, errors.New("unexpected network call")
}

func apexTestConfig(registerURL, updateURL string) *models.Config {
	return &models.Config{
		Apex: models.ApexConfig{
			RegisterURL: registerURL,
			UpdateURL:   updateURL,
			Timeout:     2 * time.Second,
		},
	}
}

func registerPayload() *models.ApexRegisterPayload {
	return &models.ApexRegisterPayload{
		Branch:        "tbilisi",
		Gender:        "female",
		FirstName:     "Nino",
		LastName:      "Beridze",
		DateOfBirth:   "1992-04-15",
		CardNumber:    "700012345678",
		PhoneCode:     "+995",
		PhoneNumber:   "555123456",
		TermsAccepted: true,
	}
}

func TestSyncRegister_OKWithTimestamps(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"createdAt": "2025-01-01T10:00:00Z",
			"updatedAt": "2025-01-01T10:00:00Z",
			"promoChannels": {
				"sms": {"createdAt": "2025-01-01T10:00:00Z", "updatedAt": "2025-01-01T10:00:00Z"}
			}
		}`))
	}))
	defer server.Close()

	client := NewApexClient(apexTestConfig(server.URL, ""))

	result, err := client.SyncRegister(context.Background(), registerPayload())

	require.NoError(t, err)
	assert.Equal(t, models.ApexStatusOK, result.Status)
	assert.Equal(t, "2025-01-01T10:00:00Z", result.CreatedAt)
	assert.Equal(t, "2025-01-01T10:00:00Z", result.UpdatedAt)
	require.NotNil(t, result.PromoChannels)
	require.NotNil(t, result.PromoChannels.SMS)
	assert.Equal(t, "2025-01-01T10:00:00Z", result.PromoChannels.SMS.CreatedAt)
	assert.Nil(t, result.PromoChannels.Email)
}

func TestSyncRegister_BusinessRejectionIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "CARD_ALREADY_USED"}`))
	}))
	defer server.Close()

	client := NewApexClient(apexTestConfig(server.URL, ""))

	result, err := client.SyncRegister(context.Background(), registerPayload())

	require.NoError(t, err)
	assert.Equal(t, models.ApexStatusCardAlreadyUsed, result.Status)
	assert.Empty(t, result.CreatedAt)
	assert.Nil(t, result.PromoChannels)
}

func TestSyncRegister_UnknownStatusPassedThroughVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "SOMETHING_NEW"}`))
	}))
	defer server.Close()

	client := NewApexClient(apexTestConfig(server.URL, ""))

	result, err := client.SyncRegister(context.Background(), registerPayload())

	require.NoError(t, err)
	assert.Equal(t, "SOMETHING_NEW", result.Status)
}

func TestSyncRegister_MissingEndpointMakesNoNetworkCall(t *testing.T) {
	client := NewApexClient(apexTestConfig("", ""))
	transport := &countingTransport{}
	client.httpClient.Transport = transport

	result, err := client.SyncRegister(context.Background(), registerPayload())

	assert.Nil(t, result)
	assert.Equal(t, apexerr.KindConfig, apexerr.KindOf(err))
	assert.Equal(t, 0, transport.calls, "no request may leave the process on a config error")
}

func TestSyncUpdate_MissingEndpointMakesNoNetworkCall(t *testing.T) {
	// Register URL configured, update URL blank: the check is per endpoint
	client := NewApexClient(apexTestConfig("http://apex.example", "   "))
	transport := &countingTransport{}
	client.httpClient.Transport = transport

	result, err := client.SyncUpdate(context.Background(), &models.ApexUpdatePayload{CardNumber: "700012345678"})

	assert.Nil(t, result)
	assert.Equal(t, apexerr.KindConfig, apexerr.KindOf(err))
	assert.Equal(t, 0, transport.calls)
}

func TestCallApex_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	cfg := apexTestConfig(server.URL, "")
	cfg.Apex.Timeout = 50 * time.Millisecond
	client := NewApexClient(cfg)

	start := time.Now()
	result, err := client.SyncRegister(context.Background(), registerPayload())

	assert.Nil(t, result)
	assert.Equal(t, apexerr.KindTimeout, apexerr.KindOf(err))
	assert.Less(t, time.Since(start), time.Second, "call must be cancelled at the deadline")
}

func TestCallApex_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from now on

	client := NewApexClient(apexTestConfig(server.URL, ""))

	result, err := client.SyncRegister(context.Background(), registerPayload())

	assert.Nil(t, result)
	assert.Equal(t, apexerr.KindNetwork, apexerr.KindOf(err))
}

func TestCallApex_HTTPErrorRecordsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewApexClient(apexTestConfig(server.URL, ""))

	result, err := client.SyncRegister(context.Background(), registerPayload())

	assert.Nil(t, result)
	var tagged *apexerr.Error
	require.ErrorAs(t, err, &tagged)
	assert.Equal(t, apexerr.KindHTTP, tagged.Kind)
	assert.Equal(t, http.StatusInternalServerError, tagged.HTTPStatus)
}

func TestCallApex_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`this is not json`))
	}))
	defer server.Close()

	client := NewApexClient(apexTestConfig(server.URL, ""))

	result, err := client.SyncRegister(context.Background(), registerPayload())

	assert.Nil(t, result)
	assert.Equal(t, apexerr.KindInvalidResponse, apexerr.KindOf(err))
}

func TestCallApex_MissingStatusField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"createdAt": "2025-01-01T10:00:00Z"}`))
	}))
	defer server.Close()

	client := NewApexClient(apexTestConfig(server.URL, ""))

	result, err := client.SyncRegister(context.Background(), registerPayload())

	assert.Nil(t, result)
	assert.Equal(t, apexerr.KindInvalidResponse, apexerr.KindOf(err))
}
