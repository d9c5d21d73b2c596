package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/unistep/loyalty-backend/internal/pkg/models"
)

const defaultSMSTimeout = 10 * time.Second

// GoSMSClient sends text messages through the GoSMS HTTP API
type GoSMSClient struct {
	cfg        *models.Config
	httpClient *http.Client
}

// NewGoSMSClient creates a new GoSMS gateway
func NewGoSMSClient(cfg *models.Config) *GoSMSClient {
	timeout := cfg.SMS.Timeout
	if timeout <= 0 {
		timeout = defaultSMSTimeout
	}
	return &GoSMSClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type goSMSRequest struct {
	APIKey string `json:"api_key"`
	To     string `json:"to"`
	From   string `json:"from"`
	Text   string `json:"text"`
}

type goSMSResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendSMS delivers one text message. The provider is a black box: any
// non-success outcome collapses into an error.
func (g *GoSMSClient) SendSMS(ctx context.Context, phoneNumber, message string) error {
	body, err := json.Marshal(goSMSRequest{
		APIKey: g.cfg.SMS.APIKey,
		To:     phoneNumber,
		From:   g.cfg.SMS.Sender,
		Text:   message,
	})
	if err != nil {
		return fmt.Errorf("failed to encode sms request: %w", err)
	}

	endpoint := g.cfg.SMS.BaseURL + "/api/sendsms"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach sms provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sms provider returned status %d", resp.StatusCode)
	}

	var result goSMSResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode sms provider response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("sms provider rejected message: %s", result.Message)
	}

	return nil
}
