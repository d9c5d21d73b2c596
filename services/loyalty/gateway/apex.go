package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/unistep/loyalty-backend/internal/pkg/apexerr"
	"github.com/unistep/loyalty-backend/internal/pkg/models"
)

// defaultApexTimeout bounds the full round trip to Apex. ERP latency gates
// user-facing registration latency, so the deadline is enforced here
// regardless of any client-level default.
const defaultApexTimeout = 5 * time.Second

// ApexClient is the outbound HTTP client for the Apex ERP. It holds no
// per-call state beyond configuration, so one instance is safely shared
// across concurrent request handlers.
type ApexClient struct {
	cfg        *models.Config
	httpClient *http.Client
}

// NewApexClient creates a new Apex gateway. The http.Client carries no
// timeout of its own; the per-call context enforces the deadline and
// cancels the in-flight request when it elapses.
func NewApexClient(cfg *models.Config) *ApexClient {
	return &ApexClient{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

// SyncRegister forwards a registration payload to Apex
func (g *ApexClient) SyncRegister(ctx context.Context, payload *models.ApexRegisterPayload) (*models.ApexResult, error) {
	return g.callApex(ctx, g.cfg.Apex.RegisterURL, payload)
}

// SyncUpdate forwards an update payload to Apex
func (g *ApexClient) SyncUpdate(ctx context.Context, payload *models.ApexUpdatePayload) (*models.ApexResult, error) {
	return g.callApex(ctx, g.cfg.Apex.UpdateURL, payload)
}

// callApex runs the shared call algorithm. The endpoint is read from
// configuration on every call so a misconfigured URL surfaces immediately,
// and every failure leaves tagged with exactly one apexerr kind.
func (g *ApexClient) callApex(ctx context.Context, endpoint string, payload interface{}) (*models.ApexResult, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, apexerr.New(apexerr.KindConfig, errors.New("apex endpoint not configured"))
	}

	timeout := g.cfg.Apex.Timeout
	if timeout <= 0 {
		timeout = defaultApexTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apexerr.Wrap(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, apexerr.Wrap(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apexerr.New(apexerr.KindTimeout, err)
		}
		return nil, apexerr.New(apexerr.KindNetwork, err)
	}
	defer resp.Body.Close()

	// Business statuses always arrive with HTTP 200; a non-2xx body is
	// not trusted to contain one.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apexerr.NewHTTP(resp.StatusCode)
	}

	var result models.ApexResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apexerr.New(apexerr.KindTimeout, err)
		}
		return nil, apexerr.New(apexerr.KindInvalidResponse, err)
	}
	if result.Status == "" {
		return nil, apexerr.New(apexerr.KindInvalidResponse, errors.New("response missing string status field"))
	}

	return &result, nil
}
