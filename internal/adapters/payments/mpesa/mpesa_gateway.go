package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/dukapoint/pos_backend/internal/core/domain"
	portssvc "github.com/dukapoint/pos_backend/internal/core/ports/services"
	"github.com/dukapoint/pos_backend/internal/middleware"
	"github.com/dukapoint/pos_backend/internal/platform/config"
	"github.com/shopspring/decimal"
)

// Gateway talks to the Safaricom Daraja API. It implements the
// PaymentGatewaySvc port with an STK push per charge.
type Gateway struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	shortCode      string
	passkey        string
	callbackURL    string
	httpClient     *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

var _ portssvc.PaymentGatewaySvc = (*Gateway)(nil)

// NewGateway creates a Daraja-backed payment gateway from configuration.
func NewGateway(cfg *config.Config) *Gateway {
	return &Gateway{
		baseURL:        cfg.MpesaBaseURL,
		consumerKey:    cfg.MpesaConsumerKey,
		consumerSecret: cfg.MpesaConsumerSecret,
		shortCode:      cfg.MpesaShortCode,
		passkey:        cfg.MpesaPasskey,
		callbackURL:    cfg.MpesaCallbackURL,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// getAccessToken returns a cached OAuth token, fetching a fresh one when the
// cached token is within a minute of expiry.
func (g *Gateway) getAccessToken(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.accessToken != "" && time.Now().Before(g.tokenExpiry.Add(-time.Minute)) {
		return g.accessToken, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/oauth/v1/generate?grant_type=client_credentials", nil)
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.SetBasicAuth(g.consumerKey, g.consumerSecret)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch gateway token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gateway token request returned status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	g.accessToken = tr.AccessToken
	// Daraja tokens last 3599 seconds; keep a conservative hour.
	g.tokenExpiry = time.Now().Add(time.Hour)
	return g.accessToken, nil
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            string `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	ErrorMessage        string `json:"errorMessage"`
}

// InitiateMobilePayment sends an STK push for the amount and reports the
// checkout request ID as the tender reference.
func (g *Gateway) InitiateMobilePayment(ctx context.Context, phone string, amount decimal.Decimal) (*domain.PaymentResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	token, err := g.getAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Format("20060102150405")
	password := base64.StdEncoding.EncodeToString([]byte(g.shortCode + g.passkey + timestamp))

	// Daraja only takes whole shillings.
	payload := stkPushRequest{
		BusinessShortCode: g.shortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            amount.Round(0).String(),
		PartyA:            phone,
		PartyB:            g.shortCode,
		PhoneNumber:       phone,
		CallBackURL:       g.callbackURL,
		AccountReference:  "POS",
		TransactionDesc:   "POS sale",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal STK push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/mpesa/stkpush/v1/processrequest", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build STK push request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send STK push: %w", err)
	}
	defer resp.Body.Close()

	var sr stkPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("failed to decode STK push response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || sr.ResponseCode != "0" {
		logger.Warn("STK push rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("response_code", sr.ResponseCode),
			slog.String("description", sr.ResponseDescription),
			slog.String("error_message", sr.ErrorMessage),
		)
		return nil, fmt.Errorf("gateway rejected STK push: %s", sr.ResponseDescription)
	}

	logger.Info("STK push accepted", slog.String("checkout_request_id", sr.CheckoutRequestID))
	return &domain.PaymentResult{
		Success:   true,
		Reference: sr.CheckoutRequestID,
	}, nil
}
