package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Client handles calls to the price API and the chain RPC endpoints
type Client struct {
	httpClient *http.Client
	priceAPI   string
	nearRPC    string
	baseRPC    string
	arbRPC     string
}

// Config overrides the endpoints a Client talks to. Zero-value fields fall
// back to the public defaults.
type Config struct {
	PriceAPI string
	NearRPC  string
	BaseRPC  string
	ArbRPC   string
}

// NewClient creates a client against the public endpoints
func NewClient() *Client {
	return NewClientWithConfig(Config{})
}

// NewClientWithConfig creates a client with custom endpoints
func NewClientWithConfig(cfg Config) *Client {
	if cfg.PriceAPI == "" {
		cfg.PriceAPI = DefaultPriceAPI
	}
	if cfg.NearRPC == "" {
		cfg.NearRPC = DefaultNearRPC
	}
	if cfg.BaseRPC == "" {
		cfg.BaseRPC = DefaultBaseRPC
	}
	if cfg.ArbRPC == "" {
		cfg.ArbRPC = DefaultArbRPC
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		priceAPI: cfg.PriceAPI,
		nearRPC:  cfg.NearRPC,
		baseRPC:  cfg.BaseRPC,
		arbRPC:   cfg.ArbRPC,
	}
}

// GetPrice fetches the current spot price of a chain's native token in the
// given currency. The currency code is forwarded to the price API verbatim;
// an unknown code surfaces as a missing field in the response.
func (c *Client) GetPrice(chain Chain, currency string) (*PriceData, error) {
	token := chain.TokenID()
	url := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=%s", c.priceAPI, token, currency)

	zap.L().Debug("fetching token price",
		zap.String("token", token),
		zap.String("currency", currency))

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var result map[string]map[string]float64
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if priceData, exists := result[token]; exists {
		if price, exists := priceData[currency]; exists {
			return &PriceData{
				Token:    token,
				Currency: currency,
				Price:    decimal.NewFromFloat(price),
			}, nil
		}
	}

	return nil, fmt.Errorf("price not found for %s in %s", token, currency)
}

// postJSON sends a POST request with JSON payload
func (c *Client) postJSON(url string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	resp, err := c.httpClient.Post(url, "application/json", strings.NewReader(string(jsonData)))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
