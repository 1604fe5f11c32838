package estimation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"go.uber.org/zap"
)

const predictPath = "/api/predict"

// Client calls the external price prediction service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

type predictResponse struct {
	PredictedPrice int `json:"predictedPrice"`
}

func (c *Client) Predict(ctx context.Context, features domain.EstimateFeatures) (int, error) {
	body, err := json.Marshal(features)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to encode features: %v", domain.ErrEstimationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+predictPath, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrEstimationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("prediction request failed", zap.Error(err))
		return 0, fmt.Errorf("%w: %v", domain.ErrEstimationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("prediction service returned non-success status",
			zap.Int("status", resp.StatusCode))
		return 0, fmt.Errorf("%w: unexpected status %d", domain.ErrEstimationFailed, resp.StatusCode)
	}

	var parsed predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("%w: failed to decode response: %v", domain.ErrEstimationFailed, err)
	}
	return parsed.PredictedPrice, nil
}
