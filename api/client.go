package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Result is the normalized outcome of a publish call: the HTTP status, the
// decoded body and the response headers with lower-cased names. An HTTP
// error status is still a Result, not an error; only transport faults
// surface as errors.
type Result struct {
	Status  int
	Payload Payload
	Headers map[string]string
}

// Client talks to one publishing service. Extra headers are applied after
// the defaults, so a caller-supplied Content-Type or x-request-id wins.
type Client struct {
	baseURL string
	timeout time.Duration
	headers map[string]string
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, headers map[string]string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: timeout,
		headers: headers,
		logger:  logger,
	}
}

// Post issues exactly one POST to the given service path. There is no retry
// here: if the caller wants another attempt it runs the command again.
func (c *Client) Post(path string, body []byte, contentType string) (*Result, error) {
	url := c.baseURL + path

	request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.New().String()
	request.Header.Set("Content-Type", contentType)
	request.Header.Set("Accept", "application/json")
	request.Header.Set("x-request-id", requestID)

	for key, value := range c.headers {
		request.Header.Set(key, value)
	}

	c.logger.Debug("Sending request to the publisher.",
		zap.String("url", url),
		zap.String("requestId", requestID),
		zap.Int("bodySize", len(body)),
	)

	started := time.Now()

	httpClient := &http.Client{Timeout: c.timeout}
	response, err := httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}

	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	headers := make(map[string]string, len(response.Header))
	for key, values := range response.Header {
		if len(values) > 0 {
			headers[strings.ToLower(key)] = values[0]
		}
	}

	c.logger.Debug("Received response from the publisher.",
		zap.Int("status", response.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)

	return &Result{
		Status:  response.StatusCode,
		Payload: DecodePayload(responseBody),
		Headers: headers,
	}, nil
}
