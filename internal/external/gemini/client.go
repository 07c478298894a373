// Package gemini содержит клиент для работы с Gemini API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Client представляет клиент Gemini API
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	httpClient  *http.Client
	logger      *zap.Logger
	delay       time.Duration
	lastRequest time.Time
	mu          sync.Mutex
	// Метрики
	requestCount    int64
	successCount    int64
	errorCount      int64
	lastRequestTime time.Time
}

// Config конфигурация для Gemini клиента
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
	Delay   time.Duration
}

// request структура запроса generateContent
type request struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

// content содержимое запроса или ответа
type content struct {
	Parts []part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

// part часть содержимого
type part struct {
	Text string `json:"text"`
}

// generationConfig параметры генерации
type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

// response структура ответа generateContent
type response struct {
	Candidates []candidate `json:"candidates"`
}

// candidate вариант ответа модели
type candidate struct {
	Content content `json:"content"`
}

// NewClient создает новый Gemini клиент
func NewClient(config Config, logger *zap.Logger) *Client {
	return &Client{
		baseURL: config.BaseURL,
		apiKey:  config.APIKey,
		model:   config.Model,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger:      logger,
		delay:       config.Delay,
		lastRequest: time.Time{},
	}
}

// Generate отправляет промпт в Gemini и возвращает текст ответа с rate limiting
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	c.enforceRateLimit()

	c.logger.Debug("Sending request to Gemini",
		zap.String("model", c.model),
		zap.Int("prompt_length", len(prompt)))

	result, err := c.sendRequest(ctx, prompt)
	if err != nil {
		c.incrementError()
		return "", fmt.Errorf("failed to send request to Gemini: %w", err)
	}

	c.incrementSuccess()
	c.logger.Debug("Received response from Gemini",
		zap.Int("response_length", len(result)))

	return result, nil
}

// enforceRateLimit применяет задержку между запросами
func (c *Client) enforceRateLimit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if !c.lastRequest.IsZero() {
		elapsed := now.Sub(c.lastRequest)
		if elapsed < c.delay {
			sleepDuration := c.delay - elapsed
			c.logger.Debug("Rate limiting: sleeping",
				zap.Duration("sleep_duration", sleepDuration),
				zap.Duration("delay", c.delay))
			time.Sleep(sleepDuration)
		}
	}

	c.lastRequest = time.Now()
	c.requestCount++
	c.lastRequestTime = now
}

// GetMetrics возвращает метрики Gemini клиента
func (c *Client) GetMetrics() map[string]interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	return map[string]interface{}{
		"total_requests":      c.requestCount,
		"successful_requests": c.successCount,
		"failed_requests":     c.errorCount,
		"last_request_time":   c.lastRequestTime,
		"delay_ms":            c.delay.Milliseconds(),
	}
}

// incrementSuccess увеличивает счетчик успешных запросов
func (c *Client) incrementSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.successCount++
}

// incrementError увеличивает счетчик неудачных запросов
func (c *Client) incrementError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCount++
}

// sendRequest отправляет запрос к Gemini API
func (c *Client) sendRequest(ctx context.Context, prompt string) (string, error) {
	reqBody := request{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warn("Failed to close response body", zap.Error(err))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Gemini API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result response
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in Gemini response")
	}

	text := result.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}

	return text, nil
}
