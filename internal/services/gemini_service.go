package services

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"photo-portfolio-backend/config"
	"photo-portfolio-backend/db/models"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

type GeminiService struct {
	client      *genai.Client
	cache       map[string]*CachedResponse
	cacheMutex  sync.RWMutex
	rateLimiter *rate.Limiter
}

type CachedResponse struct {
	Data      string
	ExpiresAt time.Time
}

type RetryConfig struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

func NewGeminiService(apiKey string) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	service := &GeminiService{
		client:      client,
		cache:       make(map[string]*CachedResponse),
		rateLimiter: rate.NewLimiter(rate.Every(time.Minute), 15), // 15 requests per minute
	}

	service.StartCacheCleanup()

	return service, nil
}

func (g *GeminiService) GenerateContentWithRetry(ctx context.Context, prompt string, config *RetryConfig) (string, error) {
	if config == nil {
		config = &RetryConfig{
			MaxRetries:    3,
			InitialDelay:  time.Second,
			MaxDelay:      time.Minute,
			BackoffFactor: 2.0,
		}
	}

	if cached := g.getFromCache(prompt); cached != "" {
		return cached, nil
	}

	if err := g.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit exceeded: %w", err)
	}

	var lastErr error
	delay := config.InitialDelay

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		result, err := g.generateContent(ctx, prompt)
		if err == nil {
			g.cacheResponse(prompt, result)
			return result, nil
		}

		lastErr = err

		if !g.isRetryableError(err) {
			break
		}

		delay = time.Duration(float64(delay) * config.BackoffFactor)
		if delay > config.MaxDelay {
			delay = config.MaxDelay
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", config.MaxRetries+1, lastErr)
}

func (g *GeminiService) generateContent(ctx context.Context, prompt string) (string, error) {
	parts := []*genai.Part{
		{Text: prompt},
	}
	contents := []*genai.Content{
		{Parts: parts},
	}

	startTime := time.Now()

	resp, err := g.client.Models.GenerateContent(ctx, "gemini-2.5-flash", contents, nil)
	if err != nil {
		config.Logger.Error("Gemini API request failed",
			zap.String("type", "text"),
			zap.Error(err),
			zap.Duration("duration", time.Since(startTime)),
		)
		return "", err
	}

	responseText := resp.Text()

	config.Logger.Info("Received response from Gemini 2.5 Flash",
		zap.String("type", "text"),
		zap.Duration("duration", time.Since(startTime)),
	)

	return responseText, nil
}

const altTextPrompt = `You are writing accessibility alt text for a photography portfolio.
Describe the photograph concisely for a screen reader user. Do not start with
"image of" or "photo of". Respond with a JSON object of the form
{"en": "<english alt text>", "ta": "<tamil alt text>"} and nothing else.`

// GenerateAltText produces bilingual alt text for an image. Responses are
// cached on the image content hash so re-running the endpoint is free.
func (g *GeminiService) GenerateAltText(ctx context.Context, imageBytes []byte, mimeType string) (models.LocalizedText, error) {
	cacheKey := g.generateImageCacheKey(imageBytes, altTextPrompt)
	if cached := g.getFromCacheByKey(cacheKey); cached != "" {
		return parseAltTextResponse(cached)
	}

	if err := g.rateLimiter.Wait(ctx); err != nil {
		return models.LocalizedText{}, fmt.Errorf("rate limit exceeded: %w", err)
	}

	config.Logger.Info("Generating alt text with Gemini 2.5 Flash",
		zap.String("mimeType", mimeType),
		zap.Int("fileSize", len(imageBytes)),
	)

	parts := []*genai.Part{
		{Text: altTextPrompt},
		{InlineData: &genai.Blob{
			MIMEType: mimeType,
			Data:     imageBytes,
		}},
	}

	contents := []*genai.Content{
		{Parts: parts},
	}

	resp, err := g.client.Models.GenerateContent(ctx, "gemini-2.5-flash", contents, nil)
	if err != nil {
		config.Logger.Error("Gemini API request failed",
			zap.String("type", "alt_text"),
			zap.String("mimeType", mimeType),
			zap.Error(err),
		)
		return models.LocalizedText{}, err
	}

	result := resp.Text()
	altText, err := parseAltTextResponse(result)
	if err != nil {
		return models.LocalizedText{}, err
	}

	g.cacheResponseByKey(cacheKey, result)

	return altText, nil
}

// parseAltTextResponse decodes the model's JSON reply, tolerating markdown
// code fences around the object.
func parseAltTextResponse(raw string) (models.LocalizedText, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var decoded map[string]string
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return models.LocalizedText{}, fmt.Errorf("unexpected alt text response format: %w", err)
	}

	if decoded["en"] == "" {
		return models.LocalizedText{}, fmt.Errorf("alt text response missing english value")
	}

	localized := map[models.LocaleCode]string{
		models.LocaleEnglish: decoded["en"],
	}
	if decoded["ta"] != "" {
		localized[models.LocaleTamil] = decoded["ta"]
	}

	return models.LocalizedText{Localized: localized}, nil
}

func (g *GeminiService) isRetryableError(err error) bool {
	errStr := err.Error()
	retryableErrors := []string{
		"rate limit",
		"quota exceeded",
		"temporary",
		"timeout",
		"connection",
		"503",
		"429",
		"internal error",
		"service unavailable",
	}

	for _, retryable := range retryableErrors {
		if strings.Contains(strings.ToLower(errStr), retryable) {
			return true
		}
	}
	return false
}

func (g *GeminiService) getFromCache(prompt string) string {
	key := g.generateCacheKey(prompt)
	return g.getFromCacheByKey(key)
}

func (g *GeminiService) getFromCacheByKey(key string) string {
	g.cacheMutex.RLock()
	defer g.cacheMutex.RUnlock()

	if cached, exists := g.cache[key]; exists {
		if time.Now().Before(cached.ExpiresAt) {
			return cached.Data
		}
	}
	return ""
}

func (g *GeminiService) cacheResponse(prompt, response string) {
	key := g.generateCacheKey(prompt)
	g.cacheResponseByKey(key, response)
}

func (g *GeminiService) cacheResponseByKey(key, response string) {
	g.cacheMutex.Lock()
	defer g.cacheMutex.Unlock()

	g.cache[key] = &CachedResponse{
		Data:      response,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func (g *GeminiService) generateCacheKey(prompt string) string {
	hash := md5.Sum([]byte(prompt))
	return hex.EncodeToString(hash[:])
}

func (g *GeminiService) generateImageCacheKey(imageBytes []byte, prompt string) string {
	fileHash := md5.Sum(imageBytes)
	promptHash := md5.Sum([]byte(prompt))
	combined := append(fileHash[:], promptHash[:]...)
	finalHash := md5.Sum(combined)
	return hex.EncodeToString(finalHash[:])
}

func (g *GeminiService) StartCacheCleanup() {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			g.cleanupExpiredCache()
		}
	}()
}

func (g *GeminiService) cleanupExpiredCache() {
	g.cacheMutex.Lock()
	defer g.cacheMutex.Unlock()

	now := time.Now()
	for key, cached := range g.cache {
		if now.After(cached.ExpiresAt) {
			delete(g.cache, key)
		}
	}
}
