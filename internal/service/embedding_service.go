package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"unicourse_backend/internal/config"
	"unicourse_backend/internal/model"
	"unicourse_backend/internal/util"
	"unicourse_backend/pkg/logger"
	"unicourse_backend/pkg/monitoring"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Embedder 向量化接口，供编排服务与回填任务共用
type Embedder interface {
	Embed(ctx context.Context, text string) (model.Vector, error)
}

// EmbeddingService 封装外部向量模型服务。
// 内置一个全局令牌桶，推荐流水线与回填任务共享同一配额。
type EmbeddingService struct {
	mu      sync.RWMutex
	cfg     config.EmbeddingConfig
	client  *http.Client
	limiter *rate.Limiter
}

func NewEmbeddingService(cfg config.EmbeddingConfig) *EmbeddingService {
	return &EmbeddingService{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(
			rate.Limit(float64(cfg.RequestsPerMinute)/60.0),
			cfg.BatchSize,
		),
	}
}

// UpdateConfig 配置热加载入口，支持运行时轮换密钥或切换模型
func (s *EmbeddingService) UpdateConfig(cfg config.EmbeddingConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.limiter.SetLimit(rate.Limit(float64(cfg.RequestsPerMinute) / 60.0))
	logger.Log.Info("Embedding provider config reloaded",
		zap.String("model", cfg.Model),
		zap.Int("dimensions", cfg.Dimensions))
}

type embeddingRequest struct {
	Model      string `json:"model"`
	Input      string `json:"input"`
	Dimensions int    `json:"dimensions"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// attemptResult 单次调用的结果，向量为空时由 status/message 描述失败
type attemptResult struct {
	vector      model.Vector
	status      int
	message     string
	rateLimited bool
	retryable   bool
}

// Embed 文本向量化。429按长退避重试，瞬时错误按短退避重试，
// 非法输入立即失败；重试耗尽返回 ProviderError
func (s *EmbeddingService) Embed(ctx context.Context, text string) (model.Vector, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text must not be empty", util.ErrInvalidInput)
	}

	s.mu.RLock()
	cfg := s.cfg
	s.mu.RUnlock()

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var last attemptResult
	rateLimited := false

	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		res := s.doRequest(ctx, cfg, text)

		if res.vector != nil {
			monitoring.ProviderRequestCounter.WithLabelValues("success").Inc()
			return res.vector, nil
		}

		if res.status == http.StatusTooManyRequests {
			monitoring.ProviderRequestCounter.WithLabelValues("rate_limited").Inc()
			rateLimited = true
		} else if res.retryable {
			monitoring.ProviderRequestCounter.WithLabelValues("transient_error").Inc()
		} else {
			monitoring.ProviderRequestCounter.WithLabelValues("client_error").Inc()
		}

		if !res.retryable {
			if res.status == http.StatusBadRequest {
				return nil, fmt.Errorf("%w: provider rejected request (status %d): %s",
					util.ErrInvalidInput, res.status, res.message)
			}
			return nil, &util.ProviderError{
				StatusCode:  res.status,
				Message:     res.message,
				RateLimited: false,
				Attempts:    attempt,
			}
		}

		last = res

		// 最后一次失败同样退避，保持与限流窗口对齐
		backoff := cfg.TransientBackoff
		if res.rateLimited {
			backoff = cfg.RateLimitBackoff
		}
		delay := backoff * (1 << attempt)

		logger.Log.Warn("Embedding request failed, backing off",
			zap.Int("attempt", attempt),
			zap.Int("status", res.status),
			zap.Duration("backoff", delay))
		if attempt < cfg.MaxRetries {
			monitoring.ProviderRetryCounter.Inc()
		}

		if err := sleepCtx(ctx, delay); err != nil {
			return nil, err
		}
	}

	return nil, &util.ProviderError{
		StatusCode:  last.status,
		Message:     last.message,
		RateLimited: rateLimited,
		Attempts:    cfg.MaxRetries,
	}
}

func (s *EmbeddingService) doRequest(ctx context.Context, cfg config.EmbeddingConfig, text string) attemptResult {
	body, err := json.Marshal(embeddingRequest{
		Model:      cfg.Model,
		Input:      text,
		Dimensions: cfg.Dimensions,
	})
	if err != nil {
		return attemptResult{message: err.Error(), retryable: false}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+"/embeddings", bytes.NewBuffer(body))
	if err != nil {
		return attemptResult{message: err.Error(), retryable: false}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		// 网络层错误，按瞬时错误重试
		return attemptResult{message: err.Error(), retryable: true}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := strings.TrimSpace(string(raw))
		var parsed embeddingResponse
		if json.Unmarshal(raw, &parsed) == nil && parsed.Error != nil {
			message = parsed.Error.Message
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			return attemptResult{status: resp.StatusCode, message: message, rateLimited: true, retryable: true}
		case resp.StatusCode >= 500:
			return attemptResult{status: resp.StatusCode, message: message, retryable: true}
		default:
			// 4xx（认证、非法输入等）重试无意义
			return attemptResult{status: resp.StatusCode, message: message, retryable: false}
		}
	}

	var parsed embeddingResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return attemptResult{status: resp.StatusCode, message: "malformed provider response: " + err.Error(), retryable: true}
	}
	if len(parsed.Data) == 0 {
		return attemptResult{status: resp.StatusCode, message: "provider returned no embedding data", retryable: true}
	}

	vec := parsed.Data[0].Embedding
	if len(vec) != cfg.Dimensions {
		return attemptResult{
			status:    resp.StatusCode,
			message:   fmt.Sprintf("unexpected embedding dimensionality %d, want %d", len(vec), cfg.Dimensions),
			retryable: true,
		}
	}

	return attemptResult{vector: model.Vector(vec), status: resp.StatusCode}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
