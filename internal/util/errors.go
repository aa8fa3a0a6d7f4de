package util

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput 调用方数据非法，不重试
	ErrInvalidInput = errors.New("invalid input")
	// ErrProviderUnavailable 向量服务重试耗尽
	ErrProviderUnavailable = errors.New("embedding provider unavailable")
	// ErrPersistence 存储读写失败，中断当前流水线
	ErrPersistence = errors.New("persistence error")
	// ErrNoCandidatesAvailable 无可排序课程，需先执行向量回填
	ErrNoCandidatesAvailable = errors.New("no courses have embeddings generated yet, run the embedding backfill first")
	// ErrDraftNotFound 问卷草稿不存在或已被领取
	ErrDraftNotFound = errors.New("profile draft not found or already claimed")

	ErrCourseNotFound   = errors.New("course not found")
	ErrResponseNotFound = errors.New("student response not found")
)

// ProviderError 向量服务的终态失败，保留最后一次响应的状态码与原始消息
type ProviderError struct {
	StatusCode  int
	Message     string
	RateLimited bool
	Attempts    int
}

func (e *ProviderError) Error() string {
	if e.RateLimited {
		return fmt.Sprintf("embedding provider rate limited after %d attempts (status %d): %s", e.Attempts, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("embedding provider failed after %d attempts (status %d): %s", e.Attempts, e.StatusCode, e.Message)
}

// Is 使 errors.Is(err, ErrProviderUnavailable) 成立
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderUnavailable
}

// PersistenceError 包装存储层错误，errors.Is(err, ErrPersistence) 成立
func PersistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)
}
