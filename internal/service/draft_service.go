package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"unicourse_backend/internal/model"
	"unicourse_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

const (
	draftKeyPrefix = "draft:"
	draftTTL       = 30 * time.Minute
)

// DraftService 问卷两阶段之间的临时画像暂存。
// 一次 Claim 即读即删，不存在跨请求的共享可变状态
type DraftService struct {
	rdb *redis.Client
}

func NewDraftService(rdb *redis.Client) *DraftService {
	return &DraftService{rdb: rdb}
}

func (s *DraftService) Save(ctx context.Context, profile StudentProfile) (string, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return "", err
	}

	id := model.GenerateUUID()
	if err := s.rdb.Set(ctx, draftKeyPrefix+id, data, draftTTL).Err(); err != nil {
		return "", util.PersistenceError("save profile draft", err)
	}
	return id, nil
}

// Claim 领取草稿并立即删除，重复领取返回 ErrDraftNotFound
func (s *DraftService) Claim(ctx context.Context, id string) (*StudentProfile, error) {
	data, err := s.rdb.GetDel(ctx, draftKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, util.ErrDraftNotFound
		}
		return nil, util.PersistenceError("claim profile draft", err)
	}

	var profile StudentProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
