package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"Church_Community/internal/model"

	"github.com/redis/go-redis/v9"
)

const (
	ChurchDirectoryKey = "churches:directory" // 会员端教会目录整表缓存
	ChurchDirectoryTTL = time.Minute
)

// ChurchCacheRepository 教会目录的 read-through 缓存。
// 目录读多写少，整表 JSON + 短 TTL 足够；写路径删键即可。
type ChurchCacheRepository struct{}

// Get 第二个返回值表示是否命中
func (r *ChurchCacheRepository) Get(ctx context.Context) ([]model.Church, bool, error) {
	raw, err := Client.Get(ctx, ChurchDirectoryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var list []model.Church
	if err := json.Unmarshal(raw, &list); err != nil {
		// 缓存内容坏了按未命中处理，顺手删掉
		_ = Client.Del(ctx, ChurchDirectoryKey).Err()
		return nil, false, nil
	}
	return list, true, nil
}

func (r *ChurchCacheRepository) Set(ctx context.Context, list []model.Church) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return Client.Set(ctx, ChurchDirectoryKey, raw, ChurchDirectoryTTL).Err()
}

// Invalidate 新建教会后删缓存（幂等）
func (r *ChurchCacheRepository) Invalidate(ctx context.Context) error {
	return Client.Del(ctx, ChurchDirectoryKey).Err()
}
