package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ResetCodePrefix    = "password:reset:code"
	ResetAttemptPrefix = "password:reset:attempts"
	ResetCodeTTL       = 5 * time.Minute
)

var (
	ErrCodeNotFound   = errors.New("reset code not found")
	ErrCodeSaveFail   = errors.New("reset code save failed")
	ErrCodeDeleteFail = errors.New("reset code delete failed")
)

// ResetCodeRepository 密码重置验证码，TTL 到期自动失效
type ResetCodeRepository struct{}

// Save 落一个新码，失败计数同时清零
func (r *ResetCodeRepository) Save(ctx context.Context, email, code string) error {
	key := fmt.Sprintf("%s:%s", ResetCodePrefix, email)
	if err := Client.Set(ctx, key, code, ResetCodeTTL).Err(); err != nil {
		return ErrCodeSaveFail
	}
	_ = Client.Del(ctx, fmt.Sprintf("%s:%s", ResetAttemptPrefix, email)).Err()
	return nil
}

func (r *ResetCodeRepository) Get(ctx context.Context, email string) (string, error) {
	key := fmt.Sprintf("%s:%s", ResetCodePrefix, email)
	code, err := Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCodeNotFound
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

// Delete 删码并清零失败计数（幂等）
func (r *ResetCodeRepository) Delete(ctx context.Context, email string) error {
	codeKey := fmt.Sprintf("%s:%s", ResetCodePrefix, email)
	attemptKey := fmt.Sprintf("%s:%s", ResetAttemptPrefix, email)
	if err := Client.Del(ctx, codeKey, attemptKey).Err(); err != nil {
		return ErrCodeDeleteFail
	}
	return nil
}

// FailedAttempts 累加一次校验失败并返回累计次数；计数随验证码同寿命
func (r *ResetCodeRepository) FailedAttempts(ctx context.Context, email string) (int64, error) {
	key := fmt.Sprintf("%s:%s", ResetAttemptPrefix, email)
	n, err := Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		_ = Client.Expire(ctx, key, ResetCodeTTL).Err()
	}
	return n, nil
}
