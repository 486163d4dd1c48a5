package pkg

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid 所有校验失败（签名错、格式错、已过期、缺 sub）都折叠成
// 同一个错误，不向调用方泄露具体是哪一步失败。
var ErrTokenInvalid = errors.New("token invalid")

// TokenService 签发/校验身份令牌。密钥、算法、有效期在进程启动时从配置
// 注入一次，校验逻辑不读任何全局状态。
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewTokenService(secret, algorithm string, expireMinutes int) (*TokenService, error) {
	switch algorithm {
	case "HS256", "HS384", "HS512":
	default:
		return nil, fmt.Errorf("unsupported jwt algorithm %q", algorithm)
	}
	if secret == "" {
		return nil, errors.New("jwt secret required")
	}

	return &TokenService{
		secret: []byte(secret),
		method: jwt.GetSigningMethod(algorithm),
		ttl:    time.Duration(expireMinutes) * time.Minute,
	}, nil
}

// Issue 签发令牌：sub = 用户 ID，exp = 签发时刻 + TTL
func (s *TokenService) Issue(userID uint64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(s.method, jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	return token.SignedString(s.secret)
}

// Verify 解析令牌并返回 sub 里的用户 ID
func (s *TokenService) Verify(tokenStr string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, ErrTokenInvalid
	}
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenInvalid
	}
	return userID, nil
}
