package pkg

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2-SHA256，编码格式与 passlib 的 pbkdf2_sha256 兼容：
// $pbkdf2-sha256$<迭代次数>$<盐 ab64>$<摘要 ab64>
// 选 PBKDF2 而不是 bcrypt：没有 72 字节截断问题，超长密码不会被静默丢弃。
const (
	hashScheme      = "pbkdf2-sha256"
	hashIterations  = 29000
	hashSaltLength  = 16
	hashDigestBytes = 32
)

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", Invalid("Password is required")
	}

	salt := make([]byte, hashSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := pbkdf2.Key([]byte(password), salt, hashIterations, hashDigestBytes, sha256.New)
	return fmt.Sprintf("$%s$%d$%s$%s", hashScheme, hashIterations, ab64Encode(salt), ab64Encode(key)), nil
}

// VerifyPassword 重新推导后做恒定时间比较；格式不合法一律返回 false
func VerifyPassword(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != "" || parts[1] != hashScheme {
		return false
	}

	iterations, err := strconv.Atoi(parts[2])
	if err != nil || iterations <= 0 {
		return false
	}
	salt, err := ab64Decode(parts[3])
	if err != nil {
		return false
	}
	digest, err := ab64Decode(parts[4])
	if err != nil || len(digest) == 0 {
		return false
	}

	derived := pbkdf2.Key([]byte(password), salt, iterations, len(digest), sha256.New)
	return subtle.ConstantTimeCompare(derived, digest) == 1
}

// passlib 的 adapted base64：标准字母表的 "+" 换成 "."，去掉 padding
func ab64Encode(b []byte) string {
	return strings.ReplaceAll(base64.RawStdEncoding.EncodeToString(b), "+", ".")
}

func ab64Decode(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.ReplaceAll(s, ".", "+"))
}
