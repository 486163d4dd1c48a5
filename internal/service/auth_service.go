package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"Church_Community/internal/model"
	"Church_Community/internal/pkg"
	"Church_Community/internal/repository/mysql"
	"Church_Community/internal/repository/redis"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 同一个验证码最多允许的失败次数，用完即作废，
// 防止在 TTL 内穷举 6 位数字
const resetAttemptLimit = 5

// resetCodeStore 重置验证码的存取；默认实现是 redis 仓库
type resetCodeStore interface {
	Save(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
	FailedAttempts(ctx context.Context, email string) (int64, error)
}

type AuthService struct {
	users    *mysql.UserRepository
	tokens   *pkg.TokenService
	codes    resetCodeStore
	smtp     pkg.SMTPConfig
	sendMail func(cfg pkg.SMTPConfig, to, subject, htmlBody string) error
	log      *zap.Logger
}

func NewAuthService(db *gorm.DB, tokens *pkg.TokenService, smtp pkg.SMTPConfig, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{
		users:    &mysql.UserRepository{DB: db},
		tokens:   tokens,
		codes:    &redis.ResetCodeRepository{},
		smtp:     smtp,
		sendMail: pkg.SendEmail,
		log:      log,
	}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Age      *int
	Gender   *string
	Phone    *string
	Address  *string
}

// Signup 注册用户并签发令牌；isAdmin 由路由决定（/auth/signup 强制 true）
func (s *AuthService) Signup(in SignupInput, isAdmin bool) (*model.User, string, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if name == "" || email == "" || in.Password == "" {
		return nil, "", pkg.Invalid("Name, email and password are required")
	}

	// 先查一遍给出友好提示；并发窗口由唯一索引兜底
	if _, err := s.users.FindByEmail(email); err == nil {
		return nil, "", pkg.Conflict("Email already registered")
	}

	hash, err := pkg.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: hash,
		IsAdmin:  isAdmin,
		Age:      in.Age,
		Gender:   in.Gender,
		Phone:    in.Phone,
		Address:  in.Address,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", pkg.Conflict("Email already registered")
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login 查不到用户和密码不对返回完全一样的 400，不泄露账号是否存在
func (s *AuthService) Login(email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, "", pkg.Invalid("Invalid credentials")
	}
	if !pkg.VerifyPassword(password, user.Password) {
		return nil, "", pkg.Invalid("Invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// RequestPasswordReset 无论账号是否存在都返回成功，防止撞库探测。
// 账号存在这一边的任何内部失败（生成/落码/发信）只记日志，照样按成功
// 返回——状态码一旦随账号存在与否变化，接口就成了探针。
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return pkg.Invalid("Email is required")
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil
	}

	code, err := pkg.RandDigits(6)
	if err != nil {
		s.log.Warn("generate reset code failed", zap.Error(err))
		return nil
	}
	if err := s.codes.Save(ctx, user.Email, code); err != nil {
		s.log.Warn("save reset code failed", zap.String("email", user.Email), zap.Error(err))
		return nil
	}

	if err := s.sendMail(s.smtp, user.Email, "Password reset", pkg.ResetCodeHTML(code, redis.ResetCodeTTL)); err != nil {
		s.log.Warn("send reset email failed", zap.String("email", user.Email), zap.Error(err))
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = normalizeEmail(email)
	if email == "" || code == "" || newPassword == "" {
		return pkg.Invalid("Email, code and new password are required")
	}

	stored, err := s.codes.Get(ctx, email)
	if err != nil {
		return pkg.Invalid("Invalid or expired reset code")
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		// 连续猜错到上限后作废验证码，TTL 内不可穷举
		if n, aerr := s.codes.FailedAttempts(ctx, email); aerr == nil && n >= resetAttemptLimit {
			_ = s.codes.Delete(ctx, email)
		}
		return pkg.Invalid("Invalid or expired reset code")
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return pkg.Invalid("Invalid or expired reset code")
	}

	hash, err := pkg.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(user, hash); err != nil {
		return err
	}

	// 已发出的令牌不吊销，到期自然失效；这里只清验证码
	_ = s.codes.Delete(ctx, email)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
