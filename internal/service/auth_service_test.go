package service

import (
	"context"
	"errors"
	"testing"

	"Church_Community/internal/model"
	"Church_Community/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	tokens, err := pkg.NewTokenService("test-signing-key", "HS256", 60)
	require.NoError(t, err)
	return NewAuthService(newTestDB(t), tokens, pkg.SMTPConfig{}, nil)
}

func TestAuthServiceSignup(t *testing.T) {
	svc := newAuthService(t)

	t.Run("admin signup issues resolvable token", func(t *testing.T) {
		user, token, err := svc.Signup(SignupInput{
			Name: "Alice", Email: "  Alice@Example.COM ", Password: "pw123456",
		}, true)
		require.NoError(t, err)
		assert.True(t, user.IsAdmin)
		// 邮箱写入前归一化
		assert.Equal(t, "alice@example.com", user.Email)
		// 密码只存哈希
		assert.NotEqual(t, "pw123456", user.Password)
		assert.True(t, pkg.VerifyPassword("pw123456", user.Password))

		userID, err := svc.tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, userID)
	})

	t.Run("member signup is non admin", func(t *testing.T) {
		user, _, err := svc.Signup(SignupInput{
			Name: "Bob", Email: "bob@example.com", Password: "pw123456",
		}, false)
		require.NoError(t, err)
		assert.False(t, user.IsAdmin)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, _, err := svc.Signup(SignupInput{
			Name: "Alice2", Email: "ALICE@example.com", Password: "pw123456",
		}, true)
		var ae *pkg.APIError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, 409, ae.Status)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		_, _, err := svc.Signup(SignupInput{Name: "X", Email: "x@example.com"}, false)
		var ae *pkg.APIError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, 400, ae.Status)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Signup(SignupInput{
		Name: "Alice", Email: "alice@example.com", Password: "pw123456",
	}, true)
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := svc.Login(" ALICE@example.com ", "pw123456")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.NotEmpty(t, token)
	})

	t.Run("unknown email and wrong password fail identically", func(t *testing.T) {
		_, _, errUnknown := svc.Login("nobody@example.com", "pw123456")
		_, _, errWrongPw := svc.Login("alice@example.com", "wrong")

		var aeUnknown, aeWrongPw *pkg.APIError
		require.ErrorAs(t, errUnknown, &aeUnknown)
		require.ErrorAs(t, errWrongPw, &aeWrongPw)

		// 账号不存在和密码错误不可区分
		assert.Equal(t, 400, aeUnknown.Status)
		assert.Equal(t, aeUnknown.Status, aeWrongPw.Status)
		assert.Equal(t, aeUnknown.Msg, aeWrongPw.Msg)
	})
}

// memCodeStore 内存版验证码存储，替代测试里起不了的 redis
type memCodeStore struct {
	codes    map[string]string
	failures map[string]int64
	saveErr  error
}

func newMemCodeStore() *memCodeStore {
	return &memCodeStore{codes: map[string]string{}, failures: map[string]int64{}}
}

func (m *memCodeStore) Save(_ context.Context, email, code string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.codes[email] = code
	delete(m.failures, email)
	return nil
}

func (m *memCodeStore) Get(_ context.Context, email string) (string, error) {
	code, ok := m.codes[email]
	if !ok {
		return "", errors.New("reset code not found")
	}
	return code, nil
}

func (m *memCodeStore) Delete(_ context.Context, email string) error {
	delete(m.codes, email)
	delete(m.failures, email)
	return nil
}

func (m *memCodeStore) FailedAttempts(_ context.Context, email string) (int64, error) {
	m.failures[email]++
	return m.failures[email], nil
}

func TestAuthServiceRequestPasswordReset(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*AuthService, *memCodeStore) {
		svc := newAuthService(t)
		store := newMemCodeStore()
		svc.codes = store

		_, _, err := svc.Signup(SignupInput{
			Name: "Carol", Email: "carol@example.com", Password: "pw123456",
		}, false)
		require.NoError(t, err)
		return svc, store
	}

	t.Run("known and unknown accounts respond identically when mail fails", func(t *testing.T) {
		svc, store := setup(t)
		sent := 0
		svc.sendMail = func(_ pkg.SMTPConfig, _, _, _ string) error {
			sent++
			return errors.New("dial tcp: connection refused")
		}

		// 账号存在、发信失败
		errKnown := svc.RequestPasswordReset(ctx, "carol@example.com")
		// 账号不存在
		errUnknown := svc.RequestPasswordReset(ctx, "nobody@example.com")

		// 两边结果必须不可区分，否则接口就是存在性探针
		assert.NoError(t, errKnown)
		assert.NoError(t, errUnknown)
		assert.Equal(t, 1, sent)
		// 码已落库，用户事后仍可凭它重置
		assert.NotEmpty(t, store.codes["carol@example.com"])
	})

	t.Run("code save failure also responds like success", func(t *testing.T) {
		svc, store := setup(t)
		store.saveErr = errors.New("redis down")
		svc.sendMail = func(_ pkg.SMTPConfig, _, _, _ string) error { return nil }

		assert.NoError(t, svc.RequestPasswordReset(ctx, "carol@example.com"))
	})

	t.Run("blank email still rejected", func(t *testing.T) {
		svc, _ := setup(t)
		err := svc.RequestPasswordReset(ctx, "   ")
		var ae *pkg.APIError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, 400, ae.Status)
	})
}

func TestAuthServiceResetPassword(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*AuthService, *memCodeStore) {
		svc := newAuthService(t)
		store := newMemCodeStore()
		svc.codes = store

		_, _, err := svc.Signup(SignupInput{
			Name: "Dave", Email: "dave@example.com", Password: "old-pass",
		}, false)
		require.NoError(t, err)
		store.codes["dave@example.com"] = "123456"
		return svc, store
	}

	t.Run("correct code resets the password and burns the code", func(t *testing.T) {
		svc, store := setup(t)

		require.NoError(t, svc.ResetPassword(ctx, "dave@example.com", "123456", "new-pass"))

		_, _, err := svc.Login("dave@example.com", "new-pass")
		assert.NoError(t, err)
		_, _, err = svc.Login("dave@example.com", "old-pass")
		assert.Error(t, err)
		// 码一次性，用完即删
		assert.Empty(t, store.codes["dave@example.com"])
	})

	t.Run("wrong code rejected", func(t *testing.T) {
		svc, _ := setup(t)
		err := svc.ResetPassword(ctx, "dave@example.com", "000000", "new-pass")
		var ae *pkg.APIError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, 400, ae.Status)
	})

	t.Run("code is invalidated after repeated wrong guesses", func(t *testing.T) {
		svc, store := setup(t)

		for i := 0; i < resetAttemptLimit; i++ {
			err := svc.ResetPassword(ctx, "dave@example.com", "000000", "new-pass")
			require.Error(t, err)
		}
		// 猜错到上限后码已作废，正确的码也救不回来
		assert.Empty(t, store.codes["dave@example.com"])
		err := svc.ResetPassword(ctx, "dave@example.com", "123456", "new-pass")
		var ae *pkg.APIError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, 400, ae.Status)

		// 旧密码仍然可用
		_, _, loginErr := svc.Login("dave@example.com", "old-pass")
		assert.NoError(t, loginErr)
	})
}

func TestAuthServiceLoginStoresNoPlaintext(t *testing.T) {
	svc := newAuthService(t)

	user, _, err := svc.Signup(SignupInput{
		Name: "Carol", Email: "carol@example.com", Password: "super-secret",
	}, false)
	require.NoError(t, err)

	var stored model.User
	require.NoError(t, svc.users.DB.First(&stored, user.ID).Error)
	assert.NotContains(t, stored.Password, "super-secret")
}
