// File: internal/service/auth.go
package service

import (
	"context"
	"errors"
	"time"

	"imf-gadget-api/internal/apperr"
	"imf-gadget-api/internal/database"
	"imf-gadget-api/internal/model"
	"imf-gadget-api/internal/store"

	"github.com/google/uuid"
)

// MinPasswordLength 註冊密碼最短長度
const MinPasswordLength = 6

var (
	getUserByID    = store.GetUserByID
	getUserByEmail = store.GetUserByEmail
	createUser     = store.CreateUser
)

// TokenConfig 簽發 access token 的設定
type TokenConfig struct {
	Secret string
	TTL    time.Duration
	// ExpiresIn 原始設定字串（例如 "24h"），原樣回傳給前端
	ExpiresIn string
}

// Identity 已驗證的呼叫者，取自當下的使用者紀錄
type Identity struct {
	ID    string     `json:"id"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

// AuthResult 註冊或登入成功的結果
type AuthResult struct {
	User      *model.User
	Token     string
	ExpiresIn string
	ExpiresAt time.Time
}

type AuthService struct {
	db    database.DB
	token TokenConfig
}

func NewAuthService(db database.DB, token TokenConfig) *AuthService {
	return &AuthService{db: db, token: token}
}

// Register 建立新使用者；請求中的角色一律忽略，新帳號固定為 agent
func (s *AuthService) Register(ctx context.Context, email, password string, _ model.Role) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, apperr.ErrMissingCredentials
	}
	if len(password) < MinPasswordLength {
		return nil, apperr.ErrWeakPassword
	}

	_, err := getUserByEmail(ctx, s.db, email)
	switch {
	case err == nil:
		return nil, apperr.ErrUserExists
	case !errors.Is(err, store.ErrNotFound):
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := createUser(ctx, s.db, &model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleAgent,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperr.ErrUserExists
		}
		return nil, err
	}
	return s.issue(user)
}

// Login 驗證帳密；帳號不存在與密碼錯誤回傳相同錯誤
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, apperr.ErrMissingCredentials
	}

	user, err := getUserByEmail(ctx, s.db, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}
	return s.issue(user)
}

// Profile 取得使用者資料
func (s *AuthService) Profile(ctx context.Context, userID string) (*model.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperr.ErrUserNotFound
	}
	user, err := getUserByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Authenticate 驗證 bearer token 並回傳目前使用者身分
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, apperr.ErrMissingToken
	}
	claims, err := VerifyAccessToken(token, s.token.Secret)
	if err != nil {
		return nil, apperr.ErrInvalidToken.Wrap(err)
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, apperr.ErrInvalidToken.Wrap(err)
	}

	user, err := getUserByID(ctx, s.db, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.ErrInvalidToken.Wrap(err)
		}
		return nil, apperr.ErrTokenVerification.Wrap(err)
	}
	return &Identity{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// Authorize 檢查身分是否具備任一允許角色
func Authorize(identity *Identity, allowed ...model.Role) error {
	if identity == nil {
		return apperr.ErrAuthenticationRequired
	}
	for _, r := range allowed {
		if identity.Role == r {
			return nil
		}
	}
	return apperr.ErrInsufficientPermissions.
		With("required", allowed).
		With("current", identity.Role)
}

func (s *AuthService) issue(user *model.User) (*AuthResult, error) {
	token, expiresAt, err := IssueAccessToken(*user, s.token.Secret, s.token.TTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: s.token.ExpiresIn,
		ExpiresAt: expiresAt,
	}, nil
}
