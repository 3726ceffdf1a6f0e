package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"OVT-backend/internal/platform/config"
)

var ErrAuthentication = errors.New("authentication failed")

type Service struct {
	store  AccountStore
	secret []byte
	ttl    time.Duration
}

type AuthService interface {
	Login(ctx context.Context, id, password string) (string, error)
}

// secret は環境変数から渡す（設定ファイルには置かない）
func NewService(cfg config.AuthConfig, secret []byte) *Service {
	return &Service{
		store:  NewStore(cfg.Accounts),
		secret: secret,
		ttl:    time.Duration(cfg.TokenTTLHours) * time.Hour,
	}
}

func (s *Service) Secret() []byte {
	return s.secret
}

func (s *Service) Login(ctx context.Context, id, password string) (string, error) {
	acct, err := s.store.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if acct == nil || acct.IsDisabled {
		return "", ErrAuthentication
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return "", ErrAuthentication
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  acct.ID,
		"role": acct.Role,
		"exp":  time.Now().Add(s.ttl).Unix(),
	})

	return token.SignedString(s.secret)
}
