package auth

import (
	"context"

	"OVT-backend/internal/platform/config"
)

type Account struct {
	ID           string
	PasswordHash string
	Role         string
	IsDisabled   bool
}

type AccountStore interface {
	GetByID(ctx context.Context, id string) (*Account, error)
}

// 設定ファイル固定のアカウント台帳（DBは持たない運用）
type Store struct {
	accounts map[string]Account
}

func NewStore(accounts []config.Account) AccountStore {
	m := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		m[a.ID] = Account{
			ID:           a.ID,
			PasswordHash: a.PasswordHash,
			Role:         a.Role,
			IsDisabled:   a.Disabled,
		}
	}
	return &Store{accounts: m}
}

func (s *Store) GetByID(_ context.Context, id string) (*Account, error) {
	a, ok := s.accounts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}
