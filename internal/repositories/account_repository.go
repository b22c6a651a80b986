package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	dbm "surflog/internal/models/db_models"
)

type AccountRepository interface {
	InsertTx(ctx context.Context, account *dbm.Account) error
	FindByEmail(ctx context.Context, email string) (*dbm.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) InsertTx(ctx context.Context, account *dbm.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	var account dbm.Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}
