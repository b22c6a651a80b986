package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	dbm "surflog/internal/models/db_models"
)

type BreakRepository interface {
	InsertTx(ctx context.Context, brk *dbm.Break) error
	GetByID(ctx context.Context, breakID uint) (*dbm.Break, error)
	GetListOfBreaks(ctx context.Context, page int, pageSize int) ([]dbm.Break, error)
	SearchByKeyword(ctx context.Context, keyword string, page int, pageSize int) ([]dbm.Break, error)
}

type breakRepository struct {
	db *gorm.DB
}

func NewBreakRepository(db *gorm.DB) BreakRepository {
	return &breakRepository{db: db}
}

func (r *breakRepository) InsertTx(ctx context.Context, brk *dbm.Break) error {
	return r.db.WithContext(ctx).Create(brk).Error
}

func (r *breakRepository) GetByID(ctx context.Context, breakID uint) (*dbm.Break, error) {
	var brk dbm.Break
	err := r.db.WithContext(ctx).First(&brk, "id = ?", breakID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brk, nil
}

func (r *breakRepository) GetListOfBreaks(ctx context.Context, page int, pageSize int) ([]dbm.Break, error) {
	var breaks []dbm.Break
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&breaks).Error

	if err != nil {
		return nil, err
	}
	return breaks, nil
}

func (r *breakRepository) SearchByKeyword(ctx context.Context, keyword string, page int, pageSize int) ([]dbm.Break, error) {
	pattern := "%" + keyword + "%"

	var breaks []dbm.Break
	err := r.db.WithContext(ctx).
		Where("name LIKE ? OR region LIKE ?", pattern, pattern).
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&breaks).Error

	if err != nil {
		return nil, err
	}
	return breaks, nil
}
