package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	dbm "surflog/internal/models/db_models"
)

type BoardRepository interface {
	InsertTx(ctx context.Context, board *dbm.Board) error
	GetByID(ctx context.Context, boardID uint) (*dbm.Board, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]dbm.Board, error)
}

type boardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) InsertTx(ctx context.Context, board *dbm.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *boardRepository) GetByID(ctx context.Context, boardID uint) (*dbm.Board, error) {
	var board dbm.Board
	err := r.db.WithContext(ctx).First(&board, "id = ?", boardID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) ListByOwner(ctx context.Context, ownerID uint) ([]dbm.Board, error) {
	var boards []dbm.Board
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&boards).Error

	if err != nil {
		return nil, err
	}
	return boards, nil
}
