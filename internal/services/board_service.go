package services

import (
	"context"

	dbm "surflog/internal/models/db_models"
	"surflog/internal/models/response_models"
	"surflog/internal/repositories"
	"surflog/pkg/utils"
)

type BoardServiceInterface interface {
	ListBoards(ctx context.Context, ownerID uint) ([]response_models.BoardResponse, error)
	GetBoardByID(ctx context.Context, boardID uint) (*response_models.BoardResponse, error)
}

type BoardService struct {
	boardRepo repositories.BoardRepository
}

func NewBoardService(boardRepo repositories.BoardRepository) BoardServiceInterface {
	return &BoardService{
		boardRepo: boardRepo,
	}
}

func (s *BoardService) ListBoards(ctx context.Context, ownerID uint) ([]response_models.BoardResponse, error) {
	boards, err := s.boardRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.BoardResponse, 0, len(boards))
	for _, board := range boards {
		out = append(out, buildBoardResponse(&board))
	}
	return out, nil
}

func (s *BoardService) GetBoardByID(ctx context.Context, boardID uint) (*response_models.BoardResponse, error) {
	board, err := s.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if board == nil {
		return nil, utils.ErrBoardNotFound
	}
	resp := buildBoardResponse(board)
	return &resp, nil
}

func buildBoardResponse(board *dbm.Board) response_models.BoardResponse {
	return response_models.BoardResponse{
		ID:         board.ID,
		Label:      board.Label,
		Dimensions: board.Dimensions,
	}
}
