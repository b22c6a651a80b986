package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	dbm "surflog/internal/models/db_models"
	"surflog/internal/models/enums"
	"surflog/internal/models/request_models"
	"surflog/internal/models/response_models"
	"surflog/internal/repositories"
	"surflog/pkg/utils"
)

type BreakServiceInterface interface {
	CreateBreak(ctx context.Context, req *request_models.CreateBreakRequest, createdBy uint) (*response_models.BreakResponse, error)
	GetBreakByID(ctx context.Context, breakID uint) (*response_models.BreakResponse, error)
	ListBreaks(ctx context.Context, page int, pageSize int) ([]response_models.BreakResponse, error)
	SearchBreaks(ctx context.Context, keyword string, page int, pageSize int) ([]response_models.BreakResponse, error)
}

type BreakService struct {
	breakRepo repositories.BreakRepository
}

func NewBreakService(breakRepo repositories.BreakRepository) BreakServiceInterface {
	return &BreakService{
		breakRepo: breakRepo,
	}
}

func (s *BreakService) CreateBreak(ctx context.Context, req *request_models.CreateBreakRequest, createdBy uint) (*response_models.BreakResponse, error) {
	var violations utils.ValidationErrors
	if !enums.BreakType(req.BreakType).Valid() {
		violations.Add("breakType", "unknown value "+req.BreakType)
	}
	if !enums.YearSeason(req.BestSeason).Valid() {
		violations.Add("bestSeason", "unknown value "+req.BestSeason)
	}
	if len(violations) > 0 {
		return nil, violations
	}

	brk := &dbm.Break{
		PublicID:    uuid.NewString(),
		Name:        req.Name,
		Region:      req.Region,
		Country:     req.Country,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		BreakType:   enums.BreakType(req.BreakType),
		BestSeason:  enums.YearSeason(req.BestSeason),
		Rating:      req.Rating,
		Description: req.Description,
		CreatedBy:   createdBy,
	}

	if err := s.breakRepo.InsertTx(ctx, brk); err != nil {
		log.Printf("break insert failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return buildBreakResponse(brk), nil
}

func (s *BreakService) GetBreakByID(ctx context.Context, breakID uint) (*response_models.BreakResponse, error) {
	brk, err := s.breakRepo.GetByID(ctx, breakID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if brk == nil {
		return nil, utils.ErrBreakNotFound
	}
	return buildBreakResponse(brk), nil
}

func (s *BreakService) ListBreaks(ctx context.Context, page int, pageSize int) ([]response_models.BreakResponse, error) {
	breaks, err := s.breakRepo.GetListOfBreaks(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildBreakResponses(breaks), nil
}

func (s *BreakService) SearchBreaks(ctx context.Context, keyword string, page int, pageSize int) ([]response_models.BreakResponse, error) {
	if keyword == "" {
		return s.ListBreaks(ctx, page, pageSize)
	}
	breaks, err := s.breakRepo.SearchByKeyword(ctx, keyword, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return buildBreakResponses(breaks), nil
}

func buildBreakResponse(brk *dbm.Break) *response_models.BreakResponse {
	return &response_models.BreakResponse{
		ID:          brk.ID,
		PublicID:    brk.PublicID,
		Name:        brk.Name,
		Region:      brk.Region,
		Country:     brk.Country,
		Latitude:    brk.Latitude,
		Longitude:   brk.Longitude,
		BreakType:   string(brk.BreakType),
		BestSeason:  string(brk.BestSeason),
		Rating:      brk.Rating,
		Description: brk.Description,
	}
}

func buildBreakResponses(breaks []dbm.Break) []response_models.BreakResponse {
	out := make([]response_models.BreakResponse, 0, len(breaks))
	for i := range breaks {
		out = append(out, *buildBreakResponse(&breaks[i]))
	}
	return out
}
