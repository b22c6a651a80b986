package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	dbm "surflog/internal/models/db_models"
	"surflog/internal/models/enums"
	"surflog/internal/models/request_models"
	"surflog/internal/models/response_models"
	"surflog/internal/repositories"
	"surflog/pkg/utils"
)

type JournalServiceInterface interface {
	// CreateJournalEntry validates and persists one session journal entry for
	// the authenticated author. The returned bool reports whether the entry
	// was replayed from an earlier sync of the same uuid.
	CreateJournalEntry(ctx context.Context, req *request_models.CreateJournalEntryRequest, authorID uint) (*response_models.JournalEntryResponse, bool, error)
	GetJournalEntryByID(ctx context.Context, entryID uint, authorID uint) (*response_models.JournalEntryResponse, error)
	ListJournalEntries(ctx context.Context, authorID uint, page int, pageSize int) ([]response_models.JournalEntrySummary, error)
	UpdateJournalEntry(ctx context.Context, entryID uint, req *request_models.CreateJournalEntryRequest, authorID uint) error
	DeleteJournalEntry(ctx context.Context, entryID uint, authorID uint) error
	VocabularyCatalog() map[string][]enums.Option
}

type JournalService struct {
	journalRepo repositories.JournalRepository
}

func NewJournalService(journalRepo repositories.JournalRepository) JournalServiceInterface {
	return &JournalService{
		journalRepo: journalRepo,
	}
}

func (s *JournalService) CreateJournalEntry(
	ctx context.Context,
	req *request_models.CreateJournalEntryRequest,
	authorID uint,
) (*response_models.JournalEntryResponse, bool, error) {

	draft, violations := ValidateJournalEntry(req)
	if len(violations) > 0 {
		return nil, false, violations
	}

	// Offline-first: the client may already carry a token; otherwise mint one
	// here so the repository always has a replay key to work with.
	if draft.UUID == "" {
		draft.UUID = uuid.NewString()
	}

	persisted, replayed, err := s.journalRepo.AddJournalEntry(ctx, draft, authorID)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrAccountNotFound),
			errors.Is(err, utils.ErrBreakNotFound),
			errors.Is(err, utils.ErrBoardNotFound),
			errors.Is(err, utils.ErrEntryConflict):
			return nil, false, err
		default:
			log.Printf("journal persist failed: %v", err)
			return nil, false, utils.ErrDatabaseError
		}
	}

	return dbm.BuildJournalEntryResponse(persisted), replayed, nil
}

func (s *JournalService) GetJournalEntryByID(ctx context.Context, entryID uint, authorID uint) (*response_models.JournalEntryResponse, error) {
	entry, err := s.journalRepo.GetJournalEntryByID(ctx, entryID, authorID)
	if err != nil {
		log.Printf("journal lookup failed: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if entry == nil {
		return nil, utils.ErrEntryNotFound
	}
	return dbm.BuildJournalEntryResponse(entry), nil
}

func (s *JournalService) ListJournalEntries(ctx context.Context, authorID uint, page int, pageSize int) ([]response_models.JournalEntrySummary, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	entries, err := s.journalRepo.ListJournalEntriesByAuthor(ctx, authorID, page, pageSize)
	if err != nil {
		log.Printf("journal list failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.JournalEntrySummary, 0, len(entries))
	for i := range entries {
		out = append(out, dbm.BuildJournalEntrySummary(&entries[i]))
	}
	return out, nil
}

// Update and delete semantics (replace vs patch of the condition groups) are
// not settled; callers get an explicit not-supported failure instead of a
// half-specified write.
func (s *JournalService) UpdateJournalEntry(ctx context.Context, entryID uint, req *request_models.CreateJournalEntryRequest, authorID uint) error {
	return utils.ErrNotSupported
}

func (s *JournalService) DeleteJournalEntry(ctx context.Context, entryID uint, authorID uint) error {
	return utils.ErrNotSupported
}

func (s *JournalService) VocabularyCatalog() map[string][]enums.Option {
	return enums.Catalog()
}
