package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	dbm "surflog/internal/models/db_models"
	"surflog/pkg/utils"
)

// fakeJournalRepo records the draft it receives and answers with canned
// results, so service behavior can be checked without a database.
type fakeJournalRepo struct {
	lastDraft *dbm.JournalEntry
	result    *dbm.JournalEntry
	replayed  bool
	err       error
}

func (f *fakeJournalRepo) AddJournalEntry(ctx context.Context, draft *dbm.JournalEntry, authorID uint) (*dbm.JournalEntry, bool, error) {
	f.lastDraft = draft
	if f.err != nil {
		return nil, false, f.err
	}
	if f.result == nil {
		persisted := *draft
		persisted.ID = 1
		persisted.AuthorID = authorID
		now := time.Now()
		persisted.SyncedAt = &now
		return &persisted, f.replayed, nil
	}
	return f.result, f.replayed, nil
}

func (f *fakeJournalRepo) GetJournalEntryByID(ctx context.Context, entryID uint, authorID uint) (*dbm.JournalEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeJournalRepo) ListJournalEntriesByAuthor(ctx context.Context, authorID uint, page int, pageSize int) ([]dbm.JournalEntry, error) {
	return nil, f.err
}

func TestCreateJournalEntry_MintsUUIDWhenAbsent(t *testing.T) {
	repo := &fakeJournalRepo{}
	svc := NewJournalService(repo)

	req := validJournalRequest()
	req.UUID = ""

	resp, replayed, err := svc.CreateJournalEntry(context.Background(), req, 1)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if replayed {
		t.Fatal("fresh entry must not report replay")
	}
	if resp == nil {
		t.Fatal("expected a response")
	}
	if repo.lastDraft.UUID == "" {
		t.Fatal("service must mint a uuid before persisting")
	}
	if _, perr := uuid.Parse(repo.lastDraft.UUID); perr != nil {
		t.Fatalf("minted uuid is malformed: %q", repo.lastDraft.UUID)
	}
}

func TestCreateJournalEntry_KeepsClientUUID(t *testing.T) {
	repo := &fakeJournalRepo{}
	svc := NewJournalService(repo)

	req := validJournalRequest()
	if _, _, err := svc.CreateJournalEntry(context.Background(), req, 1); err != nil {
		t.Fatalf("create: %v", err)
	}
	if repo.lastDraft.UUID != req.UUID {
		t.Fatalf("client uuid replaced: got %q, want %q", repo.lastDraft.UUID, req.UUID)
	}
}

func TestCreateJournalEntry_ReturnsViolationsWithoutPersisting(t *testing.T) {
	repo := &fakeJournalRepo{}
	svc := NewJournalService(repo)

	req := validJournalRequest()
	req.WaveConditions.Height = "massive"

	_, _, err := svc.CreateJournalEntry(context.Background(), req, 1)
	var violations utils.ValidationErrors
	if !errors.As(err, &violations) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if repo.lastDraft != nil {
		t.Fatal("invalid payload must never reach the repository")
	}
}

func TestCreateJournalEntry_ErrorMapping(t *testing.T) {
	for _, sentinel := range []error{utils.ErrBreakNotFound, utils.ErrBoardNotFound, utils.ErrAccountNotFound, utils.ErrEntryConflict} {
		svc := NewJournalService(&fakeJournalRepo{err: sentinel})
		if _, _, err := svc.CreateJournalEntry(context.Background(), validJournalRequest(), 1); !errors.Is(err, sentinel) {
			t.Fatalf("expected %v passthrough, got %v", sentinel, err)
		}
	}

	svc := NewJournalService(&fakeJournalRepo{err: errors.New("connection reset")})
	if _, _, err := svc.CreateJournalEntry(context.Background(), validJournalRequest(), 1); !errors.Is(err, utils.ErrDatabaseError) {
		t.Fatalf("infrastructure failures must map to ErrDatabaseError, got %v", err)
	}
}

func TestGetJournalEntryByID_NotFound(t *testing.T) {
	svc := NewJournalService(&fakeJournalRepo{})
	if _, err := svc.GetJournalEntryByID(context.Background(), 99, 1); !errors.Is(err, utils.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestListJournalEntries_PageValidation(t *testing.T) {
	svc := NewJournalService(&fakeJournalRepo{})

	if _, err := svc.ListJournalEntries(context.Background(), 1, 0, 20); !errors.Is(err, utils.ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage, got %v", err)
	}
	if _, err := svc.ListJournalEntries(context.Background(), 1, 1, 500); !errors.Is(err, utils.ErrInvalidPageSize) {
		t.Fatalf("expected ErrInvalidPageSize, got %v", err)
	}
}

func TestUpdateAndDeleteNotSupported(t *testing.T) {
	svc := NewJournalService(&fakeJournalRepo{})

	if err := svc.UpdateJournalEntry(context.Background(), 1, validJournalRequest(), 1); !errors.Is(err, utils.ErrNotSupported) {
		t.Fatalf("expected ErrNotSupported, got %v", err)
	}
	if err := svc.DeleteJournalEntry(context.Background(), 1, 1); !errors.Is(err, utils.ErrNotSupported) {
		t.Fatalf("expected ErrNotSupported, got %v", err)
	}
}
