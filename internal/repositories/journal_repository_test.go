package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbm "surflog/internal/models/db_models"
	"surflog/internal/models/enums"
	"surflog/pkg/utils"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&dbm.Account{},
		&dbm.Break{},
		&dbm.Board{},
		&dbm.JournalEntry{},
		&dbm.WaveConditions{},
		&dbm.WindConditions{},
		&dbm.EnvironmentConditions{},
		&dbm.CrowdConditions{},
		&dbm.GearUsed{},
		&dbm.PersonalPerformance{},
		&dbm.MarineLifeObservation{},
		&dbm.ChallengeFaced{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedReferences inserts one account, one break and one board. Every id the
// writer resolves references exists afterwards.
func seedReferences(t *testing.T, db *gorm.DB) (authorID, breakID, boardID uint) {
	t.Helper()

	account := dbm.Account{Name: "Kai", Email: "kai@example.com", Role: "user"}
	if err := db.Create(&account).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}

	spot := dbm.Break{
		PublicID:   uuid.NewString(),
		Name:       "Uluwatu",
		Region:     "Bali",
		Country:    "Indonesia",
		Latitude:   -8.8156,
		Longitude:  115.0882,
		BreakType:  enums.BreakReef,
		BestSeason: enums.SeasonWinter,
		Rating:     5,
		CreatedBy:  account.ID,
	}
	if err := db.Create(&spot).Error; err != nil {
		t.Fatalf("seed break: %v", err)
	}

	board := dbm.Board{OwnerID: account.ID, Label: "Step-up", Dimensions: `6'4" x 19 x 2 1/2`}
	if err := db.Create(&board).Error; err != nil {
		t.Fatalf("seed board: %v", err)
	}
	return account.ID, spot.ID, board.ID
}

func newDraft(breakID, boardID uint) *dbm.JournalEntry {
	return &dbm.JournalEntry{
		UUID:        uuid.NewString(),
		SessionType: enums.SessionSurfed,
		BreakID:     breakID,
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		StartTime:   "07:00",
		EndTime:     "09:00",
		WaveConditions: dbm.WaveConditions{
			Height:        enums.WaveHeadHigh,
			Frequency:     enums.FrequencyMediumWait,
			Character:     enums.CharacterPunchy,
			TideMovement:  enums.TideRising,
			PeelDirection: enums.PeelAFrame,
			WallShape:     enums.WallHollow,
			PeelSpeed:     enums.PeelSpeedFast,
			Steepness:     enums.SteepnessSteep,
			Shallowness:   enums.ShallownessMedium,
		},
		WindConditions: dbm.WindConditions{
			Direction:   enums.CardinalNW,
			Consistency: enums.WindSteady,
			Strength:    enums.WindLight,
		},
		EnvironmentConditions: dbm.EnvironmentConditions{
			Current:      enums.CurrentLight,
			RockDanger:   enums.RockNone,
			WaterQuality: enums.WaterClean,
			WaterSurface: enums.SurfaceGlassy,
		},
		CrowdConditions: dbm.CrowdConditions{
			Vibe:       enums.VibeFriendly,
			Volume:     enums.CrowdModerate,
			SkillLevel: enums.SkillIntermediate,
		},
		GearUsed: dbm.GearUsed{
			BoardID:          boardID,
			WetsuitThickness: "4/3",
			Boots:            true,
		},
		PersonalPerformance: dbm.PersonalPerformance{
			PerformanceRating: 8,
			Feeling:           enums.FeelingStoked,
			Comments:          "best session this winter",
		},
		MarineLife: []dbm.MarineLifeObservation{
			{Species: enums.MarineDolphins},
		},
		ChallengesFaced: []dbm.ChallengeFaced{
			{Challenge: enums.ChallengeWaveSelection},
		},
	}
}

// countAllJournalRows tallies rows across the parent and every child table.
func countAllJournalRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var total int64
	for _, model := range []interface{}{
		&dbm.JournalEntry{}, &dbm.WaveConditions{}, &dbm.WindConditions{},
		&dbm.EnvironmentConditions{}, &dbm.CrowdConditions{}, &dbm.GearUsed{},
		&dbm.PersonalPerformance{}, &dbm.MarineLifeObservation{}, &dbm.ChallengeFaced{},
	} {
		var n int64
		if err := db.Model(model).Count(&n).Error; err != nil {
			t.Fatalf("count %T: %v", model, err)
		}
		total += n
	}
	return total
}

func TestAddJournalEntry_PersistsFullAggregate(t *testing.T) {
	db := openTestDB(t)
	authorID, breakID, boardID := seedReferences(t, db)
	repo := NewJournalRepository(db)

	draft := newDraft(breakID, boardID)
	before := time.Now().Add(-time.Second)

	entry, replayed, err := repo.AddJournalEntry(context.Background(), draft, authorID)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if replayed {
		t.Fatal("first write must not be a replay")
	}
	if entry.ID == 0 {
		t.Fatal("expected a persisted id")
	}
	if entry.AuthorID != authorID {
		t.Fatalf("author %d, want %d", entry.AuthorID, authorID)
	}
	if entry.SyncedAt == nil || entry.SyncedAt.Before(before) {
		t.Fatalf("syncedAt not set on commit: %v", entry.SyncedAt)
	}
	if entry.WaveConditions.Height != enums.WaveHeadHigh {
		t.Fatalf("wave height %q", entry.WaveConditions.Height)
	}
	if entry.GearUsed.BoardID != boardID || entry.GearUsed.WetsuitThickness != "4/3" {
		t.Fatalf("gear round-trip failed: %+v", entry.GearUsed)
	}
	if len(entry.MarineLife) != 1 || entry.MarineLife[0].Species != enums.MarineDolphins {
		t.Fatalf("marine life round-trip failed: %+v", entry.MarineLife)
	}
	if len(entry.ChallengesFaced) != 1 {
		t.Fatalf("challenges round-trip failed: %+v", entry.ChallengesFaced)
	}

	// A fresh read sees the same aggregate the writer handed back.
	read, err := repo.GetJournalEntryByID(context.Background(), entry.ID, authorID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if read == nil || read.UUID != draft.UUID {
		t.Fatalf("read back mismatch: %#v", read)
	}
	if read.PersonalPerformance.PerformanceRating != 8 || read.CrowdConditions.Vibe != enums.VibeFriendly {
		t.Fatalf("child groups not hydrated: %+v", read)
	}
}

func TestAddJournalEntry_RollsBackOnMissingBoard(t *testing.T) {
	db := openTestDB(t)
	authorID, breakID, _ := seedReferences(t, db)
	repo := NewJournalRepository(db)

	// The board check sits deep in the transaction, after the parent and four
	// child groups have been written. A failure there must leave nothing.
	draft := newDraft(breakID, 9999)

	_, _, err := repo.AddJournalEntry(context.Background(), draft, authorID)
	if !errors.Is(err, utils.ErrBoardNotFound) {
		t.Fatalf("expected ErrBoardNotFound, got %v", err)
	}
	if n := countAllJournalRows(t, db); n != 0 {
		t.Fatalf("expected full rollback, found %d rows", n)
	}
}

func TestAddJournalEntry_MissingBreak(t *testing.T) {
	db := openTestDB(t)
	authorID, _, boardID := seedReferences(t, db)
	repo := NewJournalRepository(db)

	draft := newDraft(9999, boardID)

	_, _, err := repo.AddJournalEntry(context.Background(), draft, authorID)
	if !errors.Is(err, utils.ErrBreakNotFound) {
		t.Fatalf("expected ErrBreakNotFound, got %v", err)
	}
	if n := countAllJournalRows(t, db); n != 0 {
		t.Fatalf("expected no rows, found %d", n)
	}
}

func TestAddJournalEntry_MissingAuthor(t *testing.T) {
	db := openTestDB(t)
	_, breakID, boardID := seedReferences(t, db)
	repo := NewJournalRepository(db)

	_, _, err := repo.AddJournalEntry(context.Background(), newDraft(breakID, boardID), 9999)
	if !errors.Is(err, utils.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAddJournalEntry_ReplaysOnDuplicateUUID(t *testing.T) {
	db := openTestDB(t)
	authorID, breakID, boardID := seedReferences(t, db)
	repo := NewJournalRepository(db)

	draft := newDraft(breakID, boardID)

	first, _, err := repo.AddJournalEntry(context.Background(), draft, authorID)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}

	// Same uuid again, with different content: the stored aggregate wins and
	// the retry writes nothing.
	retry := newDraft(breakID, boardID)
	retry.UUID = draft.UUID
	retry.PersonalPerformance.PerformanceRating = 2

	second, replayed, err := repo.AddJournalEntry(context.Background(), retry, authorID)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !replayed {
		t.Fatal("expected replay on duplicate uuid")
	}
	if second.ID != first.ID {
		t.Fatalf("replay returned id %d, want %d", second.ID, first.ID)
	}
	if second.PersonalPerformance.PerformanceRating != 8 {
		t.Fatalf("stored aggregate mutated: rating %d", second.PersonalPerformance.PerformanceRating)
	}

	var n int64
	if err := db.Model(&dbm.JournalEntry{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected a single entry, found %d", n)
	}
}

func TestAddJournalEntry_ForeignUUIDIsConflict(t *testing.T) {
	db := openTestDB(t)
	authorID, breakID, boardID := seedReferences(t, db)
	repo := NewJournalRepository(db)

	draft := newDraft(breakID, boardID)
	first, _, err := repo.AddJournalEntry(context.Background(), draft, authorID)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}

	other := dbm.Account{Name: "Noa", Email: "noa@example.com", Role: "user"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed second account: %v", err)
	}

	// Same uuid from a different account must never replay the stored
	// aggregate; the entry stays exactly as the first author wrote it.
	retry := newDraft(breakID, boardID)
	retry.UUID = draft.UUID

	got, replayed, err := repo.AddJournalEntry(context.Background(), retry, other.ID)
	if !errors.Is(err, utils.ErrEntryConflict) {
		t.Fatalf("expected ErrEntryConflict, got %v", err)
	}
	if got != nil || replayed {
		t.Fatalf("no aggregate may cross accounts: got=%v replayed=%v", got, replayed)
	}

	stored, err := repo.GetJournalEntryByID(context.Background(), first.ID, authorID)
	if err != nil || stored == nil {
		t.Fatalf("first author's entry lost: %v", err)
	}

	var n int64
	if err := db.Model(&dbm.JournalEntry{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected a single entry, found %d", n)
	}
}

func TestReplayAfterDuplicate(t *testing.T) {
	db := openTestDB(t)
	authorID, breakID, boardID := seedReferences(t, db)
	repo := &journalRepository{db: db}

	draft := newDraft(breakID, boardID)
	winner, _, err := repo.AddJournalEntry(context.Background(), draft, authorID)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// The loser of a same-uuid race lands here after its rollback and must
	// get the winner's aggregate.
	got, replayed, err := repo.replayAfterDuplicate(context.Background(), draft.UUID, authorID)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !replayed || got.ID != winner.ID {
		t.Fatalf("expected winner %d replayed, got id=%d replayed=%v", winner.ID, got.ID, replayed)
	}
	if got.WaveConditions.Height != enums.WaveHeadHigh {
		t.Fatalf("winner not hydrated: %+v", got.WaveConditions)
	}

	other := dbm.Account{Name: "Noa", Email: "noa@example.com", Role: "user"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed second account: %v", err)
	}
	if _, _, err := repo.replayAfterDuplicate(context.Background(), draft.UUID, other.ID); !errors.Is(err, utils.ErrEntryConflict) {
		t.Fatalf("expected ErrEntryConflict for another account, got %v", err)
	}

	if _, _, err := repo.replayAfterDuplicate(context.Background(), uuid.NewString(), authorID); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("missing winner must surface the original failure, got %v", err)
	}
}

func TestAddJournalEntry_EmptyListGroups(t *testing.T) {
	db := openTestDB(t)
	authorID, breakID, boardID := seedReferences(t, db)
	repo := NewJournalRepository(db)

	draft := newDraft(breakID, boardID)
	draft.MarineLife = nil
	draft.ChallengesFaced = nil

	entry, _, err := repo.AddJournalEntry(context.Background(), draft, authorID)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(entry.MarineLife) != 0 || len(entry.ChallengesFaced) != 0 {
		t.Fatalf("expected empty list groups, got %+v / %+v", entry.MarineLife, entry.ChallengesFaced)
	}
}

func TestGetJournalEntryByID_ScopedToAuthor(t *testing.T) {
	db := openTestDB(t)
	authorID, breakID, boardID := seedReferences(t, db)
	repo := NewJournalRepository(db)

	entry, _, err := repo.AddJournalEntry(context.Background(), newDraft(breakID, boardID), authorID)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	other := dbm.Account{Name: "Noa", Email: "noa@example.com", Role: "user"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed second account: %v", err)
	}

	got, err := repo.GetJournalEntryByID(context.Background(), entry.ID, other.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatal("another author's entry must not be visible")
	}
}

func TestListJournalEntriesByAuthor_OrderAndPaging(t *testing.T) {
	db := openTestDB(t)
	authorID, breakID, boardID := seedReferences(t, db)
	repo := NewJournalRepository(db)

	dates := []time.Time{
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		draft := newDraft(breakID, boardID)
		draft.Date = d
		if _, _, err := repo.AddJournalEntry(context.Background(), draft, authorID); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	entries, err := repo.ListJournalEntriesByAuthor(context.Background(), authorID, 1, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected page of 2, got %d", len(entries))
	}
	if !entries[0].Date.After(entries[1].Date) {
		t.Fatalf("expected newest first, got %v then %v", entries[0].Date, entries[1].Date)
	}

	rest, err := repo.ListJournalEntriesByAuthor(context.Background(), authorID, 2, 2)
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(rest) != 1 {
		t.Fatalf("expected 1 entry on page 2, got %d", len(rest))
	}
}
