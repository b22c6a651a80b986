package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbm "surflog/internal/models/db_models"
	"surflog/pkg/utils"
)

type JournalRepository interface {
	// AddJournalEntry commits the draft aggregate and all nine condition
	// groups atomically. The returned bool is true when the entry's uuid was
	// already stored and the existing aggregate is returned instead of a new
	// one (offline replay).
	AddJournalEntry(ctx context.Context, draft *dbm.JournalEntry, authorID uint) (*dbm.JournalEntry, bool, error)
	GetJournalEntryByID(ctx context.Context, entryID uint, authorID uint) (*dbm.JournalEntry, error)
	ListJournalEntriesByAuthor(ctx context.Context, authorID uint, page int, pageSize int) ([]dbm.JournalEntry, error)
}

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

var journalPreloads = []string{
	"WaveConditions", "WindConditions", "EnvironmentConditions",
	"CrowdConditions", "GearUsed", "PersonalPerformance",
	"MarineLife", "ChallengesFaced",
}

func (r *journalRepository) AddJournalEntry(
	ctx context.Context,
	draft *dbm.JournalEntry,
	authorID uint,
) (*dbm.JournalEntry, bool, error) {

	var (
		persisted *dbm.JournalEntry
		replayed  bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Reference checks first: they are the failure modes with meaning to
		// the caller, and nothing should be written until they pass.
		if err := existsByID(tx, &dbm.Account{}, authorID, utils.ErrAccountNotFound); err != nil {
			return err
		}
		if err := existsByID(tx, &dbm.Break{}, draft.BreakID, utils.ErrBreakNotFound); err != nil {
			return err
		}

		// Offline replay: a uuid already stored means this payload was
		// persisted by an earlier call, so hand back that aggregate untouched.
		// A uuid stored under another account is a conflict, never a replay.
		existing, err := findByUUID(tx, draft.UUID)
		if err != nil {
			return err
		}
		if existing != nil {
			if existing.AuthorID != authorID {
				return utils.ErrEntryConflict
			}
			persisted = existing
			replayed = true
			return nil
		}

		entry := dbm.JournalEntry{
			UUID:        draft.UUID,
			AuthorID:    authorID,
			SessionType: draft.SessionType,
			BreakID:     draft.BreakID,
			Date:        draft.Date,
			StartTime:   draft.StartTime,
			EndTime:     draft.EndTime,
		}
		now := time.Now()
		entry.SyncedAt = &now

		// Children are inserted one group at a time below, mirroring the
		// table layout; Omit keeps gorm from auto-saving the associations.
		if err := tx.Omit(clause.Associations).Create(&entry).Error; err != nil {
			return err
		}

		wave := draft.WaveConditions
		wave.JournalEntryID = entry.ID
		if err := tx.Create(&wave).Error; err != nil {
			return err
		}

		wind := draft.WindConditions
		wind.JournalEntryID = entry.ID
		if err := tx.Create(&wind).Error; err != nil {
			return err
		}

		env := draft.EnvironmentConditions
		env.JournalEntryID = entry.ID
		if err := tx.Create(&env).Error; err != nil {
			return err
		}

		crowd := draft.CrowdConditions
		crowd.JournalEntryID = entry.ID
		if err := tx.Create(&crowd).Error; err != nil {
			return err
		}

		// The board reference is only touched by the gear group, so it is
		// resolved here rather than up front.
		if err := existsByID(tx, &dbm.Board{}, draft.GearUsed.BoardID, utils.ErrBoardNotFound); err != nil {
			return err
		}
		gear := draft.GearUsed
		gear.JournalEntryID = entry.ID
		if err := tx.Create(&gear).Error; err != nil {
			return err
		}

		perf := draft.PersonalPerformance
		perf.JournalEntryID = entry.ID
		if err := tx.Create(&perf).Error; err != nil {
			return err
		}

		if len(draft.MarineLife) > 0 {
			observations := make([]dbm.MarineLifeObservation, 0, len(draft.MarineLife))
			for _, obs := range draft.MarineLife {
				observations = append(observations, dbm.MarineLifeObservation{
					JournalEntryID: entry.ID,
					Species:        obs.Species,
				})
			}
			if err := tx.Create(&observations).Error; err != nil {
				return err
			}
		}

		if len(draft.ChallengesFaced) > 0 {
			challenges := make([]dbm.ChallengeFaced, 0, len(draft.ChallengesFaced))
			for _, ch := range draft.ChallengesFaced {
				challenges = append(challenges, dbm.ChallengeFaced{
					JournalEntryID: entry.ID,
					Challenge:      ch.Challenge,
				})
			}
			if err := tx.Create(&challenges).Error; err != nil {
				return err
			}
		}

		// Read back the whole aggregate within the transaction so the caller
		// gets exactly what a subsequent reader will see.
		full, err := findByUUID(tx, entry.UUID)
		if err != nil {
			return err
		}
		if full == nil {
			return gorm.ErrRecordNotFound
		}
		persisted = full
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.replayAfterDuplicate(ctx, draft.UUID, authorID)
		}
		return nil, false, err
	}
	return persisted, replayed, nil
}

// replayAfterDuplicate handles the loser of two first-writers racing on one
// uuid: its insert hit the unique index and its transaction rolled back, so
// the winner's row is the aggregate to replay. The winner must belong to the
// same account; otherwise the caller gets a conflict, not someone else's data.
func (r *journalRepository) replayAfterDuplicate(ctx context.Context, entryUUID string, authorID uint) (*dbm.JournalEntry, bool, error) {
	winner, err := findByUUID(r.db.WithContext(ctx), entryUUID)
	if err != nil {
		return nil, false, err
	}
	if winner == nil {
		return nil, false, gorm.ErrDuplicatedKey
	}
	if winner.AuthorID != authorID {
		return nil, false, utils.ErrEntryConflict
	}
	return winner, true, nil
}

func (r *journalRepository) GetJournalEntryByID(ctx context.Context, entryID uint, authorID uint) (*dbm.JournalEntry, error) {
	q := r.db.WithContext(ctx).Where("id = ? AND author_id = ?", entryID, authorID)
	for _, assoc := range journalPreloads {
		q = q.Preload(assoc)
	}

	var entry dbm.JournalEntry
	if err := q.First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *journalRepository) ListJournalEntriesByAuthor(ctx context.Context, authorID uint, page int, pageSize int) ([]dbm.JournalEntry, error) {
	var entries []dbm.JournalEntry
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("date DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// existsByID resolves a foreign reference or returns the given sentinel.
func existsByID(tx *gorm.DB, model interface{}, id uint, missing error) error {
	err := tx.Select("id").First(model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return missing
	}
	return err
}

func findByUUID(tx *gorm.DB, entryUUID string) (*dbm.JournalEntry, error) {
	q := tx.Where("uuid = ?", entryUUID)
	for _, assoc := range journalPreloads {
		q = q.Preload(assoc)
	}

	var entry dbm.JournalEntry
	if err := q.First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
