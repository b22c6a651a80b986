package infra

import (
	"gorm.io/gorm"
	dbm "surflog/internal/models/db_models"
)

// AutoMigrate keeps the schema in step with the models. The journal tables
// carry the uuid unique index the writer's idempotency depends on.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
}
