package journal_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"surflog/internal/api/controllers"
	"surflog/internal/repositories"
	"surflog/internal/services"
)

var Module = fx.Provide(provideJournalRepo, provideJournalService, controllers.NewJournalController)

func provideJournalRepo(db *gorm.DB) repositories.JournalRepository {
	return repositories.NewJournalRepository(db)
}

func provideJournalService(journalRepo repositories.JournalRepository) services.JournalServiceInterface {
	return services.NewJournalService(journalRepo)
}
