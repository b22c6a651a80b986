package break_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"surflog/internal/api/controllers"
	"surflog/internal/repositories"
	"surflog/internal/services"
)

var Module = fx.Provide(provideBreakRepo, provideBreakService, controllers.NewBreaksController)

func provideBreakRepo(db *gorm.DB) repositories.BreakRepository {
	return repositories.NewBreakRepository(db)
}

func provideBreakService(breakRepo repositories.BreakRepository) services.BreakServiceInterface {
	return services.NewBreakService(breakRepo)
}
