package board_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"surflog/internal/api/controllers"
	"surflog/internal/repositories"
	"surflog/internal/services"
)

var Module = fx.Provide(provideBoardRepo, provideBoardService, controllers.NewBoardsController)

func provideBoardRepo(db *gorm.DB) repositories.BoardRepository {
	return repositories.NewBoardRepository(db)
}

func provideBoardService(boardRepo repositories.BoardRepository) services.BoardServiceInterface {
	return services.NewBoardService(boardRepo)
}
