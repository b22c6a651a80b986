package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"surflog/cmd/fx/account_fx"
	"surflog/cmd/fx/board_fx"
	"surflog/cmd/fx/break_fx"
	"surflog/cmd/fx/db_fx"
	"surflog/cmd/fx/journal_fx"
	"surflog/internal/api/controllers"
	"surflog/internal/infra"
	"surflog/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		break_fx.Module,
		board_fx.Module,
		journal_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB) error {
	return infra.AutoMigrate(db)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	journalController *controllers.JournalController,
	breaksController *controllers.BreaksController,
	boardsController *controllers.BoardsController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(cors.Default())

	RegisterRoutes(r, journalController, breaksController, boardsController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	journalController *controllers.JournalController,
	breaksController *controllers.BreaksController,
	boardsController *controllers.BoardsController,
	accountController *controllers.AccountController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	breaksGroup := r.Group("/breaks")
	breaksGroup.GET("", breaksController.ListBreaks)
	breaksGroup.GET("/search", breaksController.SearchBreaks)
	breaksGroup.GET("/:breakId", breaksController.GetBreakById)
	breaksGroup.POST("", middleware.JWTAuthMiddleware(), breaksController.CreateBreak)

	journalGroup := r.Group("/journal")
	journalGroup.GET("/catalog", journalController.GetVocabularyCatalog)
	journalGroup.Use(middleware.JWTAuthMiddleware())
	journalGroup.POST("/entries", journalController.CreateJournalEntry)
	journalGroup.GET("/entries", journalController.ListJournalEntries)
	journalGroup.GET("/entries/:entryId", journalController.GetJournalEntryById)
	journalGroup.PUT("/entries/:entryId", journalController.UpdateJournalEntry)
	journalGroup.DELETE("/entries/:entryId", journalController.DeleteJournalEntry)

	boardsGroup := r.Group("/boards")
	boardsGroup.Use(middleware.JWTAuthMiddleware())
	boardsGroup.GET("", boardsController.ListBoards)
	boardsGroup.GET("/:boardId", boardsController.GetBoardById)
}
