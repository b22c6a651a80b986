package controllers

import (
	"github.com/gin-gonic/gin"
	"surflog/internal/services"
	"surflog/pkg/utils"
)

type BoardsController struct {
	boardService services.BoardServiceInterface
}

func NewBoardsController(boardService services.BoardServiceInterface) *BoardsController {
	return &BoardsController{
		boardService: boardService,
	}
}

// ListBoards godoc
// @Summary List the authenticated user's boards
// @Tags Boards
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /boards [get]
func (b *BoardsController) ListBoards(c *gin.Context) {
	ownerID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	boards, err := b.boardService.ListBoards(c.Request.Context(), ownerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, boards, "Boards fetched successfully")
}

// GetBoardById godoc
// @Summary Get a board
// @Tags Boards
// @Produce json
// @Param boardId path int true "Board ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /boards/{boardId} [get]
func (b *BoardsController) GetBoardById(c *gin.Context) {
	boardID, ok := pathID(c, "boardId")
	if !ok {
		return
	}

	board, err := b.boardService.GetBoardByID(c.Request.Context(), boardID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, board, "Board fetched successfully")
}
