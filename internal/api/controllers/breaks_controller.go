package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"surflog/internal/models/request_models"
	"surflog/internal/services"
	"surflog/pkg/utils"
)

type BreaksController struct {
	breakService services.BreakServiceInterface
}

func NewBreaksController(breakService services.BreakServiceInterface) *BreaksController {
	return &BreaksController{
		breakService: breakService,
	}
}

// ListBreaks godoc
// @Summary List surf breaks
// @Description Fetch a paginated list of surf breaks ordered by name
// @Tags Breaks
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /breaks [get]
func (b *BreaksController) ListBreaks(c *gin.Context) {
	page, pageSize, ok := pagination(c, 20)
	if !ok {
		return
	}

	breaks, err := b.breakService.ListBreaks(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, breaks, "Breaks fetched successfully")
}

// GetBreakById godoc
// @Summary Get a surf break
// @Description Fetch a single surf break by its ID
// @Tags Breaks
// @Produce json
// @Param breakId path int true "Break ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /breaks/{breakId} [get]
func (b *BreaksController) GetBreakById(c *gin.Context) {
	breakID, ok := pathID(c, "breakId")
	if !ok {
		return
	}

	brk, err := b.breakService.GetBreakByID(c.Request.Context(), breakID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, brk, "Break fetched successfully")
}

// SearchBreaks godoc
// @Summary Search surf breaks
// @Description Search surf breaks by name or region keyword
// @Tags Breaks
// @Produce json
// @Param q query string false "Keyword"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /breaks/search [get]
func (b *BreaksController) SearchBreaks(c *gin.Context) {
	page, pageSize, ok := pagination(c, 20)
	if !ok {
		return
	}

	breaks, err := b.breakService.SearchBreaks(c.Request.Context(), c.Query("q"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, breaks, "Breaks fetched successfully")
}

// CreateBreak godoc
// @Summary Register a surf break
// @Description Add a surf break to the directory
// @Tags Breaks
// @Accept json
// @Produce json
// @Param request body request_models.CreateBreakRequest true "Break payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /breaks [post]
func (b *BreaksController) CreateBreak(c *gin.Context) {
	var req request_models.CreateBreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	createdBy, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	brk, err := b.breakService.CreateBreak(c.Request.Context(), &req, createdBy)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, brk, "Break created successfully")
}
