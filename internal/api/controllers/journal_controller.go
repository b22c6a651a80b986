package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"surflog/internal/models/request_models"
	"surflog/internal/services"
	"surflog/pkg/utils"
)

type JournalController struct {
	journalService services.JournalServiceInterface
}

func NewJournalController(journalService services.JournalServiceInterface) *JournalController {
	return &JournalController{
		journalService: journalService,
	}
}

// CreateJournalEntry godoc
// @Summary Record a surf session
// @Description Validate and persist a full session journal entry (conditions, crowd, gear, performance, sightings) as one unit
// @Tags Journal
// @Accept json
// @Produce json
// @Param request body request_models.CreateJournalEntryRequest true "Session journal payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journal/entries [post]
func (j *JournalController) CreateJournalEntry(c *gin.Context) {
	var req request_models.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	authorID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	entry, replayed, err := j.journalService.CreateJournalEntry(c.Request.Context(), &req, authorID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if replayed {
		utils.RespondSuccess(c, entry, "Journal entry already synced")
		return
	}
	utils.RespondCreated(c, entry, "Journal entry created successfully")
}

// GetJournalEntryById godoc
// @Summary Get one journal entry
// @Description Fetch a journal entry with all condition groups, scoped to the authenticated author
// @Tags Journal
// @Produce json
// @Param entryId path int true "Journal entry ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journal/entries/{entryId} [get]
func (j *JournalController) GetJournalEntryById(c *gin.Context) {
	entryID, ok := pathID(c, "entryId")
	if !ok {
		return
	}
	authorID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	entry, err := j.journalService.GetJournalEntryByID(c.Request.Context(), entryID, authorID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Journal entry fetched successfully")
}

// ListJournalEntries godoc
// @Summary List journal entries
// @Description Fetch a paginated list of the authenticated author's journal entries, newest first
// @Tags Journal
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journal/entries [get]
func (j *JournalController) ListJournalEntries(c *gin.Context) {
	page, pageSize, ok := pagination(c, 10)
	if !ok {
		return
	}
	authorID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	entries, err := j.journalService.ListJournalEntries(c.Request.Context(), authorID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Journal entries fetched successfully")
}

// UpdateJournalEntry godoc
// @Summary Update a journal entry
// @Description Not supported yet; replace-vs-patch semantics for the condition groups are still open
// @Tags Journal
// @Accept json
// @Produce json
// @Param entryId path int true "Journal entry ID"
// @Failure 501 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journal/entries/{entryId} [put]
func (j *JournalController) UpdateJournalEntry(c *gin.Context) {
	entryID, ok := pathID(c, "entryId")
	if !ok {
		return
	}
	authorID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	var req request_models.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := j.journalService.UpdateJournalEntry(c.Request.Context(), entryID, &req, authorID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Journal entry updated successfully")
}

// DeleteJournalEntry godoc
// @Summary Delete a journal entry
// @Description Not supported yet
// @Tags Journal
// @Produce json
// @Param entryId path int true "Journal entry ID"
// @Failure 501 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journal/entries/{entryId} [delete]
func (j *JournalController) DeleteJournalEntry(c *gin.Context) {
	entryID, ok := pathID(c, "entryId")
	if !ok {
		return
	}
	authorID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	if err := j.journalService.DeleteJournalEntry(c.Request.Context(), entryID, authorID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Journal entry deleted successfully")
}

// GetVocabularyCatalog godoc
// @Summary Get the journal vocabulary catalog
// @Description Every closed enumeration used by journal condition fields, with display labels for form rendering
// @Tags Journal
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /journal/catalog [get]
func (j *JournalController) GetVocabularyCatalog(c *gin.Context) {
	utils.RespondSuccess(c, j.journalService.VocabularyCatalog(), "Vocabulary catalog fetched successfully")
}

func authenticatedAccountID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return 0, false
	}
	return id, true
}

func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func pagination(c *gin.Context, defaultSize int) (int, int, bool) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", strconv.Itoa(defaultSize))

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}
	return page, pageSize, true
}
