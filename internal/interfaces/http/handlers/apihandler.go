package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/application/directory/dto"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// APIHandler serves the JSON endpoints behind the search box and the NAIC picker.
// They answer with bare arrays and degrade to [] instead of error payloads.
type APIHandler struct {
	searchUC       searchCarriersUseCase
	autocompleteUC autocompleteUseCase
	lookupNaicUC   lookupNaicUseCase
	logger         logger.Interface
}

func NewAPIHandler(
	searchUC searchCarriersUseCase,
	autocompleteUC autocompleteUseCase,
	lookupNaicUC lookupNaicUseCase,
	logger logger.Interface,
) *APIHandler {
	return &APIHandler{
		searchUC:       searchUC,
		autocompleteUC: autocompleteUC,
		lookupNaicUC:   lookupNaicUC,
		logger:         logger,
	}
}

// Search returns carriers matching the term
// @Summary Search carriers
// @Description Substring search over payer code, payer name and NAIC cocode (at most 50 hits)
// @Tags Directory
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} dto.SearchHitDTO
// @Router /api/search [get]
func (h *APIHandler) Search(c *gin.Context) {
	hits, err := h.searchUC.Execute(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.logger.Errorw("carrier search failed", "error", err)
		hits = []*dto.SearchHitDTO{}
	}
	c.JSON(http.StatusOK, hits)
}

// Autocomplete returns up to three suggestions per category
// @Summary Autocomplete suggestions
// @Description Payer name, payer code and NAIC cocode suggestions for terms of two or more characters
// @Tags Directory
// @Produce json
// @Param q query string true "Partial term"
// @Success 200 {array} dto.SuggestionDTO
// @Router /api/autocomplete [get]
func (h *APIHandler) Autocomplete(c *gin.Context) {
	c.JSON(http.StatusOK, h.autocompleteUC.Execute(c.Request.Context(), c.Query("q")))
}

// NaicLookup returns NAIC options for the assignment form
// @Summary NAIC lookup
// @Description NAIC companies whose name or cocode contains the term (at most 20)
// @Tags Admin
// @Produce json
// @Param q query string true "Partial name or cocode"
// @Success 200 {array} dto.NaicOptionDTO
// @Failure 401 {object} utils.APIResponse
// @Router /api/naic-lookup [get]
func (h *APIHandler) NaicLookup(c *gin.Context) {
	options, err := h.lookupNaicUC.Execute(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.logger.Errorw("naic lookup failed", "error", err)
		options = []*dto.NaicOptionDTO{}
	}
	c.JSON(http.StatusOK, options)
}
