package usecases

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/tosinajy/carrier-code-verify/internal/application/directory/dto"
	"github.com/tosinajy/carrier-code-verify/internal/domain/directory"
	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// SuggestionCache memoizes autocomplete answers per term.
type SuggestionCache interface {
	Get(ctx context.Context, term string) ([]directory.Suggestion, bool, error)
	Set(ctx context.Context, term string, suggestions []directory.Suggestion) error
}

var suggestionFields = []directory.SuggestionField{
	directory.FieldPayerName,
	directory.FieldPayerCode,
	directory.FieldCocode,
}

type AutocompleteUseCase struct {
	queryRepo directory.QueryRepository
	cache     SuggestionCache
	logger    logger.Interface
}

// NewAutocompleteUseCase accepts a nil cache.
func NewAutocompleteUseCase(queryRepo directory.QueryRepository, cache SuggestionCache, logger logger.Interface) *AutocompleteUseCase {
	return &AutocompleteUseCase{
		queryRepo: queryRepo,
		cache:     cache,
		logger:    logger,
	}
}

// Execute never fails: short terms and lookup errors both yield an empty list.
func (uc *AutocompleteUseCase) Execute(ctx context.Context, term string) []*dto.SuggestionDTO {
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) < constants.SuggestionMinLength {
		return []*dto.SuggestionDTO{}
	}

	if uc.cache != nil {
		cached, ok, err := uc.cache.Get(ctx, term)
		if err != nil {
			uc.logger.Warnw("suggestion cache read failed", "error", err)
		} else if ok {
			return toSuggestionDTOs(cached)
		}
	}

	suggestions := make([]directory.Suggestion, 0, len(suggestionFields)*constants.SuggestionLimitPerSet)
	for _, field := range suggestionFields {
		values, err := uc.queryRepo.Suggest(ctx, field, term, constants.SuggestionLimitPerSet)
		if err != nil {
			uc.logger.Warnw("autocomplete lookup failed", "field", field, "term", term, "error", err)
			return []*dto.SuggestionDTO{}
		}
		for _, v := range values {
			suggestions = append(suggestions, directory.Suggestion{Label: v, Category: field.Label()})
		}
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, term, suggestions); err != nil {
			uc.logger.Warnw("suggestion cache write failed", "error", err)
		}
	}
	return toSuggestionDTOs(suggestions)
}

func toSuggestionDTOs(suggestions []directory.Suggestion) []*dto.SuggestionDTO {
	out := make([]*dto.SuggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, &dto.SuggestionDTO{Label: s.Label, Category: s.Category})
	}
	return out
}
