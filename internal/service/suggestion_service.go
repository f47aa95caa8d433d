package service

import (
	"infinityqr-go/internal/apperrors"
	"infinityqr-go/pkg/utils"
)

// SuggestionService proposes custom aliases for a destination, skipping
// aliases already present in the link history.
type SuggestionService struct {
	history *HistoryService
}

func NewSuggestionService(history *HistoryService) *SuggestionService {
	return &SuggestionService{history: history}
}

func (s *SuggestionService) Suggest(rawURL string) ([]string, error) {
	normalized := utils.NormalizeURL(rawURL)
	if err := utils.ValidateTargetURL(normalized); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	var existing []string
	for _, link := range s.history.Links() {
		if link.CustomAlias != "" {
			existing = append(existing, link.CustomAlias)
		}
	}
	return utils.SuggestAliases(normalized, existing), nil
}
