package store

import (
	"slices"
	"strings"
	"time"
)

// maxSearchHistory ограничивает длину истории поиска
const maxSearchHistory = 10

// SearchResult представляет одну найденную запись
type SearchResult struct {
	Kind  string `json:"kind"`
	ID    string `json:"id"`
	Label string `json:"label"`
}

// SearchState содержит глобальный поисковый запрос и историю
type SearchState struct {
	GlobalSearchTerm string         `json:"globalSearchTerm"`
	SearchResults    []SearchResult `json:"searchResults"`
	IsSearching      bool           `json:"isSearching"`
	SearchHistory    []string       `json:"searchHistory"`
}

func initialSearch() SearchState {
	return SearchState{
		SearchResults: []SearchResult{},
		SearchHistory: []string{},
	}
}

func (s SearchState) clone() SearchState {
	s.SearchResults = slices.Clone(s.SearchResults)
	s.SearchHistory = slices.Clone(s.SearchHistory)
	return s
}

// SetGlobalSearchTerm устанавливает запрос без изменений
type SetGlobalSearchTerm struct {
	Term string
}

func (SetGlobalSearchTerm) Type() string { return "search/setGlobalSearchTerm" }

func (a SetGlobalSearchTerm) apply(s *State, _ time.Time) {
	s.Search.GlobalSearchTerm = a.Term
}

// AddToSearchHistory добавляет запрос в начало истории.
// Пустые и уже присутствующие запросы игнорируются.
type AddToSearchHistory struct {
	Term string
}

func (AddToSearchHistory) Type() string { return "search/addToSearchHistory" }

func (a AddToSearchHistory) apply(s *State, _ time.Time) {
	term := strings.TrimSpace(a.Term)
	if term == "" || slices.Contains(s.Search.SearchHistory, term) {
		return
	}
	history := slices.Insert(s.Search.SearchHistory, 0, term)
	if len(history) > maxSearchHistory {
		history = history[:maxSearchHistory]
	}
	s.Search.SearchHistory = history
}

// ClearSearchHistory очищает историю поиска
type ClearSearchHistory struct{}

func (ClearSearchHistory) Type() string { return "search/clearSearchHistory" }

func (ClearSearchHistory) apply(s *State, _ time.Time) {
	s.Search.SearchHistory = []string{}
}

// SetSearchResults заменяет результаты поиска
type SetSearchResults struct {
	Results []SearchResult
}

func (SetSearchResults) Type() string { return "search/setSearchResults" }

func (a SetSearchResults) apply(s *State, _ time.Time) {
	s.Search.SearchResults = slices.Clone(a.Results)
}

// SetIsSearching устанавливает флаг активного поиска
type SetIsSearching struct {
	Searching bool
}

func (SetIsSearching) Type() string { return "search/setIsSearching" }

func (a SetIsSearching) apply(s *State, _ time.Time) {
	s.Search.IsSearching = a.Searching
}

// ClearSearch сбрасывает запрос и результаты, история сохраняется
type ClearSearch struct{}

func (ClearSearch) Type() string { return "search/clearSearch" }

func (ClearSearch) apply(s *State, _ time.Time) {
	s.Search.GlobalSearchTerm = ""
	s.Search.SearchResults = []SearchResult{}
	s.Search.IsSearching = false
}
