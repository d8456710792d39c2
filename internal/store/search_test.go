package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_HistoryDedupeAndCap(t *testing.T) {
	s := newTestStore(t)

	for i := 1; i <= 11; i++ {
		require.NoError(t, s.Dispatch(AddToSearchHistory{Term: fmt.Sprintf("term-%d", i)}))
	}

	history := s.Search().SearchHistory
	require.Len(t, history, 10)
	assert.Equal(t, "term-11", history[0])
	assert.Equal(t, "term-2", history[9])
	assert.NotContains(t, history, "term-1")

	require.NoError(t, s.Dispatch(AddToSearchHistory{Term: "term-5"}))
	assert.Equal(t, history, s.Search().SearchHistory)
}

func TestSearch_AddToSearchHistory(t *testing.T) {
	tests := []struct {
		name    string
		history []string
		term    string
		want    []string
	}{
		{"trims input", []string{}, "  orders  ", []string{"orders"}},
		{"ignores empty", []string{"a"}, "   ", []string{"a"}},
		{"case sensitive", []string{"Andi"}, "andi", []string{"andi", "Andi"}},
		{"duplicate after trim", []string{"andi"}, " andi ", []string{"andi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := InitialState(testNow)
			state.Search.SearchHistory = tt.history

			next := Reduce(state, AddToSearchHistory{Term: tt.term}, testNow)
			assert.Equal(t, tt.want, next.Search.SearchHistory)
		})
	}
}

func TestSearch_SetGlobalSearchTermVerbatim(t *testing.T) {
	state := Reduce(InitialState(testNow), SetGlobalSearchTerm{Term: "  Andi "}, testNow)
	assert.Equal(t, "  Andi ", state.Search.GlobalSearchTerm)
}

func TestSearch_ClearSearchKeepsHistory(t *testing.T) {
	state := InitialState(testNow)
	for _, action := range []Action{
		SetGlobalSearchTerm{Term: "andi"},
		AddToSearchHistory{Term: "andi"},
		SetIsSearching{Searching: true},
		SetSearchResults{Results: []SearchResult{{Kind: "order", ID: "ORD005", Label: "Andi Lane"}}},
		ClearSearch{},
	} {
		state = Reduce(state, action, testNow)
	}

	assert.Empty(t, state.Search.GlobalSearchTerm)
	assert.Empty(t, state.Search.SearchResults)
	assert.False(t, state.Search.IsSearching)
	assert.Equal(t, []string{"andi"}, state.Search.SearchHistory)

	state = Reduce(state, ClearSearchHistory{}, testNow)
	assert.Empty(t, state.Search.SearchHistory)
}
