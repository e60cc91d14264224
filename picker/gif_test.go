package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchGifs(t *testing.T) {
	tcases := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "empty query returns all",
			query: "",
			want:  []string{"Laughing", "Happy", "Clapping", "Love", "Dancing", "OK", "No", "Surprised"},
		},
		{
			name:  "substring match",
			query: "lov",
			want:  []string{"Love"},
		},
		{
			name:  "case insensitive",
			query: "LAUGH",
			want:  []string{"Laughing"},
		},
		{
			name:  "matches multiple",
			query: "o",
			want:  []string{"Love", "OK", "No"},
		},
		{
			name:  "no match",
			query: "zzz",
			want:  []string{},
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			matches := SearchGifs(tc.query)
			names := make([]string, 0, len(matches))
			for _, gif := range matches {
				names = append(names, gif.Name)
				assert.NotEmpty(t, gif.URL)
			}
			assert.Equal(t, tc.want, names)
		})
	}
}

func TestPopularGifsTable(t *testing.T) {
	require.Len(t, PopularGifs, 8)
	for _, gif := range PopularGifs {
		assert.NotEmpty(t, gif.Name)
		assert.Contains(t, gif.URL, "https://")
	}
}
