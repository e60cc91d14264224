package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmojiCategories(t *testing.T) {
	require.Len(t, CategoryOrder, len(EmojiCategories))

	for _, category := range CategoryOrder {
		emojis, ok := EmojiCategories[category]
		require.True(t, ok, "category %q missing from table", category)
		assert.NotEmpty(t, emojis)
	}
}
