package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreKeywords(t *testing.T) {
	t.Run("empty text yields no scores", func(t *testing.T) {
		assert.Empty(t, ScoreKeywords(""))
	})

	t.Run("density is matches over word count", func(t *testing.T) {
		// 4 words, "happy" and "glad" both under the happy label.
		scores := ScoreKeywords("happy and glad today")
		require.Contains(t, scores, "happy")
		assert.InDelta(t, 2.0/4.0, scores["happy"], 1e-9)
	})

	t.Run("unmatched emotions are omitted", func(t *testing.T) {
		scores := ScoreKeywords("happy today")
		assert.NotContains(t, scores, "angry")
		assert.NotContains(t, scores, "tired")
	})

	t.Run("shared keywords count toward every owning label", func(t *testing.T) {
		scores := ScoreKeywords("i feel betrayed")
		assert.Contains(t, scores, "angry")
		assert.Contains(t, scores, "heartbroken")
		assert.Contains(t, scores, "cheater")
	})
}

func TestExtractKeywords(t *testing.T) {
	t.Run("deduplicated and sorted", func(t *testing.T) {
		// "sad" belongs to both sad and heartbroken but appears once.
		keywords := ExtractKeywords("sad and betrayed and sad")
		assert.Equal(t, []string{"betrayed", "sad"}, keywords)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		assert.Empty(t, ExtractKeywords("the weather report"))
	})
}
