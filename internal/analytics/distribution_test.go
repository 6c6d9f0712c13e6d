package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jain-Tirth/Journalite/internal/domain"
)

func TestEmotionDistribution(t *testing.T) {
	engine := NewEngine(ruleScorer{})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		assert.Empty(t, engine.EmotionDistribution(nil))
	})

	t.Run("even split with percentage shares", func(t *testing.T) {
		entries := []domain.Entry{
			entryOn(t, "2026-08-01", 9, "happy", "a"),
			entryOn(t, "2026-08-01", 10, "happy", "b"),
			entryOn(t, "2026-08-02", 9, "sad", "c"),
			entryOn(t, "2026-08-02", 10, "sad", "d"),
		}

		distribution := engine.EmotionDistribution(entries)

		require.Len(t, distribution, 2)
		total := 0.0
		for _, share := range distribution {
			total += share.Value
			assert.Equal(t, 2, share.Count)
			assert.Equal(t, 50.0, share.Value)
		}
		assert.InDelta(t, 100.0, total, 0.2)
		// Equal shares sort alphabetically.
		assert.Equal(t, "happy", distribution[0].Name)
		assert.Equal(t, "sad", distribution[1].Name)
	})

	t.Run("unset mood counts as neutral with fallback emoji", func(t *testing.T) {
		entries := []domain.Entry{entryOn(t, "2026-08-01", 9, "", "a")}

		distribution := engine.EmotionDistribution(entries)

		require.Len(t, distribution, 1)
		assert.Equal(t, "neutral", distribution[0].Name)
		assert.Equal(t, "😐", distribution[0].Emoji)
	})

	t.Run("unknown mood keeps its label with default emoji", func(t *testing.T) {
		entries := []domain.Entry{entryOn(t, "2026-08-01", 9, "nostalgic", "a")}

		distribution := engine.EmotionDistribution(entries)

		require.Len(t, distribution, 1)
		assert.Equal(t, "nostalgic", distribution[0].Name)
		assert.Equal(t, "😐", distribution[0].Emoji)
	})

	t.Run("rising occurrence reads as increasing", func(t *testing.T) {
		entries := []domain.Entry{
			entryOn(t, "2026-08-01", 9, "happy", "a"),
			entryOn(t, "2026-08-02", 9, "happy", "b"),
			entryOn(t, "2026-08-03", 9, "happy", "c"),
			entryOn(t, "2026-08-03", 10, "happy", "d"),
			entryOn(t, "2026-08-03", 11, "happy", "e"),
			entryOn(t, "2026-08-04", 9, "happy", "f"),
			entryOn(t, "2026-08-04", 10, "happy", "g"),
			entryOn(t, "2026-08-04", 11, "happy", "h"),
		}

		distribution := engine.EmotionDistribution(entries)

		require.Len(t, distribution, 1)
		// Daily counts 1,1,3,3: tail mean (1+3+3)/3 vs head mean (1+1+3)/3.
		assert.Equal(t, "increasing", distribution[0].Trend)
	})

	t.Run("single date is stable", func(t *testing.T) {
		entries := []domain.Entry{
			entryOn(t, "2026-08-01", 9, "calm", "a"),
			entryOn(t, "2026-08-01", 10, "calm", "b"),
		}

		distribution := engine.EmotionDistribution(entries)

		require.Len(t, distribution, 1)
		assert.Equal(t, "stable", distribution[0].Trend)
	})
}
