package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jain-Tirth/Journalite/internal/domain"
)

func TestParseGuess(t *testing.T) {
	t.Run("strict JSON", func(t *testing.T) {
		guess, err := parseGuess(`{"primary_mood":"Happy","confidence":0.85,"secondary_emotions":{"excited":0.4}}`)

		require.NoError(t, err)
		assert.Equal(t, "happy", guess.PrimaryMood)
		assert.InDelta(t, 0.85, guess.Confidence, 1e-9)
		assert.InDelta(t, 0.4, guess.Secondary["excited"], 1e-9)
	})

	t.Run("confidence is clamped", func(t *testing.T) {
		guess, err := parseGuess(`{"primary_mood":"happy","confidence":3.2}`)

		require.NoError(t, err)
		assert.Equal(t, 1.0, guess.Confidence)
	})

	t.Run("fields embedded in prose", func(t *testing.T) {
		output := `The writer seems down. primary_mood: "sad", confidence: 0.7 overall.`
		guess, err := parseGuess(output)

		require.NoError(t, err)
		assert.Equal(t, "sad", guess.PrimaryMood)
		assert.InDelta(t, 0.7, guess.Confidence, 1e-9)
	})

	t.Run("mood without confidence defaults to 0.5", func(t *testing.T) {
		guess, err := parseGuess(`primary_mood = anxious`)

		require.NoError(t, err)
		assert.Equal(t, "anxious", guess.PrimaryMood)
		assert.Equal(t, 0.5, guess.Confidence)
	})

	t.Run("empty output is an error", func(t *testing.T) {
		_, err := parseGuess("   ")
		assert.Error(t, err)
	})

	t.Run("unparsable output is an error", func(t *testing.T) {
		_, err := parseGuess("42")
		assert.Error(t, err)
	})
}

func TestGenerativeSchema(t *testing.T) {
	require.NotNil(t, generativeSchema)
	assert.Equal(t, "object", generativeSchema["type"])

	props, ok := generativeSchema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "primary_mood")
	assert.Contains(t, props, "confidence")
	assert.Contains(t, props, "secondary_emotions")
}

func TestOpenAIAnalyzerRateLimit(t *testing.T) {
	// Burst of 3; the limiter rejects the fourth immediate call without
	// touching the network.
	analyzer := NewOpenAIAnalyzer("test-key", "test-model", 0.001)
	for range 3 {
		analyzer.limiter.Allow()
	}

	_, err := analyzer.Analyze(t.Context(), "hello")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
