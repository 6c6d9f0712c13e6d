package mood

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"golang.org/x/time/rate"

	"github.com/Jain-Tirth/Journalite/internal/domain"
	"github.com/Jain-Tirth/Journalite/internal/metrics"
)

const generativePrompt = `You analyze the emotional state expressed in a short journal entry.
Respond with the writer's primary mood as a single lowercase word, your
confidence in that call between 0 and 1, and up to three secondary emotions
with their strengths between 0 and 1.`

// generativeResponse is the JSON shape requested from the model.
type generativeResponse struct {
	PrimaryMood       string             `json:"primary_mood"`
	Confidence        float64            `json:"confidence"`
	SecondaryEmotions map[string]float64 `json:"secondary_emotions"`
}

var generativeSchema = generateSchema[generativeResponse]()

func generateSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	schema := reflector.Reflect(v)

	raw, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal generated schema: %v", err))
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("failed to decode generated schema: %v", err))
	}
	return out
}

// OpenAIAnalyzer asks a generative model for a structured mood guess. A
// rate limiter bounds outbound call volume; calls over the limit fail fast
// with ErrUnavailable rather than queueing behind the mood pipeline.
type OpenAIAnalyzer struct {
	client  openai.Client
	model   string
	limiter *rate.Limiter
}

// NewOpenAIAnalyzer creates an analyzer using the given API key and model.
func NewOpenAIAnalyzer(apiKey, model string, callsPerSecond float64) *OpenAIAnalyzer {
	return &OpenAIAnalyzer{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(callsPerSecond), 3),
	}
}

// Analyze requests a structured mood guess for the text. Unparsable model
// output falls back to regex extraction of primary_mood and confidence
// before giving up.
func (a *OpenAIAnalyzer) Analyze(ctx context.Context, text string) (*domain.GenerativeGuess, error) {
	if !a.limiter.Allow() {
		metrics.CollaboratorFailures.WithLabelValues("generative").Inc()
		return nil, domain.ErrUnavailable
	}

	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:   "MoodGuess",
			Schema: generativeSchema,
			Strict: openai.Bool(true),
			Type:   "json_schema",
		},
	}

	resp, err := a.client.Responses.New(ctx, responses.ResponseNewParams{
		Model:           a.model,
		MaxOutputTokens: openai.Int(200),
		Instructions:    openai.String(generativePrompt),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(text, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{Format: format},
	})
	if err != nil {
		metrics.CollaboratorFailures.WithLabelValues("generative").Inc()
		return nil, fmt.Errorf("generative analyze call failed: %w", err)
	}

	guess, err := parseGuess(resp.OutputText())
	if err != nil {
		metrics.CollaboratorFailures.WithLabelValues("generative").Inc()
		return nil, err
	}
	return guess, nil
}

var (
	moodFieldPattern       = regexp.MustCompile(`(?i)"?primary_mood"?\s*[:=]\s*"?([a-z][a-z _-]*)"?`)
	confidenceFieldPattern = regexp.MustCompile(`(?i)"?confidence"?\s*[:=]\s*([0-9]*\.?[0-9]+)`)
)

// parseGuess decodes the model output, preferring strict JSON and falling
// back to regex extraction of the two essential fields when the model
// returned free text around or instead of the JSON object.
func parseGuess(output string) (*domain.GenerativeGuess, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil, fmt.Errorf("generative model returned empty output")
	}

	var parsed generativeResponse
	if err := json.Unmarshal([]byte(output), &parsed); err == nil && parsed.PrimaryMood != "" {
		return &domain.GenerativeGuess{
			PrimaryMood: strings.ToLower(strings.TrimSpace(parsed.PrimaryMood)),
			Confidence:  clamp01(parsed.Confidence),
			Secondary:   domain.SignalScores(parsed.SecondaryEmotions),
		}, nil
	}

	// Best effort: the answer may embed the object in prose, or not be JSON
	// at all.
	moodMatch := moodFieldPattern.FindStringSubmatch(output)
	if moodMatch == nil {
		return nil, fmt.Errorf("generative output unparsable: %q", truncate(output, 120))
	}

	confidence := 0.5
	if confMatch := confidenceFieldPattern.FindStringSubmatch(output); confMatch != nil {
		if v, err := strconv.ParseFloat(confMatch[1], 64); err == nil {
			confidence = clamp01(v)
		}
	}

	return &domain.GenerativeGuess{
		PrimaryMood: strings.ToLower(strings.TrimSpace(moodMatch[1])),
		Confidence:  confidence,
	}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
