package provider

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/logging"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func textResponse(s string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: s}}},
		}},
	}
}

type recordedCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

func fakeGen(reply string, err error, calls *[]recordedCall) generateFunc {
	return func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		*calls = append(*calls, recordedCall{model: model, contents: contents, config: cfg})
		if err != nil {
			return nil, err
		}
		return textResponse(reply), nil
	}
}

var leaf = Image{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}}

func TestIdentify_OK(t *testing.T) {
	var calls []recordedCall
	g := newGemini(fakeGen(`{"commonName":"Monstera","scientificName":"Monstera deliciosa","growthRate":"Fast","waterNeeds":"Moderate","sunlightRequirements":"Bright indirect"}`, nil, &calls), "m-1", 0, logging.Nop{})

	id, err := g.Identify(context.Background(), leaf)
	require.NoError(t, err)
	assert.Equal(t, &models.Identification{
		CommonName: "Monstera", ScientificName: "Monstera deliciosa",
		GrowthRate: "Fast", WaterNeeds: "Moderate", SunlightRequirements: "Bright indirect",
	}, id)

	require.Len(t, calls, 1)
	assert.Equal(t, "m-1", calls[0].model)
	assert.Equal(t, "application/json", calls[0].config.ResponseMIMEType)
	assert.Same(t, identificationSchema, calls[0].config.ResponseSchema)

	parts := calls[0].contents[0].Parts
	require.Len(t, parts, 2)
	assert.Equal(t, leaf.Data, parts[1].InlineData.Data)
	assert.Equal(t, "image/jpeg", parts[1].InlineData.MIMEType)
}

func TestIdentify_Incomplete(t *testing.T) {
	var calls []recordedCall
	g := newGemini(fakeGen(`{"commonName":"Monstera"}`, nil, &calls), "m", 0, logging.Nop{})

	_, err := g.Identify(context.Background(), leaf)
	assert.ErrorIs(t, err, common.ErrSchema)
	assert.ErrorContains(t, err, "scientificName")
}

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		wantErr error
		want    *models.Diagnosis
	}{
		{
			name:  "healthy without alternatives",
			reply: `{"primaryDiagnosis":"Healthy","confidence":"High","reasoning":"Leaves are green."}`,
			want:  &models.Diagnosis{PrimaryDiagnosis: "Healthy", Confidence: "High", Reasoning: "Leaves are green.", PossibleOtherDiseases: []string{}},
		},
		{
			name:  "fenced json",
			reply: "```json\n{\"primaryDiagnosis\":\"Leaf Spot\",\"confidence\":\"Medium\",\"reasoning\":\"Brown spots.\",\"possibleOtherDiseases\":[\"Rust\"]}\n```",
			want:  &models.Diagnosis{PrimaryDiagnosis: "Leaf Spot", Confidence: "Medium", Reasoning: "Brown spots.", PossibleOtherDiseases: []string{"Rust"}},
		},
		{
			name:    "unknown confidence",
			reply:   `{"primaryDiagnosis":"Rot","confidence":"Sure","reasoning":"x"}`,
			wantErr: common.ErrSchema,
		},
		{
			name:    "not json",
			reply:   `The plant looks fine.`,
			wantErr: common.ErrSchema,
		},
		{
			name:    "empty",
			reply:   ``,
			wantErr: common.ErrSchema,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []recordedCall
			g := newGemini(fakeGen(tt.reply, nil, &calls), "m", 0, logging.Nop{})
			got, err := g.Diagnose(context.Background(), leaf)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecommendRemedies_PromptCarriesInputs(t *testing.T) {
	var calls []recordedCall
	g := newGemini(fakeGen(`{"remedies":"Neem oil weekly."}`, nil, &calls), "m", 0, logging.Nop{})

	r, err := g.RecommendRemedies(context.Background(), "Tomato", "Early Blight")
	require.NoError(t, err)
	assert.Equal(t, "Neem oil weekly.", r.Remedies)

	prompt := calls[0].contents[0].Parts[0].Text
	assert.Contains(t, prompt, "Plant: Tomato")
	assert.Contains(t, prompt, "Diagnosis: Early Blight")
}

func TestCall_ProviderErrors(t *testing.T) {
	var calls []recordedCall
	cause := errors.New("503 overloaded")
	g := newGemini(fakeGen("", cause, &calls), "m", 0, logging.Nop{})

	_, err := g.Identify(context.Background(), leaf)
	assert.ErrorIs(t, err, common.ErrProvider)
	assert.ErrorIs(t, err, cause)

	_, err = g.Chat(context.Background(), "hi", nil)
	assert.ErrorIs(t, err, common.ErrProvider)
}

func TestCall_Timeout(t *testing.T) {
	slow := func(ctx context.Context, _ string, _ []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	g := newGemini(slow, "m", 20*time.Millisecond, logging.Nop{})

	_, err := g.Diagnose(context.Background(), leaf)
	assert.ErrorIs(t, err, common.ErrProvider)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestChat_History(t *testing.T) {
	var calls []recordedCall
	g := newGemini(fakeGen("  Water it less.  ", nil, &calls), "m", 0, logging.Nop{})

	reply, err := g.Chat(context.Background(), "What now?", []models.ChatMessage{
		{Role: "user", Text: "My fern is yellow"},
		{Role: "assistant", Text: "How often do you water it?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Water it less.", reply)

	contents := calls[0].contents
	require.Len(t, contents, 3)
	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "model", contents[1].Role)
	assert.Equal(t, "What now?", contents[2].Parts[0].Text)
	require.NotNil(t, calls[0].config.SystemInstruction)
}

func TestTranslate(t *testing.T) {
	var calls []recordedCall
	g := newGemini(fakeGen("Riega menos.", nil, &calls), "m", 0, logging.Nop{})

	out, err := g.Translate(context.Background(), "Water less.", "Spanish")
	require.NoError(t, err)
	assert.Equal(t, "Riega menos.", out)
	assert.True(t, strings.Contains(calls[0].contents[0].Parts[0].Text, "into Spanish"))
}

func TestNewGemini(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "", 0, logging.Nop{})
	assert.Error(t, err)

	old := newGenaiClient
	t.Cleanup(func() { newGenaiClient = old })

	newGenaiClient = func(ctx context.Context, cc *genai.ClientConfig) (*genai.Client, error) {
		assert.Equal(t, "key", cc.APIKey)
		assert.Equal(t, genai.BackendGeminiAPI, cc.Backend)
		return nil, errors.New("no network")
	}
	_, err = NewGemini(context.Background(), "key", "", 0, logging.Nop{})
	assert.ErrorContains(t, err, "no network")
}
