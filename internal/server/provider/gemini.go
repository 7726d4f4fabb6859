package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/logging"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

type generateFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

// seam for tests
var newGenaiClient = genai.NewClient

// Gemini implements Provider on top of the Gemini API.
type Gemini struct {
	generate generateFunc
	model    string
	timeout  time.Duration
	logger   logging.Logger
}

// NewGemini creates a Gemini API client. Each model call is bounded by
// timeout when it is positive.
func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration, logger logging.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := newGenaiClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newGemini(client.Models.GenerateContent, model, timeout, logger), nil
}

func newGemini(gen generateFunc, model string, timeout time.Duration, logger logging.Logger) *Gemini {
	return &Gemini{
		generate: gen,
		model:    model,
		timeout:  timeout,
		logger:   logger.With("module", "gemini"),
	}
}

func (g *Gemini) call(ctx context.Context, step string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.generate(ctx, g.model, contents, cfg)
	if err != nil {
		g.logger.Warn(ctx, "model call failed", "step", step, "elapsed", time.Since(start), "error", err)
		return "", fmt.Errorf("%w: %s: %w", common.ErrProvider, step, err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: %s: no response", common.ErrProvider, step)
	}

	g.logger.Debug(ctx, "model call finished", "step", step, "elapsed", time.Since(start))
	return resp.Text(), nil
}

func jsonConfig(schema *genai.Schema) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
		Temperature:      genai.Ptr[float32](0.2),
	}
}

func imageContents(prompt string, img Image) []*genai.Content {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(img.Data, img.MIMEType),
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

func (g *Gemini) Identify(ctx context.Context, img Image) (*models.Identification, error) {
	text, err := g.call(ctx, "identify", imageContents(identifyPrompt, img), jsonConfig(identificationSchema))
	if err != nil {
		return nil, err
	}

	var out models.Identification
	if err := decode(text, &out); err != nil {
		return nil, fmt.Errorf("identify: %w", err)
	}
	if err := validateIdentification(&out); err != nil {
		return nil, fmt.Errorf("identify: %w", err)
	}
	return &out, nil
}

func (g *Gemini) Diagnose(ctx context.Context, img Image) (*models.Diagnosis, error) {
	text, err := g.call(ctx, "diagnose", imageContents(diagnosePrompt, img), jsonConfig(diagnosisSchema))
	if err != nil {
		return nil, err
	}

	var out models.Diagnosis
	if err := decode(text, &out); err != nil {
		return nil, fmt.Errorf("diagnose: %w", err)
	}
	if err := validateDiagnosis(&out); err != nil {
		return nil, fmt.Errorf("diagnose: %w", err)
	}
	return &out, nil
}

func (g *Gemini) RecommendRemedies(ctx context.Context, plantName, diagnosis string) (*models.Remedies, error) {
	prompt := fmt.Sprintf(remediesPrompt, plantName, diagnosis)
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	text, err := g.call(ctx, "remedies", contents, jsonConfig(remediesSchema))
	if err != nil {
		return nil, err
	}

	var out models.Remedies
	if err := decode(text, &out); err != nil {
		return nil, fmt.Errorf("remedies: %w", err)
	}
	if err := validateRemedies(&out); err != nil {
		return nil, fmt.Errorf("remedies: %w", err)
	}
	return &out, nil
}

func (g *Gemini) Chat(ctx context.Context, query string, history []models.ChatMessage) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		role := genai.Role(genai.RoleUser)
		if m.Role != "user" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(query, genai.RoleUser))

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(assistantInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.7),
	}

	reply, err := g.call(ctx, "chat", contents, cfg)
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", fmt.Errorf("chat: %w: empty reply", common.ErrSchema)
	}
	return reply, nil
}

func (g *Gemini) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	prompt := fmt.Sprintf(translatePrompt, targetLanguage, text)
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	out, err := g.call(ctx, "translate", contents, &genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0)})
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", fmt.Errorf("translate: %w: empty reply", common.ErrSchema)
	}
	return out, nil
}
