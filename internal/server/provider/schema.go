package provider

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"google.golang.org/genai"
)

func str(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: desc}
}

var identificationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"commonName":           str("Common name of the plant."),
		"scientificName":       str("Scientific name of the plant."),
		"growthRate":           str("Growth rate of the plant."),
		"waterNeeds":           str("Water needs of the plant."),
		"sunlightRequirements": str("Sunlight requirements of the plant."),
	},
	Required: []string{"commonName", "scientificName", "growthRate", "waterNeeds", "sunlightRequirements"},
}

var confidenceLevels = []string{models.ConfidenceHigh, models.ConfidenceMedium, models.ConfidenceLow}

var diagnosisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"primaryDiagnosis": str(`Most likely disease or deficiency, or "Healthy".`),
		"confidence": {
			Type:        genai.TypeString,
			Description: "Confidence in the diagnosis.",
			Enum:        confidenceLevels,
		},
		"reasoning": str("Step-by-step explanation based on visual evidence."),
		"possibleOtherDiseases": {
			Type:  genai.TypeArray,
			Items: str("Another possible disease."),
		},
	},
	Required: []string{"primaryDiagnosis", "confidence", "reasoning", "possibleOtherDiseases"},
}

var remediesSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"remedies": str("Natural remedies and care tips."),
	},
	Required: []string{"remedies"},
}

// decode unmarshals a model reply into v. Replies wrapped in a markdown
// code fence are accepted.
func decode(text string, v any) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: empty reply", common.ErrSchema)
	}
	if rest, ok := strings.CutPrefix(text, "```"); ok {
		rest = strings.TrimPrefix(rest, "json")
		text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), "```"))
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return fmt.Errorf("%w: %w", common.ErrSchema, err)
	}
	return nil
}

func missing(field string) error {
	return fmt.Errorf("%w: missing %s", common.ErrSchema, field)
}

func validateIdentification(id *models.Identification) error {
	switch {
	case strings.TrimSpace(id.CommonName) == "":
		return missing("commonName")
	case strings.TrimSpace(id.ScientificName) == "":
		return missing("scientificName")
	case strings.TrimSpace(id.GrowthRate) == "":
		return missing("growthRate")
	case strings.TrimSpace(id.WaterNeeds) == "":
		return missing("waterNeeds")
	case strings.TrimSpace(id.SunlightRequirements) == "":
		return missing("sunlightRequirements")
	}
	return nil
}

func validateDiagnosis(d *models.Diagnosis) error {
	if strings.TrimSpace(d.PrimaryDiagnosis) == "" {
		return missing("primaryDiagnosis")
	}
	if !slices.Contains(confidenceLevels, d.Confidence) {
		return fmt.Errorf("%w: confidence %q", common.ErrSchema, d.Confidence)
	}
	if strings.TrimSpace(d.Reasoning) == "" {
		return missing("reasoning")
	}
	if d.PossibleOtherDiseases == nil {
		d.PossibleOtherDiseases = []string{}
	}
	return nil
}

func validateRemedies(r *models.Remedies) error {
	if strings.TrimSpace(r.Remedies) == "" {
		return missing("remedies")
	}
	return nil
}
