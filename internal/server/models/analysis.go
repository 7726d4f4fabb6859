package models

import "time"

// Confidence levels reported by the diagnosis model.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

type Identification struct {
	CommonName           string `json:"commonName"`
	ScientificName       string `json:"scientificName"`
	GrowthRate           string `json:"growthRate"`
	WaterNeeds           string `json:"waterNeeds"`
	SunlightRequirements string `json:"sunlightRequirements"`
}

type Diagnosis struct {
	PrimaryDiagnosis      string   `json:"primaryDiagnosis"`
	Confidence            string   `json:"confidence"`
	Reasoning             string   `json:"reasoning"`
	PossibleOtherDiseases []string `json:"possibleOtherDiseases"`
}

type Remedies struct {
	Remedies string `json:"remedies"`
}

// AnalysisResult is the transient outcome of one analysis run. Remedies is
// only set when both Identification and Diagnosis are present.
type AnalysisResult struct {
	Identification *Identification
	Diagnosis      *Diagnosis
	Remedies       *Remedies
}

// AnalysisRecord is a saved analysis. Records are written once and never
// updated; IdentifiedDiseases[0] is the primary diagnosis label.
type AnalysisRecord struct {
	ID                   string
	OwnerID              string
	PlantImageURI        string
	AnalysisDate         time.Time
	PlantName            string
	ScientificName       string
	GrowthRate           string
	WaterNeeds           string
	SunlightRequirements string
	IdentifiedDiseases   []string
	RemedySuggestions    string
}

// PrimaryDiagnosis returns the first identified disease, or "".
func (r *AnalysisRecord) PrimaryDiagnosis() string {
	if len(r.IdentifiedDiseases) == 0 {
		return ""
	}
	return r.IdentifiedDiseases[0]
}
