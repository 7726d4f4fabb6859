// Package api holds the client's view of PlantVision data: plain Go values
// converted from the wire messages in internal/proto, and cached locally
// as JSON.
package api

import "time"

// Auth

type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"userId"`
	DisplayName  string `json:"displayName"`
	Anonymous    bool   `json:"anonymous"`
}

// Analysis

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
	PossibleOtherDiseases []string `json:"possibleOtherDiseases,omitempty"`
}

type Remedies struct {
	Remedies string `json:"remedies"`
}

type AnalysisResult struct {
	Identification *Identification `json:"identification,omitempty"`
	Diagnosis      *Diagnosis      `json:"diagnosis,omitempty"`
	Remedies       *Remedies       `json:"remedies,omitempty"`
}

type AnalysisRecord struct {
	ID                   string    `json:"id"`
	OwnerID              string    `json:"ownerId"`
	PlantImageURI        string    `json:"plantImageUri"`
	AnalysisDate         time.Time `json:"analysisDate"`
	PlantName            string    `json:"plantName"`
	ScientificName       string    `json:"scientificName"`
	GrowthRate           string    `json:"growthRate"`
	WaterNeeds           string    `json:"waterNeeds"`
	SunlightRequirements string    `json:"sunlightRequirements"`
	IdentifiedDiseases   []string  `json:"identifiedDiseases"`
	RemedySuggestions    string    `json:"remedySuggestions"`
}

type SaveAnalysisResponse struct {
	Record AnalysisRecord `json:"record"`
	// Pending is set when the server accepted the record without waiting
	// for the insert to complete.
	Pending bool `json:"pending,omitempty"`
}

// Growth notes and timeline

type GrowthNote struct {
	ID         string    `json:"id"`
	AnalysisID string    `json:"analysisId"`
	UserID     string    `json:"userId"`
	NoteDate   time.Time `json:"noteDate"`
	Note       string    `json:"note"`
	ImageURL   string    `json:"imageUrl,omitempty"`
}

const (
	EntryKindAnalysis = "analysis"
	EntryKindNote     = "note"
)

type TimelineEntry struct {
	Kind   string          `json:"kind"`
	At     time.Time       `json:"at"`
	Record *AnalysisRecord `json:"record,omitempty"`
	Note   *GrowthNote     `json:"note,omitempty"`
}

// Progress

type RankState struct {
	XP              int    `json:"xp"`
	RankName        string `json:"rankName"`
	ProgressPercent int    `json:"progressPercent"`
	XPToNextRank    int    `json:"xpToNextRank"`
}

type GetRankResponse struct {
	Rank          RankState `json:"rank"`
	SavedAnalyses int       `json:"savedAnalyses"`
}

type LeaderboardEntry struct {
	Position    int    `json:"position"`
	DisplayName string `json:"displayName"`
	XP          int    `json:"xp"`
	RankName    string `json:"rankName"`
}

// Settings

type Settings struct {
	AIScanAccuracy   string `json:"aiScanAccuracy"`
	IsRealTimeScan   bool   `json:"isRealTimeScan"`
	IsVoiceAssistant bool   `json:"isVoiceAssistant"`
	IsOrganicOnly    bool   `json:"isOrganicOnly"`
	SkillLevel       string `json:"skillLevel"`
	IsPetSafe        bool   `json:"isPetSafe"`
	IsChildSafe      bool   `json:"isChildSafe"`
	Language         string `json:"language"`
}

// SettingsPatch carries only the fields the caller wants to change.
type SettingsPatch struct {
	AIScanAccuracy   *string `json:"aiScanAccuracy,omitempty"`
	IsRealTimeScan   *bool   `json:"isRealTimeScan,omitempty"`
	IsVoiceAssistant *bool   `json:"isVoiceAssistant,omitempty"`
	IsOrganicOnly    *bool   `json:"isOrganicOnly,omitempty"`
	SkillLevel       *string `json:"skillLevel,omitempty"`
	IsPetSafe        *bool   `json:"isPetSafe,omitempty"`
	IsChildSafe      *bool   `json:"isChildSafe,omitempty"`
	Language         *string `json:"language,omitempty"`
}

// Assistant

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
