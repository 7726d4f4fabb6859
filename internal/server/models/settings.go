package models

// Settings holds per-user preferences. A user without a stored row gets
// DefaultSettings.
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

func DefaultSettings() Settings {
	return Settings{
		AIScanAccuracy:   "standard",
		IsRealTimeScan:   true,
		IsVoiceAssistant: false,
		IsOrganicOnly:    false,
		SkillLevel:       "beginner",
		IsPetSafe:        true,
		IsChildSafe:      true,
		Language:         "English",
	}
}

// SettingsPatch lists the fields to change; nil fields are kept.
type SettingsPatch struct {
	AIScanAccuracy   *string
	IsRealTimeScan   *bool
	IsVoiceAssistant *bool
	IsOrganicOnly    *bool
	SkillLevel       *string
	IsPetSafe        *bool
	IsChildSafe      *bool
	Language         *string
}

// Apply returns s with every non-nil field of p copied over.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.AIScanAccuracy != nil {
		s.AIScanAccuracy = *p.AIScanAccuracy
	}
	if p.IsRealTimeScan != nil {
		s.IsRealTimeScan = *p.IsRealTimeScan
	}
	if p.IsVoiceAssistant != nil {
		s.IsVoiceAssistant = *p.IsVoiceAssistant
	}
	if p.IsOrganicOnly != nil {
		s.IsOrganicOnly = *p.IsOrganicOnly
	}
	if p.SkillLevel != nil {
		s.SkillLevel = *p.SkillLevel
	}
	if p.IsPetSafe != nil {
		s.IsPetSafe = *p.IsPetSafe
	}
	if p.IsChildSafe != nil {
		s.IsChildSafe = *p.IsChildSafe
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	return s
}
