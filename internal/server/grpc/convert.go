package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/plantvision/internal/proto"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"github.com/dmitrijs2005/plantvision/internal/server/rank"
	"github.com/dmitrijs2005/plantvision/internal/server/services"
	"github.com/dmitrijs2005/plantvision/internal/server/timeline"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func authToPB(r *services.AuthResult) *pb.AuthResponse {
	return &pb.AuthResponse{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		UserId:       r.User.ID,
		DisplayName:  r.User.DisplayName,
		Anonymous:    r.User.IsAnonymous,
	}
}

func resultToPB(r *models.AnalysisResult) *pb.AnalysisResult {
	out := &pb.AnalysisResult{}
	if id := r.Identification; id != nil {
		out.Identification = &pb.Identification{
			CommonName:           id.CommonName,
			ScientificName:       id.ScientificName,
			GrowthRate:           id.GrowthRate,
			WaterNeeds:           id.WaterNeeds,
			SunlightRequirements: id.SunlightRequirements,
		}
	}
	if d := r.Diagnosis; d != nil {
		out.Diagnosis = &pb.Diagnosis{
			PrimaryDiagnosis:      d.PrimaryDiagnosis,
			Confidence:            d.Confidence,
			Reasoning:             d.Reasoning,
			PossibleOtherDiseases: d.PossibleOtherDiseases,
		}
	}
	if rem := r.Remedies; rem != nil {
		out.Remedies = &pb.Remedies{Remedies: rem.Remedies}
	}
	return out
}

func resultFromPB(r *pb.AnalysisResult) *models.AnalysisResult {
	var out models.AnalysisResult
	if id := r.GetIdentification(); id != nil {
		out.Identification = &models.Identification{
			CommonName:           id.GetCommonName(),
			ScientificName:       id.GetScientificName(),
			GrowthRate:           id.GetGrowthRate(),
			WaterNeeds:           id.GetWaterNeeds(),
			SunlightRequirements: id.GetSunlightRequirements(),
		}
	}
	if d := r.GetDiagnosis(); d != nil {
		out.Diagnosis = &models.Diagnosis{
			PrimaryDiagnosis:      d.GetPrimaryDiagnosis(),
			Confidence:            d.GetConfidence(),
			Reasoning:             d.GetReasoning(),
			PossibleOtherDiseases: d.GetPossibleOtherDiseases(),
		}
	}
	if rem := r.GetRemedies(); rem != nil {
		out.Remedies = &models.Remedies{Remedies: rem.GetRemedies()}
	}
	return &out
}

func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func recordToPB(r models.AnalysisRecord) *pb.AnalysisRecord {
	return &pb.AnalysisRecord{
		Id:                   r.ID,
		OwnerId:              r.OwnerID,
		PlantImageUri:        r.PlantImageURI,
		AnalysisDate:         timestamp(r.AnalysisDate),
		PlantName:            r.PlantName,
		ScientificName:       r.ScientificName,
		GrowthRate:           r.GrowthRate,
		WaterNeeds:           r.WaterNeeds,
		SunlightRequirements: r.SunlightRequirements,
		IdentifiedDiseases:   r.IdentifiedDiseases,
		RemedySuggestions:    r.RemedySuggestions,
	}
}

func noteToPB(n models.GrowthNote) *pb.GrowthNote {
	return &pb.GrowthNote{
		Id:         n.ID,
		AnalysisId: n.AnalysisID,
		UserId:     n.UserID,
		NoteDate:   timestamp(n.NoteDate),
		Note:       n.Note,
		ImageUrl:   n.ImageURL,
	}
}

func timelineToPB(entries []timeline.Entry) *pb.TimelineResponse {
	out := make([]*pb.TimelineEntry, 0, len(entries))
	for _, e := range entries {
		te := &pb.TimelineEntry{Kind: string(e.Kind), At: timestamp(e.At)}
		if e.Record != nil {
			te.Record = recordToPB(*e.Record)
		}
		if e.Note != nil {
			te.Note = noteToPB(*e.Note)
		}
		out = append(out, te)
	}
	return &pb.TimelineResponse{Entries: out}
}

func rankToPB(st rank.State) *pb.RankState {
	return &pb.RankState{
		Xp:              int32(st.XP),
		RankName:        st.RankName,
		ProgressPercent: int32(st.ProgressPercent),
		XpToNextRank:    int32(st.XPToNextRank),
	}
}

func settingsToPB(s models.Settings) *pb.Settings {
	return &pb.Settings{
		AiScanAccuracy:   s.AIScanAccuracy,
		IsRealTimeScan:   s.IsRealTimeScan,
		IsVoiceAssistant: s.IsVoiceAssistant,
		IsOrganicOnly:    s.IsOrganicOnly,
		SkillLevel:       s.SkillLevel,
		IsPetSafe:        s.IsPetSafe,
		IsChildSafe:      s.IsChildSafe,
		Language:         s.Language,
	}
}

// patchFromPB keeps field presence: only fields the client set are applied.
func patchFromPB(p *pb.SettingsPatch) models.SettingsPatch {
	if p == nil {
		return models.SettingsPatch{}
	}
	return models.SettingsPatch{
		AIScanAccuracy:   p.AiScanAccuracy,
		IsRealTimeScan:   p.IsRealTimeScan,
		IsVoiceAssistant: p.IsVoiceAssistant,
		IsOrganicOnly:    p.IsOrganicOnly,
		SkillLevel:       p.SkillLevel,
		IsPetSafe:        p.IsPetSafe,
		IsChildSafe:      p.IsChildSafe,
		Language:         p.Language,
	}
}

func historyFromPB(h []*pb.ChatMessage) []models.ChatMessage {
	out := make([]models.ChatMessage, 0, len(h))
	for _, m := range h {
		out = append(out, models.ChatMessage{Role: m.GetRole(), Text: m.GetText()})
	}
	return out
}
