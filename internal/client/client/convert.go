package client

import (
	"time"

	"github.com/dmitrijs2005/plantvision/internal/api"
	pb "github.com/dmitrijs2005/plantvision/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func authFromPB(r *pb.AuthResponse) *api.AuthResponse {
	return &api.AuthResponse{
		AccessToken:  r.GetAccessToken(),
		RefreshToken: r.GetRefreshToken(),
		UserID:       r.GetUserId(),
		DisplayName:  r.GetDisplayName(),
		Anonymous:    r.GetAnonymous(),
	}
}

func resultFromPB(r *pb.AnalysisResult) *api.AnalysisResult {
	out := &api.AnalysisResult{}
	if id := r.GetIdentification(); id != nil {
		out.Identification = &api.Identification{
			CommonName:           id.GetCommonName(),
			ScientificName:       id.GetScientificName(),
			GrowthRate:           id.GetGrowthRate(),
			WaterNeeds:           id.GetWaterNeeds(),
			SunlightRequirements: id.GetSunlightRequirements(),
		}
	}
	if d := r.GetDiagnosis(); d != nil {
		out.Diagnosis = &api.Diagnosis{
			PrimaryDiagnosis:      d.GetPrimaryDiagnosis(),
			Confidence:            d.GetConfidence(),
			Reasoning:             d.GetReasoning(),
			PossibleOtherDiseases: d.GetPossibleOtherDiseases(),
		}
	}
	if rem := r.GetRemedies(); rem != nil {
		out.Remedies = &api.Remedies{Remedies: rem.GetRemedies()}
	}
	return out
}

func resultToPB(r api.AnalysisResult) *pb.AnalysisResult {
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
	if r.Remedies != nil {
		out.Remedies = &pb.Remedies{Remedies: r.Remedies.Remedies}
	}
	return out
}

func recordFromPB(r *pb.AnalysisRecord) api.AnalysisRecord {
	return api.AnalysisRecord{
		ID:                   r.GetId(),
		OwnerID:              r.GetOwnerId(),
		PlantImageURI:        r.GetPlantImageUri(),
		AnalysisDate:         asTime(r.GetAnalysisDate()),
		PlantName:            r.GetPlantName(),
		ScientificName:       r.GetScientificName(),
		GrowthRate:           r.GetGrowthRate(),
		WaterNeeds:           r.GetWaterNeeds(),
		SunlightRequirements: r.GetSunlightRequirements(),
		IdentifiedDiseases:   r.GetIdentifiedDiseases(),
		RemedySuggestions:    r.GetRemedySuggestions(),
	}
}

func recordsFromPB(rs []*pb.AnalysisRecord) []api.AnalysisRecord {
	out := make([]api.AnalysisRecord, 0, len(rs))
	for _, r := range rs {
		out = append(out, recordFromPB(r))
	}
	return out
}

func noteFromPB(n *pb.GrowthNote) api.GrowthNote {
	return api.GrowthNote{
		ID:         n.GetId(),
		AnalysisID: n.GetAnalysisId(),
		UserID:     n.GetUserId(),
		NoteDate:   asTime(n.GetNoteDate()),
		Note:       n.GetNote(),
		ImageURL:   n.GetImageUrl(),
	}
}

func notesFromPB(ns []*pb.GrowthNote) []api.GrowthNote {
	out := make([]api.GrowthNote, 0, len(ns))
	for _, n := range ns {
		out = append(out, noteFromPB(n))
	}
	return out
}

func timelineFromPB(es []*pb.TimelineEntry) []api.TimelineEntry {
	out := make([]api.TimelineEntry, 0, len(es))
	for _, e := range es {
		entry := api.TimelineEntry{Kind: e.GetKind(), At: asTime(e.GetAt())}
		if e.GetRecord() != nil {
			rec := recordFromPB(e.GetRecord())
			entry.Record = &rec
		}
		if e.GetNote() != nil {
			note := noteFromPB(e.GetNote())
			entry.Note = &note
		}
		out = append(out, entry)
	}
	return out
}

func rankFromPB(r *pb.GetRankResponse) *api.GetRankResponse {
	st := r.GetRank()
	return &api.GetRankResponse{
		Rank: api.RankState{
			XP:              int(st.GetXp()),
			RankName:        st.GetRankName(),
			ProgressPercent: int(st.GetProgressPercent()),
			XPToNextRank:    int(st.GetXpToNextRank()),
		},
		SavedAnalyses: int(r.GetSavedAnalyses()),
	}
}

func leaderboardFromPB(es []*pb.LeaderboardEntry) []api.LeaderboardEntry {
	out := make([]api.LeaderboardEntry, 0, len(es))
	for _, e := range es {
		out = append(out, api.LeaderboardEntry{
			Position:    int(e.GetPosition()),
			DisplayName: e.GetDisplayName(),
			XP:          int(e.GetXp()),
			RankName:    e.GetRankName(),
		})
	}
	return out
}

func settingsFromPB(s *pb.Settings) *api.Settings {
	return &api.Settings{
		AIScanAccuracy:   s.GetAiScanAccuracy(),
		IsRealTimeScan:   s.GetIsRealTimeScan(),
		IsVoiceAssistant: s.GetIsVoiceAssistant(),
		IsOrganicOnly:    s.GetIsOrganicOnly(),
		SkillLevel:       s.GetSkillLevel(),
		IsPetSafe:        s.GetIsPetSafe(),
		IsChildSafe:      s.GetIsChildSafe(),
		Language:         s.GetLanguage(),
	}
}

func patchToPB(p api.SettingsPatch) *pb.SettingsPatch {
	return &pb.SettingsPatch{
		AiScanAccuracy:   p.AIScanAccuracy,
		IsRealTimeScan:   p.IsRealTimeScan,
		IsVoiceAssistant: p.IsVoiceAssistant,
		IsOrganicOnly:    p.IsOrganicOnly,
		SkillLevel:       p.SkillLevel,
		IsPetSafe:        p.IsPetSafe,
		IsChildSafe:      p.IsChildSafe,
		Language:         p.Language,
	}
}

func historyToPB(history []api.ChatMessage) []*pb.ChatMessage {
	out := make([]*pb.ChatMessage, 0, len(history))
	for _, m := range history {
		out = append(out, &pb.ChatMessage{Role: m.Role, Text: m.Text})
	}
	return out
}

// asTime keeps an unset timestamp as the zero time rather than the epoch.
func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
