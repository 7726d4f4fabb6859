package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/plantvision/internal/proto"
	"github.com/dmitrijs2005/plantvision/internal/server/auth"
	"github.com/dmitrijs2005/plantvision/internal/server/timeline"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func caller(ctx context.Context) (auth.Identity, error) {
	id, ok := identityFrom(ctx)
	if !ok {
		return auth.Identity{}, status.Error(codes.Unauthenticated, "missing identity")
	}
	return id, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.AuthResponse, error) {
	res, err := s.svc.Users.Register(ctx, req.GetEmail(), req.GetPassword(), req.GetDisplayName())
	if err != nil {
		return nil, s.fail(ctx, "RegisterUser", err)
	}
	s.logger.Info(ctx, "Registered", "user_id", res.User.ID)
	return authToPB(res), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {
	res, err := s.svc.Users.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, "Login", err)
	}
	return authToPB(res), nil
}

func (s *GRPCServer) SignInAnonymously(ctx context.Context, req *pb.SignInAnonymouslyRequest) (*pb.AuthResponse, error) {
	res, err := s.svc.Users.SignInAnonymously(ctx)
	if err != nil {
		return nil, s.fail(ctx, "SignInAnonymously", err)
	}
	return authToPB(res), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.AuthResponse, error) {
	res, err := s.svc.Users.RefreshToken(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, s.fail(ctx, "RefreshToken", err)
	}
	return authToPB(res), nil
}

func (s *GRPCServer) Analyze(ctx context.Context, req *pb.AnalyzeRequest) (*pb.AnalyzeResponse, error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	res, err := s.svc.Analyses.Analyze(ctx, req.GetImageDataUri())
	if err != nil {
		return nil, s.fail(ctx, "Analyze", err)
	}
	return &pb.AnalyzeResponse{Result: resultToPB(res)}, nil
}

func (s *GRPCServer) SaveAnalysis(ctx context.Context, req *pb.SaveAnalysisRequest) (*pb.SaveAnalysisResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	rec, pending, err := s.svc.Analyses.Save(ctx, who, req.GetImageDataUri(), resultFromPB(req.GetResult()))
	if err != nil {
		return nil, s.fail(ctx, "SaveAnalysis", err)
	}
	return &pb.SaveAnalysisResponse{Record: recordToPB(*rec), Pending: pending}, nil
}

func (s *GRPCServer) ListAnalyses(ctx context.Context, req *pb.ListAnalysesRequest) (*pb.ListAnalysesResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	recs, err := s.svc.Analyses.List(ctx, who.UserID, int(req.GetLimit()), int(req.GetOffset()))
	if err != nil {
		return nil, s.fail(ctx, "ListAnalyses", err)
	}
	out := make([]*pb.AnalysisRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, recordToPB(r))
	}
	return &pb.ListAnalysesResponse{Records: out}, nil
}

func (s *GRPCServer) GetAnalysis(ctx context.Context, req *pb.GetAnalysisRequest) (*pb.GetAnalysisResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := s.svc.Analyses.Get(ctx, who.UserID, req.GetAnalysisId())
	if err != nil {
		return nil, s.fail(ctx, "GetAnalysis", err)
	}
	return &pb.GetAnalysisResponse{Record: recordToPB(*rec)}, nil
}

func (s *GRPCServer) AddNote(ctx context.Context, req *pb.AddNoteRequest) (*pb.AddNoteResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.svc.Notes.Add(ctx, who.UserID, req.GetAnalysisId(), req.GetNote(), req.GetImageDataUri())
	if err != nil {
		return nil, s.fail(ctx, "AddNote", err)
	}
	return &pb.AddNoteResponse{Note: noteToPB(*n)}, nil
}

func (s *GRPCServer) ListNotes(ctx context.Context, req *pb.ListNotesRequest) (*pb.ListNotesResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	notes, err := s.svc.Notes.List(ctx, who.UserID, req.GetAnalysisId())
	if err != nil {
		return nil, s.fail(ctx, "ListNotes", err)
	}
	out := make([]*pb.GrowthNote, 0, len(notes))
	for _, n := range notes {
		out = append(out, noteToPB(n))
	}
	return &pb.ListNotesResponse{Notes: out}, nil
}

func (s *GRPCServer) GetTimeline(ctx context.Context, req *pb.GetTimelineRequest) (*pb.TimelineResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.svc.Timeline.Get(ctx, who.UserID, req.GetAnalysisId())
	if err != nil {
		return nil, s.fail(ctx, "GetTimeline", err)
	}
	return timelineToPB(entries), nil
}

// WatchTimeline sends the timeline once and again after every change
// until the client goes away.
func (s *GRPCServer) WatchTimeline(req *pb.WatchTimelineRequest, stream grpc.ServerStreamingServer[pb.TimelineResponse]) error {
	who, err := caller(stream.Context())
	if err != nil {
		return err
	}

	// end with the stream or with the server, whichever goes first
	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()
	stop := context.AfterFunc(s.stopping, cancel)
	defer stop()

	err = s.svc.Timeline.Watch(ctx, who.UserID, req.GetAnalysisId(), func(entries []timeline.Entry) error {
		return stream.Send(timelineToPB(entries))
	})
	if err != nil {
		return s.fail(ctx, "WatchTimeline", err)
	}
	if s.stopping.Err() != nil && stream.Context().Err() == nil {
		return status.Error(codes.Unavailable, "server is shutting down")
	}
	return nil
}

func (s *GRPCServer) GetRank(ctx context.Context, req *pb.GetRankRequest) (*pb.GetRankResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	st, n, err := s.svc.Progress.Rank(ctx, who.UserID)
	if err != nil {
		return nil, s.fail(ctx, "GetRank", err)
	}
	return &pb.GetRankResponse{Rank: rankToPB(st), SavedAnalyses: int32(n)}, nil
}

func (s *GRPCServer) GetLeaderboard(ctx context.Context, req *pb.GetLeaderboardRequest) (*pb.GetLeaderboardResponse, error) {
	entries, err := s.svc.Progress.Leaderboard(ctx, int(req.GetLimit()))
	if err != nil {
		return nil, s.fail(ctx, "GetLeaderboard", err)
	}
	out := make([]*pb.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, &pb.LeaderboardEntry{Position: int32(e.Position), DisplayName: e.DisplayName, Xp: int32(e.XP), RankName: e.RankName})
	}
	return &pb.GetLeaderboardResponse{Entries: out}, nil
}

func (s *GRPCServer) GetSettings(ctx context.Context, req *pb.GetSettingsRequest) (*pb.SettingsResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.svc.Settings.Get(ctx, who.UserID)
	if err != nil {
		return nil, s.fail(ctx, "GetSettings", err)
	}
	return &pb.SettingsResponse{Settings: settingsToPB(st)}, nil
}

func (s *GRPCServer) UpdateSettings(ctx context.Context, req *pb.UpdateSettingsRequest) (*pb.SettingsResponse, error) {
	who, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	st, err := s.svc.Settings.Update(ctx, who.UserID, patchFromPB(req.GetPatch()))
	if err != nil {
		return nil, s.fail(ctx, "UpdateSettings", err)
	}
	return &pb.SettingsResponse{Settings: settingsToPB(st)}, nil
}

func (s *GRPCServer) Chat(ctx context.Context, req *pb.ChatRequest) (*pb.ChatResponse, error) {
	reply, err := s.svc.Assistant.Chat(ctx, req.GetQuery(), historyFromPB(req.GetHistory()))
	if err != nil {
		return nil, s.fail(ctx, "Chat", err)
	}
	return &pb.ChatResponse{Reply: reply}, nil
}

func (s *GRPCServer) Translate(ctx context.Context, req *pb.TranslateRequest) (*pb.TranslateResponse, error) {
	return &pb.TranslateResponse{Text: s.svc.Assistant.Translate(ctx, req.GetText(), req.GetTargetLanguage())}, nil
}
