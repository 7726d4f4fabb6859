package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/plantvision/internal/api"
	"github.com/dmitrijs2005/plantvision/internal/client/client"
)

const defaultLeaderboardSize = 10

var errUsageLeaderboard = errors.New("usage: leaderboard [n]")

func (a *App) Rank(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	resp, err := a.account.Rank(ctx)
	a.noteConnectivity(err)
	if err != nil {
		return err
	}
	r := resp.Rank
	a.printf("Rank:      %s\n", r.RankName)
	a.printf("XP:        %d\n", r.XP)
	a.printf("Progress:  %s %d%%\n", progressBar(r.ProgressPercent, 20), r.ProgressPercent)
	if r.XPToNextRank > 0 {
		a.printf("Next rank: %d XP to go\n", r.XPToNextRank)
	} else {
		a.println("Next rank: top rank reached")
	}
	a.printf("Saved analyses: %d\n", resp.SavedAnalyses)
	return nil
}

func (a *App) Leaderboard(ctx context.Context, args []string) error {
	limit := defaultLeaderboardSize
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return errUsageLeaderboard
		}
		limit = n
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	entries, err := a.account.Leaderboard(ctx, limit)
	a.noteConnectivity(err)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		a.println("Leaderboard is empty.")
		return nil
	}
	for _, e := range entries {
		a.printf("%3d. %-24s %6d XP  %s\n", e.Position, e.DisplayName, e.XP, e.RankName)
	}
	return nil
}

// Settings prints the preferences, or updates them when key=value pairs are
// given.
func (a *App) Settings(ctx context.Context, args []string) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	var (
		s   *api.Settings
		err error
	)
	if len(args) == 0 {
		s, err = a.account.Settings(ctx)
	} else {
		var patch api.SettingsPatch
		patch, err = parseSettingsPatch(args)
		if err != nil {
			return err
		}
		s, err = a.account.UpdateSettings(ctx, patch)
	}
	a.noteConnectivity(err)
	if err != nil {
		return err
	}
	a.printf("%s", formatSettings(s))
	return nil
}

// Chat runs an assistant conversation until an empty line or "/exit".
// "/reset" starts over.
func (a *App) Chat(ctx context.Context) error {
	a.println("Ask the plant care assistant. Empty line or /exit to leave, /reset to start over.")
	for {
		query, err := getSimpleText(a.reader, "You", a.out)
		if err != nil || query == "" || query == "/exit" {
			return nil
		}
		if query == "/reset" {
			a.account.ResetChat()
			a.println("Conversation cleared.")
			continue
		}

		rctx, cancel := a.requestContext(ctx)
		reply, err := a.account.Chat(rctx, query)
		cancel()
		a.noteConnectivity(err)
		if err != nil {
			if errors.Is(err, client.ErrUnavailable) {
				return err
			}
			a.printf("Error: %s\n", describeError(err))
			continue
		}
		a.printf("Assistant: %s\n", reply)
	}
}

// parseSettingsPatch turns key=value arguments into a patch. Keys accept
// both short names and the field names used on the wire.
func parseSettingsPatch(args []string) (api.SettingsPatch, error) {
	var p api.SettingsPatch
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || value == "" {
			return p, fmt.Errorf("%w: expected key=value, got %q", client.ErrInvalidInput, arg)
		}
		key = strings.ToLower(key)

		switch key {
		case "accuracy", "aiscanaccuracy":
			p.AIScanAccuracy = &value
		case "skill", "skilllevel":
			p.SkillLevel = &value
		case "language", "lang":
			v := strings.ReplaceAll(value, "_", " ")
			p.Language = &v
		case "realtime", "isrealtimescan":
			b, err := parseSwitch(key, value)
			if err != nil {
				return p, err
			}
			p.IsRealTimeScan = &b
		case "voice", "isvoiceassistant":
			b, err := parseSwitch(key, value)
			if err != nil {
				return p, err
			}
			p.IsVoiceAssistant = &b
		case "organic", "isorganiconly":
			b, err := parseSwitch(key, value)
			if err != nil {
				return p, err
			}
			p.IsOrganicOnly = &b
		case "petsafe", "ispetsafe":
			b, err := parseSwitch(key, value)
			if err != nil {
				return p, err
			}
			p.IsPetSafe = &b
		case "childsafe", "ischildsafe":
			b, err := parseSwitch(key, value)
			if err != nil {
				return p, err
			}
			p.IsChildSafe = &b
		default:
			return p, fmt.Errorf("%w: unknown setting %q", client.ErrInvalidInput, key)
		}
	}
	return p, nil
}

func parseSwitch(key, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s expects on/off, got %q", client.ErrInvalidInput, key, value)
	}
	return b, nil
}

func formatSettings(s *api.Settings) string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "accuracy   %s\n", s.AIScanAccuracy)
	fmt.Fprintf(&b, "skill      %s\n", s.SkillLevel)
	fmt.Fprintf(&b, "language   %s\n", s.Language)
	fmt.Fprintf(&b, "realtime   %s\n", onOff(s.IsRealTimeScan))
	fmt.Fprintf(&b, "voice      %s\n", onOff(s.IsVoiceAssistant))
	fmt.Fprintf(&b, "organic    %s\n", onOff(s.IsOrganicOnly))
	fmt.Fprintf(&b, "petsafe    %s\n", onOff(s.IsPetSafe))
	fmt.Fprintf(&b, "childsafe  %s\n", onOff(s.IsChildSafe))
	return b.String()
}

func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
