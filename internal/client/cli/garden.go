package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/plantvision/internal/api"
)

var getMultiline = GetMultiline

var (
	errUsageNote     = errors.New("usage: note <analysis id> [photo]")
	errUsageTimeline = errors.New("usage: timeline <analysis id>")
	errUsageWatch    = errors.New("usage: watch <analysis id>")
)

// Note attaches a growth note, optionally with a photo, to a saved analysis.
func (a *App) Note(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsageNote
	}
	id := args[0]
	photo := strings.Join(args[1:], " ")

	text, err := getMultiline(a.reader, "Enter note", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	n, err := a.garden.AddNote(ctx, id, text, photo)
	a.noteConnectivity(err)
	if err != nil {
		return err
	}
	a.printf("Note %s added.\n", n.ID)
	return nil
}

// Timeline prints the analysis followed by its notes, oldest first.
func (a *App) Timeline(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsageTimeline
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	entries, err := a.garden.Timeline(ctx, args[0])
	a.noteConnectivity(err)
	if err != nil {
		return err
	}
	a.printf("%s", formatTimeline(entries))
	return nil
}

// Watch prints the timeline every time it changes until the user presses
// Enter.
func (a *App) Watch(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsageWatch
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- a.garden.Watch(ctx, args[0], func(entries []api.TimelineEntry) error {
			a.printf("--- timeline updated (%d entries) ---\n%s", len(entries), formatTimeline(entries))
			return nil
		})
	}()

	a.println("Watching; press Enter to stop.")
	_, _ = a.reader.ReadString('\n')
	cancel()

	err := <-done
	a.noteConnectivity(err)
	return err
}

func formatTimeline(entries []api.TimelineEntry) string {
	if len(entries) == 0 {
		return "Timeline is empty.\n"
	}
	var b strings.Builder
	for _, e := range entries {
		at := e.At.Local().Format("2006-01-02 15:04")
		switch e.Kind {
		case api.EntryKindAnalysis:
			name := "analysis"
			if e.Record != nil {
				name = displayName(e.Record.PlantName)
			}
			fmt.Fprintf(&b, "%s  [analysis] %s\n", at, name)
		case api.EntryKindNote:
			if e.Note == nil {
				continue
			}
			fmt.Fprintf(&b, "%s  [note] %s\n", at, e.Note.Note)
			if e.Note.ImageURL != "" {
				fmt.Fprintf(&b, "                   photo attached\n")
			}
		}
	}
	return b.String()
}
