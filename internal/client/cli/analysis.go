package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/plantvision/internal/api"
)

const pageSize = 10

var (
	errUsageAnalyze = errors.New("usage: analyze <photo>")
	errUsageShow    = errors.New("usage: show <id> [photo]")
	errUsageList    = errors.New("usage: list [page]")
)

// Analyze submits a photo in the background. A previous analysis that is
// still running is abandoned.
func (a *App) Analyze(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsageAnalyze
	}
	path := strings.Join(args, " ")

	superseded := a.analyses.Running()
	seq, err := a.analyses.Start(ctx, path)
	if err != nil {
		return err
	}
	if superseded {
		a.println("Previous analysis abandoned.")
	}
	a.printf("Analysis #%d started for %s\n", seq, path)
	return nil
}

// Status shows the running or most recent analysis.
func (a *App) Status(ctx context.Context) error {
	if a.analyses.Running() {
		a.println("Analysis in progress...")
		return nil
	}
	cur, ok := a.analyses.Current()
	if !ok {
		a.println("No analysis yet. Use 'analyze <photo>'.")
		return nil
	}
	if cur.Err != nil {
		a.printf("Analysis #%d of %s failed: %s\n", cur.Seq, cur.Value.Path, describeError(cur.Err))
		return nil
	}
	a.printf("Analysis #%d of %s\n", cur.Seq, cur.Value.Path)
	a.printf("%s", formatResult(cur.Value.Result))
	return nil
}

func (a *App) CancelAnalysis(ctx context.Context) error {
	if !a.analyses.Running() {
		a.println("Nothing to cancel.")
		return nil
	}
	a.analyses.Cancel()
	a.println("Analysis cancelled.")
	return nil
}

// Save stores the current analysis in the user's history.
func (a *App) Save(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	resp, err := a.analyses.Save(ctx)
	a.noteConnectivity(err)
	if err != nil {
		return err
	}
	a.printf("Saved %s as %s\n", displayName(resp.Record.PlantName), resp.Record.ID)
	if resp.Pending {
		a.println("The server is still storing it; it will show up in 'list' shortly.")
	}
	return nil
}

// List prints one page of saved analyses, newest first.
func (a *App) List(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return errUsageList
		}
		page = n
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	records, cached, err := a.analyses.List(ctx, pageSize, (page-1)*pageSize)
	a.noteConnectivity(err)
	if err != nil {
		return err
	}
	if cached {
		a.println("(offline: showing cached history)")
	}
	if len(records) == 0 {
		a.println("No saved analyses.")
		return nil
	}
	for _, r := range records {
		a.printf("%s  %s  %s\n", r.ID, r.AnalysisDate.Local().Format("2006-01-02 15:04"), displayName(r.PlantName))
	}
	if len(records) == pageSize {
		a.printf("More: list %d\n", page+1)
	}
	return nil
}

// Show prints a saved analysis. With "photo" the image is also written to
// the photo directory. Remedies are translated to the preferred language
// when the server is reachable.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 || (len(args) == 2 && args[1] != "photo") {
		return errUsageShow
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	rec, cached, err := a.analyses.Get(ctx, args[0])
	a.noteConnectivity(err)
	if err != nil {
		return err
	}
	if cached {
		a.println("(offline: showing cached copy)")
	} else {
		a.translateRemedies(ctx, rec)
	}
	a.printf("%s", formatRecord(rec))

	if len(args) == 2 {
		path, err := a.analyses.SavePhoto(ctx, rec, a.config.PhotoDir)
		if err != nil {
			return err
		}
		a.printf("Photo saved to %s\n", path)
	}
	return nil
}

func (a *App) translateRemedies(ctx context.Context, rec *api.AnalysisRecord) {
	if rec.RemedySuggestions == "" {
		return
	}
	s, err := a.account.Settings(ctx)
	if err != nil || s.Language == "" || strings.EqualFold(s.Language, "english") {
		return
	}
	text, err := a.account.Translate(ctx, rec.RemedySuggestions, s.Language)
	if err == nil && text != "" {
		rec.RemedySuggestions = text
	}
}

func displayName(name string) string {
	if name == "" {
		return "Unknown plant"
	}
	return name
}

func plantName(r *api.AnalysisResult) string {
	if r == nil || r.Identification == nil {
		return "Unknown plant"
	}
	return displayName(r.Identification.CommonName)
}

func formatResult(r *api.AnalysisResult) string {
	var b strings.Builder
	if r == nil {
		return "No result.\n"
	}
	if id := r.Identification; id != nil {
		fmt.Fprintf(&b, "Plant:      %s (%s)\n", displayName(id.CommonName), id.ScientificName)
		fmt.Fprintf(&b, "Growth:     %s\n", id.GrowthRate)
		fmt.Fprintf(&b, "Water:      %s\n", id.WaterNeeds)
		fmt.Fprintf(&b, "Sunlight:   %s\n", id.SunlightRequirements)
	} else {
		b.WriteString("Plant:      not identified\n")
	}
	if d := r.Diagnosis; d != nil {
		fmt.Fprintf(&b, "Diagnosis:  %s (confidence: %s)\n", d.PrimaryDiagnosis, d.Confidence)
		if d.Reasoning != "" {
			fmt.Fprintf(&b, "Reasoning:  %s\n", d.Reasoning)
		}
		if len(d.PossibleOtherDiseases) > 0 {
			fmt.Fprintf(&b, "Also:       %s\n", strings.Join(d.PossibleOtherDiseases, ", "))
		}
	}
	if r.Remedies != nil && r.Remedies.Remedies != "" {
		fmt.Fprintf(&b, "Remedies:\n%s\n", r.Remedies.Remedies)
	}
	return b.String()
}

func formatRecord(r *api.AnalysisRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:         %s\n", r.ID)
	fmt.Fprintf(&b, "Date:       %s\n", r.AnalysisDate.Local().Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Plant:      %s (%s)\n", displayName(r.PlantName), r.ScientificName)
	fmt.Fprintf(&b, "Growth:     %s\n", r.GrowthRate)
	fmt.Fprintf(&b, "Water:      %s\n", r.WaterNeeds)
	fmt.Fprintf(&b, "Sunlight:   %s\n", r.SunlightRequirements)
	if len(r.IdentifiedDiseases) > 0 {
		fmt.Fprintf(&b, "Diseases:   %s\n", strings.Join(r.IdentifiedDiseases, ", "))
	}
	if r.RemedySuggestions != "" {
		fmt.Fprintf(&b, "Remedies:\n%s\n", r.RemedySuggestions)
	}
	return b.String()
}
