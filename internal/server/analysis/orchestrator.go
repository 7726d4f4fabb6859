// Package analysis runs the identify, diagnose and remedies sequence for a
// single plant photo.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/logging"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"github.com/dmitrijs2005/plantvision/internal/server/provider"
	"golang.org/x/sync/errgroup"
)

// Kind classifies a failed run.
type Kind string

const (
	// KindProvider: the model call failed or timed out. Worth retrying.
	KindProvider Kind = "provider"
	// KindSchema: the model answered with something unusable.
	KindSchema Kind = "schema"
)

type Step string

const (
	StepIdentify Step = "identify"
	StepDiagnose Step = "diagnose"
	StepRemedies Step = "remedies"
)

// Failure is the single error value returned by Run.
type Failure struct {
	Kind Kind
	Step Step
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("analysis failed at %s (%s): %v", f.Step, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func fail(step Step, err error) *Failure {
	kind := KindProvider
	if errors.Is(err, common.ErrSchema) {
		kind = KindSchema
	}
	return &Failure{Kind: kind, Step: step, Err: err}
}

// Analyzer is the part of provider.Provider the orchestrator needs.
type Analyzer interface {
	Identify(ctx context.Context, img provider.Image) (*models.Identification, error)
	Diagnose(ctx context.Context, img provider.Image) (*models.Diagnosis, error)
	RecommendRemedies(ctx context.Context, plantName, diagnosis string) (*models.Remedies, error)
}

type Orchestrator struct {
	analyzer Analyzer
	logger   logging.Logger
}

func NewOrchestrator(a Analyzer, logger logging.Logger) *Orchestrator {
	return &Orchestrator{analyzer: a, logger: logger.With("module", "orchestrator")}
}

// Run identifies and diagnoses img concurrently, waits for both, and then
// asks for remedies using the plant's common name and the primary
// diagnosis. The result is complete or Run returns a *Failure; a failed
// identification takes precedence over whatever diagnose returned.
func (o *Orchestrator) Run(ctx context.Context, img provider.Image) (*models.AnalysisResult, error) {
	start := time.Now()

	var (
		id             *models.Identification
		diag           *models.Diagnosis
		idErr, diagErr error
	)

	// both calls settle before the outcome is decided, so the group
	// context is not used to cancel the sibling
	var g errgroup.Group
	g.Go(func() error {
		id, idErr = o.analyzer.Identify(ctx, img)
		return idErr
	})
	g.Go(func() error {
		diag, diagErr = o.analyzer.Diagnose(ctx, img)
		return diagErr
	})
	_ = g.Wait()

	if idErr != nil {
		return nil, o.abort(ctx, fail(StepIdentify, idErr))
	}
	if id == nil {
		return nil, o.abort(ctx, fail(StepIdentify, fmt.Errorf("%w: no identification", common.ErrSchema)))
	}
	if diagErr != nil {
		return nil, o.abort(ctx, fail(StepDiagnose, diagErr))
	}
	if diag == nil {
		return nil, o.abort(ctx, fail(StepDiagnose, fmt.Errorf("%w: no diagnosis", common.ErrSchema)))
	}

	rem, err := o.analyzer.RecommendRemedies(ctx, id.CommonName, diag.PrimaryDiagnosis)
	if err != nil {
		return nil, o.abort(ctx, fail(StepRemedies, err))
	}
	if rem == nil {
		return nil, o.abort(ctx, fail(StepRemedies, fmt.Errorf("%w: no remedies", common.ErrSchema)))
	}

	o.logger.Info(ctx, "analysis finished",
		"plant", id.CommonName,
		"diagnosis", diag.PrimaryDiagnosis,
		"confidence", diag.Confidence,
		"elapsed", time.Since(start),
	)

	return &models.AnalysisResult{Identification: id, Diagnosis: diag, Remedies: rem}, nil
}

func (o *Orchestrator) abort(ctx context.Context, f *Failure) error {
	o.logger.Warn(ctx, "analysis aborted", "step", f.Step, "kind", f.Kind, "error", f.Err)
	return f
}
