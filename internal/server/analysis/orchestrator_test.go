package analysis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/dmitrijs2005/plantvision/internal/logging"
	"github.com/dmitrijs2005/plantvision/internal/server/models"
	"github.com/dmitrijs2005/plantvision/internal/server/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// the genai client pulls in opencensus, whose view worker starts at init
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

type fakeAnalyzer struct {
	id       *models.Identification
	idErr    error
	idDelay  time.Duration
	diag     *models.Diagnosis
	diagErr  error
	diagWait time.Duration
	rem      *models.Remedies
	remErr   error

	diagDone     atomic.Bool
	mu           sync.Mutex
	remedyCalls  [][2]string
	identifyImgs []provider.Image
}

func (f *fakeAnalyzer) Identify(ctx context.Context, img provider.Image) (*models.Identification, error) {
	time.Sleep(f.idDelay)
	f.mu.Lock()
	f.identifyImgs = append(f.identifyImgs, img)
	f.mu.Unlock()
	return f.id, f.idErr
}

func (f *fakeAnalyzer) Diagnose(ctx context.Context, img provider.Image) (*models.Diagnosis, error) {
	time.Sleep(f.diagWait)
	f.diagDone.Store(true)
	return f.diag, f.diagErr
}

func (f *fakeAnalyzer) RecommendRemedies(ctx context.Context, plantName, diagnosis string) (*models.Remedies, error) {
	f.mu.Lock()
	f.remedyCalls = append(f.remedyCalls, [2]string{plantName, diagnosis})
	f.mu.Unlock()
	return f.rem, f.remErr
}

func okAnalyzer() *fakeAnalyzer {
	return &fakeAnalyzer{
		id:   &models.Identification{CommonName: "Tomato", ScientificName: "Solanum lycopersicum", GrowthRate: "Fast", WaterNeeds: "High", SunlightRequirements: "Full sun"},
		diag: &models.Diagnosis{PrimaryDiagnosis: "Early Blight", Confidence: "High", Reasoning: "Concentric rings", PossibleOtherDiseases: []string{"Septoria"}},
		rem:  &models.Remedies{Remedies: "Remove affected leaves."},
	}
}

var photo = provider.Image{MIMEType: "image/png", Data: []byte("png")}

func TestRun_Success(t *testing.T) {
	f := okAnalyzer()
	o := NewOrchestrator(f, logging.Nop{})

	res, err := o.Run(context.Background(), photo)
	require.NoError(t, err)

	assert.Equal(t, f.id, res.Identification)
	assert.Equal(t, f.diag, res.Diagnosis)
	assert.Equal(t, f.rem, res.Remedies)

	require.Len(t, f.remedyCalls, 1)
	assert.Equal(t, [2]string{"Tomato", "Early Blight"}, f.remedyCalls[0])
	assert.Equal(t, []provider.Image{photo}, f.identifyImgs)
}

func TestRun_IdentifyFailureAbortsRegardlessOfDiagnose(t *testing.T) {
	for _, diagErr := range []error{nil, fmt.Errorf("%w: boom", common.ErrProvider)} {
		f := okAnalyzer()
		f.id = nil
		f.idErr = fmt.Errorf("%w: quota", common.ErrProvider)
		f.diagErr = diagErr
		f.diagWait = 30 * time.Millisecond

		res, err := NewOrchestrator(f, logging.Nop{}).Run(context.Background(), photo)
		assert.Nil(t, res)

		var fl *Failure
		require.ErrorAs(t, err, &fl)
		assert.Equal(t, StepIdentify, fl.Step)
		assert.Equal(t, KindProvider, fl.Kind)
		assert.ErrorIs(t, err, common.ErrProvider)

		assert.Empty(t, f.remedyCalls, "remedies must not be requested")
		assert.True(t, f.diagDone.Load(), "diagnose settles before the run returns")
	}
}

func TestRun_DiagnoseFailure(t *testing.T) {
	f := okAnalyzer()
	f.diag = nil
	f.diagErr = fmt.Errorf("diagnose: %w: confidence \"Sure\"", common.ErrSchema)

	_, err := NewOrchestrator(f, logging.Nop{}).Run(context.Background(), photo)

	var fl *Failure
	require.ErrorAs(t, err, &fl)
	assert.Equal(t, StepDiagnose, fl.Step)
	assert.Equal(t, KindSchema, fl.Kind)
	assert.Empty(t, f.remedyCalls)
}

func TestRun_IncompleteResultsAreSchemaFailures(t *testing.T) {
	f := okAnalyzer()
	f.id = nil

	_, err := NewOrchestrator(f, logging.Nop{}).Run(context.Background(), photo)
	var fl *Failure
	require.ErrorAs(t, err, &fl)
	assert.Equal(t, Failure{Kind: KindSchema, Step: StepIdentify, Err: fl.Err}, *fl)

	f = okAnalyzer()
	f.diag = nil
	_, err = NewOrchestrator(f, logging.Nop{}).Run(context.Background(), photo)
	require.ErrorAs(t, err, &fl)
	assert.Equal(t, StepDiagnose, fl.Step)
	assert.Empty(t, f.remedyCalls)

	f = okAnalyzer()
	f.rem = nil
	_, err = NewOrchestrator(f, logging.Nop{}).Run(context.Background(), photo)
	require.ErrorAs(t, err, &fl)
	assert.Equal(t, StepRemedies, fl.Step)
	assert.Equal(t, KindSchema, fl.Kind)
}

func TestRun_RemediesFailureAbortsWholeRun(t *testing.T) {
	f := okAnalyzer()
	f.rem = nil
	f.remErr = fmt.Errorf("%w: timeout", common.ErrProvider)

	res, err := NewOrchestrator(f, logging.Nop{}).Run(context.Background(), photo)
	assert.Nil(t, res)

	var fl *Failure
	require.ErrorAs(t, err, &fl)
	assert.Equal(t, StepRemedies, fl.Step)
	assert.Equal(t, KindProvider, fl.Kind)
	assert.Len(t, f.remedyCalls, 1)
}

func TestRun_CallsAreConcurrent(t *testing.T) {
	f := okAnalyzer()
	f.idDelay = 100 * time.Millisecond
	f.diagWait = 100 * time.Millisecond

	start := time.Now()
	_, err := NewOrchestrator(f, logging.Nop{}).Run(context.Background(), photo)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 190*time.Millisecond)
}

func TestFailure_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	f := &Failure{Kind: KindProvider, Step: StepDiagnose, Err: cause}
	assert.Equal(t, "analysis failed at diagnose (provider): dial tcp: refused", f.Error())
	assert.ErrorIs(t, f, cause)
}
