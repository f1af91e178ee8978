// Package predict runs one form submission through the encoder, the
// classifier and the tiering table. A submission either yields a complete
// Result or an error; there are no partial results.
package predict

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/churnlens/internal/features"
	"github.com/abhisek/churnlens/internal/form"
	"github.com/abhisek/churnlens/internal/locale"
	"github.com/abhisek/churnlens/internal/model"
	"github.com/abhisek/churnlens/internal/risk"
)

// ErrProbabilityRange is returned when the classifier yields a value
// outside [0,1].
var ErrProbabilityRange = errors.New("probability out of range")

// Result is the outcome of one submission.
type Result struct {
	SubmissionID string
	Profile      form.Profile
	Probability  float64
	Percent      float64
	Assessment   risk.Assessment
}

// RetentionPercent is the complement of Percent, so the two always add
// up to 100.
func (r Result) RetentionPercent() float64 {
	return 100 - r.Percent
}

// Predictor holds the classifier for the session.
type Predictor struct {
	classifier model.Classifier
	locale     locale.Locale
	log        *zap.Logger
}

// New creates a Predictor.
func New(c model.Classifier, loc locale.Locale, log *zap.Logger) *Predictor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Predictor{classifier: c, locale: loc, log: log.Named("predict")}
}

// Predict validates the profile, encodes it against the classifier's
// declared features, runs inference and tiers the churn probability.
func (p *Predictor) Predict(ctx context.Context, profile form.Profile) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	id := uuid.NewString()
	log := p.log.With(zap.String("submission_id", id))

	if err := profile.Validate(); err != nil {
		log.Warn("profile rejected", zap.Error(err))
		return Result{}, err
	}

	declared := p.classifier.FeatureNames()
	vec, err := features.Encode(profile, declared)
	if err != nil {
		log.Error("encode failed", zap.Error(err))
		return Result{}, fmt.Errorf("encode profile: %w", err)
	}
	if dropped := features.Dropped(profile, declared); len(dropped) > 0 {
		log.Debug("columns not in declared features", zap.Strings("dropped", dropped))
	}

	proba, err := p.classifier.PredictProba(vec.Values)
	if err != nil {
		log.Error("inference failed", zap.Error(err))
		return Result{}, fmt.Errorf("predict: %w", err)
	}
	if len(proba) != 2 {
		return Result{}, fmt.Errorf("predict: expected 2 class probabilities, got %d", len(proba))
	}
	prob := proba[1]
	if math.IsNaN(prob) || prob < 0 || prob > 1 {
		return Result{}, fmt.Errorf("%w: %v", ErrProbabilityRange, prob)
	}

	percent := RoundPercent(prob)
	assessment := risk.Assess(percent, p.locale)

	log.Info("prediction complete",
		zap.Float64("probability", prob),
		zap.Float64("percent", percent),
		zap.Stringer("tier", assessment.Tier))

	return Result{
		SubmissionID: id,
		Profile:      profile,
		Probability:  prob,
		Percent:      percent,
		Assessment:   assessment,
	}, nil
}

// RoundPercent converts a probability to a percentage with two decimals.
// Rounding is done on the exact binary value of prob*100, half to even,
// so values like 0.30005 (stored just below 30.005) stay at 30.00.
func RoundPercent(prob float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(prob*100, 'f', 2, 64), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
