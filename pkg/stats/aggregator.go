// Package stats computes trading-performance statistics from a time-stamped
// PnL series: annualized return ratios (Sharpe, Sortino), profitability
// ratios (profit factor, win rate, Kelly), and streak/drawdown measures.
package stats

import (
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kni85/stat-ts/pkg/errors"
	"github.com/kni85/stat-ts/pkg/logger"
	"github.com/kni85/stat-ts/pkg/types"
)

const defaultDaysInYear = 365

// Request describes one statistics computation. Times and PnL are parallel
// slices: one entry per trade or bar, in any order. PeriodDays is the
// calendar length of the observation window and is only used as the
// annualization denominator.
type Request struct {
	Times []time.Time
	PnL   []float64
	// PeriodDays must be positive for finite annualization.
	PeriodDays int `validate:"gt=0"`
	// RowID keys the resulting row. Defaults to "0".
	RowID string
	// Target selects percentage or nominal scaling. Defaults to percentage.
	Target types.Target `validate:"oneof=pct nom"`
	// DaysInYear is the annualization basis. Defaults to 365.
	DaysInYear int `validate:"gt=0"`
}

// Validate checks the request preconditions. A short series is not a
// validation failure; Compute handles it as a defined degenerate case.
func (r *Request) Validate() error {
	if len(r.Times) != len(r.PnL) {
		return errors.Newf(errors.ErrCodeLengthMismatch,
			"got %d timestamps and %d values", len(r.Times), len(r.PnL))
	}

	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid stats request", err)
	}

	return nil
}

// withDefaults fills the zero-value fields with their documented defaults.
func (r Request) withDefaults() Request {
	if r.RowID == "" {
		r.RowID = "0"
	}

	if r.Target == "" {
		r.Target = types.TargetPercentage
	}

	if r.DaysInYear == 0 {
		r.DaysInYear = defaultDaysInYear
	}

	return r
}

// Aggregator computes stats rows. It holds no state between calls besides
// the logger, so a single instance is safe to share between goroutines.
type Aggregator struct {
	logger *logger.Logger
}

// NewAggregator creates an Aggregator. Pass nil to disable logging.
func NewAggregator(log *logger.Logger) *Aggregator {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Aggregator{
		logger: log,
	}
}

// Compute calculates the full stats row for the given request.
//
// The raw series is resampled into calendar-day bars (entries on the same
// day are summed, days without entries count as zero) and all ratio, streak
// and drawdown metrics are taken from those daily bars, so Sharpe and
// Sortino reflect daily volatility even for intraday input.
//
// A series with one point or less yields an empty row, not an error.
// Degenerate divisors are defined individually: zero deviation makes Sharpe
// and Sortino +Inf, a series with no losing days makes the profit factor
// +Inf, and a zero or non-finite profit factor makes Kelly 0.
func (a *Aggregator) Compute(req Request) (types.Stats, error) {
	req = req.withDefaults()

	if err := req.Validate(); err != nil {
		return types.Stats{}, err
	}

	if len(req.PnL) <= 1 {
		a.logger.Debug("series too short for stats, returning empty row",
			zap.String("row_id", req.RowID),
			zap.Int("points", len(req.PnL)),
		)

		return types.EmptyStats(req.RowID, req.Target), nil
	}

	mul := req.Target.Multiplier()
	annualCoef := float64(req.DaysInYear) / float64(req.PeriodDays)

	total := 0.0
	nonzero := 0

	for _, v := range req.PnL {
		total += v

		if v != 0 {
			nonzero++
		}
	}

	// Annualized trade count truncates toward zero.
	trades := int(float64(nonzero) * annualCoef)
	returnPerYear := total * annualCoef

	returnPerTrade := 0.0
	if nonzero > 0 {
		returnPerTrade = total / float64(nonzero)
	}

	daily := resampleDaily(req.Times, req.PnL)

	a.logger.Debug("resampled series to daily bars",
		zap.String("row_id", req.RowID),
		zap.Int("points", len(req.PnL)),
		zap.Int("days", len(daily)),
	)

	dailyMean := mean(daily)
	sqrtYear := math.Sqrt(float64(req.DaysInYear))

	sharpe := math.Inf(1)
	if std := populationStdDev(daily); std != 0 {
		sharpe = roundTo(dailyMean/std*sqrtYear, 3)
	}

	// Downside deviation: keep losing days, flatten the rest to zero.
	downside := make([]float64, len(daily))
	for i, v := range daily {
		if v < 0 {
			downside[i] = v
		}
	}

	sortino := math.Inf(1)
	if std := populationStdDev(downside); std != 0 {
		sortino = roundTo(dailyMean/std*sqrtYear, 3)
	}

	var (
		positiveSum, negativeSum   float64
		positiveDays, negativeDays int
	)

	for _, v := range daily {
		switch {
		case v > 0:
			positiveSum += v
			positiveDays++
		case v < 0:
			negativeSum += v
			negativeDays++
		}
	}

	nonzeroDays := positiveDays + negativeDays

	profitFactor := math.Inf(1)
	if negativeSum != 0 {
		profitFactor = math.Abs(positiveSum / negativeSum)
	}

	// Zero-PnL days are excluded from the win rate entirely, not counted
	// as losses.
	winRate := 0.0
	if nonzeroDays > 0 {
		winRate = float64(positiveDays) / float64(nonzeroDays)
	}

	kelly := 0.0
	if profitFactor != 0 && !math.IsInf(profitFactor, 1) {
		kelly = roundTo((winRate-(1-winRate)/profitFactor)*100, 2)
	}

	bars := nonzeroBars(daily)
	maxWins := longestStreak(bars, true)
	maxLosses := longestStreak(bars, false)

	maxDrawdown := 0.0

	if len(bars) > 0 {
		cumulative := 0.0
		peak := math.Inf(-1)
		worst := math.Inf(1)

		for _, v := range bars {
			cumulative += v
			if cumulative > peak {
				peak = cumulative
			}

			if dd := cumulative - peak; dd < worst {
				worst = dd
			}
		}

		maxDrawdown = roundTo(worst*mul, 2)
	}

	avgWin := 0.0
	if positiveDays > 0 {
		avgWin = roundTo(positiveSum/float64(positiveDays)*mul, 3)
	}

	avgLoss := 0.0
	if negativeDays > 0 {
		avgLoss = roundTo(negativeSum/float64(negativeDays)*mul, 3)
	}

	return types.Stats{
		ID:             req.RowID,
		Target:         req.Target,
		Sharpe:         optional.Some(sharpe),
		Sortino:        optional.Some(sortino),
		Kelly:          optional.Some(kelly),
		TradesPerYear:  optional.Some(trades),
		ReturnPerYear:  optional.Some(roundTo(returnPerYear*mul, 2)),
		ReturnPerTrade: optional.Some(roundTo(returnPerTrade*mul, 3)),
		ProfitFactor:   optional.Some(roundTo(profitFactor, 2)),
		WinRate:        optional.Some(roundTo(winRate*100, 2)),
		AvgWin:         optional.Some(avgWin),
		AvgLoss:        optional.Some(avgLoss),
		MaxWinsInRow:   optional.Some(maxWins),
		MaxLossesInRow: optional.Some(maxLosses),
		MaxDrawdown:    optional.Some(maxDrawdown),
	}, nil
}

// Compute calculates a stats row using a default, non-logging Aggregator.
func Compute(req Request) (types.Stats, error) {
	return NewAggregator(nil).Compute(req)
}

// nonzeroBars returns the daily bars with zero days removed, preserving order.
func nonzeroBars(daily []float64) []float64 {
	bars := make([]float64, 0, len(daily))

	for _, v := range daily {
		if v != 0 {
			bars = append(bars, v)
		}
	}

	return bars
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// populationStdDev computes the standard deviation with N in the
// denominator (ddof=0).
func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	// A constant series has zero variance. The two-pass formula can leave
	// floating-point residue for such series, which would turn an infinite
	// Sharpe into a huge finite one, so detect the case directly.
	constant := true

	for _, v := range values[1:] {
		if v != values[0] {
			constant = false

			break
		}
	}

	if constant {
		return 0
	}

	m := mean(values)
	sum := 0.0

	for _, v := range values {
		d := v - m
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(values)))
}

// roundTo rounds to the given number of decimal places. Infinities and NaN
// pass through unchanged.
func roundTo(v float64, places int32) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}

	rounded, _ := decimal.NewFromFloat(v).Round(places).Float64()

	return rounded
}
