package types

import (
	"fmt"
	"os"

	"github.com/moznion/go-optional"
	"gopkg.in/yaml.v3"

	"github.com/kni85/stat-ts/pkg/errors"
)

// Target selects how monetary metrics are scaled and labeled:
// percentage values are multiplied by 100 and suffixed with "%",
// nominal values are kept as-is and suffixed with "pp" (points).
type Target string

const (
	TargetPercentage Target = "pct"
	TargetNominal    Target = "nom"
)

// Suffix returns the unit suffix used in column labels.
func (t Target) Suffix() string {
	if t == TargetNominal {
		return "pp"
	}

	return "%"
}

// Multiplier returns the scaling factor applied to monetary metrics.
func (t Target) Multiplier() float64 {
	if t == TargetNominal {
		return 1
	}

	return 100
}

// Stats is a single row of performance metrics computed from a PnL series.
// Every metric is optional: a series with one point or less produces a row
// where all metrics are None, so consumers can always rely on the same
// schema regardless of which path produced the row.
type Stats struct {
	// ID is the caller-chosen row key (an experiment or strategy id).
	ID string
	// Target records the unit mode the row was computed with.
	Target Target

	// Sharpe is the annualized Sharpe ratio of the daily bars.
	Sharpe optional.Option[float64]
	// Sortino is the annualized Sortino ratio of the daily bars.
	Sortino optional.Option[float64]
	// Kelly is the Kelly criterion position size, in percent.
	Kelly optional.Option[float64]
	// TradesPerYear is the annualized count of non-zero PnL entries.
	TradesPerYear optional.Option[int]
	// ReturnPerYear is the annualized total return.
	ReturnPerYear optional.Option[float64]
	// ReturnPerTrade is the average return per non-zero PnL entry.
	ReturnPerTrade optional.Option[float64]
	// ProfitFactor is the ratio of gross gains to gross losses on daily bars.
	ProfitFactor optional.Option[float64]
	// WinRate is the share of winning days among non-zero days, in percent.
	WinRate optional.Option[float64]
	// AvgWin is the mean positive daily bar.
	AvgWin optional.Option[float64]
	// AvgLoss is the mean negative daily bar.
	AvgLoss optional.Option[float64]
	// MaxWinsInRow is the longest run of consecutive winning days.
	MaxWinsInRow optional.Option[int]
	// MaxLossesInRow is the longest run of consecutive losing days.
	MaxLossesInRow optional.Option[int]
	// MaxDrawdown is the deepest peak-to-trough decline of cumulative PnL.
	MaxDrawdown optional.Option[float64]
}

// EmptyStats returns a row with all metrics unset. This is the defined
// successful result for a series too short to compute statistics on.
func EmptyStats(id string, target Target) Stats {
	return Stats{
		ID:             id,
		Target:         target,
		Sharpe:         optional.None[float64](),
		Sortino:        optional.None[float64](),
		Kelly:          optional.None[float64](),
		TradesPerYear:  optional.None[int](),
		ReturnPerYear:  optional.None[float64](),
		ReturnPerTrade: optional.None[float64](),
		ProfitFactor:   optional.None[float64](),
		WinRate:        optional.None[float64](),
		AvgWin:         optional.None[float64](),
		AvgLoss:        optional.None[float64](),
		MaxWinsInRow:   optional.None[int](),
		MaxLossesInRow: optional.None[int](),
		MaxDrawdown:    optional.None[float64](),
	}
}

// Columns returns the 13 column labels of the stats schema, in order,
// with the unit suffix of the given target substituted.
func Columns(target Target) []string {
	suffix := target.Suffix()

	return []string{
		"sharpe",
		"sortino",
		"Kelly, %",
		"trades/year",
		fmt.Sprintf("return/year, %s", suffix),
		fmt.Sprintf("return/trade, %s", suffix),
		"PF",
		"Win, %",
		fmt.Sprintf("Avg Win, %s", suffix),
		fmt.Sprintf("Avg Loss, %s", suffix),
		"Max wins in row",
		"Max losses in row",
		fmt.Sprintf("Max DD, %s", suffix),
	}
}

// Row returns the metric values aligned with Columns(s.Target).
// Unset metrics are returned as nil.
func (s Stats) Row() []any {
	return []any{
		floatCell(s.Sharpe),
		floatCell(s.Sortino),
		floatCell(s.Kelly),
		intCell(s.TradesPerYear),
		floatCell(s.ReturnPerYear),
		floatCell(s.ReturnPerTrade),
		floatCell(s.ProfitFactor),
		floatCell(s.WinRate),
		floatCell(s.AvgWin),
		floatCell(s.AvgLoss),
		intCell(s.MaxWinsInRow),
		intCell(s.MaxLossesInRow),
		floatCell(s.MaxDrawdown),
	}
}

func floatCell(v optional.Option[float64]) any {
	if v.IsNone() {
		return nil
	}

	return v.Unwrap()
}

func intCell(v optional.Option[int]) any {
	if v.IsNone() {
		return nil
	}

	return v.Unwrap()
}

// MarshalYAML emits the row as a mapping keyed by the column labels,
// preserving the schema order. Unset metrics are emitted as null so the
// 13 keys are always present.
func (s Stats) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	cols := Columns(s.Target)
	for i, value := range s.Row() {
		key := &yaml.Node{}
		key.SetString(cols[i])

		cell := &yaml.Node{}
		if value == nil {
			cell.Kind = yaml.ScalarNode
			cell.Tag = "!!null"
			cell.Value = "null"
		} else if err := cell.Encode(value); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, key, cell)
	}

	return node, nil
}

// WriteStats writes the given rows to a YAML file, keyed by row ID.
func WriteStats(path string, stats []Stats) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	for _, row := range stats {
		key := &yaml.Node{}
		key.SetString(row.ID)

		value, err := row.MarshalYAML()
		if err != nil {
			return errors.Wrap(errors.ErrCodeStatsMarshalFailed, "failed to marshal stats row", err)
		}

		node, ok := value.(*yaml.Node)
		if !ok {
			return errors.Newf(errors.ErrCodeStatsMarshalFailed, "unexpected yaml value for row %q", row.ID)
		}

		doc.Content = append(doc.Content, key, node)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStatsMarshalFailed, "failed to marshal stats to YAML", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeStatsWriteFailed, "failed to write stats to file", err)
	}

	return nil
}
