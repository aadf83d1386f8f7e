package chart

import (
	"math"

	"github.com/theirongolddev/cbudget/internal/model"
)

// MinBarPct keeps small values visible as a sliver.
const MinBarPct = 6

// Bar is one infographic column.
type Bar struct {
	Region    string
	Value     float64
	HeightPct int
}

// ComputeBars scales each value against the largest one.
// Heights are whole percentages, never below MinBarPct.
func ComputeBars(data []model.RegionDatum) []Bar {
	if len(data) == 0 {
		return nil
	}

	peak := data[0].Value
	for _, d := range data[1:] {
		if d.Value > peak {
			peak = d.Value
		}
	}

	bars := make([]Bar, len(data))
	for i, d := range data {
		pct := MinBarPct
		if peak > 0 {
			if p := int(math.Floor(d.Value/peak*100 + 0.5)); p > MinBarPct {
				pct = p
			}
		}
		bars[i] = Bar{Region: d.Region, Value: d.Value, HeightPct: pct}
	}
	return bars
}
