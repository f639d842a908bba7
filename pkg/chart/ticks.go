package chart

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/plot"
)

const tickTolerance = 1e-9

// powerTicks labels every integer power of Base inside the axis range. With
// Minor set, the multiples 2..Base-1 of each power get unlabeled ticks.
type powerTicks struct {
	Base  float64
	Minor bool
}

func (t powerTicks) Ticks(min, max float64) []plot.Tick {
	if min <= 0 || max <= min || t.Base <= 1 {
		return nil
	}

	inRange := func(v float64) bool {
		return v >= min*(1-tickTolerance) && v <= max*(1+tickTolerance)
	}

	logBase := math.Log(t.Base)
	lo := math.Floor(math.Log(min)/logBase + tickTolerance)
	hi := math.Ceil(math.Log(max)/logBase - tickTolerance)

	var ticks []plot.Tick
	for e := lo; e <= hi; e++ {
		v := power(t.Base, e)
		if inRange(v) {
			ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)})
		}

		if !t.Minor {
			continue
		}
		for m := 2.0; m < t.Base; m++ {
			if mv := m * v; inRange(mv) {
				ticks = append(ticks, plot.Tick{Value: mv})
			}
		}
	}

	return ticks
}

// power avoids math.Pow for negative exponents so that 10^-2 is exactly the
// float64 closest to 0.01.
func power(base, e float64) float64 {
	if e < 0 {
		return 1 / math.Pow(base, -e)
	}
	return math.Pow(base, e)
}

// byteTicks keeps the default linear tick placement and renders labels as
// SI byte sizes.
func byteTicks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].IsMinor() || ticks[i].Value < 0 {
			continue
		}
		ticks[i].Label = humanize.Bytes(uint64(ticks[i].Value))
	}
	return ticks
}
