package soil

import (
	"time"

	"github.com/montanaflynn/stats"
)

// AggregateReadings combines readings from several sensors into a single
// Sample dated at the start of now's day. Each metric is averaged.
func AggregateReadings(now time.Time, readings []SensorReading) Sample {
	if len(readings) == 0 {
		return Sample{Date: truncateDay(now), Reading: Baseline}
	}

	plain := make([]Sample, len(readings))
	for i, r := range readings {
		plain[i] = Sample{Reading: r.Reading}
	}

	return Sample{
		Date:    truncateDay(now),
		Reading: roundReading(averageReading(plain)),
	}
}

// Summarize averages every metric of series. An empty series summarises to
// the Baseline values.
func Summarize(series []Sample) Summary {
	avg := Baseline
	if len(series) > 0 {
		avg = averageReading(series)
	}
	return Summary{
		AverageMoisture:    avg.Moisture,
		AveragePH:          avg.PH,
		AverageTemperature: avg.Temperature,
		AverageNutrients:   avg.Nutrients,
	}
}

func averageReading(series []Sample) Reading {
	var out Reading
	for _, m := range Metrics {
		mean, _ := stats.Mean(Values(series, m))
		out = out.with(m, mean)
	}
	return out
}
