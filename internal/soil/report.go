package soil

import (
	"time"

	"github.com/google/uuid"
)

// ReportWindow is the span covered by a weekly report.
const ReportWindow = 7 * 24 * time.Hour

const (
	defaultAchievement    = "Garden Explorer - Learning every day!"
	defaultRecommendation = "Your garden is performing well! Keep up the great work."
)

// upcomingTasks is the fixed checklist; reports carry its first maxTasks entries.
var upcomingTasks = []string{
	"Check soil moisture levels daily",
	"Apply organic compost to improve soil structure",
	"Monitor plant growth and health indicators",
	"Test soil pH levels mid-week",
	"Inspect for pest activity and plant diseases",
}

const maxTasks = 3

// BuildReport summarises the last seven days of series, ending now.
func BuildReport(series []Sample) WeeklyReport {
	return BuildReportAt(series, time.Now().UTC())
}

// BuildReportAt is BuildReport with an explicit report time.
func BuildReportAt(series []Sample, now time.Time) WeeklyReport {
	start := now.Add(-ReportWindow)
	week := Window(series, start, now)

	summary := Summarize(week)
	trends := AnalyzeSeries(week)

	return WeeklyReport{
		ID:              "report-" + uuid.NewString(),
		PeriodStart:     start,
		PeriodEnd:       now,
		Summary:         summary,
		Trends:          trends,
		Achievements:    achievements(summary, trends, len(week) > 0),
		Recommendations: recommendations(summary),
		UpcomingTasks:   append([]string(nil), upcomingTasks[:maxTasks]...),
	}
}

// Window returns the samples of series dated within [from, to], inclusive.
func Window(series []Sample, from, to time.Time) []Sample {
	var out []Sample
	for _, s := range series {
		if !s.Date.Before(from) && !s.Date.After(to) {
			out = append(out, s)
		}
	}
	return out
}

// achievements are only earned from measured data; a report over an empty
// window gets the default entry even though its baseline averages would qualify.
func achievements(s Summary, t Trends, measured bool) []string {
	if !measured {
		return []string{defaultAchievement}
	}

	var out []string
	if s.AverageMoisture > 70 {
		out = append(out, "Water Master - Kept soil perfectly moist!")
	}
	if s.AveragePH >= 6.0 && s.AveragePH <= 7.0 {
		out = append(out, "pH Perfect - Balanced soil chemistry!")
	}
	if s.AverageTemperature >= 18 && s.AverageTemperature <= 25 {
		out = append(out, "Temperature Keeper - Ideal growing conditions!")
	}
	if s.AverageNutrients > 75 {
		out = append(out, "Plant Feeder - Well-nourished garden!")
	}
	if t.Moisture.Kind == TrendImproving {
		out = append(out, "Improvement Expert - Moisture levels getting better!")
	}
	if len(out) == 0 {
		out = []string{defaultAchievement}
	}
	return out
}

func recommendations(s Summary) []string {
	var out []string
	if s.AverageMoisture < 50 {
		out = append(out, "Increase watering frequency to maintain optimal soil moisture levels.")
	}
	switch {
	case s.AveragePH < 6.0:
		out = append(out, "Consider adding lime to raise soil pH to optimal range (6.0-7.0).")
	case s.AveragePH > 7.5:
		out = append(out, "Consider adding organic matter to lower soil pH to optimal range.")
	}
	if s.AverageNutrients < 60 {
		out = append(out, "Apply balanced organic fertilizer to boost nutrient levels.")
	}
	if s.AverageTemperature < 15 {
		out = append(out, "Consider using mulch to help regulate soil temperature.")
	}
	if len(out) == 0 {
		out = []string{defaultRecommendation}
	}
	return out
}
