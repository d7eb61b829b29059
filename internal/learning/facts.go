package learning

import "github.com/Koushikkd07/Soil-Buddy/internal/soil"

// Condition of a metric relative to its optimal range.
type Condition string

const (
	ConditionLow     Condition = "low"
	ConditionHigh    Condition = "high"
	ConditionOptimal Condition = "optimal"
)

type FunFact struct {
	ID            string   `yaml:"id" json:"id"`
	Category      string   `yaml:"category" json:"category"`
	Fact          string   `yaml:"fact" json:"fact"`
	Emoji         string   `yaml:"emoji" json:"emoji"`
	RelatedLesson string   `yaml:"relatedLesson" json:"relatedLesson,omitempty"`
	Trigger       *Trigger `yaml:"trigger" json:"soilDataTrigger,omitempty"`
}

// Trigger limits a fact to readings where metric is in the given condition.
type Trigger struct {
	Metric    soil.Metric `yaml:"metric" json:"metric"`
	Condition Condition   `yaml:"condition" json:"condition"`
}

var optimal = map[soil.Metric]Range{
	soil.MetricMoisture:    {Min: 50, Max: 80},
	soil.MetricPH:          {Min: 6.0, Max: 7.0},
	soil.MetricTemperature: {Min: 15, Max: 30},
	soil.MetricNutrients:   {Min: 60, Max: 100},
}

// Classify places a metric value relative to its optimal range.
func Classify(m soil.Metric, v float64) Condition {
	r := optimal[m]
	switch {
	case v < r.Min:
		return ConditionLow
	case v > r.Max:
		return ConditionHigh
	default:
		return ConditionOptimal
	}
}

// FactsFor returns the facts relevant to a reading: untriggered facts plus
// those whose trigger matches.
func (c *Catalog) FactsFor(r soil.Reading) []FunFact {
	out := []FunFact{}
	for _, f := range c.Facts {
		if f.Trigger == nil || Classify(f.Trigger.Metric, r.Value(f.Trigger.Metric)) == f.Trigger.Condition {
			out = append(out, f)
		}
	}
	return out
}
