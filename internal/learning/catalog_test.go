package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Koushikkd07/Soil-Buddy/internal/soil"
)

func defaultCatalogT(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	return c
}

func TestDefaultCatalog(t *testing.T) {
	c := defaultCatalogT(t)

	assert.Len(t, c.Categories, 4)
	assert.Len(t, c.Lessons(""), 5)
	assert.Len(t, c.Badges, 6)
	assert.Len(t, c.Facts, 7)

	l, err := c.Lesson("photosynthesis-magic")
	require.NoError(t, err)
	assert.Equal(t, []string{"roots-101"}, l.Prerequisites)
	require.NotNil(t, l.Quiz)
	assert.Equal(t, 70.0, l.Quiz.PassingScore)

	spring, err := c.Lesson("spring-planting")
	require.NoError(t, err)
	assert.Nil(t, spring.Quiz)
}

func TestCatalogLessonsByCategory(t *testing.T) {
	c := defaultCatalogT(t)

	plant := c.Lessons("plant-biology")
	require.Len(t, plant, 2)
	assert.Equal(t, "roots-101", plant[0].ID)
	assert.Equal(t, "photosynthesis-magic", plant[1].ID)

	none := c.Lessons("astronomy")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCatalogLessonNotFound(t *testing.T) {
	_, err := defaultCatalogT(t).Lesson("quantum-compost")
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestLoadRejectsBadCatalogs(t *testing.T) {
	_, err := Load([]byte("lessons:\n  - id: a\n  - id: a\n"))
	assert.ErrorContains(t, err, "duplicate lesson id")

	_, err = Load([]byte("lessons:\n  - id: a\n    prerequisites: [b]\n"))
	assert.ErrorContains(t, err, "unknown prerequisite")

	_, err = Load([]byte("lessons: ["))
	assert.ErrorContains(t, err, "parse catalog")
}

func TestFactsFor(t *testing.T) {
	c := defaultCatalogT(t)

	ids := func(facts []FunFact) []string {
		var out []string
		for _, f := range facts {
			out = append(out, f.ID)
		}
		return out
	}

	dryAcidCold := soil.Reading{Moisture: 30, PH: 5.2, Temperature: 8, Nutrients: 70}
	assert.Equal(t, []string{"fact-1", "fact-2", "fact-3", "fact-4", "fact-5", "fact-6"}, ids(c.FactsFor(dryAcidCold)))

	nominal := soil.Reading{Moisture: 65, PH: 6.8, Temperature: 22, Nutrients: 75}
	assert.Equal(t, []string{"fact-1", "fact-2", "fact-3", "fact-4", "fact-7"}, ids(c.FactsFor(nominal)))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, ConditionLow, Classify(soil.MetricMoisture, 49.9))
	assert.Equal(t, ConditionOptimal, Classify(soil.MetricMoisture, 50))
	assert.Equal(t, ConditionOptimal, Classify(soil.MetricPH, 7.0))
	assert.Equal(t, ConditionHigh, Classify(soil.MetricPH, 7.1))
	assert.Equal(t, ConditionHigh, Classify(soil.MetricTemperature, 31))
}
