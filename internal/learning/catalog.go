package learning

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Koushikkd07/Soil-Buddy/internal/soil"
)

// ErrLessonNotFound is returned for an unknown lesson id.
var ErrLessonNotFound = errors.New("lesson not found")

//go:embed catalog.yaml
var defaultCatalog []byte

type Category struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Emoji       string   `yaml:"emoji" json:"emoji"`
	Lessons     []string `yaml:"lessons" json:"lessons"`
}

type Lesson struct {
	ID               string   `yaml:"id" json:"id"`
	Title            string   `yaml:"title" json:"title"`
	Category         string   `yaml:"category" json:"category"`
	Difficulty       string   `yaml:"difficulty" json:"difficulty"`
	EstimatedMinutes int      `yaml:"estimatedMinutes" json:"estimatedTime"`
	Description      string   `yaml:"description" json:"description"`
	Mascot           string   `yaml:"mascot" json:"mascot"`
	Content          []Block  `yaml:"content" json:"content"`
	Quiz             *Quiz    `yaml:"quiz" json:"quiz,omitempty"`
	Prerequisites    []string `yaml:"prerequisites" json:"prerequisites,omitempty"`
	Rewards          Rewards  `yaml:"rewards" json:"rewards"`
}

// Block is one piece of lesson content.
type Block struct {
	Type       string      `yaml:"type" json:"type"`
	Title      string      `yaml:"title" json:"title,omitempty"`
	Content    string      `yaml:"content" json:"content"`
	Connection *Connection `yaml:"connection" json:"soilDataConnection,omitempty"`
	Feedback   *Feedback   `yaml:"feedback" json:"feedback,omitempty"`
}

// Connection ties a content block to a live soil metric.
type Connection struct {
	Metric      soil.Metric `yaml:"metric" json:"metric"`
	Explanation string      `yaml:"explanation" json:"explanation"`
	IdealRange  *Range      `yaml:"idealRange" json:"idealRange,omitempty"`
}

type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

type Feedback struct {
	Correct   string `yaml:"correct" json:"correct"`
	Incorrect string `yaml:"incorrect" json:"incorrect"`
}

type Rewards struct {
	Points int      `yaml:"points" json:"points"`
	Badges []string `yaml:"badges" json:"badges"`
}

type Badge struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Emoji       string `yaml:"emoji" json:"emoji"`
	Category    string `yaml:"category" json:"category"`
	Rarity      string `yaml:"rarity" json:"rarity"`
}

// Catalog is the read-only set of learning content.
type Catalog struct {
	Categories []Category `yaml:"categories"`
	LessonList []Lesson   `yaml:"lessons"`
	Badges     []Badge    `yaml:"badges"`
	Facts      []FunFact  `yaml:"facts"`

	byID map[string]*Lesson
}

// Load parses a YAML catalog.
func Load(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c.byID = make(map[string]*Lesson, len(c.LessonList))
	for i := range c.LessonList {
		l := &c.LessonList[i]
		if _, dup := c.byID[l.ID]; dup {
			return nil, fmt.Errorf("duplicate lesson id %q", l.ID)
		}
		c.byID[l.ID] = l
	}
	for _, l := range c.LessonList {
		for _, pre := range l.Prerequisites {
			if _, ok := c.byID[pre]; !ok {
				return nil, fmt.Errorf("lesson %q: unknown prerequisite %q", l.ID, pre)
			}
		}
	}
	return &c, nil
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Load(defaultCatalog)
}

// Lesson returns the lesson with the given id.
func (c *Catalog) Lesson(id string) (Lesson, error) {
	l, ok := c.byID[id]
	if !ok {
		return Lesson{}, fmt.Errorf("%w: %s", ErrLessonNotFound, id)
	}
	return *l, nil
}

// Lessons returns the lessons of a category in catalog order, or every
// lesson when category is empty.
func (c *Catalog) Lessons(category string) []Lesson {
	out := []Lesson{}
	for _, l := range c.LessonList {
		if category == "" || l.Category == category {
			out = append(out, l)
		}
	}
	return out
}
