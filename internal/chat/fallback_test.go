package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Koushikkd07/Soil-Buddy/internal/soil"
)

func TestFallbackReply(t *testing.T) {
	dry := soil.Reading{Moisture: 35, PH: 5.6, Temperature: 22, Nutrients: 70}
	fine := soil.Reading{Moisture: 65, PH: 6.5, Temperature: 22, Nutrients: 70}

	tests := []struct {
		name     string
		message  string
		persona  Persona
		reading  soil.Reading
		contains string
	}{
		{"child thirsty", "Should I WATER my plants?", PersonaChild, dry, "a bit thirsty"},
		{"child moisture fine", "how is the moisture", PersonaChild, fine, "plenty to drink"},
		{"child ph happy", "is my soil ok", PersonaChild, fine, "super happy"},
		{"child ph unhappy", "what about pH", PersonaChild, dry, "needs a little help"},
		{"child other", "tell me a joke", PersonaChild, fine, "great question"},
		{"elder dry", "When to water?", PersonaElder, dry, "immediate watering"},
		{"elder acceptable", "moisture check", PersonaElder, soil.Reading{Moisture: 55}, "acceptable range"},
		{"elder wet", "moisture check", PersonaElder, fine, "Excellent moisture"},
		{"elder acidic", "my pH?", PersonaElder, dry, "acidic soil"},
		{"elder alkaline", "ph please", PersonaElder, soil.Reading{PH: 7.9}, "alkaline soil"},
		{"elder balanced", "ph please", PersonaElder, fine, "Excellent pH range"},
		{"elder other", "what about beetles", PersonaElder, fine, "connectivity issues"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, FallbackReply(tt.message, tt.persona, tt.reading), tt.contains)
		})
	}
}

func TestFallbackReplyQuotesReading(t *testing.T) {
	reply := FallbackReply("water?", PersonaElder, soil.Reading{Moisture: 42.5})
	assert.Contains(t, reply, "42.5%")
}

func TestParsePersona(t *testing.T) {
	p, err := ParsePersona("elder")
	assert.NoError(t, err)
	assert.Equal(t, PersonaElder, p)

	_, err = ParsePersona("teen")
	assert.Error(t, err)
}

func TestSystemPromptEmbedsReading(t *testing.T) {
	r := soil.Reading{Moisture: 61.2, PH: 6.4, Temperature: 21, Nutrients: 77}
	for _, p := range []Persona{PersonaChild, PersonaElder} {
		prompt := SystemPrompt(p, r)
		assert.Contains(t, prompt, "Moisture 61.2%, pH 6.4, Temperature 21°C, Nutrients 77%")
	}
	assert.Contains(t, SystemPrompt(PersonaChild, r), "Soily the Worm")
	assert.Contains(t, SystemPrompt(PersonaElder, r), "Garden Assistant")
}
