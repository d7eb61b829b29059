package chat

import "fmt"

// Persona selects the assistant's voice.
type Persona string

const (
	PersonaChild Persona = "child"
	PersonaElder Persona = "elder"
)

// ParsePersona validates a persona name.
func ParsePersona(s string) (Persona, error) {
	switch p := Persona(s); p {
	case PersonaChild, PersonaElder:
		return p, nil
	default:
		return "", fmt.Errorf("invalid persona %q; use child or elder", s)
	}
}

// generation holds per-persona completion settings.
type generation struct {
	maxTokens   int32
	temperature float32
}

var generations = map[Persona]generation{
	PersonaChild: {maxTokens: 150, temperature: 0.8},
	PersonaElder: {maxTokens: 300, temperature: 0.7},
}
