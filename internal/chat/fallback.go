package chat

import (
	"fmt"

	"github.com/Koushikkd07/Soil-Buddy/internal/common"
	"github.com/Koushikkd07/Soil-Buddy/internal/soil"
)

// rateLimitedReply is sent instead of a completion when the limiter refuses a request.
func rateLimitedReply(p Persona) string {
	if p == PersonaChild {
		return "Whoa! You're asking so many questions! 🤯 Let me catch my breath for a minute!"
	}
	return "Rate limit exceeded. Please wait a moment before sending another message."
}

// FallbackReply answers from canned templates when the completion service is
// unavailable. Replies mention the reading for watering and pH questions.
func FallbackReply(message string, p Persona, r soil.Reading) string {
	if p == PersonaChild {
		return childFallback(message, r)
	}
	return elderFallback(message, r)
}

func childFallback(message string, r soil.Reading) string {
	switch {
	case common.HasAny(message, "water", "moisture"):
		advice := "Your plants have plenty to drink! Great job keeping them happy! 😊"
		if r.Moisture < 50 {
			advice = "Your plants are a bit thirsty! Let's give them some water - they'll be so happy! 💧"
		}
		return fmt.Sprintf("Hi there! 🪱 Your soil moisture is %g%%! %s", r.Moisture, advice)

	case common.HasAny(message, "ph", "soil"):
		advice := "Your soil needs a little help to be happier. We can make it perfect together! 🌱"
		if r.PH >= 6.0 && r.PH <= 7.0 {
			advice = "Your soil is super happy! Perfect for growing amazing plants! 🌟"
		}
		return fmt.Sprintf("Your soil happiness level is %g! 🧪 %s", r.PH, advice)
	}

	return "That's a great question! 🌟 I'm having trouble thinking right now, but I love talking about gardens! Ask me about watering, soil, or how to help your plants grow! 🌱"
}

func elderFallback(message string, r soil.Reading) string {
	switch {
	case common.HasAny(message, "moisture", "water"):
		var advice string
		switch {
		case r.Moisture < 40:
			advice = "This is below optimal levels. I recommend immediate watering with 1-2 inches of water applied slowly."
		case r.Moisture < 60:
			advice = "This is within acceptable range. Monitor daily and water when the top inch feels dry."
		default:
			advice = "Excellent moisture levels. Your current watering schedule is working well."
		}
		return fmt.Sprintf("Your current soil moisture is %g%%. %s", r.Moisture, advice)

	case common.HasAny(message, "ph"):
		var advice string
		switch {
		case r.PH < 6.0:
			advice = "This indicates acidic soil. Consider adding lime to raise pH to the optimal 6.0-7.0 range."
		case r.PH > 7.5:
			advice = "This indicates alkaline soil. Add organic matter or sulfur to lower pH naturally."
		default:
			advice = "Excellent pH range for most plants. This supports optimal nutrient uptake."
		}
		return fmt.Sprintf("Your soil pH is %g. %s", r.PH, advice)
	}

	return "I'm currently experiencing connectivity issues, but I can provide guidance on soil moisture, pH levels, temperature management, and nutrient requirements. What specific aspect would you like to discuss?"
}
