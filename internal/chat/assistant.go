package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Koushikkd07/Soil-Buddy/internal/logger"
	"github.com/Koushikkd07/Soil-Buddy/internal/metrics"
	"github.com/Koushikkd07/Soil-Buddy/internal/soil"
)

// historyTurns is how many prior turns are forwarded to the model.
const historyTurns = 6

var (
	ErrNotConfigured = errors.New("chat api key not configured")
	ErrRateLimited   = errors.New("chat rate limit exceeded")
	ErrEmptyReply    = errors.New("no response from model")
)

// Error texts reported to clients in Response.Error.
const (
	notConfiguredText = "API key not configured"
	rateLimitedText   = "Rate limit exceeded"
)

// errorText maps a failure to the text clients receive.
func errorText(err error) string {
	switch {
	case errors.Is(err, ErrNotConfigured):
		return notConfiguredText
	case errors.Is(err, ErrRateLimited):
		return rateLimitedText
	default:
		return err.Error()
	}
}

// Role of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one prior message of the conversation.
type Turn struct {
	Role    Role   `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// Request is a single chat message with its soil context.
type Request struct {
	Message string
	Reading soil.Reading
	Persona Persona
	History []Turn
}

// Response is the assistant's reply. Success is false when the reply came
// from a fallback template; Error then says why.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Completion is what a Completer receives.
type Completion struct {
	System      string
	History     []Turn
	Message     string
	MaxTokens   int32
	Temperature float32
}

// Completer produces model replies. A nil Completer means no API key is configured.
type Completer interface {
	Complete(ctx context.Context, c Completion) (string, error)
}

// Assistant answers garden questions through a Completer, falling back to
// canned replies when the completer is missing, throttled or failing.
type Assistant struct {
	completer Completer
	limiter   *Limiter
	circuit   *gobreaker.CircuitBreaker
	timeout   time.Duration
}

// NewAssistant creates an Assistant. completer may be nil.
func NewAssistant(completer Completer, limiter *Limiter, timeout time.Duration) *Assistant {
	return &Assistant{
		completer: completer,
		limiter:   limiter,
		circuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "chat",
			MaxRequests: 1,
			Interval:    1 * time.Minute,
			Timeout:     30 * time.Second,
		}),
		timeout: timeout,
	}
}

// Send answers req. It never returns an error; failures are reported in the Response.
func (a *Assistant) Send(ctx context.Context, req Request) Response {
	log := logger.Log.WithField("persona", req.Persona)

	if a.completer == nil {
		log.Warn("chat completer not configured, using fallback response")
		return a.fallback(req, ErrNotConfigured)
	}

	if a.limiter != nil && !a.limiter.Allow() {
		metrics.ChatRequests.WithLabelValues(string(req.Persona), "rate_limited").Inc()
		return Response{
			Message: rateLimitedReply(req.Persona),
			Error:   errorText(ErrRateLimited),
		}
	}

	gen := generations[req.Persona]
	history := req.History
	if len(history) > historyTurns {
		history = history[len(history)-historyTurns:]
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	result, err := a.circuit.Execute(func() (interface{}, error) {
		return a.completer.Complete(ctx, Completion{
			System:      SystemPrompt(req.Persona, req.Reading),
			History:     history,
			Message:     req.Message,
			MaxTokens:   gen.maxTokens,
			Temperature: gen.temperature,
		})
	})
	metrics.ChatDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		log.WithError(err).Error("chat completion failed")
		return a.fallback(req, err)
	}

	text := strings.TrimSpace(result.(string))
	if text == "" {
		return a.fallback(req, ErrEmptyReply)
	}

	metrics.ChatRequests.WithLabelValues(string(req.Persona), "ok").Inc()
	return Response{Success: true, Message: text}
}

func (a *Assistant) fallback(req Request, cause error) Response {
	metrics.ChatRequests.WithLabelValues(string(req.Persona), "fallback").Inc()
	return Response{
		Message: FallbackReply(req.Message, req.Persona, req.Reading),
		Error:   errorText(cause),
	}
}

// Ping checks that the completer answers at all.
func (a *Assistant) Ping(ctx context.Context) error {
	if a.completer == nil {
		return ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	text, err := a.completer.Complete(ctx, Completion{Message: "Hello", MaxTokens: 10, Temperature: 0.7})
	if err != nil {
		return fmt.Errorf("ping completer: %w", err)
	}
	if text == "" {
		return ErrEmptyReply
	}
	return nil
}
