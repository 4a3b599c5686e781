package sms

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"go-ayuda/types"
)

const (
	// The external call gets one bounded attempt; a timeout is just another
	// reason to use the fallback.
	callTimeout = 10 * time.Second

	// Generated text must be strictly longer than this or the call is
	// treated as failed.
	minGeneratedLen = 20
)

// chatCompleter is the slice of the OpenAI client the generator needs.
// *openai.Client satisfies it; tests substitute stubs.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator produces the Tagalog SMS text for one allocation decision. The
// deterministic template is always computed first; a configured client only
// upgrades it. Generate never fails and never returns empty text.
type Generator struct {
	client  chatCompleter
	timeout time.Duration
	log     *zap.Logger
}

// NewGenerator wraps an OpenAI client, which may be nil to disable the
// external attempt entirely.
func NewGenerator(client *openai.Client, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Generator{timeout: callTimeout, log: logger}
	if client != nil {
		g.client = client
	}
	return g
}

// Generate returns the notification message for a household's allocation.
func (g *Generator) Generate(ctx context.Context, amount int, householdID, brgy string, status types.DamageStatus) string {
	// No allocation: fixed appeal message, no external call.
	if amount == 0 {
		return fmt.Sprintf("DSWD: %s sa %s ay %s. Wala pong ECT. Apela sa MSWDO.", householdID, brgy, status)
	}

	statusTxt := "bahagyang nasira"
	if amount == types.AmountTotal {
		statusTxt = "lubos na nasira"
	}
	fallback := fmt.Sprintf("DSWD-ECT: Aprubado ang PHP%s para sa %s sa %s dahil sa %s. Antayin ang LGU. #DSWDMayMalasakit",
		commaFormat(amount), householdID, brgy, statusTxt)

	if g.client == nil {
		return fallback
	}

	text, err := g.callOpenAI(ctx, amount, householdID, brgy, status)
	if err != nil {
		g.log.Warn("SMS generation call failed, using template", zap.String("household", householdID), zap.Error(err))
		return fallback
	}
	if len(text) <= minGeneratedLen {
		g.log.Warn("generated SMS too short, using template", zap.String("household", householdID), zap.Int("len", len(text)))
		return fallback
	}
	return text
}

func (g *Generator) callOpenAI(ctx context.Context, amount int, householdID, brgy string, status types.DamageStatus) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := fmt.Sprintf(`Generate a compassionate, professional SMS in Filipino/Tagalog informing a household about their Emergency Cash Transfer (ECT) allocation.

Household Information:
- Household ID: %s
- Barangay: %s
- Damage Status: %s
- ECT Amount: PHP%s

Requirements:
1. Be empathetic and professional
2. Use Filipino/Tagalog language
3. Keep it under 160 characters if possible
4. Include the ECT amount clearly
5. Provide next steps or contact information
6. Use #DSWDMayMalasakit hashtag

Generate the SMS message:`, householdID, brgy, status, commaFormat(amount))

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are a DSWD (Department of Social Welfare and Development) agent notifying disaster-affected households about cash assistance.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   120,
			Temperature: 0.5,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// commaFormat renders 10000 as "10,000", matching the wording field staff
// already see on printed DSWD notices.
func commaFormat(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
