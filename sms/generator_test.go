package sms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-ayuda/types"
)

type stubCompleter struct {
	text  string
	err   error
	delay time.Duration
}

func (s *stubCompleter) CreateChatCompletion(ctx context.Context, _ openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return openai.ChatCompletionResponse{}, ctx.Err()
		}
	}
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.text}},
		},
	}, nil
}

func newTestGenerator(client chatCompleter, timeout time.Duration) *Generator {
	return &Generator{client: client, timeout: timeout, log: zap.NewNop()}
}

const (
	wantZero     = "DSWD: HH-00001 sa Tondo ay NONE. Wala pong ECT. Apela sa MSWDO."
	wantPartial  = "DSWD-ECT: Aprubado ang PHP5,000 para sa HH-00001 sa Tondo dahil sa bahagyang nasira. Antayin ang LGU. #DSWDMayMalasakit"
	wantTotal    = "DSWD-ECT: Aprubado ang PHP10,000 para sa HH-00001 sa Tondo dahil sa lubos na nasira. Antayin ang LGU. #DSWDMayMalasakit"
	upgradedText = "Magandang araw po! Aprubado na po ang inyong PHP5,000 ECT. Hintayin po ang abiso mula sa LGU. #DSWDMayMalasakit"
)

func TestZeroAmountUsesAppealTemplateWithoutExternalCall(t *testing.T) {
	client := &stubCompleter{text: upgradedText}
	g := NewGenerator(nil, nil)
	g.client = client

	got := g.Generate(context.Background(), 0, "HH-00001", "Tondo", types.DamageNone)
	assert.Equal(t, wantZero, got)
}

func TestNoClientReturnsTemplateExactly(t *testing.T) {
	g := NewGenerator(nil, nil)

	assert.Equal(t, wantPartial, g.Generate(context.Background(), 5000, "HH-00001", "Tondo", types.DamagePartial))
	assert.Equal(t, wantTotal, g.Generate(context.Background(), 10000, "HH-00001", "Tondo", types.DamageTotal))
}

func TestExternalSuccessReplacesTemplate(t *testing.T) {
	g := newTestGenerator(&stubCompleter{text: upgradedText}, time.Second)

	got := g.Generate(context.Background(), 5000, "HH-00001", "Tondo", types.DamagePartial)
	assert.Equal(t, upgradedText, got)
}

func TestExternalFailureFallsBackToTemplate(t *testing.T) {
	g := newTestGenerator(&stubCompleter{err: errors.New("quota exceeded")}, time.Second)

	got := g.Generate(context.Background(), 5000, "HH-00001", "Tondo", types.DamagePartial)
	assert.Equal(t, wantPartial, got)
}

func TestTooShortGeneratedTextFallsBackToTemplate(t *testing.T) {
	g := newTestGenerator(&stubCompleter{text: "ok po"}, time.Second)

	got := g.Generate(context.Background(), 10000, "HH-00001", "Tondo", types.DamageTotal)
	assert.Equal(t, wantTotal, got)
}

// Exactly 20 characters is still too short; 21 is accepted.
func TestGeneratedLengthBoundary(t *testing.T) {
	exactly20 := "Salamat po sa DSWD!!"
	require.Len(t, exactly20, 20)
	g := newTestGenerator(&stubCompleter{text: exactly20}, time.Second)
	assert.Equal(t, wantTotal, g.Generate(context.Background(), 10000, "HH-00001", "Tondo", types.DamageTotal))

	g = newTestGenerator(&stubCompleter{text: exactly20 + "!"}, time.Second)
	assert.Equal(t, exactly20+"!", g.Generate(context.Background(), 10000, "HH-00001", "Tondo", types.DamageTotal))
}

func TestTimeoutFallsBackToTemplate(t *testing.T) {
	g := newTestGenerator(&stubCompleter{text: upgradedText, delay: 500 * time.Millisecond}, 10*time.Millisecond)

	got := g.Generate(context.Background(), 5000, "HH-00001", "Tondo", types.DamagePartial)
	assert.Equal(t, wantPartial, got)
}

func TestGenerateNeverReturnsEmptyText(t *testing.T) {
	gens := []*Generator{
		NewGenerator(nil, nil),
		newTestGenerator(&stubCompleter{err: errors.New("boom")}, time.Millisecond),
		newTestGenerator(&stubCompleter{text: ""}, time.Second),
	}
	for _, g := range gens {
		for _, amount := range []int{0, 5000, 10000} {
			got := g.Generate(context.Background(), amount, "HH-00002", "Baseco", types.DamagePartial)
			assert.NotEmpty(t, got)
		}
	}
}

func TestCommaFormat(t *testing.T) {
	assert.Equal(t, "0", commaFormat(0))
	assert.Equal(t, "5,000", commaFormat(5000))
	assert.Equal(t, "10,000", commaFormat(10000))
	assert.Equal(t, "1,234,567", commaFormat(1234567))
}
