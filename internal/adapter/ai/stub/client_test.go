package stub_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/ai-customer-chat/internal/adapter/ai/stub"
	"github.com/fairyhunter13/ai-customer-chat/internal/domain"
)

func TestStub_Answer(t *testing.T) {
	t.Parallel()
	c := stub.New()

	out, err := c.Complete(context.Background(), "You are a helpful customer service AI.", "where is my order?")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestStub_Sentiment(t *testing.T) {
	t.Parallel()
	c := stub.New()

	tests := []struct {
		message string
		want    string
	}{
		{message: "thank you so much!", want: domain.SentimentPositive},
		{message: "this is great", want: domain.SentimentPositive},
		{message: "I want a refund now", want: domain.SentimentNegative},
		{message: "the item arrived broken", want: domain.SentimentNegative},
		{message: "what are your opening hours?", want: domain.SentimentNeutral},
	}
	for _, tc := range tests {
		out, err := c.Complete(context.Background(), "Analyze the sentiment of this message", tc.message)
		require.NoError(t, err)
		assert.Equal(t, tc.want, out, tc.message)
	}
}
