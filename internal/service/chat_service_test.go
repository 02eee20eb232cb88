package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/diulabs/admission-api/internal/models"
	appErrors "github.com/diulabs/admission-api/pkg/errors"
)

type mockFAQSource struct {
	entries []models.FAQEntry
	err     error
}

func (m *mockFAQSource) List(ctx context.Context) ([]models.FAQEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func sampleFAQs() []models.FAQEntry {
	return []models.FAQEntry{
		{
			ID:       "FAQ-001",
			Question: "What is the admission deadline?",
			Answer:   "Admissions close on 31 December.",
			Keywords: "deadline,last date,admission date",
		},
		{
			ID:       "FAQ-004",
			Question: "What waivers are available?",
			Answer:   "Merit, need-based and special waivers are offered.",
			Keywords: "waiver,scholarship,financial aid",
		},
	}
}

func TestChatServiceExactQuestionMatch(t *testing.T) {
	svc := NewChatService(&mockFAQSource{entries: sampleFAQs()}, "", zap.NewNop())

	reply, err := svc.Match(context.Background(), "What is the admission deadline?")
	require.NoError(t, err)
	assert.Equal(t, "Admissions close on 31 December.", reply.Response)
}

func TestChatServiceCaseInsensitive(t *testing.T) {
	svc := NewChatService(&mockFAQSource{entries: sampleFAQs()}, "", zap.NewNop())

	reply, err := svc.Match(context.Background(), "WHAT IS THE ADMISSION DEADLINE?")
	require.NoError(t, err)
	assert.Equal(t, "Admissions close on 31 December.", reply.Response)
}

func TestChatServiceKeywordMatch(t *testing.T) {
	svc := NewChatService(&mockFAQSource{entries: sampleFAQs()}, "", zap.NewNop())

	// "scholarship" scores far higher against the keyword than against any
	// question text.
	reply, err := svc.Match(context.Background(), "scholarship")
	require.NoError(t, err)
	assert.Equal(t, "Merit, need-based and special waivers are offered.", reply.Response)
}

func TestChatServiceFallbackBelowThreshold(t *testing.T) {
	svc := NewChatService(&mockFAQSource{entries: sampleFAQs()}, "", zap.NewNop())

	reply, err := svc.Match(context.Background(), "xyzzy qwerty 0101")
	require.NoError(t, err)
	assert.Equal(t, "Sorry, I couldn't find an answer to your question. Please try rephrasing or contact support.", reply.Response)
}

func TestChatServiceCustomFallback(t *testing.T) {
	svc := NewChatService(&mockFAQSource{entries: sampleFAQs()}, "Ask the admission office.", zap.NewNop())

	reply, err := svc.Match(context.Background(), "xyzzy qwerty 0101")
	require.NoError(t, err)
	assert.Equal(t, "Ask the admission office.", reply.Response)
}

func TestChatServiceEmptyFAQTable(t *testing.T) {
	svc := NewChatService(&mockFAQSource{}, "", zap.NewNop())

	reply, err := svc.Match(context.Background(), "What is the admission deadline?")
	require.NoError(t, err)
	assert.NotEmpty(t, reply.Response)
}

func TestChatServiceTieKeepsFirstEntry(t *testing.T) {
	entries := []models.FAQEntry{
		{ID: "A", Question: "hostel facility", Answer: "first"},
		{ID: "B", Question: "hostel facility", Answer: "second"},
	}
	svc := NewChatService(&mockFAQSource{entries: entries}, "", zap.NewNop())

	reply, err := svc.Match(context.Background(), "hostel facility")
	require.NoError(t, err)
	assert.Equal(t, "first", reply.Response)
}

func TestSequenceRatio(t *testing.T) {
	// Longest matching block "bcd" gives 2*3/(4+4).
	assert.InDelta(t, 0.75, sequenceRatio("abcd", "bcde"), 1e-9)
	assert.InDelta(t, 1.0, sequenceRatio("deadline", "deadline"), 1e-9)
	assert.Zero(t, sequenceRatio("abc", "xyz"))
}

func TestChatServiceUpstreamFailure(t *testing.T) {
	svc := NewChatService(&mockFAQSource{err: errors.New("connection refused")}, "", zap.NewNop())

	_, err := svc.Match(context.Background(), "anything")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErrors.FromError(err).Code)
}
