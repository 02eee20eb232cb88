package service

import (
	"context"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"go.uber.org/zap"

	"github.com/diulabs/admission-api/internal/models"
	appErrors "github.com/diulabs/admission-api/pkg/errors"
)

// chatSimilarityThreshold is the minimum lexical similarity an FAQ entry must
// exceed for its answer to be returned.
const chatSimilarityThreshold = 0.4

type faqSource interface {
	List(ctx context.Context) ([]models.FAQEntry, error)
}

// ChatReply is the matcher output; Response is always non-empty.
type ChatReply struct {
	Response string `json:"response"`
}

// ChatService answers free-text questions by fuzzy-matching them against the
// FAQ table. Scoring uses the Ratcliff/Obershelp sequence ratio on lowercased
// text; each entry scores the better of its question and its alternate
// keyword phrasings.
type ChatService struct {
	faqs     faqSource
	fallback string
	logger   *zap.Logger
}

// NewChatService constructs the chat service.
func NewChatService(faqs faqSource, fallback string, logger *zap.Logger) *ChatService {
	if fallback == "" {
		fallback = "Sorry, I couldn't find an answer to your question. Please try rephrasing or contact support."
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{faqs: faqs, fallback: fallback, logger: logger}
}

// sequenceRatio is the Ratcliff/Obershelp similarity of two strings computed
// per rune: twice the number of matching characters over the combined length.
func sequenceRatio(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}

// Match scans every FAQ entry and returns the best-scoring answer, or the
// fixed fallback when nothing exceeds the threshold. The scan uses a strict
// greater-than comparison, so exact ties resolve to the earliest entry.
func (s *ChatService) Match(ctx context.Context, message string) (ChatReply, error) {
	entries, err := s.faqs.List(ctx)
	if err != nil {
		return ChatReply{}, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "failed to load faq entries")
	}

	normalized := strings.ToLower(message)

	var bestAnswer string
	var bestScore float64
	for _, entry := range entries {
		score := sequenceRatio(normalized, strings.ToLower(entry.Question))
		for _, keyword := range strings.Split(entry.Keywords, ",") {
			keyword = strings.TrimSpace(keyword)
			if keyword == "" {
				continue
			}
			if kwScore := sequenceRatio(normalized, strings.ToLower(keyword)); kwScore > score {
				score = kwScore
			}
		}
		if score > bestScore {
			bestScore = score
			bestAnswer = entry.Answer
		}
	}

	if bestScore > chatSimilarityThreshold {
		return ChatReply{Response: bestAnswer}, nil
	}
	s.logger.Debug("faq match below threshold", zap.Float64("best_score", bestScore))
	return ChatReply{Response: s.fallback}, nil
}
