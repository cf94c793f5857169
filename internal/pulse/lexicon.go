package pulse

import (
	"strings"

	"pulse-insights/internal/model"
)

// ------------------- Lexicon Tagger -------------------

// Tokenize lowercases a comment and splits it into ASCII word tokens. Every
// character outside [a-z0-9] and whitespace becomes a separator, so non-ASCII
// letters split words. That loss is accepted: the lexicons are plain ASCII.
func Tokenize(s string) []string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Fields(b.String())
}

// Tagger classifies tokenized comments against the negative-word lexicon and
// the topic keyword table. It is immutable after construction and safe for
// concurrent report computations.
type Tagger struct {
	negative   map[string]struct{}
	topics     []model.Topic
	topicTerms []map[string]struct{} // parallel to topics
}

func NewTagger(negativeTerms []string, topics []model.Topic) *Tagger {
	t := &Tagger{
		negative:   termSet(negativeTerms),
		topics:     topics,
		topicTerms: make([]map[string]struct{}, len(topics)),
	}
	for i, topic := range topics {
		t.topicTerms[i] = termSet(topic.Terms)
	}
	return t
}

func termSet(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		set[term] = struct{}{}
	}
	return set
}

// IsNegative reports whether any token hits the negative lexicon. A single
// match is enough; more matches carry no extra weight.
func (t *Tagger) IsNegative(tokens []string) bool {
	for _, tok := range tokens {
		if _, ok := t.negative[tok]; ok {
			return true
		}
	}
	return false
}

// TopicMatches returns, per configured topic, whether any token hits that
// topic's keywords. A record may match zero, one, or several topics.
func (t *Tagger) TopicMatches(tokens []string) []bool {
	matches := make([]bool, len(t.topics))
	for i, terms := range t.topicTerms {
		for _, tok := range tokens {
			if _, ok := terms[tok]; ok {
				matches[i] = true
				break
			}
		}
	}
	return matches
}
