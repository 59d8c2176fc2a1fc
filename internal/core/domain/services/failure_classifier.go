package services

import (
	"strings"

	"courierhub/internal/core/domain/model/status"
)

// FailureClassifier maps a free-text failed-attempt reason to a target status.
type FailureClassifier interface {
	Classify(reason string) status.Name
}

// KeywordRule sends a reason containing any of Keywords to Target.
type KeywordRule struct {
	Keywords []string
	Target   status.Name
}

// KeywordClassifier applies rules in order; the first rule with a keyword that
// is a case-insensitive substring of the reason wins.
type KeywordClassifier struct {
	rules    []KeywordRule
	fallback status.Name
}

// DefaultKeywordRules returns the stock rule set.
func DefaultKeywordRules() []KeywordRule {
	return []KeywordRule{
		{Keywords: []string{"reschedule", "postpone", "later", "tomorrow"}, Target: status.Postponed},
		{Keywords: []string{"address", "phone", "update", "wrong"}, Target: status.PendingUpdate},
		{Keywords: []string{"return", "refuse", "reject", "back"}, Target: status.PendingReturn},
	}
}

// NewKeywordClassifier uses DefaultKeywordRules with POSTPONED as the fallback.
func NewKeywordClassifier() KeywordClassifier {
	return NewKeywordClassifierWithRules(DefaultKeywordRules(), status.Postponed)
}

func NewKeywordClassifierWithRules(rules []KeywordRule, fallback status.Name) KeywordClassifier {
	normalized := make([]KeywordRule, 0, len(rules))
	for _, r := range rules {
		keywords := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			keywords = append(keywords, strings.ToLower(k))
		}
		normalized = append(normalized, KeywordRule{Keywords: keywords, Target: r.Target})
	}
	return KeywordClassifier{rules: normalized, fallback: fallback}
}

func (c KeywordClassifier) Classify(reason string) status.Name {
	lower := strings.ToLower(reason)
	for _, r := range c.rules {
		for _, k := range r.Keywords {
			if strings.Contains(lower, k) {
				return r.Target
			}
		}
	}
	return c.fallback
}
