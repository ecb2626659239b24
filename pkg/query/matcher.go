package query

import (
	"regexp"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
)

// RelevanceMatcher decides whether free-form text plausibly describes a
// satisfiability problem. It is a swappable strategy: the keyword heuristic
// below is the default, callers with a smarter classifier plug in their own.
type RelevanceMatcher interface {
	Matches(text string) bool
}

var headerPattern = regexp.MustCompile(`(?m)^\s*p\s+cnf\s+\S+\s+\S+`)

type keywordMatcher struct {
	keywords mapset.Set[string]
}

// NewKeywordMatcher returns the default relevance strategy: a
// case-insensitive keyword scan plus a DIMACS header pattern.
func NewKeywordMatcher() RelevanceMatcher {
	return &keywordMatcher{
		keywords: mapset.NewSet(
			"sat",
			"cnf",
			"dimacs",
			"satisfiability",
			"boolean satisfiability",
		),
	}
}

func (matcher *keywordMatcher) Matches(text string) bool {
	if headerPattern.MatchString(text) {
		return true
	}
	lowered := strings.ToLower(text)
	return lo.SomeBy(matcher.keywords.ToSlice(), func(keyword string) bool {
		return strings.Contains(lowered, keyword)
	})
}
