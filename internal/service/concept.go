package service

import (
	"regexp"
	"strconv"
	"strings"
)

// conceptMatcher extracts an order id from a normalized concept string.
// Matchers are total: they either yield an id or report no match.
type conceptMatcher func(concept string) (int64, bool)

// conceptMatchers is tried in priority order; the first hit wins. The list is
// the only place to touch when payers invent a new way of writing order ids.
var conceptMatchers = []conceptMatcher{
	regexMatcher(`#\s*(\d+)`),
	regexMatcher(`\b(?:PEDIDO|ORDEN|ORDER|COMANDA)\s*#?\s*(\d+)\b`),
	regexMatcher(`\bREF\s*#?\s*(\d+)\b`),
	digitsOnlyMatcher,
}

func regexMatcher(pattern string) conceptMatcher {
	re := regexp.MustCompile(pattern)
	return func(concept string) (int64, bool) {
		groups := re.FindStringSubmatch(concept)
		if groups == nil {
			return 0, false
		}
		id, err := strconv.ParseInt(groups[1], 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	}
}

func digitsOnlyMatcher(concept string) (int64, bool) {
	if concept == "" {
		return 0, false
	}
	for _, r := range concept {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(concept, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ParseOrderIDFromConcept extracts a candidate order id from the free-text
// concept of a transfer. Returns (0, false) when nothing usable is found.
func ParseOrderIDFromConcept(concept string) (int64, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(concept))
	if normalized == "" {
		return 0, false
	}

	for _, match := range conceptMatchers {
		if id, ok := match(normalized); ok {
			return id, true
		}
	}

	return 0, false
}
