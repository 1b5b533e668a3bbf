// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/pdiddy/corpus-audit/pkg/types"
)

// MethodMentions scans every abstract for the configured method phrases and
// returns the phrases found at least once, in vocabulary order. This is a
// fixed-vocabulary substring lookup, case-insensitive, nothing more.
func MethodMentions(papers []types.Paper, vocabulary []string) []string {
	var found []string
	for _, phrase := range vocabulary {
		needle := strings.ToLower(phrase)
		for _, paper := range papers {
			if strings.Contains(strings.ToLower(paper.Abstract), needle) {
				found = append(found, phrase)
				break
			}
		}
	}
	return found
}
