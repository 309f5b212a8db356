// Package skills provides skill vocabulary normalization and the token
// presence test used by the dimension scorers.
package skills

import "strings"

// aliases maps normalized variant spellings to their canonical tokens. The
// table is applied after case folding and separator stripping, so "React.js",
// "react js" and "ReactJS" all reduce to "reactjs" before lookup.
var aliases = map[string]string{
	"js":        "javascript",
	"reactjs":   "react",
	"nodejs":    "node",
	"vuejs":     "vue",
	"angularjs": "angular",
	"nextjs":    "next",
	"nestjs":    "nest",
	"expressjs": "express",
	"golang":    "go",
	"ts":        "typescript",
	"k8s":       "kubernetes",
	"postgres":  "postgresql",
}

// Normalize canonicalizes a free-text skill or technology name into a
// comparable token. It is deterministic and locale-invariant: lower-cases,
// strips dots, dashes, underscores and whitespace, then applies the alias
// table. Empty input normalizes to the empty token.
func Normalize(name string) string {
	token := strings.ToLower(strings.TrimSpace(name))
	if token == "" {
		return ""
	}

	replacer := strings.NewReplacer(".", "", "-", "", "_", "", " ", "", "\t", "")
	token = replacer.Replace(token)

	if canonical, ok := aliases[token]; ok {
		return canonical
	}
	return token
}

// TokenSet builds a deduplicated set of normalized tokens from raw names.
// Empty tokens are dropped.
func TokenSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		if token := Normalize(name); token != "" {
			set[token] = true
		}
	}
	return set
}

// HasSkill reports whether a candidate token set satisfies a required skill
// name. The required name is normalized, then accepted on an exact set hit or
// when any candidate token is a substring of it or vice versa.
//
// The bidirectional containment deliberately over-matches compound and
// variant spellings ("react native" satisfies "react", and "java" satisfies
// "javascript"). Recall is favored over precision here; changing this would
// silently shift scoring outcomes.
func HasSkill(candidateTokens map[string]bool, requiredName string) bool {
	required := Normalize(requiredName)
	if required == "" {
		return false
	}
	if candidateTokens[required] {
		return true
	}
	for token := range candidateTokens {
		if TokensRelated(token, required) {
			return true
		}
	}
	return false
}

// TokensRelated reports bidirectional substring containment between two
// already-normalized tokens.
func TokensRelated(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
