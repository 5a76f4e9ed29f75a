package ignore

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher decides whether a filesystem path is excluded from traversal
// and output. Patterns come in two forms:
//
//   - patterns containing glob metacharacters are matched with doublestar
//     against the slash-separated path and against the base name
//   - any other pattern is a literal substring of the path
//
// Substring matching is intentionally loose: a directory named "mybuild"
// is excluded by the pattern "build". Callers that need tighter matching
// should use glob patterns instead.
type Matcher struct {
	patterns []string
}

func NewMatcher(patterns []string) *Matcher {
	return &Matcher{patterns: patterns}
}

func (m *Matcher) Match(path string) bool {
	slashed := filepath.ToSlash(path)
	base := filepath.Base(slashed)

	for _, pattern := range m.patterns {
		if isGlob(pattern) {
			if ok, _ := doublestar.Match(pattern, slashed); ok {
				return true
			}
			if ok, _ := doublestar.Match(pattern, base); ok {
				return true
			}
			continue
		}

		if strings.Contains(slashed, pattern) {
			return true
		}
	}

	return false
}

func (m *Matcher) Patterns() []string {
	return m.patterns
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// DefaultPatterns is the stock exclusion list for web and Go projects.
func DefaultPatterns() []string {
	return []string{
		"node_modules",
		".git",
		"dist",
		"build",
		".next",
		"coverage",
		".nyc_output",
		"*.log",
		".DS_Store",
		"Thumbs.db",
		"__pycache__",
		".pytest_cache",
		"venv",
		"env",
		".env",
	}
}
