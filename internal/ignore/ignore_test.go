package ignore

import "testing"

func TestSubstringMatch(t *testing.T) {
	m := NewMatcher([]string{"node_modules", ".git"})

	if !m.Match("node_modules") {
		t.Error("node_modules should match")
	}
	if !m.Match("web/node_modules/react/index.js") {
		t.Error("nested node_modules path should match")
	}
	if !m.Match("project/.git/HEAD") {
		t.Error(".git path should match")
	}
	if m.Match("src/components/App.tsx") {
		t.Error("unrelated path should not match")
	}
}

func TestSubstringMatchIsLoose(t *testing.T) {
	m := NewMatcher([]string{"build"})

	// Documented imprecision: substring patterns also hit names that
	// merely contain the pattern.
	if !m.Match("mybuild") {
		t.Error("mybuild should match the substring pattern build")
	}
	if !m.Match("src/builder.go") {
		t.Error("builder.go should match the substring pattern build")
	}
}

func TestGlobMatch(t *testing.T) {
	m := NewMatcher([]string{"*.log"})

	if !m.Match("app.log") {
		t.Error("app.log should match *.log")
	}
	if !m.Match("logs/server/error.log") {
		t.Error("nested .log file should match against its base name")
	}
	if m.Match("logfile.txt") {
		t.Error("logfile.txt should not match *.log")
	}
}

func TestDoublestarMatch(t *testing.T) {
	m := NewMatcher([]string{"**/vendor/**"})

	if !m.Match("pkg/vendor/golang.org/x/sys/unix.go") {
		t.Error("vendored path should match")
	}
	if m.Match("pkg/vendored.go") {
		t.Error("vendored.go should not match **/vendor/**")
	}
}

func TestPatternOrderPreserved(t *testing.T) {
	patterns := []string{"b", "a", "c"}
	m := NewMatcher(patterns)

	got := m.Patterns()
	for i, p := range patterns {
		if got[i] != p {
			t.Errorf("pattern %d: expected %q, got %q", i, p, got[i])
		}
	}
}

func TestDefaultPatterns(t *testing.T) {
	m := NewMatcher(DefaultPatterns())

	for _, path := range []string{
		"node_modules/x.js",
		"dist/bundle.js",
		".next/cache",
		"__pycache__/mod.pyc",
		"debug.log",
	} {
		if !m.Match(path) {
			t.Errorf("%s should match the default patterns", path)
		}
	}

	if m.Match("src/a.ts") {
		t.Error("src/a.ts should not match the default patterns")
	}
}
