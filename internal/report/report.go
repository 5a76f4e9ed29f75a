package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultOutputPath is where the structure document lands unless the
// configuration says otherwise. Cursor picks rules up from this
// location.
const DefaultOutputPath = ".cursor/rules/file-structure.mdc"

// Annotated is one line in a static reference section: a path plus a
// short human note.
type Annotated struct {
	Path string `json:"path"`
	Note string `json:"note"`
}

// Template is the fixed document surrounding the rendered tree. The
// reference sections are static text; they are not derived from the
// filesystem.
type Template struct {
	Title          string      `json:"title"`
	Intro          string      `json:"intro"`
	KeyDirectories []Annotated `json:"key_directories"`
	ImportantFiles []Annotated `json:"important_files"`
}

func DefaultTemplate() Template {
	return Template{
		Title: "Project File Structure",
		Intro: "This file is auto-generated to help Cursor AI understand the project structure.",
		KeyDirectories: []Annotated{
			{Path: "src/", Note: "Main source code"},
			{Path: "src/components/", Note: "React components"},
			{Path: "src/pages/", Note: "Page components"},
			{Path: "src/services/", Note: "API and business logic services"},
			{Path: "src/types/", Note: "TypeScript type definitions"},
			{Path: "src/utils/", Note: "Utility functions"},
			{Path: "src/contexts/", Note: "React contexts"},
			{Path: "src/hooks/", Note: "Custom React hooks"},
			{Path: "api/", Note: "Backend API endpoints"},
			{Path: "config/", Note: "Configuration files"},
			{Path: "docs/", Note: "Project documentation"},
			{Path: "public/", Note: "Static assets"},
		},
		ImportantFiles: []Annotated{
			{Path: "package.json", Note: "Node.js dependencies and scripts"},
			{Path: "vite.config.ts", Note: "Vite build configuration"},
			{Path: "tailwind.config.js", Note: "Tailwind CSS configuration"},
			{Path: "tsconfig.json", Note: "TypeScript configuration"},
			{Path: "vercel.json", Note: "Vercel deployment configuration"},
		},
	}
}

// Render embeds the serialized tree in the document template.
func (t Template) Render(structure string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t.Title)
	fmt.Fprintf(&b, "%s\n\n", t.Intro)
	fmt.Fprintf(&b, "<project_structure>\n%s\n</project_structure>\n", structure)

	writeSection(&b, "Key Directories", t.KeyDirectories)
	writeSection(&b, "Important Files", t.ImportantFiles)

	return b.String()
}

func writeSection(b *strings.Builder, heading string, entries []Annotated) {
	if len(entries) == 0 {
		return
	}

	fmt.Fprintf(b, "\n## %s\n\n", heading)
	for _, e := range entries {
		fmt.Fprintf(b, "- `%s` - %s\n", e.Path, e.Note)
	}
}

// Write overwrites the document at path, creating parent directories as
// needed.
func Write(path, doc string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// CountEntries counts `<file` tokens in the rendered structure. It is an
// approximate diagnostic, not an exact file count.
func CountEntries(structure string) int {
	return strings.Count(structure, "<file")
}
