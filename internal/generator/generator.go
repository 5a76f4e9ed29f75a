package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alucardeht/dirdoc/internal/ignore"
	"github.com/alucardeht/dirdoc/internal/logger"
	"github.com/alucardeht/dirdoc/internal/report"
	"github.com/alucardeht/dirdoc/internal/tree"
)

type Config struct {
	Root           string          `json:"root"`
	OutputPath     string          `json:"output_path"`
	MaxDepth       int             `json:"max_depth"`
	IgnorePatterns []string        `json:"ignore_patterns"`
	Template       report.Template `json:"template"`
}

func DefaultConfig() Config {
	return Config{
		Root:           ".",
		OutputPath:     report.DefaultOutputPath,
		MaxDepth:       tree.DefaultMaxDepth,
		IgnorePatterns: ignore.DefaultPatterns(),
		Template:       report.DefaultTemplate(),
	}
}

// Result summarizes one generation run. Entries is the approximate
// token-count diagnostic, not an exact file count.
type Result struct {
	OutputPath string
	Entries    int
	Duration   time.Duration
}

type Generator struct {
	config Config
	log    *slog.Logger
}

func New(config Config) *Generator {
	if config.Root == "" {
		config.Root = "."
	}
	if config.OutputPath == "" {
		config.OutputPath = report.DefaultOutputPath
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = tree.DefaultMaxDepth
	}

	return &Generator{
		config: config,
		log:    logger.ForComponent("generator"),
	}
}

// Run builds the tree, renders the document and overwrites the output
// file. The tree is built fresh every run and discarded afterwards.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	builder := tree.NewBuilder(g.config.MaxDepth, ignore.NewMatcher(g.config.IgnorePatterns))
	nodes, err := builder.Build(g.config.Root)
	if err != nil {
		return nil, fmt.Errorf("build tree for %s: %w", g.config.Root, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	structure := tree.Render(nodes)
	doc := g.config.Template.Render(structure)

	if err := report.Write(g.config.OutputPath, doc); err != nil {
		return nil, err
	}

	result := &Result{
		OutputPath: g.config.OutputPath,
		Entries:    report.CountEntries(structure),
		Duration:   time.Since(start),
	}

	g.log.Debug("structure generated",
		"output", result.OutputPath,
		"entries", result.Entries,
		"duration", result.Duration)

	return result, nil
}
