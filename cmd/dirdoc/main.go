package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/alucardeht/dirdoc/internal/config"
	"github.com/alucardeht/dirdoc/internal/generator"
	"github.com/alucardeht/dirdoc/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})

	result, err := generator.New(cfg.Generator).Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error generating structure: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Directory structure generated: %s\n", result.OutputPath)
	fmt.Printf("📁 Found %d files and folders\n", result.Entries)
}
