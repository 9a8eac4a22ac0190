// Package main provides the memsift command line driver. It reads a JSON
// array of already-parsed conversations, runs the heuristic extraction
// pipeline or the LLM-assisted extractor, deduplicates the candidates,
// and writes them out as JSON for the review surface to consume.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grifmang/memsift/pkg/config"
	"github.com/grifmang/memsift/pkg/dedup"
	"github.com/grifmang/memsift/pkg/extract"
	"github.com/grifmang/memsift/pkg/llm"
	"github.com/grifmang/memsift/pkg/llm/anthropic"
	"github.com/grifmang/memsift/pkg/llm/openai"
	"github.com/grifmang/memsift/pkg/llmextract"
	"github.com/grifmang/memsift/pkg/logging"
	"github.com/grifmang/memsift/pkg/types"
)

const version = "0.1.0"

// CLIConfig holds command-line configuration.
type CLIConfig struct {
	InputFile   string
	OutputFile  string
	ConfigFile  string
	APIKey      string
	Model       string
	UseAPI      bool
	NoDedup     bool
	ShowVersion bool
}

func main() {
	cli := parseFlags()

	if cli.ShowVersion {
		fmt.Printf("memsift v%s\n", version)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted, shutting down...")
		cancel()
	}()

	if err := run(ctx, cli); err != nil {
		cancel()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cancel()
}

func parseFlags() *CLIConfig {
	cli := &CLIConfig{}

	flag.StringVar(&cli.InputFile, "input", "", "Path to parsed conversations JSON (required)")
	flag.StringVar(&cli.OutputFile, "output", "", "Path for candidate JSON output (default: stdout)")
	flag.StringVar(&cli.ConfigFile, "config", "", "Path to config file (default: ~/.memsift/config.yaml)")
	flag.StringVar(&cli.APIKey, "api-key", "", "API key override for LLM-assisted mode")
	flag.StringVar(&cli.Model, "model", "", "Model override for LLM-assisted mode")
	flag.BoolVar(&cli.UseAPI, "api", false, "Use LLM-assisted extraction instead of heuristics")
	flag.BoolVar(&cli.NoDedup, "no-dedup", false, "Skip the deduplication stage")
	flag.BoolVar(&cli.ShowVersion, "version", false, "Show version and exit")
	flag.Parse()

	return cli
}

func run(ctx context.Context, cli *CLIConfig) error {
	if cli.InputFile == "" {
		return fmt.Errorf("-input is required")
	}

	logger, _ := logging.NewLogger("memsift")
	defer logger.Close()

	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	convs, err := readConversations(cli.InputFile)
	if err != nil {
		return err
	}
	logger.Infof("loaded %d conversations from %s", len(convs), cli.InputFile)

	var candidates []types.MemoryCandidate
	if cli.UseAPI {
		candidates, err = runAPIExtraction(ctx, cfg, convs, logger)
		if err != nil {
			return err
		}
	} else {
		pipeline := extract.Pipeline{
			TermThreshold:      cfg.TermThreshold,
			ThemeThreshold:     cfg.ThemeThreshold,
			ThemeHighThreshold: cfg.ThemeHighThreshold,
		}
		candidates = pipeline.ExtractAll(convs)
	}
	logger.Infof("extracted %d candidates", len(candidates))

	if !cli.NoDedup {
		before := len(candidates)
		candidates = dedup.DedupThreshold(candidates, cfg.DedupThreshold)
		logger.Infof("dedup: %d -> %d candidates", before, len(candidates))
	}

	if err := writeCandidates(cli.OutputFile, candidates); err != nil {
		return err
	}
	printSummary(candidates)
	return nil
}

func loadConfig(cli *CLIConfig) (config.Config, error) {
	path := cli.ConfigFile
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if cli.APIKey != "" {
		cfg.APIKey = cli.APIKey
	}
	if cli.Model != "" {
		cfg.Model = cli.Model
	}
	return cfg, nil
}

func runAPIExtraction(ctx context.Context, cfg config.Config, convs []types.ParsedConversation, logger *logging.Logger) ([]types.MemoryCandidate, error) {
	provider, err := buildProvider(cfg)
	if err != nil {
		return nil, err
	}
	logger.Infof("LLM-assisted extraction via %s (model %s)", cfg.Provider, provider.GetModel())

	extractor := llmextract.New(provider,
		llmextract.WithBatchSize(cfg.BatchSize),
		llmextract.WithTranscriptTokenCap(cfg.TranscriptTokenCap),
	)
	return extractor.Extract(ctx, convs, func(batch, total int) {
		fmt.Fprintf(os.Stderr, "Processing batch %d/%d...\n", batch, total)
		logger.Debugf("sending batch %d of %d", batch, total)
	})
}

func buildProvider(cfg config.Config) (llm.Provider, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return openai.NewProvider(cfg.APIKey,
			openai.WithModel(cfg.Model),
			openai.WithBaseURL(cfg.BaseURL),
		)
	default:
		return anthropic.NewProvider(cfg.APIKey,
			anthropic.WithModel(cfg.Model),
			anthropic.WithBaseURL(cfg.BaseURL),
		)
	}
}

func readConversations(path string) ([]types.ParsedConversation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	var convs []types.ParsedConversation
	if err := json.Unmarshal(data, &convs); err != nil {
		return nil, fmt.Errorf("failed to parse input file %s: %w", path, err)
	}
	return convs, nil
}

func writeCandidates(path string, candidates []types.MemoryCandidate) error {
	if candidates == nil {
		candidates = []types.MemoryCandidate{}
	}
	data, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal candidates: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func printSummary(candidates []types.MemoryCandidate) {
	counts := make(map[types.Category]int)
	for _, c := range candidates {
		counts[c.Category]++
	}
	fmt.Fprintf(os.Stderr, "Extracted %d candidates", len(candidates))
	if len(candidates) > 0 {
		fmt.Fprint(os.Stderr, " (")
		first := true
		for _, cat := range types.Categories {
			if counts[cat] == 0 {
				continue
			}
			if !first {
				fmt.Fprint(os.Stderr, ", ")
			}
			fmt.Fprintf(os.Stderr, "%s: %d", cat, counts[cat])
			first = false
		}
		fmt.Fprint(os.Stderr, ")")
	}
	fmt.Fprintln(os.Stderr)
}
