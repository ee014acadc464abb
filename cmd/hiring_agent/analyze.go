package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/hiring-agent/internal/config"
	"github.com/jonathan/hiring-agent/internal/embedding"
	"github.com/jonathan/hiring-agent/internal/logger"
	"github.com/jonathan/hiring-agent/internal/observability"
	"github.com/jonathan/hiring-agent/internal/pipeline"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a batch of candidates against a job description",
	Long: `Runs the full evaluation pipeline for every candidate in the input file: embedding -> matching -> scoring -> decision -> explanation -> ranking.

The input file is a JSON document with a "job" object (requirements and required_language) and a "candidates" array (id, name, sentences).`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeInputPath  string
	analyzeConfigPath string
	analyzeAPIKey     string
	analyzeJSONOut    bool
	analyzeVerbose    bool
)

func init() {
	analyzeCommand.Flags().StringVarP(&analyzeInputPath, "input", "i", "", "Path to batch input JSON file (required)")
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to engine config JSON file (defaults used if omitted)")
	analyzeCommand.Flags().BoolVar(&analyzeJSONOut, "json", false, "Emit the full batch result as JSON instead of formatted boxes")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a detailed evaluation report per candidate")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	_ = analyzeCommand.MarkFlagRequired("input")

	rootCmd.AddCommand(analyzeCommand)
}

// batchInput is the on-disk shape of the analyze input file.
type batchInput struct {
	Job        pipeline.JobDescription   `json:"job"`
	Candidates []pipeline.CandidateInput `json:"candidates"`
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.Default()
	if analyzeConfigPath != "" {
		loadedCfg, err := config.Load(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loadedCfg
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	apiKey := analyzeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required: pass --api-key or set GEMINI_API_KEY")
	}

	input, err := loadBatchInput(analyzeInputPath)
	if err != nil {
		return err
	}
	if len(input.Candidates) == 0 {
		return fmt.Errorf("input file contains no candidates")
	}

	embedder, err := embedding.NewGeminiEmbedder(ctx, apiKey, cfg.EmbedModel)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}
	defer func() { _ = embedder.Close() }()

	engine, err := pipeline.New(cfg, embedder)
	if err != nil {
		return err
	}

	result, err := engine.AnalyzeBatch(ctx, input.Job, input.Candidates)
	if err != nil {
		return err
	}

	if analyzeJSONOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	if analyzeVerbose {
		for _, report := range result.Reports {
			printer.PrintExplanationReport(report)
		}
	}
	printer.PrintRanking(result.Ranking)

	for _, failure := range result.Failures {
		fmt.Fprintf(os.Stderr, "candidate %s failed during %s: %s\n", failure.CandidateID, failure.Stage, failure.Message)
	}
	return nil
}

func loadBatchInput(path string) (*batchInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	var input batchInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse input file: %w", err)
	}
	return &input, nil
}
