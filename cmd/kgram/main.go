package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/CTAG07/kgram/pkg/markov"
	"github.com/natefinch/atomic"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

const configPath = "./kgram.json"

func usage() {
	fmt.Fprintln(os.Stderr, "usage: kgram <order> <length> <file>")
	fmt.Fprintln(os.Stderr, "  order   model order k (k >= 1)")
	fmt.Fprintln(os.Stderr, "  length  trajectory length t (t >= k)")
	fmt.Fprintln(os.Stderr, "  file    training text file")
}

func main() {
	if len(os.Args) != 4 {
		usage()
		os.Exit(2)
	}

	order, err := strconv.Atoi(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "kgram: invalid order %q\n", os.Args[1])
		os.Exit(2)
	}
	length, err := strconv.Atoi(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "kgram: invalid trajectory length %q\n", os.Args[2])
		os.Exit(2)
	}
	corpusPath := os.Args[3]

	config, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kgram: failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var logLevel slog.Level
	switch strings.ToLower(config.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	// The trajectory goes to stdout, so all logging goes to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	logger.Debug("kgram starting", "version", Version, "commit", Commit, "build_date", BuildDate)

	if err := run(config, logger, order, length, corpusPath); err != nil {
		logger.Error("Run failed", "error", err)
		os.Exit(1)
	}
}

// run builds both model representations from the corpus, generates a
// trajectory from the configured backend, and prints it to stdout.
func run(config *Config, logger *slog.Logger, order, length int, corpusPath string) error {
	corpus, err := loadCorpus(corpusPath)
	if err != nil {
		return err
	}

	opts := []markov.ModelOption{markov.WithLogger(logger)}
	if config.Seed != 0 {
		opts = append(opts, markov.WithRand(rand.New(rand.NewPCG(config.Seed, 0))))
		logger.Debug("Using fixed seed", "seed", config.Seed)
	}

	startedAt := time.Now()

	tree, err := markov.NewTreeModel(corpus, order, opts...)
	if err != nil {
		return fmt.Errorf("failed to build tree model: %w", err)
	}
	table, err := markov.NewTableModel(corpus, order, opts...)
	if err != nil {
		return fmt.Errorf("failed to build table model: %w", err)
	}

	if config.CrossCheck {
		if err := markov.VerifyEquivalence(corpus, tree, table); err != nil {
			return fmt.Errorf("model representations disagree: %w", err)
		}
		logger.Debug("Cross-representation check passed")
	}

	var model markov.Model
	var stats markov.ModelStats
	switch config.Backend {
	case "table":
		model, stats = table, table.Stats()
	default:
		model, stats = tree, tree.Stats()
	}
	logger.Info("Models built",
		slog.String("backend", config.Backend),
		slog.Int("order", order),
		slog.Int("corpus_length", len(corpus)),
		slog.Int("distinct_kgrams", stats.DistinctKGrams),
	)

	generator := markov.NewGenerator(model)
	generator.SetLogger(logger)

	trajectory, err := generator.Generate(corpus, length)
	if err != nil {
		return err
	}
	duration := time.Since(startedAt)

	fmt.Println(trajectory)

	if config.DumpPath != "" {
		if err := atomic.WriteFile(config.DumpPath, strings.NewReader(model.String()+"\n")); err != nil {
			logger.Error("Failed to write model dump", "path", config.DumpPath, "error", err)
		} else {
			logger.Info("Model dump written", "path", config.DumpPath)
		}
	}

	if config.EnableRunLog {
		logRun(context.Background(), config, logger, RunRecord{
			StartedAt:        startedAt,
			CorpusPath:       corpusPath,
			CorpusLength:     len(corpus),
			Order:            order,
			TrajectoryLength: length,
			Backend:          config.Backend,
			Stats:            stats,
			Duration:         duration,
		})
	}

	return nil
}
