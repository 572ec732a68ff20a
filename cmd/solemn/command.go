package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/solemn/config"
	"github.com/viant/solemn/detector"
	"github.com/viant/solemn/lexicon"
	"github.com/viant/solemn/reporter"
	"github.com/viant/solemn/repository"
	"go.uber.org/zap"
)

const appName = "solemn"

var version = "0.1.0"

// errFailed signals a scan that should end with a non zero exit status
var errFailed = errors.New("scan failed")

type flags struct {
	configURL       string
	lexiconURL      string
	format          string
	color           bool
	failOnViolation bool
	concurrency     int
	verbose         bool
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCommand(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			color.New(color.FgRed, color.Bold).Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &flags{}
	root := &cobra.Command{
		Use:           appName,
		Short:         "Detects offensive vocabulary in source code",
		Long:          "Scans identifiers, literals and comments of JavaScript, Java and Go sources against a word lexicon.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&opts.configURL, "config", "c", "", "config file")
	root.PersistentFlags().StringVarP(&opts.lexiconURL, "lexicon", "l", "", "lexicon file (yaml or json)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	scan := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan files and directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, args)
		},
	}
	scan.Flags().StringVarP(&opts.format, "format", "f", string(reporter.FormatText), "output format: text, json or yaml")
	scan.Flags().BoolVar(&opts.color, "color", false, "colorize text output")
	scan.Flags().BoolVar(&opts.failOnViolation, "fail-on-violation", true, "exit with status 1 when violations are found")
	scan.Flags().IntVarP(&opts.concurrency, "concurrency", "j", 0, "number of files scanned in parallel")

	lex := &cobra.Command{
		Use:   "lexicon",
		Short: "Describe the active lexicon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLexicon(cmd, opts)
		},
	}
	root.AddCommand(scan, lex)
	return root
}

func loadConfig(ctx context.Context, cmd *cobra.Command, fs afs.Service, opts *flags) (*config.Config, error) {
	cfg := config.Default()
	if opts.configURL != "" {
		var err error
		if cfg, err = config.Load(ctx, fs, opts.configURL); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	changed := cmd.Flags().Changed
	if changed("lexicon") {
		cfg.Lexicon = opts.lexiconURL
	}
	if changed("format") {
		cfg.Format = opts.format
	}
	if changed("color") {
		cfg.Color = opts.color
	}
	if changed("fail-on-violation") {
		cfg.FailOnViolation = opts.failOnViolation
	}
	if changed("concurrency") {
		cfg.Concurrency = opts.concurrency
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadLexicon(ctx context.Context, fs afs.Service, URL string) (lexicon.Lexicon, error) {
	if URL == "" {
		return lexicon.Default(), nil
	}
	return lexicon.Load(ctx, fs, URL)
}

func runScan(cmd *cobra.Command, opts *flags, paths []string) error {
	ctx := cmd.Context()
	fs := afs.New()
	cfg, err := loadConfig(ctx, cmd, fs, opts)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	defer func() { _ = logger.Sync() }()

	lex, err := loadLexicon(ctx, fs, cfg.Lexicon)
	if err != nil {
		return err
	}
	format, _ := reporter.ParseFormat(cfg.Format)
	options := append(cfg.DetectorOptions(), detector.WithLexicon(lex), detector.WithFS(fs), detector.WithLogger(logger))
	srv := detector.New(options...)

	if len(paths) == 0 {
		paths = []string{"."}
	}
	projects := repository.New(fs)
	for _, location := range paths {
		if project, err := projects.DetectProject(ctx, location); err == nil {
			logger.Debug("scanning", zap.String("path", location), zap.String("project", project.Label()), zap.String("root", project.RootPath))
		}
	}

	results, err := srv.DetectPaths(ctx, paths...)
	if err != nil {
		return err
	}
	out := reporter.New(cmd.OutOrStdout(), reporter.WithFormat(format), reporter.WithColor(cfg.Color))
	if err = out.ReportResults(results); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	violations, failures := 0, 0
	for _, result := range results {
		violations += len(result.Violations)
		if result.Err != nil {
			failures++
			logger.Warn("file not scanned", zap.String("path", result.Path), zap.Error(result.Err))
		}
	}
	logger.Info("scan completed", zap.Int("files", len(results)), zap.Int("violations", violations), zap.Int("failures", failures))
	if failures > 0 || (violations > 0 && cfg.FailOnViolation) {
		return errFailed
	}
	return nil
}

func runLexicon(cmd *cobra.Command, opts *flags) error {
	ctx := cmd.Context()
	fs := afs.New()
	cfg, err := loadConfig(ctx, cmd, fs, opts)
	if err != nil {
		return err
	}
	lex, err := loadLexicon(ctx, fs, cfg.Lexicon)
	if err != nil {
		return err
	}
	words, categories := describe(lex)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "words: %d\n", words)
	for _, category := range categories.Categories() {
		fmt.Fprintf(out, "%s: %d\n", category, categories[category])
	}
	return nil
}

func describe(lex lexicon.Lexicon) (int, lexicon.Issues) {
	switch actual := lex.(type) {
	case *lexicon.Corpus:
		return actual.Len(), actual.Categories()
	case *lexicon.WordList:
		return actual.Len(), lexicon.Issues{lexicon.DefaultCategory: actual.Len()}
	}
	return 0, lexicon.Issues{}
}
