package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/cobra"

	"github.com/tomhall/dirsummary/internal/config"
	"github.com/tomhall/dirsummary/internal/display"
	"github.com/tomhall/dirsummary/internal/filelock"
	"github.com/tomhall/dirsummary/internal/filter"
	"github.com/tomhall/dirsummary/internal/logger"
	"github.com/tomhall/dirsummary/internal/models"
	"github.com/tomhall/dirsummary/internal/pattern"
	"github.com/tomhall/dirsummary/internal/report"
	"github.com/tomhall/dirsummary/internal/scan"
	"github.com/tomhall/dirsummary/internal/stats"
)

// clipboardWriteAll is swappable in tests; clipboard availability
// depends on the environment the binary runs in.
var clipboardWriteAll = clipboard.WriteAll

// runSummary implements the root command logic
func runSummary(cmd *cobra.Command, args []string) error {
	// Validate the root directory before anything else
	root := args[0]
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("cannot access directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", root)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve directory %s: %w", root, err)
	}

	// Load configuration from file
	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromRoot(absRoot)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	// Get flag values
	includeFlag, _ := cmd.Flags().GetStringArray("include")
	excludeFlag, _ := cmd.Flags().GetStringArray("exclude")
	includeHiddenFlag, _ := cmd.Flags().GetBool("include-hidden")
	statsFlag, _ := cmd.Flags().GetBool("stats")
	useGitignoreFlag, _ := cmd.Flags().GetBool("use-gitignore")
	outputFlag, _ := cmd.Flags().GetString("output")
	warnSizeFlag, _ := cmd.Flags().GetInt("warn-size")
	useClipboard, _ := cmd.Flags().GetBool("clipboard")
	verbose, _ := cmd.Flags().GetBool("verbose")

	// Build flag pointers for merge (only explicitly set values)
	var includePtr, excludePtr *[]string
	if cmd.Flags().Changed("include") {
		includePtr = &includeFlag
	}
	if cmd.Flags().Changed("exclude") {
		excludePtr = &excludeFlag
	}

	var includeHiddenPtr, statsPtr, useGitignorePtr *bool
	if cmd.Flags().Changed("include-hidden") {
		includeHiddenPtr = &includeHiddenFlag
	}
	if cmd.Flags().Changed("stats") {
		statsPtr = &statsFlag
	}
	if cmd.Flags().Changed("use-gitignore") {
		useGitignorePtr = &useGitignoreFlag
	}

	var outputPtr *string
	if cmd.Flags().Changed("output") {
		outputPtr = &outputFlag
	}

	var warnSizePtr *int
	if cmd.Flags().Changed("warn-size") {
		warnSizePtr = &warnSizeFlag
	}

	// Merge CLI flags with config (flags take precedence)
	cfg.MergeWithFlags(includePtr, excludePtr, includeHiddenPtr, statsPtr, useGitignorePtr, outputPtr, warnSizePtr)

	// Validate merged configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fileMode := cfg.Output == config.OutputFile
	if useClipboard && fileMode {
		return fmt.Errorf("cannot use both --clipboard and --output file")
	}

	// Diagnostics go to stderr; report content owns stdout
	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), logLevel)

	// Compile pattern sets
	includeSet, err := pattern.NewSet(cfg.Include)
	if err != nil {
		return fmt.Errorf("invalid include pattern: %w", err)
	}
	excludeSet, err := pattern.NewSet(cfg.Exclude)
	if err != nil {
		return fmt.Errorf("invalid exclude pattern: %w", err)
	}

	policy := filter.Policy{
		ExcludeHidden: !cfg.IncludeHidden,
		Include:       includeSet,
		Exclude:       excludeSet,
	}

	// Attach gitignore rules when requested
	if cfg.UseGitignore {
		ignorePath := filepath.Join(absRoot, ".gitignore")
		if _, err := os.Stat(ignorePath); os.IsNotExist(err) {
			display.WarnMissingGitignore(absRoot).Display(cmd.ErrOrStderr())
		} else {
			matcher, err := ignore.CompileIgnoreFile(ignorePath)
			if err != nil {
				return fmt.Errorf("failed to compile %s: %w", ignorePath, err)
			}
			policy.Ignore = matcher
		}
	}

	// Pre-flight the sink so write failures surface before any walking
	var (
		artifact     *os.File
		artifactPath string
	)
	if fileMode {
		artifactPath = filepath.Join(absRoot, models.ReservedOutputName)

		lock := filelock.ForArtifact(artifactPath)
		acquired, err := lock.TryLock()
		if err != nil {
			return err
		}
		if !acquired {
			return fmt.Errorf("another dirsummary run holds %s", lock.Path())
		}
		defer func() {
			lock.Unlock()
			lock.Remove()
		}()

		artifact, err = os.Create(artifactPath)
		if err != nil {
			return fmt.Errorf("cannot write output file: %w", err)
		}
		defer artifact.Close()
	}

	// Walk the tree
	result, err := scan.Walk(absRoot, scan.Options{
		Policy: policy,
		OnSkip: func(relPath string, reason filter.Reason) {
			log.LogSkip(relPath, string(reason))
		},
	})
	if err != nil {
		return err
	}
	for _, walkErr := range result.Errors {
		log.LogWarn(walkErr.Error())
	}

	job := reportJob{
		root:    absRoot,
		records: result.Accepted,
		found:   result.Found,
		cfg:     cfg,
		ctx: report.Context{
			IncludePatterns: cfg.Include,
			ExcludePatterns: cfg.Exclude,
			IncludeHidden:   cfg.IncludeHidden,
			Root:            absRoot,
			OutputPath:      artifactPath,
			GeneratedAt:     time.Now(),
		},
		errOut: cmd.ErrOrStderr(),
		log:    log,
	}

	switch {
	case fileMode:
		runID := uuid.New().String()[:8]
		job.progress = display.NewProgressIndicator(cmd.ErrOrStderr(), len(result.Accepted), runID)

		w := bufio.NewWriter(artifact)
		if err := job.run(w); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("failed to flush output file: %w", err)
		}
		if err := artifact.Close(); err != nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}
		job.progress.Complete(artifactPath)
		return nil

	case useClipboard:
		var buf bytes.Buffer
		if err := job.run(&buf); err != nil {
			return err
		}
		if err := clipboardWriteAll(buf.String()); err != nil {
			display.WarnClipboardFallback(err).Display(cmd.ErrOrStderr())
			if _, err := io.Copy(cmd.OutOrStdout(), bytes.NewReader(buf.Bytes())); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			return nil
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report copied to clipboard (%d files, %s)\n",
			len(result.Accepted), stats.HumanSize(int64(buf.Len())))
		return nil

	default:
		if stalePath, found := display.FindStaleArtifact(absRoot); found {
			display.WarnStaleArtifact(stalePath).Display(cmd.ErrOrStderr())
		}
		return job.run(cmd.OutOrStdout())
	}
}

// reportJob bundles everything needed to emit one report to a sink.
type reportJob struct {
	root     string
	records  []models.FileRecord
	found    int
	cfg      *config.Config
	ctx      report.Context
	progress *display.ProgressIndicator // file mode only
	errOut   io.Writer
	log      *logger.ConsoleLogger
}

// run streams the per-file blocks and the optional summary into w.
// Unreadable files degrade to the placeholder text and never abort the
// report.
func (j reportJob) run(w io.Writer) error {
	rep := report.New(w)
	agg := stats.NewAggregator(j.found)

	if j.progress != nil {
		j.progress.Start()
	}

	for _, rec := range j.records {
		if j.progress != nil {
			j.progress.Step(rec.RelPath)
		}

		if j.cfg.WarnSizeMB > 0 && rec.Size > int64(j.cfg.WarnSizeMB)<<20 {
			display.WarnLargeFile(rec.RelPath, stats.Megabytes(rec.Size), j.cfg.WarnSizeMB).Display(j.errOut)
		}

		content, readErr := os.ReadFile(scan.AbsPath(j.root, rec))
		if readErr != nil {
			j.log.LogWarn(fmt.Sprintf("cannot read %s: %v", rec.RelPath, readErr))
		}
		if err := rep.File(rec, content, readErr); err != nil {
			return err
		}
		agg.Record(rec)
	}

	if j.cfg.SummaryStats {
		if err := rep.Summary(agg.Finalize(), j.ctx); err != nil {
			return err
		}
	}
	return nil
}
