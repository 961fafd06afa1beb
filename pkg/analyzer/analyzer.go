// Package analyzer orchestrates a full analysis run: it walks a directory
// tree, admits files against include/exclude patterns, parses each admitted
// file, applies every rule in the configured rule set, and assembles the
// hierarchical results tree.
package analyzer

import (
	"context"
	"path"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/srclint/pkg/errors"
	"github.com/arthur-debert/srclint/pkg/logging"
	"github.com/arthur-debert/srclint/pkg/pattern"
	"github.com/arthur-debert/srclint/pkg/results"
	"github.com/arthur-debert/srclint/pkg/rule"
	"github.com/arthur-debert/srclint/pkg/ruleset"
	"github.com/arthur-debert/srclint/pkg/source"
)

// Config carries the analyzer options. The zero value analyzes every file
// under the root with the line-oriented text parser on the real filesystem.
type Config struct {
	// Includes and Excludes are comma-separated wildcard pattern lists
	// controlling file admission. An empty Includes admits every file; an
	// empty Excludes excludes none. Exclusion wins over inclusion.
	Includes string
	Excludes string

	// FailOnError aborts the whole run on the first per-file parse or rule
	// failure instead of logging and continuing.
	FailOnError bool

	// Workers sets the file-level parallelism within a directory. Values
	// below 2 analyze sequentially. The result tree is identical at any
	// setting.
	Workers int

	// FS is the filesystem to traverse; defaults to the OS filesystem.
	FS afero.Fs

	// Parser produces parsed source units; defaults to source.TextParser.
	Parser source.Parser

	// Logger receives analysis diagnostics; defaults to the component
	// logger. Pass zerolog.Nop() for silent operation in tests.
	Logger *zerolog.Logger
}

// Analyzer applies a rule set to every admitted file under a root directory.
type Analyzer struct {
	includes    *pattern.Pattern
	excludes    *pattern.Pattern
	failOnError bool
	workers     int
	fs          afero.Fs
	parser      source.Parser
	logger      zerolog.Logger
}

// New builds an analyzer from the configuration, applying defaults.
func New(cfg Config) *Analyzer {
	fs := cfg.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	parser := cfg.Parser
	if parser == nil {
		parser = source.TextParser{}
	}
	var logger zerolog.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	} else {
		logger = logging.GetLogger("analyzer")
	}
	return &Analyzer{
		includes:    pattern.New(cfg.Includes, true),
		excludes:    pattern.New(cfg.Excludes, false),
		failOnError: cfg.FailOnError,
		workers:     cfg.Workers,
		fs:          fs,
		parser:      parser,
		logger:      logger,
	}
}

// Analyze runs the rule set over every admitted file under root and returns
// the root of the results tree. The rule set is frozen before any file is
// touched; rule validation failures surface as configuration errors. The
// root must exist and be a directory.
//
// Directory entries are visited in sorted name order, so two runs over an
// unchanged tree produce structurally identical results.
func (a *Analyzer) Analyze(ctx context.Context, rs *ruleset.RuleSet, root string) (*results.DirectoryResult, error) {
	if err := a.includes.Validate(); err != nil {
		return nil, err
	}
	if err := a.excludes.Validate(); err != nil {
		return nil, err
	}
	if err := rs.Freeze(); err != nil {
		return nil, err
	}

	info, err := a.fs.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRootMissing, "source directory %s does not exist", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrRootMissing, "source path %s is not a directory", root)
	}

	a.logger.Info().
		Str("root", root).
		Int("ruleCount", rs.Len()).
		Msg("Starting analysis")

	tree, err := a.analyzeDir(ctx, rs, root, ".")
	if err != nil {
		return nil, err
	}

	a.logger.Info().
		Int("files", tree.NumberOfFiles()).
		Int("violations", tree.NumberOfViolations()).
		Msg("Analysis complete")

	return tree, nil
}

// analyzeDir builds the result node for one directory: subdirectories are
// recursed depth-first and attached only when their subtree contains at
// least one analyzed file; admitted files are analyzed, in parallel when
// configured, and attached in entry order.
func (a *Analyzer) analyzeDir(ctx context.Context, rs *ruleset.RuleSet, root, relDir string) (*results.DirectoryResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absDir := filepath.Join(root, filepath.FromSlash(relDir))
	entries, err := afero.ReadDir(a.fs, absDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", absDir)
	}

	dir := results.NewDirectoryResult(relDir)
	children := make([]results.Result, len(entries))

	type fileJob struct {
		idx int
		rel string
	}
	var jobs []fileJob

	for i, entry := range entries {
		rel := path.Join(relDir, entry.Name())
		if entry.IsDir() {
			child, err := a.analyzeDir(ctx, rs, root, rel)
			if err != nil {
				return nil, err
			}
			if child.NumberOfFiles() > 0 {
				children[i] = child
			}
			continue
		}
		if !a.admits(root, rel) {
			continue
		}
		jobs = append(jobs, fileJob{idx: i, rel: rel})
	}

	if a.workers > 1 && len(jobs) > 1 {
		run := newParallelRun(a.workers)
		for _, job := range jobs {
			job := job
			if !run.schedule() {
				break
			}
			go func() {
				defer run.done()
				res, err := a.analyzeFile(rs, root, job.rel)
				if err != nil {
					run.fail(err)
					return
				}
				children[job.idx] = res
			}()
		}
		if err := run.wait(); err != nil {
			return nil, err
		}
	} else {
		for _, job := range jobs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			res, err := a.analyzeFile(rs, root, job.rel)
			if err != nil {
				return nil, err
			}
			children[job.idx] = res
		}
	}

	for _, child := range children {
		if child != nil {
			dir.AddChild(child)
		}
	}
	return dir, nil
}

// admits applies the include/exclude patterns. Both the root-relative path
// and the root-prefixed path are tested, so configurations can express
// patterns either way.
func (a *Analyzer) admits(root, relPath string) bool {
	rel := filepath.ToSlash(relPath)
	prefixed := filepath.ToSlash(filepath.Join(root, filepath.FromSlash(relPath)))

	if !a.includes.Matches(rel) && !a.includes.Matches(prefixed) {
		return false
	}
	if a.excludes.Matches(rel) || a.excludes.Matches(prefixed) {
		return false
	}
	return true
}

// analyzeFile reads, parses, and applies every rule to one admitted file.
// Parse failures and per-rule failures are isolated to this file unless
// FailOnError escalates them; a phase mismatch is a wiring bug and always
// aborts the run.
func (a *Analyzer) analyzeFile(rs *ruleset.RuleSet, root, relPath string) (results.Result, error) {
	absPath := filepath.Join(root, filepath.FromSlash(relPath))

	data, err := afero.ReadFile(a.fs, absPath)
	if err != nil {
		a.logger.Warn().Err(err).Str("path", relPath).Msg("Cannot read source file")
		if a.failOnError {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", relPath)
		}
		return results.NewFailedFileResult(relPath), nil
	}

	unit, err := a.parser.Parse(relPath, data)
	if err != nil {
		a.logger.Warn().Err(err).Str("path", relPath).Msg("Cannot parse source file")
		if a.failOnError {
			return nil, errors.Wrapf(err, errors.ErrParse, "cannot parse %s", relPath)
		}
		return results.NewFailedFileResult(relPath), nil
	}

	var all []rule.Violation
	for _, r := range rs.Rules() {
		violations, err := rule.Apply(r, unit, a.logger)
		if err != nil {
			if errors.IsErrorCode(err, errors.ErrPhaseMismatch) {
				return nil, err
			}
			if a.failOnError {
				return nil, err
			}
			// Apply already logged the failure; remaining rules still run.
			continue
		}
		all = append(all, violations...)
	}

	return results.NewFileResult(relPath, all), nil
}
