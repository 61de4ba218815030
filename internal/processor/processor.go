package processor

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/evanrichards/tsorder/internal/config"
	"github.com/evanrichards/tsorder/internal/logging"
	"github.com/evanrichards/tsorder/internal/parser"
	"github.com/evanrichards/tsorder/internal/reconstruction"
	"github.com/evanrichards/tsorder/internal/report"
	"github.com/evanrichards/tsorder/internal/sorting"
	"github.com/evanrichards/tsorder/internal/sorting/interfaces"

	sitter "github.com/smacker/go-tree-sitter"
)

// MaxPasses bounds how often a file is re-parsed and re-sorted. Nested sorted
// containers need one pass per nesting level.
const MaxPasses = 10

// Options configure a Processor.
type Options struct {
	// Defaults is the configuration every container starts from.
	Defaults config.SortConfig
	// Kinds are checked even without a magic comment.
	Kinds  []interfaces.Kind
	Logger *slog.Logger
	// Cache, when set, lets ProcessFile skip files recorded as sorted.
	Cache Cache
}

// Cache remembers the content of files that had no violations.
type Cache interface {
	Clean(ctx context.Context, path string, content []byte) (int, bool, error)
	MarkClean(ctx context.Context, path string, content []byte, containers int) error
	Forget(ctx context.Context, path string) error
}

// Processor handles the complete sorting workflow for TypeScript/TSX files.
// It is safe for concurrent use.
type Processor struct {
	defaults config.SortConfig
	kinds    []interfaces.Kind
	matchers *sorting.MatcherSet
	logger   *slog.Logger
	cache    Cache
}

// NewProcessor creates a new processor with all dependencies
func NewProcessor(opts Options) *Processor {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Processor{
		defaults: opts.Defaults,
		kinds:    opts.Kinds,
		matchers: sorting.NewMatcherSet(),
		logger:   logger,
		cache:    opts.Cache,
	}
}

// ProcessResult contains the result of processing a file
type ProcessResult struct {
	Changed            bool
	Output             []byte
	ContainersFound    int
	ContainersNeedSort int
	Diagnostics        []report.Diagnostic
	Passes             int
	// Cached is set when the file was skipped as known to be sorted.
	Cached bool
}

// ProcessFile reads, processes and, when write is set, writes back a file.
func (p *Processor) ProcessFile(ctx context.Context, path string, write bool) (ProcessResult, error) {
	lang, err := LanguageFor(path)
	if err != nil {
		return ProcessResult{}, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("reading file: %w", err)
	}

	if p.cache != nil {
		n, ok, err := p.cache.Clean(ctx, path, content)
		if err != nil {
			p.logger.Warn("cache lookup failed", "path", path, "error", err)
		} else if ok {
			return ProcessResult{Output: content, ContainersFound: n, Cached: true}, nil
		}
	}

	result, err := p.ProcessContent(ctx, path, lang, content)
	if err != nil {
		return result, err
	}
	p.remember(ctx, path, content, result)

	if result.Changed && write {
		info, err := os.Stat(path)
		if err != nil {
			return result, fmt.Errorf("stat file: %w", err)
		}
		if err := os.WriteFile(path, result.Output, info.Mode().Perm()); err != nil {
			return result, fmt.Errorf("writing file: %w", err)
		}
	}
	return result, nil
}

// remember records a clean file in the cache and forgets any other.
func (p *Processor) remember(ctx context.Context, path string, content []byte, result ProcessResult) {
	if p.cache == nil {
		return
	}
	var err error
	if !result.Changed && len(result.Diagnostics) == 0 {
		err = p.cache.MarkClean(ctx, path, content, result.ContainersFound)
	} else {
		err = p.cache.Forget(ctx, path)
	}
	if err != nil {
		p.logger.Warn("cache update failed", "path", path, "error", err)
	}
}

// ProcessContent checks content and computes its sorted form. Diagnostics
// refer to the original content. Fixes are applied in passes until no
// container changes; a pass that would introduce a syntax error is dropped.
func (p *Processor) ProcessContent(ctx context.Context, path string, lang Language, content []byte) (ProcessResult, error) {
	result := ProcessResult{Output: content}

	// Early exit if no magic comment found
	if len(p.kinds) == 0 && !parser.HasDirective(content) {
		return result, nil
	}

	tree, err := Parse(ctx, lang, content)
	if err != nil {
		return result, err
	}
	brokenInput := tree.RootNode().HasError()
	first := p.analyze(tree.RootNode(), content)
	tree.Close()

	result.ContainersFound = first.found
	result.ContainersNeedSort = first.needSort
	result.Diagnostics = first.diagnostics(path, content)

	output, edits := content, first.edits
	for pass := 1; len(edits) > 0 && pass <= MaxPasses; pass++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		apply, deferred := reconstruction.Disjoint(edits)
		next, err := reconstruction.Apply(output, apply)
		if err != nil {
			return result, fmt.Errorf("applying fixes: %w", err)
		}

		tree, err := Parse(ctx, lang, next)
		if err != nil {
			return result, err
		}
		if !brokenInput && tree.RootNode().HasError() {
			tree.Close()
			p.logger.Warn("dropping fixes that break the syntax", "path", path, "pass", pass)
			break
		}

		output = next
		result.Passes = pass
		edits = p.analyze(tree.RootNode(), output).edits
		tree.Close()

		p.logger.Debug("applied fixes", "path", path, "pass", pass,
			"applied", len(apply), "deferred", len(deferred), "remaining", len(edits))
	}

	result.Output = output
	result.Changed = !bytes.Equal(output, content)
	return result, nil
}

// finding is a diagnostic at a byte offset, before positions are resolved.
type finding struct {
	offset  int
	rule    report.Rule
	message string
	fixable bool
}

type analysis struct {
	found    int
	needSort int
	findings []finding
	edits    []sorting.Edit
}

func (a analysis) diagnostics(path string, content []byte) []report.Diagnostic {
	if len(a.findings) == 0 {
		return nil
	}
	out := make([]report.Diagnostic, 0, len(a.findings))
	for _, f := range a.findings {
		line, col := report.Position(content, f.offset)
		out = append(out, report.Diagnostic{
			Path:    path,
			Line:    line,
			Column:  col,
			Rule:    f.rule,
			Message: f.message,
			Fixable: f.fixable,
		})
	}
	return out
}

// analyze runs the engine on every container of the tree.
func (p *Processor) analyze(root *sitter.Node, content []byte) analysis {
	var a analysis
	for _, c := range parser.FindContainers(root, content, p.kinds) {
		a.found++

		cfg, err := p.resolveConfig(c, content)
		if err != nil {
			a.findings = append(a.findings, finding{
				offset:  int(c.MagicComment().StartByte()),
				rule:    report.RuleInvalidConfig,
				message: fmt.Sprintf(report.MsgInvalidConfig, err),
			})
			continue
		}

		p.logger.Debug("container", "kind", c.Kind(), "mode", cfg.GetSortingMode())

		runs, err := c.Runs(content, cfg)
		if err != nil {
			a.findings = append(a.findings, finding{
				offset:  int(c.Node().StartByte()),
				rule:    report.RuleInvalidConfig,
				message: fmt.Sprintf(report.MsgInvalidConfig, err),
			})
			continue
		}

		matcher := p.matchers.For(cfg.PatternSyntax)
		unsorted := false
		for _, run := range runs {
			res := sorting.Analyze(content, run, cfg, matcher)
			if res.Sorted() {
				continue
			}
			unsorted = true
			a.edits = append(a.edits, res.Fixes...)
			a.findings = append(a.findings, findings(res)...)
		}
		if unsorted {
			a.needSort++
		}
	}
	return a
}

// resolveConfig layers the container's defaults and its magic comment
// options over the project defaults.
func (p *Processor) resolveConfig(c interfaces.Container, content []byte) (config.SortConfig, error) {
	cfg := c.Defaults(p.defaults)
	if mc := c.MagicComment(); mc != nil {
		opts, err := config.ParseSortConfig(content[mc.StartByte():mc.EndByte()])
		if err != nil {
			return cfg, err
		}
		cfg = opts.Apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func findings(res sorting.Result) []finding {
	fixed := make(map[int]bool)
	for _, d := range res.Diagnostics {
		if d.Fix != nil {
			fixed[d.Partition] = true
		}
	}

	out := make([]finding, 0, len(res.Diagnostics))
	for _, d := range res.Diagnostics {
		rule := report.RuleOrder
		if d.Kind == sorting.ViolationGroupOrder {
			rule = report.RuleGroupOrder
		}
		out = append(out, finding{
			offset:  d.Element.Member.Start,
			rule:    rule,
			message: d.Message(),
			fixable: fixed[d.Partition],
		})
	}
	return out
}
