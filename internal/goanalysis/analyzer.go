// Package goanalysis applies the ordering engine to Go struct fields and
// interface methods.
package goanalysis

import (
	"fmt"
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/evanrichards/tsorder/internal/config"
	"github.com/evanrichards/tsorder/internal/reconstruction"
	"github.com/evanrichards/tsorder/internal/report"
	"github.com/evanrichards/tsorder/internal/sorting"
)

const doc = `tsorder checks that Go members marked with a keep-sorted comment stay sorted

A comment inside the braces of a struct or interface type opts the members
that follow it in:

	type Options struct {
		// tsorder: keep-sorted { groups: [embedded, exported-field, field] }
		Name    string
		Verbose bool
		cache   map[string]int
	}

The comment takes the same options as in TypeScript sources. Members are
grouped as "field", "embedded" and "method", with the modifiers "exported",
"unexported", "tagged", "multiline" and "deprecated".`

// Analyzer reports members out of order and suggests the reordering.
var Analyzer = &analysis.Analyzer{
	Name:     "tsorder",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var configPath string

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "", "project configuration file with the default sort options")
}

func run(pass *analysis.Pass) (any, error) {
	defaults, err := loadDefaults(configPath)
	if err != nil {
		return nil, err
	}
	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.File)(nil),
		(*ast.StructType)(nil),
		(*ast.InterfaceType)(nil),
	}

	c := &checker{
		pass:     pass,
		defaults: defaults,
		matchers: sorting.NewMatcherSet(),
	}

	var files []*fileBodies
	pector.Preorder(nodeFilter, func(node ast.Node) {
		switch n := node.(type) {
		case *ast.File:
			files = append(files, &fileBodies{file: n})
		case *ast.StructType:
			cur := files[len(files)-1]
			cur.bodies = append(cur.bodies, body{list: n.Fields})
		case *ast.InterfaceType:
			cur := files[len(files)-1]
			cur.bodies = append(cur.bodies, body{list: n.Methods, interfaceBody: true})
		}
	})

	for _, f := range files {
		if ast.IsGenerated(f.file) || len(f.bodies) == 0 {
			continue
		}
		if err := c.checkFile(f); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func loadDefaults(path string) (config.SortConfig, error) {
	if path == "" {
		return config.Defaults(), nil
	}
	project, _, err := config.Load(path, nil, nil)
	if err != nil {
		return config.SortConfig{}, err
	}
	defaults, err := project.SortDefaults()
	if err != nil {
		return config.SortConfig{}, fmt.Errorf("project sort options: %w", err)
	}
	return defaults, nil
}

type body struct {
	list          *ast.FieldList
	interfaceBody bool
}

type fileBodies struct {
	file   *ast.File
	bodies []body
}

type checker struct {
	pass     *analysis.Pass
	defaults config.SortConfig
	matchers *sorting.MatcherSet
}

func (c *checker) checkFile(f *fileBodies) error {
	tf := c.pass.Fset.File(f.file.Pos())
	content, err := c.pass.ReadFile(tf.Name())
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	s := source{file: tf, src: content}

	var found []sorting.Diagnostic
	for _, b := range f.bodies {
		magic := magicComment(f.file, b.list, s)
		if magic == nil {
			continue
		}

		cfg, err := c.resolveConfig(s.text(magic))
		if err != nil {
			c.pass.Report(analysis.Diagnostic{
				Pos:      magic.Pos(),
				End:      magic.End(),
				Category: string(report.RuleInvalidConfig),
				Message:  fmt.Sprintf(report.MsgInvalidConfig, err),
			})
			continue
		}

		res := sorting.Analyze(content, members(f.file, b.list, magic, b.interfaceBody, s), cfg, c.matchers.For(cfg.PatternSyntax))
		found = append(found, res.Diagnostics...)
	}

	// Nested bodies are fixed by a later run once the outer one is sorted.
	var fixes []sorting.Edit
	for _, d := range found {
		if d.Fix != nil {
			fixes = append(fixes, *d.Fix)
		}
	}
	apply, _ := reconstruction.Disjoint(fixes)
	applicable := make(map[sorting.Span]bool, len(apply))
	for _, e := range apply {
		applicable[e.Span] = true
	}

	for _, d := range found {
		diag := analysis.Diagnostic{
			Pos:      tf.Pos(d.Element.Member.Start),
			End:      tf.Pos(d.Element.Member.End),
			Category: string(rule(d.Kind)),
			Message:  d.Message(),
		}
		if d.Fix != nil && applicable[d.Fix.Span] {
			diag.SuggestedFixes = []analysis.SuggestedFix{{
				Message: "Sort members",
				TextEdits: []analysis.TextEdit{{
					Pos:     tf.Pos(d.Fix.Start),
					End:     tf.Pos(d.Fix.End),
					NewText: []byte(d.Fix.Text),
				}},
			}}
		}
		c.pass.Report(diag)
	}
	return nil
}

func (c *checker) resolveConfig(comment string) (config.SortConfig, error) {
	opts, err := config.ParseSortConfig([]byte(comment))
	if err != nil {
		return c.defaults, err
	}
	cfg := opts.Apply(c.defaults)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func rule(kind sorting.ViolationKind) report.Rule {
	if kind == sorting.ViolationGroupOrder {
		return report.RuleGroupOrder
	}
	return report.RuleOrder
}
