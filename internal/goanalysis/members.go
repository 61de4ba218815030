package goanalysis

import (
	"go/ast"
	"go/token"
	"strings"

	"github.com/evanrichards/tsorder/internal/config"
	"github.com/evanrichards/tsorder/internal/sorting"
)

// Selectors and modifiers of Go members.
const (
	selField    = "field"
	selEmbedded = "embedded"
	selMethod   = "method"

	modExported   = "exported"
	modUnexported = "unexported"
	modTagged     = "tagged"
)

// source maps token positions of one file to byte offsets of its content.
type source struct {
	file *token.File
	src  []byte
}

func (s source) offset(pos token.Pos) int {
	return s.file.Offset(pos)
}

func (s source) span(n ast.Node) sorting.Span {
	return sorting.Span{Start: s.offset(n.Pos()), End: s.offset(n.End())}
}

func (s source) text(n ast.Node) string {
	sp := s.span(n)
	return string(s.src[sp.Start:sp.End])
}

// magicComment returns the keep-sorted comment placed directly inside list,
// outside of any member, or nil.
func magicComment(file *ast.File, list *ast.FieldList, s source) *ast.Comment {
	if list == nil || !list.Opening.IsValid() || !list.Closing.IsValid() {
		return nil
	}
	for _, c := range commentsIn(file, list.Opening, list.Closing) {
		if insideField(list, c.Pos()) {
			continue
		}
		if config.IsMagicComment([]byte(s.text(c))) {
			return c
		}
	}
	return nil
}

func insideField(list *ast.FieldList, pos token.Pos) bool {
	for _, f := range list.List {
		if f.Pos() <= pos && pos < f.End() {
			return true
		}
	}
	return false
}

// commentsIn lists the comments strictly between from and to.
func commentsIn(file *ast.File, from, to token.Pos) []*ast.Comment {
	var out []*ast.Comment
	for _, g := range file.Comments {
		if g.End() <= from || g.Pos() >= to {
			continue
		}
		for _, c := range g.List {
			if c.Pos() > from && c.End() < to {
				out = append(out, c)
			}
		}
	}
	return out
}

// members describes the fields of list that follow the magic comment.
func members(file *ast.File, list *ast.FieldList, magic *ast.Comment, interfaceBody bool, s source) []sorting.Member {
	comments := commentsIn(file, magic.End(), list.Closing)

	var out []sorting.Member
	lower := magic.End()
	var prev *ast.Field
	for _, f := range list.List {
		if f.Pos() < magic.End() {
			continue
		}

		m := member(f, interfaceBody, s)
		for _, c := range comments {
			if c.Pos() <= lower || c.Pos() >= f.Pos() || ownedBy(prev, c) {
				continue
			}
			m.Leading = append(m.Leading, sorting.Comment{Span: s.span(c), Text: c.Text})
		}
		if isDeprecated(m.Leading) {
			m.Modifiers = append(m.Modifiers, sorting.ModDeprecated)
		}

		out = append(out, m)
		lower = f.End()
		prev = f
	}
	return out
}

// ownedBy reports whether c is the same-line comment of the previous field.
func ownedBy(prev *ast.Field, c *ast.Comment) bool {
	if prev == nil || prev.Comment == nil {
		return false
	}
	for _, pc := range prev.Comment.List {
		if pc == c {
			return true
		}
	}
	return false
}

func member(f *ast.Field, interfaceBody bool, s source) sorting.Member {
	m := sorting.Member{
		Span: s.span(f),
		Node: f,
	}

	name := embeddedName(f.Type)
	if len(f.Names) > 0 {
		name = f.Names[0].Name
		m.Key = sorting.KeyIdentifier
		m.KeySpan = s.span(f.Names[0])
	} else {
		m.Key = sorting.KeyRaw
		m.KeySpan = s.span(f.Type)
	}

	switch {
	case len(f.Names) == 0 && interfaceBody:
		m.Selectors = []string{selEmbedded}
	case len(f.Names) == 0:
		m.Selectors = []string{selEmbedded, selField}
	case interfaceBody:
		m.Selectors = []string{selMethod}
	default:
		m.Selectors = []string{selField}
	}

	if name != "" && ast.IsExported(name) {
		m.Modifiers = append(m.Modifiers, modExported)
	} else {
		m.Modifiers = append(m.Modifiers, modUnexported)
	}
	if f.Tag != nil {
		m.Modifiers = append(m.Modifiers, modTagged)
	}
	if strings.Contains(s.text(f), "\n") {
		m.Modifiers = append(m.Modifiers, sorting.ModMultiline)
	}

	if f.Comment != nil {
		m.Trailing = &sorting.Comment{
			Span: s.span(f.Comment),
			Text: s.text(f.Comment),
		}
	}
	return m
}

// embeddedName is the type name an embedded field is accessed by.
func embeddedName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(t.X)
	case *ast.IndexListExpr:
		return embeddedName(t.X)
	}
	return ""
}

func isDeprecated(comments []sorting.Comment) bool {
	for _, c := range comments {
		if strings.Contains(c.Text, "Deprecated:") {
			return true
		}
	}
	return false
}
