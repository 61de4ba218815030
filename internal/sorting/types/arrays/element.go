package arrays

import (
	"github.com/evanrichards/tsorder/internal/sorting"
	"github.com/evanrichards/tsorder/internal/sorting/common"
	"github.com/evanrichards/tsorder/internal/sorting/interfaces"
	"github.com/evanrichards/tsorder/internal/sorting/strategies"
)

// NewElement describes an array element for the engine. Elements have no
// name of their own; strategy computes one from the value, a key path or a
// comment.
func NewElement(s *common.Sibling, strategy interfaces.KeyStrategy, content []byte) sorting.Member {
	m := common.Member(s, content, false)
	switch s.Elem.Type() {
	case "spread_element":
		m.Selectors = []string{"spread", "element"}
	case "string", "number", "template_string", "true", "false", "null", "undefined":
		m.Selectors = []string{"literal", "element"}
	default:
		m.Selectors = []string{"element"}
	}
	strategies.ApplyExplicitKey(&m, strategy, s, content)
	return m
}
