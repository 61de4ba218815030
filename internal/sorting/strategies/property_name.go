package strategies

import (
	"github.com/evanrichards/tsorder/internal/sorting/common"
	"github.com/evanrichards/tsorder/internal/sorting/interfaces"
)

// PropertyName is the name of the default strategy. Containers whose members
// have their own names use those names directly.
const PropertyName = "property-name"

// PropertyNameStrategy sorts by member name. Array elements have no name, so
// their value is used instead.
type PropertyNameStrategy struct{}

func (s *PropertyNameStrategy) ExtractKey(item interfaces.Item, content []byte) (string, error) {
	return common.ExtractValueAsString(item.Node(), content), nil
}

func (s *PropertyNameStrategy) Name() string {
	return PropertyName
}
