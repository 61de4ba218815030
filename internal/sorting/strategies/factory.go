package strategies

import (
	"strings"

	"github.com/evanrichards/tsorder/internal/config"
	"github.com/evanrichards/tsorder/internal/sorting"
	"github.com/evanrichards/tsorder/internal/sorting/common"
	"github.com/evanrichards/tsorder/internal/sorting/interfaces"
)

// MissingKeyPrefix makes items whose key cannot be extracted sort after all
// others in ascending order and before them in descending order.
const MissingKeyPrefix = "\uffff"

// Factory creates sorting strategies based on configuration
type Factory struct{}

// NewFactory creates a new strategy factory
func NewFactory() *Factory {
	return &Factory{}
}

// CreateStrategy creates the appropriate strategy based on config
func (f *Factory) CreateStrategy(cfg config.SortConfig) interfaces.KeyStrategy {
	if cfg.SortByComment {
		return &CommentContentStrategy{}
	}
	if cfg.Key != "" {
		return &ArrayKeyStrategy{KeyPath: cfg.Key}
	}
	return &PropertyNameStrategy{}
}

// ApplyExplicitKey sets an explicit key on m computed by strategy. Items
// without a key keep their source text behind MissingKeyPrefix.
func ApplyExplicitKey(m *sorting.Member, strategy interfaces.KeyStrategy, item interfaces.Item, content []byte) {
	key, err := strategy.ExtractKey(item, content)
	if err != nil {
		key = MissingKeyPrefix + strings.TrimSpace(common.Text(item.Node(), content))
	}
	m.Key = sorting.KeyExplicit
	m.KeyText = key
}
