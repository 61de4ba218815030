package strategies

import (
	"github.com/evanrichards/tsorder/internal/sorting/common"
	"github.com/evanrichards/tsorder/internal/sorting/interfaces"
)

// CommentContentStrategy sorts by comment content
type CommentContentStrategy struct{}

func (s *CommentContentStrategy) ExtractKey(item interfaces.Item, content []byte) (string, error) {
	return common.FindCommentTextForSorting(
		item.LeadingComments(),
		item.TrailingComment(),
		content,
	)
}

func (s *CommentContentStrategy) Name() string {
	return "comment-content"
}
