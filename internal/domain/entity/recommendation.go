package entity

// Recommendation is the externally visible result item. It is immutable
// once produced; lists are ordered by RelevanceScore descending with
// ties kept in merge arrival order.
type Recommendation struct {
	Type           ContentType `json:"type"`
	ID             int64       `json:"id"`
	RelevanceScore int         `json:"relevance_score"` // 0-100
	Explanation    string      `json:"explanation,omitempty"`
	Data           *Content    `json:"data,omitempty"`
}
