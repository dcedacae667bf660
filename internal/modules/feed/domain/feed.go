package domain

// Entry is one item from a feed fetch. Entries have no identity across
// fetches; each fetch replaces the previous slice.
type Entry struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Content string `json:"content"`
	Preview string `json:"preview"`
}
