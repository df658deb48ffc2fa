package driven

// MarkupRenderer turns a markup fragment into its visible text.
// Tags are discarded and entities decoded.
type MarkupRenderer interface {
	// Render returns the rendered text of fragment.
	Render(fragment string) (string, error)
}
