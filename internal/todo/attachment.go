package todo

import "fmt"

// PlaceholderPDF issues sequential placeholder document names. A real
// deployment swaps in a provider backed by actual file uploads.
type PlaceholderPDF struct{}

func (PlaceholderPDF) NextFilename(count int) string {
	return fmt.Sprintf("Document_%d.pdf", count+1)
}
