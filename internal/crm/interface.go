package crm

import "context"

// Client is a CRM contact record surfaced by name search.
type Client struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// Lookup searches the CRM by client name. The intake form uses it to
// prefill phone and email while the user types.
type Lookup interface {
	Search(ctx context.Context, query string) ([]Client, error)
}
