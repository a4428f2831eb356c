package crm

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	pkgLog "schedule-board/pkg/log"
)

const (
	cacheSize = 128
	cacheTTL  = 5 * time.Minute
)

// RedtailMock is a stand-in for the Redtail CRM client search. It serves a
// fixed contact book and caches query results the way a real client would
// cache round trips.
type RedtailMock struct {
	l       pkgLog.Logger
	clients []Client
	cache   *expirable.LRU[string, []Client]
}

// NewRedtailMock creates the mock CRM lookup with the canned contact list.
func NewRedtailMock(l pkgLog.Logger) *RedtailMock {
	return &RedtailMock{
		l:       l,
		clients: mockClients(),
		cache:   expirable.NewLRU[string, []Client](cacheSize, nil, cacheTTL),
	}
}

// Search returns clients whose name contains the query, case-insensitive.
// An empty query matches nothing.
func (r *RedtailMock) Search(ctx context.Context, query string) ([]Client, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	if hit, ok := r.cache.Get(q); ok {
		return hit, nil
	}

	var out []Client
	for _, c := range r.clients {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}

	r.cache.Add(q, out)
	r.l.Debugf(ctx, "crm search %q matched %d clients", q, len(out))
	return out, nil
}

func mockClients() []Client {
	return []Client{
		{ID: "r1", Name: "Dina Wadi", Phone: "555-0101", Email: "dina.wadi@example.com", Description: "Nook windows"},
		{ID: "r2", Name: "Trevor McAlester", Phone: "949-874-7082", Email: "trevor.m@example.com", Description: "Nationwide benefit"},
		{ID: "r3", Name: "Ronnie Torres", Phone: "714-960-4700", Email: "ronnie@example.com", Description: "Group Health Insurance"},
		{ID: "r4", Name: "Florence Chan", Phone: "925-913-0072", Email: "florence.c@example.com", Description: "Tax strategies"},
		{ID: "r5", Name: "Ellen Tunkelrott", Phone: "310-503-1874", Email: "tunkelrott@gmail.com", Description: "Income streams"},
		{ID: "r6", Name: "Henry Mittel", Phone: "925-913-0072", Email: "henry.m@example.com", Description: "Tax strategies"},
	}
}
