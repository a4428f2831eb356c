package http

import (
	"github.com/gin-gonic/gin"

	"schedule-board/internal/crm"
	"schedule-board/pkg/log"
)

// Handler is the public interface for the CRM HTTP delivery layer.
type Handler interface {
	Search(c *gin.Context)
}

type handler struct {
	l      log.Logger
	lookup crm.Lookup
}

// New creates a new HTTP handler for CRM lookups.
func New(l log.Logger, lookup crm.Lookup) *handler {
	return &handler{
		l:      l,
		lookup: lookup,
	}
}
