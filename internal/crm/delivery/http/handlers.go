package http

import (
	"github.com/gin-gonic/gin"

	"schedule-board/internal/crm"
	"schedule-board/pkg/response"
)

type searchResp struct {
	Clients []crm.Client `json:"clients"`
	Count   int          `json:"count"`
}

// Search godoc
// @Summary     Search CRM clients
// @Description Returns contacts whose name matches the query. An empty query matches nothing.
// @Tags        CRM
// @Produce     json
// @Param       q query string false "Name query"
// @Success     200 {object} searchResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/crm/clients [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	clients, err := h.lookup.Search(ctx, c.Query("q"))
	if err != nil {
		h.l.Errorf(ctx, "lookup.Search: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, searchResp{Clients: clients, Count: len(clients)})
}
