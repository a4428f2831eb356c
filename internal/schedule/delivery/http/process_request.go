package http

import (
	"github.com/gin-gonic/gin"
)

// processAppointmentReq binds and validates the intake form body.
func (h *handler) processAppointmentReq(c *gin.Context) (appointmentReq, error) {
	var req appointmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processExtractReq binds and validates the image extraction body.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
