package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schedule-board/pkg/response"
)

// Create godoc
// @Summary     Create an appointment
// @Description Stores a new appointment from the intake form, optionally sending the Zoom link.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body appointmentReq true "Appointment data"
// @Success     200 {object} appointmentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/appointments [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAppointmentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	appt, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newAppointmentResp(appt))
}

// Update godoc
// @Summary     Update an appointment
// @Description Replaces an existing appointment with the resubmitted intake form.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Appointment ID"
// @Param       body body appointmentReq true "Appointment data"
// @Success     200 {object} appointmentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/appointments/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	req, err := h.processAppointmentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	appt, err := h.uc.Update(ctx, id, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newAppointmentResp(appt))
}

// DayView godoc
// @Summary     Daily schedule board
// @Description Returns the day's appointments grouped by owner, ordered by time.
// @Tags        Schedule
// @Produce     json
// @Success     200 {object} dayViewResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule [GET]
func (h *handler) DayView(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.DayView(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.DayView: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newDayViewResp(out))
}

// ResendLink godoc
// @Summary     Resend a Zoom invitation link
// @Description Triggers a best-effort re-send for a Zoom appointment.
// @Tags        Schedule
// @Produce     json
// @Param       id path string true "Appointment ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/appointments/{id}/resend-link [POST]
func (h *handler) ResendLink(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.ResendLink(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.ResendLink: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// Extract godoc
// @Summary     Extract appointments from an image
// @Description Sends a schedule screenshot to the extraction model and admits the results.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Base64 image payload"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	appts, err := h.uc.ExtractFromImage(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractFromImage: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newExtractResp(appts))
}
