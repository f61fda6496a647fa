package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/settleview/settleview-api/internal/appointments"
	"github.com/settleview/settleview-api/pkg/middleware"
)

// ListAppointments returns the caller's appointments in creation order.
func (a *API) ListAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, a.appointments.List(middleware.Subject(c)))
}

// CreateAppointment books a new appointment. The status is always pending;
// a status supplied by the client is ignored.
func (a *API) CreateAppointment(c *gin.Context) {
	var in appointments.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	apt, err := a.appointments.Create(middleware.Subject(c), in)
	if err != nil {
		respondError(c, err, "Appointment")
		return
	}
	c.JSON(http.StatusCreated, apt)
}

// UpdateAppointment merges a partial update into an appointment.
func (a *API) UpdateAppointment(c *gin.Context) {
	id, ok := requireQueryID(c, "Appointment")
	if !ok {
		return
	}
	var p appointments.Patch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	apt, err := a.appointments.Update(middleware.Subject(c), id, p)
	if err != nil {
		respondError(c, err, "Appointment")
		return
	}
	c.JSON(http.StatusOK, apt)
}

// DeleteAppointment removes an appointment.
func (a *API) DeleteAppointment(c *gin.Context) {
	id, ok := requireQueryID(c, "Appointment")
	if !ok {
		return
	}
	if err := a.appointments.Delete(middleware.Subject(c), id); err != nil {
		respondError(c, err, "Appointment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}
