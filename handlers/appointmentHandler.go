package handlers

import (
	"HealthBook/middlewares"
	"HealthBook/models"
	"HealthBook/repositories"
	"HealthBook/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middlewares.HttpError(c, "All fields are required", http.StatusBadRequest, err)
		return
	}

	appointment, err := h.service.Book(c.Request.Context(), req)
	switch {
	case err == nil:
		middlewares.RespondJSON(c, appointment, http.StatusOK)
	case errors.Is(err, services.ErrMissingFields):
		middlewares.HttpError(c, "All fields are required", http.StatusBadRequest, nil)
	case errors.Is(err, repositories.ErrDoctorNotFound):
		middlewares.HttpError(c, "Doctor not found", http.StatusNotFound, nil)
	case errors.Is(err, repositories.ErrSlotTaken):
		middlewares.HttpError(c, "Time slot already booked", http.StatusConflict, nil)
	default:
		middlewares.HttpError(c, internalServerError, http.StatusInternalServerError, err)
	}
}

// GetDoctorAppointments lists a doctor's appointments. An id that cannot name a doctor yields an empty list.
func (h *AppointmentHandler) GetDoctorAppointments(c *gin.Context) {
	doctorID, ok := parseID(c.Param("doctorId"))
	if !ok {
		middlewares.RespondJSON(c, []models.Appointment{}, http.StatusOK)
		return
	}

	appointments, err := h.service.ListByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		middlewares.HttpError(c, internalServerError, http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, appointments, http.StatusOK)
}
