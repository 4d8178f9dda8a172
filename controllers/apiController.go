package controllers

import (
	"HealthBook/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes registers the booking API under /api.
func SetupAPIRoutes(router *gin.Engine, doctorHandler *handlers.DoctorHandler, appointmentHandler *handlers.AppointmentHandler) {
	api := router.Group("/api")

	api.GET("/doctors", doctorHandler.GetAllDoctors)
	api.GET("/doctors/:id", doctorHandler.GetDoctorByID)

	api.POST("/appointments", appointmentHandler.CreateAppointment)
	api.GET("/appointments/:doctorId", appointmentHandler.GetDoctorAppointments)
}
