package handlers

import (
	"HealthBook/middlewares"
	"HealthBook/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	service *services.DoctorService
}

func NewDoctorHandler(service *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, internalServerError, http.StatusInternalServerError, err)
		return
	}
	middlewares.RespondJSON(c, doctors, http.StatusOK)
}

func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		middlewares.HttpError(c, "Doctor not found", http.StatusNotFound, nil)
		return
	}

	doctor, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		middlewares.HttpError(c, internalServerError, http.StatusInternalServerError, err)
		return
	}
	if doctor == nil {
		middlewares.HttpError(c, "Doctor not found", http.StatusNotFound, nil)
		return
	}
	middlewares.RespondJSON(c, doctor, http.StatusOK)
}
