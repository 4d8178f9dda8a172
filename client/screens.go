package client

import (
	"HealthBook/models"
	"HealthBook/views"
	"context"
	"errors"
	"log"
	"time"
)

// LoadDashboard fetches the doctor list into s.
func LoadDashboard(ctx context.Context, api Backend, s views.DashboardState) views.DashboardState {
	s = views.ReduceDashboard(s, views.DoctorsRequested{})
	token := s.Pending

	doctors, err := api.ListDoctors(ctx)
	if err != nil {
		log.Printf("Error fetching doctors: %v", err)
		return views.ReduceDashboard(s, views.DoctorsFailed{Token: token, Err: err})
	}
	return views.ReduceDashboard(s, views.DoctorsLoaded{Token: token, Doctors: doctors})
}

// LoadProfile fetches the doctor and the doctor's appointments into s.
func LoadProfile(ctx context.Context, api Backend, s views.ProfileState) views.ProfileState {
	s = views.ReduceProfile(s, views.DoctorRequested{})
	token := s.DoctorPending

	doctor, err := api.GetDoctor(ctx, s.DoctorID)
	switch {
	case IsNotFound(err):
		log.Printf("Doctor %d not found", s.DoctorID)
		s = views.ReduceProfile(s, views.DoctorMissing{Token: token})
	case err != nil:
		log.Printf("Error fetching doctor details: %v", err)
		s = views.ReduceProfile(s, views.DoctorFailed{Token: token, Err: err})
	default:
		s = views.ReduceProfile(s, views.DoctorLoaded{Token: token, Doctor: doctor})
	}

	return RefreshAppointments(ctx, api, views.ReduceProfile(s, views.AppointmentsRequested{}))
}

// RefreshAppointments fetches the appointment list for the request pending in s.
func RefreshAppointments(ctx context.Context, api Backend, s views.ProfileState) views.ProfileState {
	token := s.AppointmentsPending

	appointments, err := api.ListAppointments(ctx, s.DoctorID)
	if err != nil {
		log.Printf("Error fetching appointments: %v", err)
		return views.ReduceProfile(s, views.AppointmentsFailed{Token: token, Err: err})
	}
	return views.ReduceProfile(s, views.AppointmentsLoaded{Token: token, Appointments: appointments})
}

// SubmitBooking validates and sends the form. After a successful booking it waits delay, so the
// confirmation can be read, then calls onSuccess; if ctx ends first onSuccess is not called.
// The returned appointment is nil unless the booking succeeded.
func SubmitBooking(ctx context.Context, api Backend, form views.BookingFormState, today time.Time, delay time.Duration, onSuccess func()) (views.BookingFormState, *models.Appointment) {
	form = views.ReduceBookingForm(form, views.SubmitRequested{Today: today})
	if !form.Submitting {
		return form, nil
	}

	appointment, err := api.CreateAppointment(ctx, form.Request())
	if err != nil {
		log.Printf("Error booking appointment: %v", err)
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return views.ReduceBookingForm(form, views.SubmitFailed{Message: apiErr.Message}), nil
		}
		return views.ReduceBookingForm(form, views.SubmitFailed{Message: views.MsgNetworkError}), nil
	}

	form = views.ReduceBookingForm(form, views.SubmitSucceeded{})

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		if onSuccess != nil {
			onSuccess()
		}
	case <-ctx.Done():
	}
	return form, appointment
}
