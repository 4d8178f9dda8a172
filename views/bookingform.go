package views

import (
	"HealthBook/models"
	"errors"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Form field names, also used as keys of BookingFormState.Errors.
const (
	FieldPatientName     = "patientName"
	FieldEmail           = "email"
	FieldAppointmentDate = "appointmentDate"
	FieldAppointmentTime = "appointmentTime"
	FieldSubmit          = "submit"
)

const dateLayout = "2006-01-02"

// ConfirmationDelay is how long the success message stays up before the profile is told to refresh.
const ConfirmationDelay = 2 * time.Second

// Submission failure messages shown when the server gives none.
const (
	MsgBookingFailed = "Failed to book appointment"
	MsgNetworkError  = "Network error. Please try again."
)

// TimeSlots are the bookable half-hour starts across the three daily blocks.
var TimeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	"18:00", "18:30", "19:00", "19:30",
}

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// BookingFormState is the booking dialog for one doctor.
type BookingFormState struct {
	DoctorID        uint
	PatientName     string
	Email           string
	AppointmentDate string
	AppointmentTime string
	Errors          map[string]string
	Submitting      bool
	Succeeded       bool
	Closed          bool
}

// NewBookingForm returns an empty form for the doctor.
func NewBookingForm(doctorID uint) BookingFormState {
	return BookingFormState{DoctorID: doctorID, Errors: map[string]string{}}
}

// BookingFormEvent is anything ReduceBookingForm understands.
type BookingFormEvent interface {
	bookingFormEvent()
}

// FieldChanged sets a field and clears its error.
type FieldChanged struct {
	Field string
	Value string
}

// SubmitRequested validates against Today; on success the state is Submitting.
type SubmitRequested struct{ Today time.Time }

type SubmitSucceeded struct{}

// SubmitFailed shows Message under the form, or MsgBookingFailed when it is empty.
type SubmitFailed struct{ Message string }

type FormClosed struct{}

func (FieldChanged) bookingFormEvent()    {}
func (SubmitRequested) bookingFormEvent() {}
func (SubmitSucceeded) bookingFormEvent() {}
func (SubmitFailed) bookingFormEvent()    {}
func (FormClosed) bookingFormEvent()      {}

// ReduceBookingForm returns the state after e.
func ReduceBookingForm(s BookingFormState, e BookingFormEvent) BookingFormState {
	if s.Closed || s.Succeeded {
		return s
	}
	switch e := e.(type) {
	case FieldChanged:
		switch e.Field {
		case FieldPatientName:
			s.PatientName = e.Value
		case FieldEmail:
			s.Email = e.Value
		case FieldAppointmentDate:
			s.AppointmentDate = e.Value
		case FieldAppointmentTime:
			s.AppointmentTime = e.Value
		default:
			return s
		}
		s.Errors = without(s.Errors, e.Field)
	case SubmitRequested:
		if s.Submitting {
			return s
		}
		s.Errors = ValidateBooking(s, e.Today)
		s.Submitting = len(s.Errors) == 0
	case SubmitSucceeded:
		if !s.Submitting {
			return s
		}
		s.Submitting = false
		s.Succeeded = true
	case SubmitFailed:
		if !s.Submitting {
			return s
		}
		msg := e.Message
		if msg == "" {
			msg = MsgBookingFailed
		}
		s.Submitting = false
		s.Errors = map[string]string{FieldSubmit: msg}
	case FormClosed:
		if !s.Submitting {
			s.Closed = true
		}
	}
	return s
}

// Request returns the API body for the form, with name and email trimmed.
func (s BookingFormState) Request() models.AppointmentRequest {
	return models.AppointmentRequest{
		DoctorID:        s.DoctorID,
		PatientName:     strings.TrimSpace(s.PatientName),
		Email:           strings.TrimSpace(s.Email),
		AppointmentDate: s.AppointmentDate,
		AppointmentTime: s.AppointmentTime,
	}
}

// ValidateBooking returns one message per invalid field; the map is empty when the form can be sent.
func ValidateBooking(s BookingFormState, today time.Time) map[string]string {
	errs := validation.Errors{
		FieldPatientName: validation.Validate(strings.TrimSpace(s.PatientName),
			validation.Required.Error("Patient name is required"),
			validation.RuneLength(2, 0).Error("Name must be at least 2 characters"),
		),
		FieldEmail: validation.Validate(strings.TrimSpace(s.Email),
			validation.Required.Error("Email is required"),
			validation.Match(emailPattern).Error("Please enter a valid email address"),
		),
		FieldAppointmentDate: validation.Validate(s.AppointmentDate,
			validation.Required.Error("Appointment date is required"),
			validation.Date(dateLayout).Error("Please enter a valid date"),
			validation.By(notBefore(today)),
		),
		FieldAppointmentTime: validation.Validate(s.AppointmentTime,
			validation.Required.Error("Appointment time is required"),
			validation.In(toInterfaces(TimeSlots)...).Error("Please select an available time"),
		),
	}

	out := map[string]string{}
	for field, err := range errs {
		if err != nil {
			out[field] = err.Error()
		}
	}
	return out
}

// notBefore rejects dates strictly earlier than today's calendar date.
func notBefore(today time.Time) validation.RuleFunc {
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return func(value interface{}) error {
		raw, _ := value.(string)
		date, err := time.ParseInLocation(dateLayout, raw, today.Location())
		if err != nil {
			return nil
		}
		if date.Before(start) {
			return errors.New("Please select a future date")
		}
		return nil
	}
}

func without(errs map[string]string, field string) map[string]string {
	out := make(map[string]string, len(errs))
	for k, v := range errs {
		if k != field && v != "" {
			out[k] = v
		}
	}
	return out
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
