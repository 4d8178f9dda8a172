package views

import (
	"testing"
	"time"
)

var today = time.Date(2024, time.May, 10, 15, 30, 0, 0, time.UTC)

func filled() BookingFormState {
	s := NewBookingForm(1)
	for field, value := range map[string]string{
		FieldPatientName:     "Asha Rao",
		FieldEmail:           "asha@example.com",
		FieldAppointmentDate: "2024-05-11",
		FieldAppointmentTime: "09:30",
	} {
		s = ReduceBookingForm(s, FieldChanged{Field: field, Value: value})
	}
	return s
}

func TestValidateBooking(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		want  string
	}{
		{"Valid", "", "", ""},
		{"NameRequired", FieldPatientName, "  ", "Patient name is required"},
		{"NameTooShort", FieldPatientName, "A", "Name must be at least 2 characters"},
		{"EmailRequired", FieldEmail, "", "Email is required"},
		{"EmailInvalid", FieldEmail, "bad-email", "Please enter a valid email address"},
		{"EmailShort", FieldEmail, "a@b.co", ""},
		{"DateRequired", FieldAppointmentDate, "", "Appointment date is required"},
		{"DateMalformed", FieldAppointmentDate, "10/05/2024", "Please enter a valid date"},
		{"DatePast", FieldAppointmentDate, "2024-05-09", "Please select a future date"},
		{"DateToday", FieldAppointmentDate, "2024-05-10", ""},
		{"TimeRequired", FieldAppointmentTime, "", "Appointment time is required"},
		{"TimeNotASlot", FieldAppointmentTime, "12:30", "Please select an available time"},
		{"TimeLastSlot", FieldAppointmentTime, "19:30", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := filled()
			if tt.field != "" {
				s = ReduceBookingForm(s, FieldChanged{Field: tt.field, Value: tt.value})
			}
			errs := ValidateBooking(s, today)

			if tt.want == "" {
				if len(errs) != 0 {
					t.Fatalf("unexpected errors %v", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("errors = %v, want only %s", errs, tt.field)
			}
			if got := errs[tt.field]; got != tt.want {
				t.Errorf("%s error = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestReduceBookingForm(t *testing.T) {
	t.Run("InvalidSubmitNotSent", func(t *testing.T) {
		s := ReduceBookingForm(NewBookingForm(1), SubmitRequested{Today: today})
		if s.Submitting {
			t.Fatal("empty form went to submitting")
		}
		if len(s.Errors) != 4 {
			t.Errorf("errors = %v, want one per field", s.Errors)
		}

		s = ReduceBookingForm(s, FieldChanged{Field: FieldEmail, Value: "x"})
		if _, ok := s.Errors[FieldEmail]; ok {
			t.Error("editing email did not clear its error")
		}
		if _, ok := s.Errors[FieldPatientName]; !ok {
			t.Error("editing email cleared another field's error")
		}
	})

	t.Run("Success", func(t *testing.T) {
		s := ReduceBookingForm(filled(), SubmitRequested{Today: today})
		if !s.Submitting {
			t.Fatalf("valid form not submitting: %v", s.Errors)
		}
		if again := ReduceBookingForm(s, SubmitRequested{Today: today}); again.Submitting != s.Submitting || len(again.Errors) != 0 {
			t.Error("second submit changed the in-flight form")
		}
		if closed := ReduceBookingForm(s, FormClosed{}); closed.Closed {
			t.Error("form closed while submitting")
		}

		s = ReduceBookingForm(s, SubmitSucceeded{})
		if !s.Succeeded || s.Submitting {
			t.Errorf("after success: %+v", s)
		}
	})

	t.Run("Failure", func(t *testing.T) {
		s := ReduceBookingForm(filled(), SubmitRequested{Today: today})
		s = ReduceBookingForm(s, SubmitFailed{Message: "Time slot already booked"})
		if s.Submitting || s.Errors[FieldSubmit] != "Time slot already booked" {
			t.Errorf("after failure: %+v", s)
		}

		s = ReduceBookingForm(s, SubmitRequested{Today: today})
		s = ReduceBookingForm(s, SubmitFailed{})
		if s.Errors[FieldSubmit] != MsgBookingFailed {
			t.Errorf("default message = %q", s.Errors[FieldSubmit])
		}
	})

	t.Run("Request", func(t *testing.T) {
		s := ReduceBookingForm(filled(), FieldChanged{Field: FieldPatientName, Value: "  Asha Rao "})
		req := s.Request()
		if req.PatientName != "Asha Rao" || req.DoctorID != 1 || req.AppointmentTime != "09:30" {
			t.Errorf("Request = %+v", req)
		}
	})
}

func TestTimeSlots(t *testing.T) {
	if len(TimeSlots) != 16 {
		t.Fatalf("got %d slots, want 16", len(TimeSlots))
	}
	if TimeSlots[0] != "09:00" || TimeSlots[len(TimeSlots)-1] != "19:30" {
		t.Errorf("slots run %s to %s", TimeSlots[0], TimeSlots[len(TimeSlots)-1])
	}
}
