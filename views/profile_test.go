package views

import (
	"HealthBook/models"
	"errors"
	"testing"
)

func detail(status string) *models.DoctorDetail {
	return &models.DoctorDetail{
		Doctor: models.Doctor{ID: 1, Name: "Dr. Rajesh Kumar", AvailabilityStatus: status},
		Schedules: []models.DoctorSchedule{
			{ID: 1, DayOfWeek: "Monday", StartTime: "09:00", EndTime: "12:00"},
			{ID: 2, DayOfWeek: "Monday", StartTime: "14:00", EndTime: "17:00"},
			{ID: 3, DayOfWeek: "Tuesday", StartTime: "09:00", EndTime: "12:00"},
			{ID: 4, DayOfWeek: "Monday", StartTime: "18:00", EndTime: "20:00"},
		},
	}
}

func loaded(status string) ProfileState {
	s := ReduceProfile(NewProfile(1), DoctorRequested{})
	return ReduceProfile(s, DoctorLoaded{Token: s.DoctorPending, Doctor: detail(status)})
}

func TestGroupSchedules(t *testing.T) {
	days := loaded(models.AvailableToday).SchedulesByDay()
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	if days[0].Day != "Monday" || len(days[0].Blocks) != 3 {
		t.Errorf("Monday = %+v", days[0])
	}
	if days[1].Day != "Tuesday" || len(days[1].Blocks) != 1 {
		t.Errorf("Tuesday = %+v", days[1])
	}
	if days[0].Blocks[2].StartTime != "18:00" {
		t.Errorf("blocks out of order: %+v", days[0].Blocks)
	}

	if got := (ProfileState{}).SchedulesByDay(); got != nil {
		t.Errorf("no doctor: %v", got)
	}
}

func TestCanBook(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{models.AvailableToday, true},
		{models.FullyBooked, false},
		{models.OnLeave, false},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			s := loaded(tt.status)
			if got := s.CanBook(); got != tt.want {
				t.Fatalf("CanBook = %v, want %v", got, tt.want)
			}
			s = ReduceProfile(s, BookingOpened{})
			if s.BookingOpen != tt.want {
				t.Errorf("BookingOpen = %v, want %v", s.BookingOpen, tt.want)
			}
		})
	}
}

func TestReduceProfile(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		s := NewProfile(999)
		if s.NotFound() {
			t.Fatal("loading profile reported not found")
		}
		s = ReduceProfile(s, DoctorRequested{})
		s = ReduceProfile(s, DoctorMissing{Token: s.DoctorPending})
		if !s.NotFound() {
			t.Error("missing doctor not reported")
		}
	})

	t.Run("FailureShowsNotFound", func(t *testing.T) {
		s := ReduceProfile(NewProfile(1), DoctorRequested{})
		s = ReduceProfile(s, DoctorFailed{Token: s.DoctorPending, Err: errors.New("boom")})
		if !s.NotFound() || s.Err == nil {
			t.Errorf("after failure: notFound %v err %v", s.NotFound(), s.Err)
		}
	})

	t.Run("StaleDoctorIgnored", func(t *testing.T) {
		s := ReduceProfile(NewProfile(1), DoctorRequested{})
		stale := s.DoctorPending
		s = ReduceProfile(s, DoctorRequested{})
		s = ReduceProfile(s, DoctorLoaded{Token: stale, Doctor: detail(models.AvailableToday)})
		if s.Doctor != nil || !s.Loading {
			t.Errorf("stale doctor applied: %+v", s)
		}
	})

	t.Run("AppointmentsAfterClose", func(t *testing.T) {
		s := ReduceProfile(loaded(models.AvailableToday), AppointmentsRequested{})
		token := s.AppointmentsPending
		s = ReduceProfile(s, ProfileClosed{})
		s = ReduceProfile(s, AppointmentsLoaded{Token: token, Appointments: []models.Appointment{{ID: 1}}})
		if len(s.Appointments) != 0 {
			t.Errorf("closed profile accepted %d appointments", len(s.Appointments))
		}
	})

	t.Run("BookingSucceededRefreshes", func(t *testing.T) {
		s := ReduceProfile(loaded(models.AvailableToday), AppointmentsRequested{})
		first := s.AppointmentsPending
		s = ReduceProfile(s, AppointmentsLoaded{Token: first, Appointments: []models.Appointment{}})
		s = ReduceProfile(s, BookingOpened{})

		s = ReduceProfile(s, BookingSucceeded{})
		if s.BookingOpen {
			t.Error("form still open after booking")
		}
		if s.AppointmentsPending == first {
			t.Fatal("booking did not start a refresh")
		}

		// The list fetched before the booking no longer applies.
		s = ReduceProfile(s, AppointmentsLoaded{Token: first, Appointments: []models.Appointment{{ID: 9}}})
		if len(s.Appointments) != 0 {
			t.Error("stale appointment list applied")
		}
		s = ReduceProfile(s, AppointmentsLoaded{Token: s.AppointmentsPending, Appointments: []models.Appointment{{ID: 1}}})
		if len(s.Appointments) != 1 {
			t.Errorf("refreshed list not applied: %v", s.Appointments)
		}
	})
}
