package views

import (
	"HealthBook/models"
)

// ProfileState is one doctor's page: details, weekly schedule, booked appointments and the booking form toggle.
type ProfileState struct {
	DoctorID            uint
	Doctor              *models.DoctorDetail
	Appointments        []models.Appointment
	Loading             bool
	Err                 error
	BookingOpen         bool
	DoctorPending       Token
	AppointmentsPending Token
	Closed              bool
}

// NewProfile returns the loading state for the doctor with the given id.
func NewProfile(doctorID uint) ProfileState {
	return ProfileState{DoctorID: doctorID, Loading: true, Appointments: []models.Appointment{}}
}

// ProfileEvent is anything ReduceProfile understands.
type ProfileEvent interface {
	profileEvent()
}

// DoctorRequested starts a detail fetch; the token is in DoctorPending afterwards.
type DoctorRequested struct{}

type DoctorLoaded struct {
	Token  Token
	Doctor *models.DoctorDetail
}

// DoctorMissing reports that the API has no such doctor.
type DoctorMissing struct{ Token Token }

type DoctorFailed struct {
	Token Token
	Err   error
}

// AppointmentsRequested starts an appointment-list fetch; the token is in AppointmentsPending afterwards.
type AppointmentsRequested struct{}

type AppointmentsLoaded struct {
	Token        Token
	Appointments []models.Appointment
}

// AppointmentsFailed leaves the previous list in place.
type AppointmentsFailed struct {
	Token Token
	Err   error
}

type BookingOpened struct{}

type BookingClosed struct{}

// BookingSucceeded closes the form and starts an appointment refresh, as AppointmentsRequested does.
type BookingSucceeded struct{}

type ProfileClosed struct{}

func (DoctorRequested) profileEvent()       {}
func (DoctorLoaded) profileEvent()          {}
func (DoctorMissing) profileEvent()         {}
func (DoctorFailed) profileEvent()          {}
func (AppointmentsRequested) profileEvent() {}
func (AppointmentsLoaded) profileEvent()    {}
func (AppointmentsFailed) profileEvent()    {}
func (BookingOpened) profileEvent()         {}
func (BookingClosed) profileEvent()         {}
func (BookingSucceeded) profileEvent()      {}
func (ProfileClosed) profileEvent()         {}

// ReduceProfile returns the state after e.
func ReduceProfile(s ProfileState, e ProfileEvent) ProfileState {
	if s.Closed {
		return s
	}
	switch e := e.(type) {
	case DoctorRequested:
		s.DoctorPending++
		s.Loading = true
		s.Err = nil
	case DoctorLoaded:
		if !accepts(s.DoctorPending, e.Token, s.Closed) {
			return s
		}
		s.Doctor = e.Doctor
		s.Loading = false
	case DoctorMissing:
		if !accepts(s.DoctorPending, e.Token, s.Closed) {
			return s
		}
		s.Doctor = nil
		s.Loading = false
	case DoctorFailed:
		if !accepts(s.DoctorPending, e.Token, s.Closed) {
			return s
		}
		s.Doctor = nil
		s.Loading = false
		s.Err = e.Err
	case AppointmentsRequested:
		s.AppointmentsPending++
	case AppointmentsLoaded:
		if !accepts(s.AppointmentsPending, e.Token, s.Closed) {
			return s
		}
		s.Appointments = e.Appointments
	case AppointmentsFailed:
		if !accepts(s.AppointmentsPending, e.Token, s.Closed) {
			return s
		}
		s.Err = e.Err
	case BookingOpened:
		if s.CanBook() {
			s.BookingOpen = true
		}
	case BookingClosed:
		s.BookingOpen = false
	case BookingSucceeded:
		s.BookingOpen = false
		s.AppointmentsPending++
	case ProfileClosed:
		s.Closed = true
	}
	return s
}

// NotFound reports whether loading finished without a doctor.
func (s ProfileState) NotFound() bool {
	return !s.Loading && s.Doctor == nil
}

// CanBook reports whether the "Book Appointment" action is enabled.
func (s ProfileState) CanBook() bool {
	return s.Doctor != nil && s.Doctor.AvailabilityStatus == models.AvailableToday
}

// DaySchedule is the time blocks of one weekday.
type DaySchedule struct {
	Day    string
	Blocks []models.DoctorSchedule
}

// SchedulesByDay groups the loaded schedule rows by weekday, days in first-seen order.
func (s ProfileState) SchedulesByDay() []DaySchedule {
	if s.Doctor == nil {
		return nil
	}
	return GroupSchedules(s.Doctor.Schedules)
}

// GroupSchedules groups rows by day of week, keeping the order in which days first appear.
func GroupSchedules(schedules []models.DoctorSchedule) []DaySchedule {
	index := make(map[string]int)
	var days []DaySchedule
	for _, schedule := range schedules {
		i, ok := index[schedule.DayOfWeek]
		if !ok {
			i = len(days)
			index[schedule.DayOfWeek] = i
			days = append(days, DaySchedule{Day: schedule.DayOfWeek})
		}
		days[i].Blocks = append(days[i].Blocks, schedule)
	}
	return days
}
