package views

import (
	"HealthBook/models"
	"strings"
)

// AllSpecializations is the filter value that disables specialization filtering.
const AllSpecializations = "All"

// DashboardState is the doctor list with its search box and specialization filter.
type DashboardState struct {
	Doctors         []models.Doctor
	Search          string
	Specialization  string
	Specializations []string
	Loading         bool
	Err             error
	Pending         Token
	Closed          bool
}

// NewDashboard returns the state shown before the doctor list has arrived.
func NewDashboard() DashboardState {
	return DashboardState{
		Specialization:  AllSpecializations,
		Specializations: []string{AllSpecializations},
		Loading:         true,
	}
}

// DashboardEvent is anything ReduceDashboard understands.
type DashboardEvent interface {
	dashboardEvent()
}

// DoctorsRequested starts a fetch; the new token is in the resulting state's Pending field.
type DoctorsRequested struct{}

type DoctorsLoaded struct {
	Token   Token
	Doctors []models.Doctor
}

type DoctorsFailed struct {
	Token Token
	Err   error
}

type SearchChanged struct{ Value string }

type SpecializationChanged struct{ Value string }

type DashboardClosed struct{}

func (DoctorsRequested) dashboardEvent()      {}
func (DoctorsLoaded) dashboardEvent()         {}
func (DoctorsFailed) dashboardEvent()         {}
func (SearchChanged) dashboardEvent()         {}
func (SpecializationChanged) dashboardEvent() {}
func (DashboardClosed) dashboardEvent()       {}

// ReduceDashboard returns the state after e.
func ReduceDashboard(s DashboardState, e DashboardEvent) DashboardState {
	if s.Closed {
		return s
	}
	switch e := e.(type) {
	case DoctorsRequested:
		s.Pending++
		s.Loading = true
		s.Err = nil
	case DoctorsLoaded:
		if !accepts(s.Pending, e.Token, s.Closed) {
			return s
		}
		s.Doctors = e.Doctors
		s.Specializations = Specializations(e.Doctors)
		s.Loading = false
		s.Err = nil
	case DoctorsFailed:
		if !accepts(s.Pending, e.Token, s.Closed) {
			return s
		}
		s.Loading = false
		s.Err = e.Err
	case SearchChanged:
		s.Search = e.Value
	case SpecializationChanged:
		s.Specialization = e.Value
	case DashboardClosed:
		s.Closed = true
	}
	return s
}

// Visible returns the doctors that pass the current search and filter.
func (s DashboardState) Visible() []models.Doctor {
	return FilterDoctors(s.Doctors, s.Search, s.Specialization)
}

// Empty reports whether the "no doctors found" state should be shown.
func (s DashboardState) Empty() bool {
	return !s.Loading && len(s.Visible()) == 0
}

// FilterDoctors keeps doctors whose name or specialization contains search, ignoring case, and
// whose specialization equals specialization unless it is AllSpecializations. Both conditions must hold.
func FilterDoctors(doctors []models.Doctor, search, specialization string) []models.Doctor {
	needle := strings.ToLower(search)
	filtered := make([]models.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if needle != "" &&
			!strings.Contains(strings.ToLower(doctor.Name), needle) &&
			!strings.Contains(strings.ToLower(doctor.Specialization), needle) {
			continue
		}
		if specialization != AllSpecializations && doctor.Specialization != specialization {
			continue
		}
		filtered = append(filtered, doctor)
	}
	return filtered
}

// Specializations returns AllSpecializations followed by each distinct specialization in first-seen order.
func Specializations(doctors []models.Doctor) []string {
	seen := make(map[string]bool, len(doctors))
	out := []string{AllSpecializations}
	for _, doctor := range doctors {
		if seen[doctor.Specialization] {
			continue
		}
		seen[doctor.Specialization] = true
		out = append(out, doctor.Specialization)
	}
	return out
}
