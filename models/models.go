package models

import (
	"time"
)

// Availability statuses a doctor can be in.
const (
	AvailableToday = "Available Today"
	FullyBooked    = "Fully Booked"
	OnLeave        = "On Leave"
)

// Appointment statuses.
const (
	StatusScheduled = "scheduled"
	StatusFulfilled = "fulfilled"
	StatusCancelled = "cancelled"
)

// Weekdays holds the day names accepted in doctor_schedules.day_of_week, Monday first.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Doctor model
type Doctor struct {
	ID                 uint             `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name               string           `gorm:"column:name;not null" json:"name"`
	Specialization     string           `gorm:"column:specialization;not null;index" json:"specialization"`
	ProfileImage       string           `gorm:"column:profile_image" json:"profileImage"`
	Experience         string           `gorm:"column:experience" json:"experience"`
	Qualification      string           `gorm:"column:qualification" json:"qualification"`
	AvailabilityStatus string           `gorm:"column:availability_status;not null;default:'Available Today';check:chk_doctors_availability,availability_status IN ('Available Today', 'Fully Booked', 'On Leave')" json:"availabilityStatus"`
	ConsultationFee    int              `gorm:"column:consultation_fee" json:"consultationFee"`
	Rating             float64          `gorm:"column:rating;not null;default:4.5" json:"rating"`
	CreatedAt          time.Time        `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	Schedules          []DoctorSchedule `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
	Appointments       []Appointment    `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DoctorSchedule model. Several rows may exist for the same doctor and day.
type DoctorSchedule struct {
	ID          uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	DoctorID    uint   `gorm:"column:doctor_id;not null;index" json:"doctorId"`
	DayOfWeek   string `gorm:"column:day_of_week;not null;check:chk_doctor_schedules_day,day_of_week IN ('Monday', 'Tuesday', 'Wednesday', 'Thursday', 'Friday', 'Saturday', 'Sunday')" json:"dayOfWeek"`
	StartTime   string `gorm:"column:start_time;not null" json:"startTime"`
	EndTime     string `gorm:"column:end_time;not null" json:"endTime"`
	IsAvailable bool   `gorm:"column:is_available;not null;default:true" json:"isAvailable"`
	Doctor      Doctor `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (DoctorSchedule) TableName() string {
	return "doctor_schedules"
}

// Appointment model. The (doctor_id, appointment_date, appointment_time) triple is unique.
type Appointment struct {
	ID              uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	DoctorID        uint      `gorm:"column:doctor_id;not null;index;uniqueIndex:idx_appointment_slot" json:"doctorId"`
	PatientName     string    `gorm:"column:patient_name;not null" json:"patientName"`
	Email           string    `gorm:"column:email;not null" json:"email"`
	AppointmentDate string    `gorm:"column:appointment_date;not null;uniqueIndex:idx_appointment_slot" json:"appointmentDate"`
	AppointmentTime string    `gorm:"column:appointment_time;not null;uniqueIndex:idx_appointment_slot" json:"appointmentTime"`
	Status          string    `gorm:"column:status;not null;default:'scheduled';check:chk_appointments_status,status IN ('scheduled', 'fulfilled', 'cancelled')" json:"status"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	Doctor          Doctor    `gorm:"foreignKey:DoctorID;references:ID" json:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// DoctorDetail is a doctor together with its weekly schedule, as served by the detail endpoint.
type DoctorDetail struct {
	Doctor
	Schedules []DoctorSchedule `json:"schedules"`
}

// AppointmentRequest is the body accepted when booking an appointment.
type AppointmentRequest struct {
	DoctorID        uint   `json:"doctorId"`
	PatientName     string `json:"patientName"`
	Email           string `json:"email"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
}

// ErrorResponse is the body of every API error.
type ErrorResponse struct {
	Error string `json:"error"`
}
