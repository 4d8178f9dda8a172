package models

import (
	"gorm.io/gorm"
)

// ScheduleBlock is one recurring daily time range used when seeding schedules.
type ScheduleBlock struct {
	Start string
	End   string
}

// SeedScheduleBlocks are the daily blocks every seeded doctor works.
var SeedScheduleBlocks = []ScheduleBlock{
	{Start: "09:00", End: "12:00"},
	{Start: "14:00", End: "17:00"},
	{Start: "18:00", End: "20:00"},
}

// SeedScheduleDays are the weekdays every seeded doctor works.
var SeedScheduleDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// SeedDoctorList returns the fixed doctors inserted into an empty store.
func SeedDoctorList() []Doctor {
	return []Doctor{
		{
			Name:               "Dr. Rajesh Kumar",
			Specialization:     "Cardiologist",
			ProfileImage:       "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=300&h=300&fit=crop&crop=face",
			Experience:         "15 years",
			Qualification:      "MBBS, MD (Cardiology)",
			AvailabilityStatus: AvailableToday,
			ConsultationFee:    800,
		},
		{
			Name:               "Dr. Priya Sharma",
			Specialization:     "Dermatologist",
			ProfileImage:       "https://images.unsplash.com/photo-1607746882042-944635dfe10e?crop=faces&fit=crop&w=300&h=300",
			Experience:         "12 years",
			Qualification:      "MBBS, MD (Dermatology)",
			AvailabilityStatus: AvailableToday,
			ConsultationFee:    600,
		},
		{
			Name:               "Dr. Amit Singh",
			Specialization:     "Orthopedist",
			ProfileImage:       "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=300&h=300&fit=crop&crop=face",
			Experience:         "18 years",
			Qualification:      "MBBS, MS (Orthopedics)",
			AvailabilityStatus: FullyBooked,
			ConsultationFee:    700,
		},
		{
			Name:               "Dr. Sunita Patel",
			Specialization:     "Pediatrician",
			ProfileImage:       "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=300&h=300&fit=crop&crop=face",
			Experience:         "10 years",
			Qualification:      "MBBS, MD (Pediatrics)",
			AvailabilityStatus: AvailableToday,
			ConsultationFee:    500,
		},
		{
			Name:               "Dr. Vikram Gupta",
			Specialization:     "Neurologist",
			ProfileImage:       "https://images.unsplash.com/photo-1607990281513-2c110a25bd8c?w=300&h=300&fit=crop&crop=face",
			Experience:         "20 years",
			Qualification:      "MBBS, DM (Neurology)",
			AvailabilityStatus: OnLeave,
			ConsultationFee:    1000,
		},
		{
			Name:               "Dr. Kavya Reddy",
			Specialization:     "Gynecologist",
			ProfileImage:       "https://images.unsplash.com/photo-1524504388940-b1c1722653e1?crop=faces&fit=crop&w=300&h=300",
			Experience:         "14 years",
			Qualification:      "MBBS, MD (Gynecology)",
			AvailabilityStatus: AvailableToday,
			ConsultationFee:    650,
		},
	}
}

// SeedDoctors inserts the sample doctors and their weekly schedules when the doctors table is empty.
func SeedDoctors(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Doctor{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		doctors := SeedDoctorList()
		for i := range doctors {
			doctors[i].Rating = 4.5
			if err := tx.Create(&doctors[i]).Error; err != nil {
				return err
			}
		}

		schedules := make([]DoctorSchedule, 0, len(doctors)*len(SeedScheduleDays)*len(SeedScheduleBlocks))
		for _, doctor := range doctors {
			for _, day := range SeedScheduleDays {
				for _, block := range SeedScheduleBlocks {
					schedules = append(schedules, DoctorSchedule{
						DoctorID:    doctor.ID,
						DayOfWeek:   day,
						StartTime:   block.Start,
						EndTime:     block.End,
						IsAvailable: true,
					})
				}
			}
		}
		return tx.Create(&schedules).Error
	})
}
