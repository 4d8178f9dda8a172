package database

import (
	"HealthBook/config"
	"context"
	"testing"
)

func TestSqliteDSN(t *testing.T) {
	tests := map[string]string{
		":memory:":             "file::memory:?_pragma=foreign_keys(1)",
		"healthcare.db":        "healthcare.db?_pragma=foreign_keys(1)",
		"file:data.db?mode=rw": "file:data.db?mode=rw&_pragma=foreign_keys(1)",
	}
	for in, want := range tests {
		if got := sqliteDSN(in); got != want {
			t.Errorf("sqliteDSN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInitDB(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownDriver", func(t *testing.T) {
		if _, err := InitDB(ctx, Options{Driver: "mysql"}); err == nil {
			t.Fatal("InitDB accepted an unknown driver")
		}
	})

	t.Run("ReopenKeepsData", func(t *testing.T) {
		path := t.TempDir() + "/healthcare.db"
		opts := Options{Driver: config.DriverSQLite, DSN: path}

		db, err := InitDB(ctx, opts)
		if err != nil {
			t.Fatalf("InitDB: %v", err)
		}
		if err := db.Exec(
			"INSERT INTO appointments (doctor_id, patient_name, email, appointment_date, appointment_time, status, created_at) VALUES (1, 'Asha Rao', 'asha@example.com', '2024-05-01', '09:00', 'scheduled', CURRENT_TIMESTAMP)",
		).Error; err != nil {
			t.Fatalf("insert: %v", err)
		}
		if err := Close(db); err != nil {
			t.Fatalf("Close: %v", err)
		}

		db, err = InitDB(ctx, opts)
		if err != nil {
			t.Fatalf("second InitDB: %v", err)
		}
		defer Close(db)

		var doctors, appointments int64
		db.Table("doctors").Count(&doctors)
		db.Table("appointments").Count(&appointments)
		if doctors != 6 || appointments != 1 {
			t.Errorf("after reopen: %d doctors, %d appointments", doctors, appointments)
		}
	})

	t.Run("ConstraintsEnforced", func(t *testing.T) {
		db, err := InitDB(ctx, Options{Driver: config.DriverSQLite, DSN: ":memory:"})
		if err != nil {
			t.Fatalf("InitDB: %v", err)
		}
		defer Close(db)

		bad := map[string]string{
			"unknown doctor":          "INSERT INTO appointments (doctor_id, patient_name, email, appointment_date, appointment_time, status) VALUES (999, 'A', 'a@b.co', '2024-05-01', '09:00', 'scheduled')",
			"bad status":              "INSERT INTO appointments (doctor_id, patient_name, email, appointment_date, appointment_time, status) VALUES (1, 'A', 'a@b.co', '2024-05-01', '09:00', 'pending')",
			"bad day":                 "INSERT INTO doctor_schedules (doctor_id, day_of_week, start_time, end_time) VALUES (1, 'Funday', '09:00', '12:00')",
			"bad doctor availability": "UPDATE doctors SET availability_status = 'Busy' WHERE id = 1",
		}
		for name, stmt := range bad {
			if err := db.Exec(stmt).Error; err == nil {
				t.Errorf("%s: statement succeeded", name)
			}
		}
	})
}
