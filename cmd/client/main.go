package main

import (
	"HealthBook/client"
	"HealthBook/views"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"
)

const usage = `usage: client [-api URL] <command> [flags]

commands:
  doctors  [-search TEXT] [-specialization NAME]   list doctors
  doctor   -id ID                                  show a doctor, schedule and appointments
  book     -doctor ID -name NAME -email EMAIL -date YYYY-MM-DD -time HH:MM
`

func main() {
	log.SetFlags(0)

	apiURL := flag.String("api", envOr("API_URL", "http://localhost:3000"), "base URL of the booking API")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(*apiURL, &http.Client{Timeout: 10 * time.Second})

	var err error
	switch cmd, args := flag.Arg(0), flag.Args()[1:]; cmd {
	case "doctors":
		err = runDoctors(ctx, api, args)
	case "doctor":
		err = runDoctor(ctx, api, args)
	case "book":
		err = runBook(ctx, api, args)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runDoctors(ctx context.Context, api client.Backend, args []string) error {
	fs := flag.NewFlagSet("doctors", flag.ExitOnError)
	search := fs.String("search", "", "match name or specialization")
	specialization := fs.String("specialization", views.AllSpecializations, "exact specialization")
	_ = fs.Parse(args)

	s := client.LoadDashboard(ctx, api, views.NewDashboard())
	if s.Err != nil {
		return fmt.Errorf("failed to load doctors: %w", s.Err)
	}
	s = views.ReduceDashboard(s, views.SearchChanged{Value: *search})
	s = views.ReduceDashboard(s, views.SpecializationChanged{Value: *specialization})

	if s.Empty() {
		fmt.Println("No doctors found matching your criteria.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSPECIALIZATION\tEXPERIENCE\tFEE\tRATING\tSTATUS")
	for _, d := range s.Visible() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%.1f\t%s\n",
			d.ID, d.Name, d.Specialization, d.Experience, d.ConsultationFee, d.Rating, d.AvailabilityStatus)
	}
	fmt.Fprintf(w, "\nSpecializations: %s\n", strings.Join(s.Specializations, ", "))
	return w.Flush()
}

func runDoctor(ctx context.Context, api client.Backend, args []string) error {
	fs := flag.NewFlagSet("doctor", flag.ExitOnError)
	id := fs.Uint("id", 0, "doctor id")
	_ = fs.Parse(args)

	s := client.LoadProfile(ctx, api, views.NewProfile(*id))
	if s.NotFound() {
		fmt.Println("Doctor not found")
		return nil
	}

	d := s.Doctor
	fmt.Printf("%s (%s)\n", d.Name, d.Specialization)
	fmt.Printf("%s, %s experience\n", d.Qualification, d.Experience)
	fmt.Printf("Fee: %d  Rating: %.1f  Status: %s\n", d.ConsultationFee, d.Rating, d.AvailabilityStatus)
	if !s.CanBook() {
		fmt.Println("Booking is currently unavailable.")
	}

	fmt.Println("\nWeekly schedule:")
	days := s.SchedulesByDay()
	if len(days) == 0 {
		fmt.Println("  No schedule available")
	}
	for _, day := range days {
		blocks := make([]string, 0, len(day.Blocks))
		for _, b := range day.Blocks {
			blocks = append(blocks, b.StartTime+"-"+b.EndTime)
		}
		fmt.Printf("  %-10s %s\n", day.Day, strings.Join(blocks, ", "))
	}

	fmt.Println("\nAppointments:")
	if len(s.Appointments) == 0 {
		fmt.Println("  No appointments booked yet")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, a := range s.Appointments {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", a.AppointmentDate, a.AppointmentTime, a.PatientName, a.Status)
	}
	return w.Flush()
}

func runBook(ctx context.Context, api client.Backend, args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	doctorID := fs.Uint("doctor", 0, "doctor id")
	name := fs.String("name", "", "patient name")
	email := fs.String("email", "", "patient email")
	date := fs.String("date", "", "appointment date, YYYY-MM-DD")
	slot := fs.String("time", "", "appointment time, one of "+strings.Join(views.TimeSlots, " "))
	_ = fs.Parse(args)

	profile := client.LoadProfile(ctx, api, views.NewProfile(*doctorID))
	if profile.NotFound() {
		return fmt.Errorf("doctor %d not found", *doctorID)
	}
	profile = views.ReduceProfile(profile, views.BookingOpened{})
	if !profile.BookingOpen {
		return fmt.Errorf("%s is %s; booking is unavailable", profile.Doctor.Name, profile.Doctor.AvailabilityStatus)
	}

	form := views.NewBookingForm(*doctorID)
	for field, value := range map[string]string{
		views.FieldPatientName:     *name,
		views.FieldEmail:           *email,
		views.FieldAppointmentDate: *date,
		views.FieldAppointmentTime: *slot,
	} {
		form = views.ReduceBookingForm(form, views.FieldChanged{Field: field, Value: value})
	}

	form, appointment := client.SubmitBooking(ctx, api, form, time.Now(), 0, func() {
		profile = views.ReduceProfile(profile, views.BookingSucceeded{})
		profile = client.RefreshAppointments(ctx, api, profile)
	})
	if !form.Succeeded {
		for _, field := range []string{views.FieldPatientName, views.FieldEmail, views.FieldAppointmentDate, views.FieldAppointmentTime, views.FieldSubmit} {
			if msg, ok := form.Errors[field]; ok {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
			}
		}
		return fmt.Errorf("booking failed")
	}

	fmt.Printf("Appointment booked successfully! #%d with %s on %s at %s\n",
		appointment.ID, profile.Doctor.Name, appointment.AppointmentDate, appointment.AppointmentTime)
	fmt.Printf("%s now has %d appointment(s).\n", profile.Doctor.Name, len(profile.Appointments))
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
