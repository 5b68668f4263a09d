package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"medconnect/internal/app"
	"medconnect/internal/model"
	"medconnect/internal/printer"
)

var (
	bookStrictSlot     bool
	bookRejectConflict bool
)

var bookCmd = &cobra.Command{
	Use:   "book <doctor-id> <date> <time>",
	Short: "Book an appointment slot",
	Long: `Book an appointment with a doctor on a calendar date (yyyy-mm-dd) at a
slot label such as 09:00. By default no conflict or slot-membership
checking is done; use --strict-slot and --reject-conflict to opt in.`,
	Args: cobra.ExactArgs(3),
	RunE: runBook,
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <appointment-id>",
	Short: "Cancel an appointment",
	Args:  cobra.ExactArgs(1),
	RunE:  runCancel,
}

var appointmentsCmd = &cobra.Command{
	Use:   "appointments",
	Short: "List appointments (own, or all for admins)",
	Args:  cobra.NoArgs,
	RunE:  runAppointments,
}

func init() {
	bookCmd.Flags().BoolVar(&bookStrictSlot, "strict-slot", false, "Require the time to be one of the doctor's listed slots")
	bookCmd.Flags().BoolVar(&bookRejectConflict, "reject-conflict", false, "Refuse a slot that already has a scheduled appointment")
	rootCmd.AddCommand(bookCmd, cancelCmd, appointmentsCmd)
}

func runBook(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	u, ok := a.Identity.CurrentUser()
	if !ok {
		return fmt.Errorf("please login to book an appointment")
	}

	a.Booking.RequireListedSlot = bookStrictSlot
	a.Booking.RejectDoubleBooking = bookRejectConflict

	appt, err := a.Booking.Book(ctx, u, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	printer.Success("booked %s with %s on %s at %s\n", appt.ID, appt.DoctorName, appt.Date, appt.Time)
	return nil
}

func runCancel(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, ok := a.Identity.CurrentUser(); !ok {
		return fmt.Errorf("please login first")
	}

	// unknown or already cancelled ids are a silent no-op
	a.Booking.Cancel(ctx, args[0])
	printer.Success("cancelled %s\n", args[0])
	return nil
}

func runAppointments(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	u, ok := a.Identity.CurrentUser()
	if !ok {
		return fmt.Errorf("please login first")
	}

	appts := a.Domain.Appointments()
	if u.Role != model.RoleAdmin {
		appts = a.Domain.AppointmentsForPatient(u.ID)
	}
	if len(appts) == 0 {
		printer.Info("no appointments\n")
		return nil
	}
	for _, ap := range appts {
		printer.Info("%-38s %-22s %s %s  %s\n", ap.ID, ap.DoctorName, ap.Date, ap.Time, ap.Status)
	}
	return nil
}
