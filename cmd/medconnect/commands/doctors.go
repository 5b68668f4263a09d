package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"medconnect/internal/app"
	"medconnect/internal/model"
	"medconnect/internal/printer"
	"medconnect/internal/store"
)

var doctorFields = struct {
	name           string
	specialization string
	graduation     string
	picture        string
	bio            string
	experience     string
	fees           float64
	slots          []string
}{}

var doctorsCmd = &cobra.Command{
	Use:   "doctors",
	Short: "Browse and administer the doctor catalog",
}

var doctorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all doctors",
	Args:  cobra.NoArgs,
	RunE:  runDoctorsList,
}

var doctorsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a doctor's profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runDoctorsShow,
}

var doctorsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a doctor (admin)",
	Args:  cobra.NoArgs,
	RunE:  runDoctorsAdd,
}

var doctorsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a doctor's fields (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDoctorsUpdate,
}

var doctorsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a doctor (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDoctorsDelete,
}

func init() {
	for _, c := range []*cobra.Command{doctorsAddCmd, doctorsUpdateCmd} {
		c.Flags().StringVar(&doctorFields.name, "name", "", "Display name")
		c.Flags().StringVar(&doctorFields.specialization, "specialization", "", "Medical specialization")
		c.Flags().StringVar(&doctorFields.graduation, "graduation", "", "Graduation institution")
		c.Flags().StringVar(&doctorFields.picture, "picture", "", "Picture URL")
		c.Flags().StringVar(&doctorFields.bio, "bio", "", "Short biography")
		c.Flags().StringVar(&doctorFields.experience, "experience", "", "Experience descriptor")
		c.Flags().Float64Var(&doctorFields.fees, "fees", 0, "Consultation fee")
		c.Flags().StringSliceVar(&doctorFields.slots, "slots", nil, "Available time slots, e.g. 09:00,10:00")
	}
	doctorsCmd.AddCommand(doctorsListCmd, doctorsShowCmd, doctorsAddCmd, doctorsUpdateCmd, doctorsDeleteCmd)
	rootCmd.AddCommand(doctorsCmd)
}

func validateFees(fees float64) error {
	if fees < 0 {
		return fmt.Errorf("--fees must not be negative, got %g", fees)
	}
	return nil
}

// requireAdmin fails unless the persisted session belongs to an admin.
func requireAdmin(a *app.App) (model.User, error) {
	u, ok := a.Identity.CurrentUser()
	if !ok {
		return model.User{}, fmt.Errorf("not logged in")
	}
	if u.Role != model.RoleAdmin {
		return model.User{}, fmt.Errorf("administrator login required")
	}
	return u, nil
}

func runDoctorsList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	for _, d := range a.Domain.Doctors() {
		printer.Info("%-38s %-22s %-15s $%.0f\n", d.ID, d.Name, d.Specialization, d.Fees)
	}
	return nil
}

func runDoctorsShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	d, ok := a.Domain.GetDoctorByID(args[0])
	if !ok {
		return fmt.Errorf("doctor %s not found", args[0])
	}
	printer.Heading("%s — %s\n", d.Name, d.Specialization)
	printer.Info("Graduated: %s\n", d.Graduation)
	printer.Info("Experience: %s\n", d.Experience)
	printer.Info("Fees: $%.0f\n", d.Fees)
	printer.Info("Slots: %s\n", strings.Join(d.AvailableSlots, ", "))
	printer.Info("%s\n", d.Bio)
	return nil
}

func runDoctorsAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := requireAdmin(a); err != nil {
		return err
	}
	// presence checks live here, at the administrator-facing edge
	for field, v := range map[string]string{
		"--name":           doctorFields.name,
		"--specialization": doctorFields.specialization,
	} {
		if v == "" {
			return fmt.Errorf("%s is required", field)
		}
	}
	if err := validateFees(doctorFields.fees); err != nil {
		return err
	}

	d := a.Domain.AddDoctor(ctx, model.Doctor{
		Name:           doctorFields.name,
		Specialization: doctorFields.specialization,
		Graduation:     doctorFields.graduation,
		Picture:        doctorFields.picture,
		Bio:            doctorFields.bio,
		Experience:     doctorFields.experience,
		Fees:           doctorFields.fees,
		AvailableSlots: doctorFields.slots,
	})
	printer.Success("added doctor %s (%s)\n", d.Name, d.ID)
	printer.Warning("catalog edits do not survive a restart\n")
	return nil
}

func runDoctorsUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := requireAdmin(a); err != nil {
		return err
	}

	var patch store.DoctorPatch
	flags := cmd.Flags()
	if flags.Changed("name") {
		patch.Name = &doctorFields.name
	}
	if flags.Changed("specialization") {
		patch.Specialization = &doctorFields.specialization
	}
	if flags.Changed("graduation") {
		patch.Graduation = &doctorFields.graduation
	}
	if flags.Changed("picture") {
		patch.Picture = &doctorFields.picture
	}
	if flags.Changed("bio") {
		patch.Bio = &doctorFields.bio
	}
	if flags.Changed("experience") {
		patch.Experience = &doctorFields.experience
	}
	if flags.Changed("fees") {
		if err := validateFees(doctorFields.fees); err != nil {
			return err
		}
		patch.Fees = &doctorFields.fees
	}
	if flags.Changed("slots") {
		patch.AvailableSlots = doctorFields.slots
	}

	a.Domain.UpdateDoctor(ctx, args[0], patch)
	printer.Success("updated doctor %s\n", args[0])
	return nil
}

func runDoctorsDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := requireAdmin(a); err != nil {
		return err
	}

	a.Domain.DeleteDoctor(ctx, args[0])
	printer.Success("deleted doctor %s\n", args[0])
	return nil
}
