package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"medconnect/internal/app"
	"medconnect/internal/auth"
	"medconnect/internal/printer"
)

var registerPhone string

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in and persist a session",
	Args:  cobra.ExactArgs(2),
	RunE:  runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register <name> <email> <password>",
	Short: "Register a patient account and log in",
	Args:  cobra.ExactArgs(3),
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

func init() {
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Optional contact phone")
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	u, err := a.Identity.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	printer.Success("logged in as %s (%s)\n", u.Name, u.Role)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	u, err := a.Identity.Register(ctx, args[0], args[1], args[2], registerPhone)
	if err != nil {
		return err
	}
	printer.Success("registered %s (%s)\n", u.Name, u.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	a.Identity.Logout(ctx)
	printer.Success("logged out\n")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	a, err := app.New(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	u, ok := a.Identity.CurrentUser()
	if !ok {
		printer.Info("not logged in\n")
		return nil
	}
	printer.Info("%s <%s> role=%s\n", u.Name, u.Email, u.Role)
	if claims, err := auth.ParseToken(a.Identity.Token(), a.Cfg.JWTSecret); err == nil && claims.ExpiresAt != nil {
		printer.Info("session expires %s\n", claims.ExpiresAt.Format(time.RFC1123))
	}
	return nil
}
