package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/iqmath/iqmath-server/pkg/audit"
	"github.com/iqmath/iqmath-server/pkg/auth"
	"github.com/iqmath/iqmath-server/pkg/db"
	"github.com/iqmath/iqmath-server/pkg/model"
	gormstore "github.com/iqmath/iqmath-server/pkg/server/store/gorm"
)

// userCmd represents the user command
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage admin-panel users",
	Long:  `Manage the user accounts that can sign in to the admin panel.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'user' requires a subcommand (create, reset-password)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create <email> <name>",
	Short: "Create an admin-panel user",
	Long: `Create a user account for the admin panel.

The password is read from the IQMATH_USER_PASSWORD environment variable,
or prompted for interactively. If neither is available a random password
is generated and printed to stdout.

Example:
  iqmathctl user create admin@iqmath.in "Admin" --role admin`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		email := args[0]
		name := args[1]
		role, _ := cmd.Flags().GetString("role")

		if err := createUser(email, name, role); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user %s: %v\n", email, err)
			os.Exit(1)
		}
	},
}

// userResetPasswordCmd represents the user reset-password command
var userResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <email>",
	Short: "Reset a user's password",
	Long: `Reset the password for an admin-panel user.

The new password is read from the IQMATH_USER_PASSWORD environment
variable, or prompted for interactively. If neither is available a
random password is generated and printed to stdout.

Example:
  iqmathctl user reset-password admin@iqmath.in`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		email := args[0]

		if err := resetUserPassword(email); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to reset password for %s: %v\n", email, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userResetPasswordCmd)

	userCreateCmd.Flags().String("role", model.RoleEditor, "User role (admin or editor)")
}

// resolvePassword reads the password from the environment, a terminal
// prompt, or generates a random one. The second return value reports
// whether the password was generated and should be printed.
func resolvePassword() (string, bool, error) {
	if password := os.Getenv("IQMATH_USER_PASSWORD"); password != "" {
		return password, false, nil
	}

	if term.IsTerminal(int(syscall.Stdin)) {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return "", false, fmt.Errorf("failed to read password: %w", err)
		}
		if len(raw) > 0 {
			return string(raw), false, nil
		}
	}

	buf := make([]byte, 18)
	if _, err := rand.Read(buf); err != nil {
		return "", false, fmt.Errorf("failed to generate password: %w", err)
	}
	return base64.URLEncoding.EncodeToString(buf), true, nil
}

func createUser(email, name, role string) error {
	password, generated, err := resolvePassword()
	if err != nil {
		return err
	}
	if len(password) < model.MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", model.MinPasswordLength)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	users := gormstore.NewUsersStore(database)
	user := &model.User{
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: hash,
	}
	if err := users.Create(user); err != nil {
		return err
	}

	audit.Log(audit.PasswordEvent{
		Email:       "iqmathctl",
		TargetEmail: user.Email,
		Success:     true,
	})

	fmt.Printf("Created user %s (%s)\n", user.Email, user.Role)
	if generated {
		fmt.Println(password)
	}
	return nil
}

func resetUserPassword(email string) error {
	password, generated, err := resolvePassword()
	if err != nil {
		return err
	}
	if len(password) < model.MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", model.MinPasswordLength)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	users := gormstore.NewUsersStore(database)
	if err := users.UpdatePassword(email, hash); err != nil {
		return err
	}

	audit.Log(audit.PasswordEvent{
		Email:       "iqmathctl",
		TargetEmail: email,
		Success:     true,
	})

	fmt.Printf("Password reset for %s\n", email)
	if generated {
		fmt.Println(password)
	}
	return nil
}
