package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	signupFullName string
	authPassword   string
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in to your account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		auth, err := cli.requireAuth()
		if err != nil {
			return err
		}

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		user, err := auth.SignIn(cmd.Context(), args[0], password)
		if err != nil {
			return err
		}
		if err := cli.sessions.Save(user); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("Signed in as " + user.Email))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Only the local session is cleared; no auth token is kept between
		// invocations, and the server-side session expires on its own.
		if err := cli.sessions.Clear(); err != nil {
			return err
		}
		cli.store.Reset()
		fmt.Println(successStyle.Render("Signed out."))
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup <email>",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		auth, err := cli.requireAuth()
		if err != nil {
			return err
		}

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		user, err := auth.SignUp(cmd.Context(), args[0], password, signupFullName)
		if err != nil {
			return err
		}
		if user.ID == "" {
			// Email confirmation pending; there is no session to persist yet.
			fmt.Println(successStyle.Render("Account created - confirm your email, then run 'draftkit login'."))
			return nil
		}
		if err := cli.sessions.Save(user); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("Account created, signed in as " + user.Email))
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password <email>",
	Short: "Send a password reset email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		auth, err := cli.requireAuth()
		if err != nil {
			return err
		}
		if err := auth.ResetPassword(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("Reset email sent to " + args[0]))
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := cli.requireUser()
		if err != nil {
			return err
		}
		if user.FullName != "" {
			fmt.Printf("%s <%s>\n", user.FullName, user.Email)
		} else {
			fmt.Println(user.Email)
		}
		return nil
	},
}

// promptPassword returns the --password flag value, or reads a line from
// stdin when the flag is absent (suits piped input and scripts).
func promptPassword(label string) (string, error) {
	if authPassword != "" {
		return authPassword, nil
	}

	fmt.Print(label)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return "", fmt.Errorf("password cannot be empty")
	}
	password := strings.TrimSpace(scanner.Text())
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

func init() {
	signupCmd.Flags().StringVar(&signupFullName, "name", "", "Full name for the new account")
	loginCmd.Flags().StringVar(&authPassword, "password", "", "Password (prompted when omitted)")
	signupCmd.Flags().StringVar(&authPassword, "password", "", "Password (prompted when omitted)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(resetPasswordCmd)
	rootCmd.AddCommand(whoamiCmd)
}
