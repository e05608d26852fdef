package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	v1pb "github.com/idot-digital/dbconsole/api/v1"
	"github.com/idot-digital/dbconsole/internal/client"
)

var loginEmail string

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to a dbconsole server",
	Long:  "Log in with email and password. The session token is kept in the system keyring.",
	RunE: func(cmd *cobra.Command, args []string) error {
		email := loginEmail
		if email == "" {
			fmt.Print("Email: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return fmt.Errorf("read email: %w", err)
			}
			email = strings.TrimSpace(line)
		}
		password := os.Getenv("DBCONSOLE_PASSWORD")
		if password == "" {
			fmt.Print("Password: ")
			b, err := term.ReadPassword(int(os.Stdin.Fd()))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			password = string(b)
		}

		c, err := client.Dial(serverAddr, "")
		if err != nil {
			return err
		}
		defer c.Close()
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		resp, err := c.Auth.Login(ctx, &v1pb.LoginRequest{Email: email, Password: password})
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		if err := client.SaveToken(serverAddr, resp.Token); err != nil {
			return err
		}
		fmt.Printf("Logged in to %s as %s\n", serverAddr, email)
		if resp.RequireResetPassword {
			fmt.Println("Your password must be reset before continuing.")
		}
		return nil
	},
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, ctx, done, err := connect(cmd)
		if errors.Is(err, client.ErrNotLoggedIn) {
			fmt.Println("Not logged in")
			return nil
		}
		if err != nil {
			return err
		}
		defer done()
		if _, err := c.Auth.Logout(ctx, &v1pb.LogoutRequest{}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: server logout failed: %v\n", err)
		}
		if err := client.DeleteToken(serverAddr); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email, prompted when empty")
}
