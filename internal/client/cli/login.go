package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runLogin(ctx context.Context, username string, passwords Passwords) error {
	c.io.Println("=== Login ===")

	if username == "" {
		var err error
		username, err = c.io.ReadInput("Username: ")
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
	}

	password, err := c.getPassword(passwords)
	if err != nil {
		return err
	}

	auth, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println("✓ Login successful!")
	c.io.Printf("Server:   %s\n", c.serverURL)
	c.io.Printf("Username: %s\n", auth.Username)
	c.io.Printf("Token expires: %s\n", time.Unix(auth.ExpiresAt, 0).Format(time.RFC3339))

	return nil
}
