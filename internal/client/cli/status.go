package cli

import (
	"context"
	"errors"
	"time"

	"github.com/iudanet/keitarosync/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Printf("Server: %s\n", c.serverURL)

	session, err := c.authService.Session(ctx)
	if errors.Is(err, auth.ErrNotAuthenticated) {
		c.io.Println("Status: Not authenticated")
		c.io.Println("Run 'keitarosync login' to authenticate.")
		return nil
	}
	if err != nil {
		return err
	}

	expiresAt := time.Unix(session.ExpiresAt, 0)
	remaining := time.Until(expiresAt)

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", session.Username)
	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))

	if remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Please login again.")
	}

	return nil
}
