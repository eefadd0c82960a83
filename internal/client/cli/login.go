package cli

import (
	"context"
	"fmt"
	"time"
)

// runLogin получает токен доступа для устройства
func (c *Cli) runLogin(ctx context.Context, args []string) error {
	deviceID := ""
	if len(args) > 0 {
		deviceID = args[0]
	}

	secret, err := c.io.ReadPassword("Device secret: ")
	if err != nil {
		return fmt.Errorf("failed to read secret: %w", err)
	}

	result, err := c.authService.Login(ctx, deviceID, secret)
	if err != nil {
		return err
	}

	c.io.Println("Login successful.")
	c.io.Printf("Device ID: %s\n", result.DeviceID)
	c.io.Printf("Token expires at: %s\n", time.Unix(result.ExpiresAt, 0).Format(time.RFC3339))
	return nil
}

// runLogout удаляет локальную сессию
func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("Logged out.")
	return nil
}
