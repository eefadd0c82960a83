package cli

import (
	"context"
	"fmt"
)

// runRegister регистрирует устройство на сервере
func (c *Cli) runRegister(ctx context.Context, args []string) error {
	deviceName := ""
	if len(args) > 0 {
		deviceName = args[0]
	} else {
		input, err := c.io.ReadInput("Device name: ")
		if err != nil {
			return fmt.Errorf("failed to read device name: %w", err)
		}
		deviceName = input
	}

	secret, err := c.io.ReadPassword("Device secret: ")
	if err != nil {
		return fmt.Errorf("failed to read secret: %w", err)
	}
	confirm, err := c.io.ReadPassword("Confirm secret: ")
	if err != nil {
		return fmt.Errorf("failed to read secret confirmation: %w", err)
	}
	if secret != confirm {
		return fmt.Errorf("secrets do not match")
	}

	result, err := c.authService.Register(ctx, deviceName, secret)
	if err != nil {
		return err
	}

	c.io.Println("Device registered successfully.")
	c.io.Printf("Device ID: %s\n", result.DeviceID)
	c.io.Println("Run 'tripsync login' to obtain an access token.")
	return nil
}
