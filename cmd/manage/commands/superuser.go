package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"catalog-review-backend/internal/domains/user"
	"catalog-review-backend/pkg/container"
)

var (
	superuserName  string
	superuserEmail string
)

// createSuperuserCmd creates an admin account and mails it a confirmation
// code, which is then exchanged at /auth/token like any other user's
var createSuperuserCmd = &cobra.Command{
	Use:   "createsuperuser",
	Short: "Create a superuser and mail a confirmation code",
	Long: `Create a superuser with administrator authority.

There is no password: a confirmation code is mailed to the given address
and exchanged for an access token at POST /api/v1/auth/token.

Examples:
  manage createsuperuser --username admin --email admin@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := container.NewContainer()
		if err != nil {
			return err
		}
		defer c.Cleanup()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		created, err := c.UserService.CreateSuperuser(ctx, superuserName, superuserEmail)
		if err != nil {
			return fmt.Errorf("failed to create superuser: %w", err)
		}

		if _, err := c.AuthService.Signup(ctx, user.SignupRequest{Username: created.Username, Email: created.Email}); err != nil {
			return fmt.Errorf("superuser created but the confirmation code could not be sent: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Superuser %q created; confirmation code sent to %s\n", created.Username, created.Email)
		return nil
	},
}

func init() {
	createSuperuserCmd.Flags().StringVar(&superuserName, "username", "", "Superuser username")
	createSuperuserCmd.Flags().StringVar(&superuserEmail, "email", "", "Superuser email")
	_ = createSuperuserCmd.MarkFlagRequired("username")
	_ = createSuperuserCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(createSuperuserCmd)
}
