package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edutrack/ledger-service/internal/models"
	"github.com/edutrack/ledger-service/internal/services"
)

func newRollCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roll",
		Short: "Allocate and look up roll numbers",
	}

	var role string

	get := &cobra.Command{
		Use:   "get <name>",
		Short: "Return the roll number for a name, allocating one if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := models.ParseRole(role)
			if err != nil {
				return err
			}
			roll, err := app.Services.Registry().GetOrCreateRoll(cmd.Context(), args[0], r, true)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), roll)
			return nil
		},
	}

	find := &cobra.Command{
		Use:   "find <name>",
		Short: "Look up an existing roll number without allocating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := models.ParseRole(role)
			if err != nil {
				return err
			}
			roll, err := app.Services.Registry().FindRoll(cmd.Context(), args[0], r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), roll)
			return nil
		},
	}

	for _, c := range []*cobra.Command{get, find} {
		c.Flags().StringVar(&role, "role", string(models.RoleStudent), "identity namespace (student, teacher or admin)")
	}

	cmd.AddCommand(get, find)
	return cmd
}

func newEnrollCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "enroll <roll> <section>",
		Short: "Enroll a student into a section and initialize their ledger record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Services.Enrollment().Enroll(cmd.Context(), &services.EnrollRequest{
				Roll:    args[0],
				Section: args[1],
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, okStyle.Render(fmt.Sprintf("%s enrolled in %s", result.Roll, result.Section)))
			if result.RecordCreated {
				fmt.Fprintf(out, "attendance record created with %d subjects: %s\n",
					len(result.Curriculum), strings.Join(result.Curriculum, ", "))
			} else {
				fmt.Fprintln(out, "existing attendance counters preserved")
			}
			return nil
		},
	}
}

func newInitAllCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init-all",
		Short: "Backfill attendance records for every enrollment missing one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.Services.Enrollment().InitializeAll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("%d attendance record(s) created", created)))
			return nil
		},
	}
}
