package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/edutrack/ledger-service/internal/services"
)

func newAttendanceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Record sessions and inspect attendance counters",
	}

	var absent, yes bool
	mark := &cobra.Command{
		Use:   "mark <roll> <subject>",
		Short: "Record one class session (present by default, --absent otherwise)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := "present"
			if absent {
				state = "absent"
			}
			if !yes {
				ok, err := confirm(cmd, fmt.Sprintf("Mark %s %s for %q?", args[0], state, args[1]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "aborted, nothing recorded")
					return nil
				}
			}
			report, err := app.Services.Attendance().MarkSession(cmd.Context(), &services.MarkSessionRequest{
				Roll:       args[0],
				SubjectKey: args[1],
				Present:    !absent,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf(
				"%s: %d/%d sessions (%s)",
				report.SubjectName, report.PresentDays, report.WorkingDays, percentCell(report.Percentage))))
			return nil
		},
	}
	mark.Flags().BoolVar(&absent, "absent", false, "record the session as absent")
	mark.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	setTotals := &cobra.Command{
		Use:   "set-totals <roll> <subject> <working> <present>",
		Short: "Overwrite the counters for one subject",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			working, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("working days must be an integer: %w", err)
			}
			present, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("present days must be an integer: %w", err)
			}
			report, err := app.Services.Attendance().SetTotals(cmd.Context(), &services.SetTotalsRequest{
				Roll:        args[0],
				SubjectKey:  args[1],
				WorkingDays: working,
				PresentDays: present,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf(
				"%s: %d/%d sessions (%s)",
				report.SubjectName, report.PresentDays, report.WorkingDays, percentCell(report.Percentage))))
			return nil
		},
	}

	summary := &cobra.Command{
		Use:   "summary <roll>",
		Short: "Show the per-subject attendance breakdown for a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Services.Attendance().Summarize(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s — %s (%s)", s.Roll, s.Name, s.Section)))
			rows := make([][]string, 0, len(s.Subjects))
			for _, sub := range s.Subjects {
				rows = append(rows, []string{
					sub.SubjectCode, sub.SubjectName,
					strconv.Itoa(sub.WorkingDays), strconv.Itoa(sub.PresentDays),
					percentCell(sub.Percentage), sub.LastUpdated,
				})
			}
			fmt.Fprintln(out, renderTable([]string{"Code", "Subject", "Working", "Present", "Percent", "Updated"}, rows))
			return nil
		},
	}

	cmd.AddCommand(mark, setTotals, summary)
	return cmd
}
