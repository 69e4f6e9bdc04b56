package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edutrack/ledger-service/internal/services"
)

func newExamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exam",
		Short: "Manage the subject exam schedule",
	}

	set := &cobra.Command{
		Use:   "set <subject-code> <dd/mm/yyyy>",
		Short: "Set or update the exam date for a subject",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Services.Exams().SetExamDate(cmd.Context(), &services.SetExamDateRequest{
				SubjectCode: args[0],
				ExamDate:    args[1],
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf(
				"exam for %s (%s) scheduled on %s", entry.SubjectName, entry.SubjectCode, entry.ExamDate)))
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the schedule for every cataloged subject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Services.Exams().AllExamDates(cmd.Context())
			if err != nil {
				return err
			}
			printExamEntries(cmd, entries)
			return nil
		},
	}

	section := &cobra.Command{
		Use:   "section <code>",
		Short: "Show the schedule restricted to a section's curriculum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := app.Services.Exams().SectionExamDates(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !schedule.SectionSpecific {
				fmt.Fprintln(cmd.OutOrStdout(), "no curriculum mapped for this section; showing all subjects")
			}
			printExamEntries(cmd, schedule.Entries)
			return nil
		},
	}

	cmd.AddCommand(set, list, section)
	return cmd
}

func printExamEntries(cmd *cobra.Command, entries []services.ExamEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No subjects to schedule.")
		return
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.SubjectCode, e.SubjectName, e.ExamDate})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Code", "Subject", "Exam Date"}, rows))
}
