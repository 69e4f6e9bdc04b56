package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edutrack/ledger-service/internal/services"
)

func newSubjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage the subject catalog",
	}

	add := &cobra.Command{
		Use:   "add <code> <name>",
		Short: "Add a subject (e.g. TMA101 \"Basic Maths\")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, err := app.Services.Catalog().AddSubject(cmd.Context(), &services.AddSubjectRequest{
				Code: args[0],
				Name: args[1],
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("subject added: %s (%s)", subject.Name, subject.Code)))
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all subjects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := app.Services.Catalog().ListSubjects(cmd.Context())
			if err != nil {
				return err
			}
			if len(subjects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No subjects available.")
				return nil
			}
			rows := make([][]string, 0, len(subjects))
			for i, s := range subjects {
				rows = append(rows, []string{strconv.Itoa(i + 1), s.Code, s.Name})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"#", "Code", "Name"}, rows))
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

func newSectionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Manage sections and curricula",
	}

	add := &cobra.Command{
		Use:   "add <code>",
		Short: "Create a section; standard family codes get their curriculum auto-populated",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := app.Services.Catalog().AddSection(cmd.Context(), &services.AddSectionRequest{Code: args[0]})
			if err != nil {
				return err
			}
			msg := fmt.Sprintf("section created: %s", section.Code)
			if len(section.Curriculum) > 0 {
				msg += fmt.Sprintf(" (%d subjects from the standard curriculum)", len(section.Curriculum))
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(msg))
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sections, err := app.Services.Catalog().ListSections(cmd.Context())
			if err != nil {
				return err
			}
			if len(sections) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sections available. Create one first.")
				return nil
			}
			rows := make([][]string, 0, len(sections))
			for _, s := range sections {
				rows = append(rows, []string{s.Code, strings.Join(s.Curriculum, ", ")})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Section", "Curriculum"}, rows))
			return nil
		},
	}

	setCurriculum := &cobra.Command{
		Use:   "set-curriculum <code> <subject>...",
		Short: "Override a section's curriculum (does not migrate enrolled students)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Services.Catalog().SetCurriculum(cmd.Context(), &services.SetCurriculumRequest{
				Section:  args[0],
				Subjects: args[1:],
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf("curriculum updated for %s", strings.ToUpper(args[0]))))
			return nil
		},
	}

	curriculum := &cobra.Command{
		Use:   "curriculum <code>",
		Short: "Show the curriculum a new enrollment into this section would capture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := app.Services.Catalog().CurriculumForSection(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(subjects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No curriculum mapped for this section.")
				return nil
			}
			for i, name := range subjects {
				fmt.Fprintf(cmd.OutOrStdout(), " %d. %s\n", i+1, name)
			}
			return nil
		},
	}

	cmd.AddCommand(add, list, setCurriculum, curriculum)
	return cmd
}
