package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edutrack/ledger-service/internal/services"
)

func newTeacherCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teacher",
		Short: "Manage teacher-to-section assignments",
	}

	assign := &cobra.Command{
		Use:   "assign <teacher-roll> <section>...",
		Short: "Assign a teacher to one or more sections (replaces prior assignment)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sections, err := app.Services.Teachers().AssignSections(cmd.Context(), &services.AssignSectionsRequest{
				Teacher:  args[0],
				Sections: args[1:],
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf(
				"%s assigned to %s", args[0], strings.Join(sections, ", "))))
			return nil
		},
	}

	sections := &cobra.Command{
		Use:   "sections <teacher-roll>",
		Short: "List the sections assigned to a teacher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assigned, err := app.Services.Teachers().SectionsFor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(assigned) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sections assigned.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(assigned, "\n"))
			return nil
		},
	}

	cmd.AddCommand(assign, sections)
	return cmd
}

func newTopicCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topic",
		Short: "Log and review topics covered per section",
	}

	add := &cobra.Command{
		Use:   "add <teacher-roll> <section> <topic>",
		Short: "Log a topic covered today (teacher must be assigned to the section)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic, err := app.Services.Topics().AddTopic(cmd.Context(), &services.AddTopicRequest{
				Teacher: args[0],
				Section: args[1],
				Topic:   args[2],
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(fmt.Sprintf(
				"topic logged for %s on %s", topic.Section, topic.Date)))
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list <section>",
		Short: "Show the topics logged for a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topics, err := app.Services.Topics().TopicsForSection(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(topics) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No topics logged yet.")
				return nil
			}
			rows := make([][]string, 0, len(topics))
			for _, t := range topics {
				rows = append(rows, []string{t.Date, t.Teacher, t.Topic})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Date", "Teacher", "Topic"}, rows))
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}
