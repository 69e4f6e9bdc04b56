// Package cli is the command-line front-end for the ledger engine. It
// owns prompting, confirmation and rendering; all state changes go
// through the service layer.
package cli

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edutrack/ledger-service/internal/config"
	"github.com/edutrack/ledger-service/internal/reporting"
	"github.com/edutrack/ledger-service/internal/services"
)

// App bundles the dependencies the commands close over.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Services services.ServiceManager
	Exporter *reporting.Exporter
}

// NewRootCommand assembles the edutrack command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "edutrack",
		Short:         "Enrollment and attendance ledger for a small institution",
		Long:          "edutrack tracks roll numbers, section enrollments and per-subject\nattendance counters over human-readable file-backed stores.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSubjectCmd(app),
		newSectionCmd(app),
		newRollCmd(app),
		newEnrollCmd(app),
		newAttendanceCmd(app),
		newInitAllCmd(app),
		newExamCmd(app),
		newTeacherCmd(app),
		newTopicCmd(app),
		newExportCmd(app),
	)
	return root
}

// confirm asks the operator for a y/n answer on the command's stdin. The
// ledger itself commits unconditionally; this gate is the caller-side
// precondition for attendance mutations.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s (y/n): ", prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
