package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

// EnvProject selects the project when --project is not given
const EnvProject = "SLOTASK_PROJECT"

// ErrNoProject is returned when neither --project nor SLOTASK_PROJECT is set
var ErrNoProject = errors.New("no project specified: use --project or set " + EnvProject)

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// AddProjectFlag registers --project
func AddProjectFlag(cmd *cobra.Command) {
	cmd.Flags().Int("project", 0, "Project ID (uses "+EnvProject+" if not specified)")
}

// GetProjectID returns --project, falling back to SLOTASK_PROJECT
func GetProjectID(cmd *cobra.Command) (int, error) {
	if cmd.Flags().Changed("project") {
		id, err := cmd.Flags().GetInt("project")
		if err != nil {
			return 0, err
		}
		if id <= 0 {
			return 0, fmt.Errorf("--project must be greater than 0")
		}
		return id, nil
	}

	env := os.Getenv(EnvProject)
	if env == "" {
		return 0, ErrNoProject
	}
	id, err := strconv.Atoi(env)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s value %q", EnvProject, env)
	}
	return id, nil
}

// ParseID parses a positional ID argument
func ParseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID: %s", what, arg)
	}
	return id, nil
}

// MarkRequired marks flags as required; registration errors are programmer errors
func MarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("flag %q not registered on %s", name, cmd.Name()))
		}
	}
}

// UsageError marks an error caused by how the command was invoked
type UsageError struct {
	Err        error
	Suggestion string
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Usage wraps err as a usage error with a suggestion for the user
func Usage(err error, suggestion string) error {
	return &UsageError{Err: err, Suggestion: suggestion}
}

// ProjectFromFlags is GetProjectID with the standard usage suggestion
func ProjectFromFlags(cmd *cobra.Command) (int, error) {
	id, err := GetProjectID(cmd)
	if err != nil {
		return 0, Usage(err, "Set project with: eval $(slotask use project <project-id>)")
	}
	return id, nil
}

// ParseDueDate parses a YYYY-MM-DD due date
func ParseDueDate(s string) (*time.Time, error) {
	due, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return nil, Usage(fmt.Errorf("invalid due date %q", s), "Use the YYYY-MM-DD format, e.g. --due 2025-03-31")
	}
	return &due, nil
}
