package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/simgroup/internal/group"
	"github.com/roach88/simgroup/internal/sim"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	By string
}

// ValidationResult is the validate command's output.
type ValidationResult struct {
	Valid       bool   `json:"valid"`
	Collection  string `json:"collection"`
	Simulations int    `json:"simulations"`
	Started     int    `json:"started"`
	By          string `json:"by,omitempty"`
	Groups      int    `json:"groups,omitempty"`
}

// WriteText writes a one-line summary.
func (r ValidationResult) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ %s: %d simulations (%d started)\n", r.Collection, r.Simulations, r.Started)
	if err != nil || r.By == "" {
		return err
	}
	_, err = fmt.Fprintf(w, "✓ groups by %s: %d\n", r.By, r.Groups)
	return err
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <manifest>",
		Short: "Check a manifest without grouping or importing it",
		Long: `Load a manifest and report whether it is well formed.

With --by, also check that every simulation can be grouped by that
parameter.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.By, "by", "", "also check grouping by this parameter")

	return cmd
}

func runValidate(opts *ValidateOptions, manifest string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	coll, err := sim.LoadManifest(manifest)
	if err != nil {
		return validationFailure(formatter, err)
	}

	result := ValidationResult{
		Valid:       true,
		Collection:  coll.Name,
		Simulations: coll.Len(),
		Started:     len(coll.Started()),
	}

	if opts.By != "" {
		groups, err := group.Group(coll.Records(), opts.By, group.Options{Logger: opts.logger()})
		if err != nil {
			return validationFailure(formatter, err)
		}
		result.By = opts.By
		result.Groups = groups.Len()
	}

	return formatter.Success(result)
}

// validationFailure reports err. A manifest that was read but rejected is a
// validation failure (exit code 1); one that could not be read is a command
// error (exit code 2).
func validationFailure(formatter *OutputFormatter, err error) error {
	failErr := formatter.Fail(err)

	var manErr *sim.ManifestError
	var exitErr *ExitError
	if errors.As(failErr, &exitErr) && !(errors.As(err, &manErr) && manErr.Code == sim.ErrCodeUnreadable) {
		exitErr.Code = ExitFailure
	}
	return failErr
}
