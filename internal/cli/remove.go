package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// RemoveOptions holds flags for the remove command.
type RemoveOptions struct {
	*RootOptions
	DB string
}

// RemoveResult is the remove command's output.
type RemoveResult struct {
	Removed []string `json:"removed"`
	Missing []string `json:"missing,omitempty"`
}

// WriteText writes one line per name.
func (r RemoveResult) WriteText(w io.Writer) error {
	for _, name := range r.Removed {
		fmt.Fprintf(w, "removed %s\n", name)
	}
	for _, name := range r.Missing {
		fmt.Fprintf(w, "not found %s\n", name)
	}
	return nil
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RemoveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "remove <name>...",
		Short:         "Remove simulations from a catalog by name",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "catalog database (default from config db)")

	return cmd
}

func runRemove(opts *RemoveOptions, names []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	src, err := resolveSource(nil, opts.DB, opts.effectiveConfig().DB)
	if err != nil {
		return formatter.Fail(usageError("--db is required (or set db in config)"))
	}

	st, err := openCatalog(src.DB, false)
	if err != nil {
		return formatter.Fail(err)
	}
	defer st.Close()

	result := RemoveResult{Removed: []string{}}
	for _, name := range names {
		ok, err := st.DeleteSimulation(cmd.Context(), name)
		if err != nil {
			return formatter.Fail(&commandError{Code: ErrCodeDatabase, Message: "delete simulation", Err: err})
		}
		if ok {
			result.Removed = append(result.Removed, name)
		} else {
			result.Missing = append(result.Missing, name)
		}
	}
	return formatter.Success(result)
}
