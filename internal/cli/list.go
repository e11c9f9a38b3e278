package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/simgroup/internal/store"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	DB          string
	OnlyStarted bool
	Collection  string
	Prefix      string
}

// ListResult is the list command's output.
type ListResult struct {
	Simulations []ListEntry `json:"simulations"`
}

// ListEntry describes one catalog entry.
type ListEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Started bool   `json:"started"`
	Path    string `json:"path,omitempty"`
}

// WriteText writes an aligned table, one simulation per row.
func (r ListResult) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTARTED\tID")
	for _, e := range r.Simulations {
		fmt.Fprintf(tw, "%s\t%t\t%s\n", e.Name, e.Started, e.ID)
	}
	return tw.Flush()
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List simulations in a catalog",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "catalog database (default from config db)")
	cmd.Flags().BoolVar(&opts.OnlyStarted, "only-started", false, "list started simulations only")
	cmd.Flags().StringVar(&opts.Collection, "collection", "", "list one collection only")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "list names starting with this prefix")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	src, err := resolveSource(nil, opts.DB, opts.effectiveConfig().DB)
	if err != nil {
		return formatter.Fail(usageError("--db is required (or set db in config)"))
	}

	coll, err := loadCollection(cmd.Context(), src, store.Filter{
		OnlyStarted: opts.OnlyStarted,
		NamePrefix:  opts.Prefix,
		Collection:  opts.Collection,
	})
	if err != nil {
		return formatter.Fail(err)
	}

	result := ListResult{Simulations: make([]ListEntry, 0, coll.Len())}
	for _, s := range coll.Simulations {
		result.Simulations = append(result.Simulations, ListEntry{
			ID:      s.ID,
			Name:    s.Name,
			Started: s.HasStarted,
			Path:    s.Path,
		})
	}
	return formatter.Success(result)
}
