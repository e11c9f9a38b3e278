package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/simgroup/internal/sim"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	DB string
}

// ImportResult is the import command's output.
type ImportResult struct {
	Collection string `json:"collection"`
	Imported   int    `json:"imported"`
	Started    int    `json:"started"`
}

// WriteText writes a one-line summary.
func (r ImportResult) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "imported %d simulations (%d started) into collection %s\n", r.Imported, r.Started, r.Collection)
	return err
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <manifest>",
		Short: "Load a manifest into a catalog",
		Long: `Load a manifest and upsert its simulations into a SQLite catalog.

Simulations are matched by name. A re-imported name keeps its id and its
position in the catalog; every other field is replaced. The catalog is
created if it does not exist.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "catalog database (default from config db)")

	return cmd
}

func runImport(opts *ImportOptions, manifest string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	db := opts.DB
	if db == "" {
		db = opts.effectiveConfig().DB
	}
	if db == "" {
		return formatter.Fail(usageError("--db is required (or set db in config)"))
	}

	coll, err := sim.LoadManifest(manifest)
	if err != nil {
		return formatter.Fail(err)
	}

	st, err := openCatalog(db, true)
	if err != nil {
		return formatter.Fail(err)
	}
	defer st.Close()

	n, err := st.WriteCollection(cmd.Context(), coll)
	if err != nil {
		return formatter.Fail(&commandError{Code: ErrCodeDatabase, Message: "write catalog", Err: err})
	}
	opts.logger().Info("imported manifest", "collection", coll.Name, "simulations", n, "db", db)

	return formatter.Success(ImportResult{
		Collection: coll.Name,
		Imported:   n,
		Started:    len(coll.Started()),
	})
}
