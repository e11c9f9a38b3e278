package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/simgroup/internal/group"
	"github.com/roach88/simgroup/internal/sim"
	"github.com/roach88/simgroup/internal/store"
)

// GroupOptions holds flags for the group command.
type GroupOptions struct {
	*RootOptions
	DB          string
	By          string
	NoSort      bool
	OnlyStarted bool
}

// GroupResult is the group command's output.
type GroupResult struct {
	By       string       `json:"by"`
	Strategy string       `json:"strategy"`
	Groups   []GroupEntry `json:"groups"`
}

// GroupEntry is one group, keyed by its canonical string form.
type GroupEntry struct {
	Key         string   `json:"key"`
	Simulations []string `json:"simulations"`
}

// WriteText writes one line per group: "key (n): name1, name2".
func (r GroupResult) WriteText(w io.Writer) error {
	for _, g := range r.Groups {
		if _, err := fmt.Fprintf(w, "%s (%d): %s\n", g.Key, len(g.Simulations), strings.Join(g.Simulations, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// NewGroupCommand creates the group command.
func NewGroupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GroupOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "group [manifest]",
		Short: "Group simulations by a parameter or by domain size",
		Long: `Group simulations by the value of a parameter.

Simulations come from a manifest file (.yaml, .json, .cue) or from a catalog
(--db). The first simulation decides the strategy: if it has the parameter,
every simulation is grouped by that parameter's value. Otherwise Lx, Ly and
Lz group by the domain size, which always uses the x extent.

Groups are listed in natural order of their keys unless --no-sort is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGroup(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "catalog database to read instead of a manifest")
	cmd.Flags().StringVar(&opts.By, "by", "", "parameter to group by (default from config group.by)")
	cmd.Flags().BoolVar(&opts.NoSort, "no-sort", false, "keep groups in first-seen order")
	cmd.Flags().BoolVar(&opts.OnlyStarted, "only-started", false, "skip simulations that have not started")

	return cmd
}

func runGroup(opts *GroupOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	cfg := opts.effectiveConfig()

	by := opts.By
	if by == "" {
		by = cfg.Group.By
	}
	if by == "" {
		return formatter.Fail(usageError("--by is required (or set group.by in config)"))
	}

	src, err := resolveSource(args, opts.DB, cfg.DB)
	if err != nil {
		return formatter.Fail(err)
	}

	onlyStarted := opts.OnlyStarted || cfg.Group.OnlyStarted
	coll, err := loadCollection(cmd.Context(), src, store.Filter{OnlyStarted: onlyStarted})
	if err != nil {
		return formatter.Fail(err)
	}
	formatter.VerboseLog("loaded %d simulations from %s", coll.Len(), coll.Source)

	groups, err := group.Group(coll.Records(), by, group.Options{
		Sort:        cfg.Group.Sort && !opts.NoSort,
		OnlyStarted: onlyStarted,
		Logger:      opts.logger(),
	})
	if err != nil {
		return formatter.Fail(err)
	}

	return formatter.Success(newGroupResult(groups))
}

func newGroupResult(groups *group.Groups[*sim.Simulation]) GroupResult {
	result := GroupResult{
		By:       groups.By,
		Strategy: groups.Strategy.String(),
		Groups:   make([]GroupEntry, 0, groups.Len()),
	}
	for key, members := range groups.All() {
		names := make([]string, len(members))
		for i, m := range members {
			names[i] = m.Name
		}
		result.Groups = append(result.Groups, GroupEntry{Key: key, Simulations: names})
	}
	return result
}
