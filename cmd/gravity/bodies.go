package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zeusync/gravity/internal/observability/log"
	"github.com/zeusync/gravity/pkg/space"
)

func newBodiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bodies",
		Short: "List the bodies of a catalog",
		Long:  "List every body in the catalog with its mass, location, velocity and speed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			masses, err := a.masses()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tMASS\tLOCATION\tVELOCITY\tSPEED")
			for _, m := range masses {
				fmt.Fprintf(w, "%s\t%s\t%g\t%s\t%s\t%g\n",
					m.ID(), m.Name(), m.Mass(), m.Location(), m.Velocity(), m.Speed())
			}
			return w.Flush()
		},
	}
}

func newDistancesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distances",
		Short: "Print pairwise distances between bodies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			masses, err := a.masses()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FROM\tTO\tDISTANCE")
			for i := range masses {
				for j := i + 1; j < len(masses); j++ {
					fmt.Fprintf(w, "%s\t%s\t%g\n",
						displayName(masses[i]), displayName(masses[j]), space.Distance(masses[i], masses[j]))
				}
			}
			return w.Flush()
		},
	}
}

func (a *app) masses() ([]*space.Mass, error) {
	if a.configPath == "" {
		return nil, fmt.Errorf("no catalog given, use --config")
	}
	masses, err := a.config.Masses()
	if err != nil {
		a.logger.Error("invalid catalog", log.String("config", a.configPath), log.Error(err))
		return nil, err
	}
	a.logger.Info("catalog loaded", log.String("config", a.configPath), log.Int("bodies", len(masses)))
	return masses, nil
}

func displayName(m *space.Mass) string {
	if m.Name() != "" {
		return m.Name()
	}
	return m.ID()
}
