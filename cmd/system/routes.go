package system

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jobra/portal_backend/internal/catalog"
	"github.com/jobra/portal_backend/internal/routes"
)

// NewRoutesCommand prints the destination table: every navigable path, who
// may enter it, and where each role lands by default.
func NewRoutesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the destination table and role homes",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "PATH\tALLOWED ROLES")
			for _, d := range routes.Table {
				allowed := "open"
				if len(d.AllowedRoles) > 0 {
					parts := make([]string, len(d.AllowedRoles))
					for i, role := range d.AllowedRoles {
						parts[i] = string(role)
					}
					allowed = strings.Join(parts, ", ")
				}
				fmt.Fprintf(w, "%s\t%s\n", d.Path, allowed)
			}

			fmt.Fprintln(w, "\nROLE\tHOME")
			for _, role := range []catalog.Role{catalog.RoleAdmin, catalog.RoleDoctor, catalog.RolePatient} {
				fmt.Fprintf(w, "%s\t%s\n", role, routes.HomeFor(role))
			}

			return w.Flush()
		},
	}

	return cmd
}
