package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdscan/pkg/construct"
)

func newConstructsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "constructs",
		Short: "List registered constructs",
		Long:  `List the constructs the scanner can dispatch to, with the characters they open at.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := construct.Default()
			out := cmd.OutOrStdout()

			for _, name := range reg.Names() {
				c, ok := reg.Get(name)
				if !ok {
					continue
				}

				openers := make([]string, 0, len(c.Openers))
				for _, r := range c.Openers {
					openers = append(openers, fmt.Sprintf("%q", r))
				}

				if _, err := fmt.Fprintf(out, "%-20s opens at %s\n",
					c.Name, strings.Join(openers, ", ")); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}
			return nil
		},
	}

	return cmd
}
