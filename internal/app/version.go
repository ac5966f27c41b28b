package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion records the build version reported by `bookctl version` and
// sent in the User-Agent.
func SetVersion(v string) {
	if v != "" {
		appVersion = v
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the bookctl version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotNoClient: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "bookctl %s\n", appVersion)
		},
	}
}
