package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build information, injected at link time via -ldflags.
var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var (
	versionFormat   string
	versionDetailed bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for the pressroom CLI.

By default shows the version number. Use --detailed for build metadata
or --format json for machine-readable output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := map[string]string{
			"version": buildVersion,
		}
		if versionDetailed {
			info["commit"] = buildCommit
			info["date"] = buildDate
			info["go"] = runtime.Version()
			info["platform"] = runtime.GOOS + "/" + runtime.GOARCH
		}

		if versionFormat == "json" {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "pressroom %s\n", buildVersion)
		if versionDetailed {
			fmt.Fprintf(cmd.OutOrStdout(), "  commit:   %s\n", buildCommit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:    %s\n", buildDate)
			fmt.Fprintf(cmd.OutOrStdout(), "  go:       %s\n", runtime.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "text", "output format (text, json)")
	versionCmd.Flags().BoolVar(&versionDetailed, "detailed", false, "include build metadata")
	rootCmd.AddCommand(versionCmd)
}
