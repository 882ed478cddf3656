package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/kirubel12/hono-artisan/internal/branding"
	"github.com/spf13/cobra"
)

// displayVersion normalizes a semver build version ("v1.2.0" → "1.2.0").
// Anything else (e.g. "dev") is returned unchanged.
func displayVersion(v string) string {
	sv, err := semver.NewVersion(strings.TrimPrefix(v, "v"))
	if err != nil {
		return v
	}
	return sv.String()
}

func newVersionCmd(a *app) *cobra.Command {
	var (
		versionShort bool
		versionJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			version := displayVersion(cmd.Root().Version)

			if versionShort {
				fmt.Fprintln(out, version)
				return nil
			}

			if versionJSON {
				info := map[string]string{
					"version": version,
					"commit":  valueOr(a.build.commit, "unknown"),
					"date":    valueOr(a.build.date, "unknown"),
				}
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling version info: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n",
				branding.CLIName(), version, valueOr(a.build.commit, "unknown"), valueOr(a.build.date, "unknown"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	cmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	return cmd
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
