package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"hostmark/internal/config"
	"hostmark/internal/hostsfile"
)

func NewAddCommand() *cobra.Command {
	var address, path, marker string

	cmd := &cobra.Command{
		Use:   "add [hostname]...",
		Short: "Ensure hostname mappings exist in the managed block",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Resolve(marker, address, path)
			if err := hostsfile.ValidateMarker(cfg.Marker); err != nil {
				return err
			}
			file := hostsfile.File{Path: cfg.Path}

			doc, err := file.Read()
			if err != nil {
				return fmt.Errorf("reading %s: %w", cfg.Path, err)
			}

			changed := false
			for _, hostname := range lo.Uniq(args) {
				merged, ok, err := hostsfile.Merge(doc, hostname, cfg.Address, cfg.Marker)
				if err != nil {
					return err
				}
				entry := hostsfile.EntryLine(cfg.Address, hostname)
				if !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "already present: %s\n", entry)
					continue
				}
				doc = merged
				changed = true
				fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", entry)
			}
			if !changed {
				return nil
			}

			if err := file.Write(doc); err != nil {
				if errors.Is(err, fs.ErrPermission) {
					return fmt.Errorf("writing %s: %w (run with elevated privileges)", cfg.Path, err)
				}
				return fmt.Errorf("writing %s: %w", cfg.Path, err)
			}
			return nil
		},
	}

	addCommonFlags(cmd, &path, &marker)
	cmd.Flags().StringVar(&address, "address", "", "address to map the hostnames to (default "+config.DefaultAddress+")")
	return cmd
}

func NewListCommand() *cobra.Command {
	var path, marker string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the mappings in the managed block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Resolve(marker, "", path)

			doc, err := hostsfile.File{Path: cfg.Path}.Read()
			if err != nil {
				return fmt.Errorf("reading %s: %w", cfg.Path, err)
			}
			if !hostsfile.HasBlock(doc, cfg.Marker) {
				fmt.Fprintf(cmd.OutOrStdout(), "no managed block for marker %q in %s\n", cfg.Marker, cfg.Path)
				return nil
			}
			for _, entry := range hostsfile.Entries(doc, cfg.Marker) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", entry.Address, entry.Hostname)
			}
			return nil
		},
	}

	addCommonFlags(cmd, &path, &marker)
	return cmd
}

func addCommonFlags(cmd *cobra.Command, path, marker *string) {
	cmd.Flags().StringVar(path, "path", "", "hosts file path (default: platform hosts file)")
	cmd.Flags().StringVar(marker, "marker", "", "managed block marker (default: $APP_NAME or "+config.DefaultMarker+")")
}
