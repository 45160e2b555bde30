package app

import (
	"fmt"
	"net"
	"os"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/spf13/cobra"

	"hostmark/internal/config"
	"hostmark/internal/hostsfile"
	"hostmark/internal/platform"
)

func NewStatusCommand() *cobra.Command {
	var address, path, marker string

	cmd := &cobra.Command{
		Use:                   "status",
		Short:                 "Show hosts file and managed block status",
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Resolve(marker, address, path)
			w := cmd.OutOrStdout()

			fmt.Fprintln(w, "Hostmark Status")
			fmt.Fprintln(w, "===============")

			fmt.Fprintln(w, "\nPlatform:")
			if info, err := host.Info(); err == nil {
				fmt.Fprintf(w, "  OS: %s (%s %s)\n", info.OS, info.Platform, info.PlatformVersion)
				fmt.Fprintf(w, "  Kernel: %s\n", info.KernelVersion)
			} else {
				fmt.Fprintln(w, "  OS: Unknown")
			}

			fmt.Fprintln(w, "\nHosts File:")
			fmt.Fprintf(w, "  Path: %s\n", cfg.Path)
			fmt.Fprintf(w, "  Exists: %t\n", fileExists(cfg.Path))
			fmt.Fprintf(w, "  Writable: %t\n", fileWritable(cfg.Path))

			doc, err := hostsfile.File{Path: cfg.Path}.Read()
			if err != nil {
				return fmt.Errorf("reading %s: %w", cfg.Path, err)
			}

			fmt.Fprintln(w, "\nManaged Block:")
			fmt.Fprintf(w, "  Marker: %s\n", cfg.Marker)
			if hostsfile.HasBlock(doc, cfg.Marker) {
				fmt.Fprintf(w, "  Entries: %d\n", len(hostsfile.Entries(doc, cfg.Marker)))
			} else {
				fmt.Fprintln(w, "  Entries: no block yet")
			}

			fmt.Fprintln(w, "\nTarget Address:")
			fmt.Fprintf(w, "  Address: %s\n", cfg.Address)
			if bound, err := addressIsLocal(cfg.Address); err == nil {
				fmt.Fprintf(w, "  Bound locally: %t\n", bound)
				if !bound {
					fmt.Fprintln(w, "  WARNING: address is not assigned to any local interface")
				}
			}
			return nil
		},
	}

	addCommonFlags(cmd, &path, &marker)
	cmd.Flags().StringVar(&address, "address", "", "address to check against local interfaces (default "+config.DefaultAddress+")")
	return cmd
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func fileWritable(path string) bool {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func addressIsLocal(address string) (bool, error) {
	target := net.ParseIP(address)
	if target == nil {
		return false, fmt.Errorf("not an IP address: %s", address)
	}
	ips, err := platform.LocalAddresses()
	if err != nil {
		return false, err
	}
	for _, ip := range ips {
		if ip.Equal(target) {
			return true, nil
		}
	}
	return false, nil
}
