//go:build !windows
// +build !windows

package platform

func defaultHostsPath() string {
	return "/etc/hosts"
}
