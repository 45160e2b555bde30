package platform

import "net"

// DefaultHostsPath returns the hosts file consulted by the local
// resolver on this platform.
func DefaultHostsPath() string {
	return defaultHostsPath()
}

// LocalAddresses returns the IP addresses assigned to local interfaces.
func LocalAddresses() ([]net.IP, error) {
	return localAddresses()
}
