package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultHostsPath(t *testing.T) {
	path := DefaultHostsPath()
	require.NotEmpty(t, path)
	if runtime.GOOS != "windows" {
		require.Equal(t, "/etc/hosts", path)
	}
}

func TestLocalAddresses(t *testing.T) {
	ips, err := LocalAddresses()
	require.NoError(t, err)
	for _, ip := range ips {
		require.NotNil(t, ip)
	}
}
