//go:build windows

package platform

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/windows"
)

// hostIdent synthesizes a uname-like string from the NT version information.
func hostIdent() (string, error) {
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}

	v := windows.RtlGetVersion()
	return fmt.Sprintf("Windows NT %s %d.%d build %d %s",
		host, v.MajorVersion, v.MinorVersion, v.BuildNumber, runtime.GOARCH), nil
}
