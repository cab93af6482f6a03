//go:build unix

package platform

import (
	"strings"

	"golang.org/x/sys/unix"
)

// hostIdent joins the uname fields the way `uname -a` prints them.
func hostIdent() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", err
	}

	return strings.Join([]string{
		unix.ByteSliceToString(u.Sysname[:]),
		unix.ByteSliceToString(u.Nodename[:]),
		unix.ByteSliceToString(u.Release[:]),
		unix.ByteSliceToString(u.Version[:]),
		unix.ByteSliceToString(u.Machine[:]),
	}, " "), nil
}
