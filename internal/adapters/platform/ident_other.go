//go:build !unix && !windows

package platform

import "go.trai.ch/zerr"

func hostIdent() (string, error) {
	return "", zerr.New("host identification is not supported on this platform")
}
