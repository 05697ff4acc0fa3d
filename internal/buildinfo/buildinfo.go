// Package buildinfo exposes build metadata injected with -ldflags:
//
//	go build -ldflags "-X github.com/dmitrijs2005/gophwallet/internal/buildinfo.buildVersion=v1.0.0" ./cmd/wallet
package buildinfo

import (
	"cmp"
	"fmt"
	"io"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// Version returns the build version, or "N/A" when it was not set.
func Version() string { return cmp.Or(buildVersion, "N/A") }

// PrintBuildData writes version, date and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version())
	fmt.Fprintf(w, "Build date: %s\n", cmp.Or(buildDate, "N/A"))
	fmt.Fprintf(w, "Build commit: %s\n", cmp.Or(buildCommit, "N/A"))
}
