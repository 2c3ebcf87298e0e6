package app

import (
	"fmt"
	"runtime"
	"strings"
)

// Version is overridden at build time with -ldflags "-X ...app.Version=...".
var Version = "0.1.0-dev"

// Codes lists the violation codes stylegrid can report.
var Codes = []string{"E501", "E902", "W191", "W291", "W292", "W293", "W391"}

func versionString() string {
	return fmt.Sprintf("stylegrid %s (codes: %s) %s on %s",
		Version, strings.Join(Codes, ", "), runtime.Version(), runtime.GOOS)
}
