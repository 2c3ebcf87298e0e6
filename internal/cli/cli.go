package cli

import (
	"context"
	"io"
	"os"

	"github.com/specialistvlad/stylegrid/internal/app"
)

// Main runs the application and returns the process exit status. A nil argv
// means the process's own arguments; an empty, non-nil argv is used as is.
func Main(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	if argv == nil {
		argv = os.Args[1:]
	}

	application := app.NewApplication(stdout, stderr)
	application.Run(ctx, argv)
	return application.ExitCode()
}
