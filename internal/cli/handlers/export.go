package handlers

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/borchsolutions/tablero/internal/cli"
	"github.com/borchsolutions/tablero/internal/output"
)

// Export writes the filtered report in format to outPath, or to stdout when
// outPath is empty or "-".
func Export(deps *cli.Deps, req Request, format, outPath string) {
	if _, err := output.GetFormatter(format); err != nil {
		deps.Fail("Unsupported export format", err, "Use one of: "+strings.Join(output.FormatNames(), ", "))
		return
	}

	sess, ok := loadSession(deps, req.Path)
	if !ok {
		return
	}
	d := compute(deps, sess, req.Spec)

	// Render fully before touching the destination so a failure leaves no
	// partial file behind.
	var buf bytes.Buffer
	if err := deps.Services.Report.Write(format, sess, d, &buf); err != nil {
		deps.Fail("Failed to render report", err, "")
		return
	}

	if outPath == "" || outPath == "-" {
		_, _ = deps.Stdout.Write(buf.Bytes())
		return
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		deps.Fail("Failed to write report", err, fmt.Sprintf("Check that the directory exists and is writable: %s", outPath))
		return
	}
	n := d.View.Len()
	_, _ = fmt.Fprintf(deps.Stdout, "Exported %d %s to %s\n", n, cli.Pluralize("task", n), outPath)
}
