// SPDX-License-Identifier: MIT

package job

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Status labels printed in front of each step.
const (
	labelOK    = "ok   "
	labelError = "error"
)

// Render writes one block per result: a status header followed by the value
// (or the error) on its own lines. When colored is false no escape codes are
// written regardless of the terminal.
func Render(w io.Writer, results []Result, colored bool) error {
	okc := color.New(color.FgGreen, color.Bold)
	errc := color.New(color.FgRed, color.Bold)
	if colored {
		okc.EnableColor()
		errc.EnableColor()
	} else {
		okc.DisableColor()
		errc.DisableColor()
	}

	for _, r := range results {
		label, c, body := labelOK, okc, r.Value
		if r.Failed() {
			label, c, body = labelError, errc, r.Err.Error()
		}
		if _, err := c.Fprint(w, label); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, " %s (%s)\n", r.Name, r.Op); err != nil {
			return err
		}
		if !strings.HasSuffix(body, "\n") {
			body += "\n"
		}
		if _, err := io.WriteString(w, body); err != nil {
			return err
		}
	}

	return nil
}

// Summary counts passed and failed results.
func Summary(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.Failed() {
			failed++
		} else {
			passed++
		}
	}

	return passed, failed
}
