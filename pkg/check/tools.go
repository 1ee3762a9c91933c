package check

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/SanyaSinha11/CodeAlpha-Secure-Coding-Review/pkg/runner"
	"github.com/SanyaSinha11/CodeAlpha-Secure-Coding-Review/pkg/tools"
	"github.com/fatih/color"
)

// ToolStatus is the installation state of one analyzer.
type ToolStatus struct {
	Tool  tools.Tool
	Path  string
	Found bool
}

// InspectTools resolves every analyzer executable, honouring overrides.
func InspectTools(overrides map[string]string) []ToolStatus {
	var statuses []ToolStatus
	for _, t := range tools.Supported() {
		exe := t.Executable
		if o := overrides[t.Name]; o != "" {
			exe = o
		}
		path, err := runner.Available(exe)
		statuses = append(statuses, ToolStatus{
			Tool:  t,
			Path:  path,
			Found: err == nil,
		})
	}
	return statuses
}

// ListTools prints a table of languages, the command used for each and
// whether the analyzer is installed. It returns the number of missing tools.
func ListTools(w io.Writer, overrides map[string]string, noColor bool) (int, error) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	if noColor {
		green.DisableColor()
		red.DisableColor()
	} else {
		green.EnableColor()
		red.EnableColor()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LANGUAGE\tCOMMAND\tSTATUS")

	missing := 0
	for _, s := range InspectTools(overrides) {
		cmd := s.Tool.Command("<file_path>", overrides[s.Tool.Name])
		status := green.Sprint("found " + s.Path)
		if !s.Found {
			status = red.Sprint("missing")
			missing++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", strings.Join(s.Tool.Languages, ", "), cmd.String(), status)
	}
	if err := tw.Flush(); err != nil {
		return missing, fmt.Errorf("failed to write tool list: %w", err)
	}
	return missing, nil
}
