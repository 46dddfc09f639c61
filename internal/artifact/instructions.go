package artifact

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/config"
	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/messages"
)

// WriteInstructions writes the three acquisition options to w.
// expectedPath is shown when non-empty.
func WriteInstructions(w io.Writer, expectedPath string) {
	heading := color.New(color.Bold, color.FgCyan)
	title := color.New(color.Bold)

	_, _ = title.Fprintln(w, messages.InstructionsTitle)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, messages.InstructionsIntro)
	if expectedPath != "" {
		_, _ = fmt.Fprintf(w, messages.InstructionsExpectedAtFmt+"\n", expectedPath)
	}
	_, _ = fmt.Fprintln(w)

	_, _ = heading.Fprintln(w, messages.InstructionsDockerHeading)
	_, _ = fmt.Fprintln(w, messages.InstructionsFenceBash)
	_, _ = fmt.Fprintf(w, messages.InstructionsDockerRunFmt+"\n", config.DockerImage)
	_, _ = fmt.Fprintln(w, messages.InstructionsFence)
	_, _ = fmt.Fprintln(w)

	_, _ = heading.Fprintln(w, messages.InstructionsSourceHeading)
	_, _ = fmt.Fprintln(w, messages.InstructionsFenceBash)
	_, _ = fmt.Fprintf(w, messages.InstructionsCloneFmt+"\n", config.Repository)
	_, _ = fmt.Fprintf(w, messages.InstructionsCdFmt+"\n", config.ProjectName)
	_, _ = fmt.Fprintln(w, messages.InstructionsMavenPackage)
	_, _ = fmt.Fprintln(w, messages.InstructionsFence)
	_, _ = fmt.Fprintln(w)

	_, _ = heading.Fprintln(w, messages.InstructionsBinaryHeading)
	_, _ = fmt.Fprintf(w, messages.InstructionsVisitFmt+"\n", config.Repository)
	_, _ = fmt.Fprintln(w)
}
