package cli

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Presenter is an io.Writer that colorizes the flow's status lines. When the
// destination is not a terminal (or --no-color is set) termenv degrades to
// plain text, so piped output stays clean.
type Presenter struct {
	out *termenv.Output
}

// NewPresenter wraps w; noColor forces the ASCII profile.
func NewPresenter(w io.Writer, noColor bool) *Presenter {
	var opts []termenv.OutputOption
	if noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Presenter{out: termenv.NewOutput(w, opts...)}
}

func (p *Presenter) Write(b []byte) (int, error) {
	line := strings.TrimSuffix(string(b), "\n")
	styled := p.out.String(line).Foreground(p.out.Color(colorFor(line))).String()
	if _, err := io.WriteString(p.out, styled+"\n"); err != nil {
		return 0, err
	}
	return len(b), nil
}

func colorFor(line string) string {
	switch {
	case strings.HasPrefix(line, "Added"):
		return "2" // green
	case strings.HasPrefix(line, "Removed"):
		return "3" // yellow
	default:
		return "6" // cyan
	}
}
