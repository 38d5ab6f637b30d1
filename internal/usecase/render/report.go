package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/aalvaropc/mailgroup/internal/domain"
	"github.com/aalvaropc/mailgroup/internal/ui/theme"
)

const indent = "    "

type reportOptions struct {
	theme theme.Theme
}

type ReportOption func(*reportOptions)

// WithTheme styles the heading and warning lines.
func WithTheme(t theme.Theme) ReportOption {
	return func(o *reportOptions) { o.theme = t }
}

// Report writes the database summary as one text block.
func Report(w io.Writer, s domain.Summary, opts ...ReportOption) error {
	o := reportOptions{theme: theme.Plain()}
	for _, opt := range opts {
		opt(&o)
	}
	th := o.theme

	var b strings.Builder
	b.WriteString("\n" + th.RenderTitle("DATABASE SUMMARY") + "\n\n")
	fmt.Fprintf(&b, "%s%s  %s\n", indent, th.RenderLabel("Member file:"), s.Sources.MembersPath)
	fmt.Fprintf(&b, "%s%s   %s\n", indent, th.RenderLabel("Group file:"), s.Sources.GroupsPath)
	fmt.Fprintf(&b, "\n%s%d people and %d groups found.\n\n", indent, s.MemberCount, s.GroupCount)

	width := len("GROUP")
	for _, g := range s.Groups {
		if len(g.Name) > width {
			width = len(g.Name)
		}
	}
	width += 4

	b.WriteString(indent + th.RenderLabel(fmt.Sprintf("%-*s%s", width, "GROUP", "MEMBERS")) + "\n")
	for _, g := range s.Groups {
		line := fmt.Sprintf("%-*s%d", width, g.Name, g.Members)
		if g.Members == 0 {
			line = th.RenderMuted(line)
		}
		b.WriteString(indent + line + "\n")
	}

	if len(s.Unassigned) > 0 {
		b.WriteString("\n" + indent + th.RenderWarning("WARNING: The following people are assigned to no group:") + "\n")
		for _, name := range s.Unassigned {
			b.WriteString(indent + name + "\n")
		}
	}

	if len(s.EmptyGroups) > 0 {
		b.WriteString("\n" + indent + th.RenderWarning("WARNING: The following groups have no assigned people:") + "\n")
		for _, g := range s.EmptyGroups {
			b.WriteString(indent + g + "\n")
		}
	}

	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}
