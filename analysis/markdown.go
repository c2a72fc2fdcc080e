package analysis

import (
	"fmt"
	"strings"
)

// Markdown renders the analysis as an outline document: the main topic as
// the heading, one section per slide with its points, then key points and
// themes.
func (a *StructureAnalysis) Markdown() string {
	var sb strings.Builder

	topic := a.MainTopic
	if topic == "" {
		topic = untitled
	}
	fmt.Fprintf(&sb, "# %s\n", topic)

	for i, s := range a.Hierarchy {
		fmt.Fprintf(&sb, "\n## %d. %s\n", i+1, s.Title)
		if len(s.Points) > 0 {
			sb.WriteString("\n")
		}
		for _, p := range s.Points {
			fmt.Fprintf(&sb, "- %s\n", p)
		}
	}

	if len(a.KeyPoints) > 0 {
		sb.WriteString("\n## Key points\n\n")
		for _, p := range a.KeyPoints {
			fmt.Fprintf(&sb, "- %s\n", p)
		}
	}

	if len(a.Themes) > 0 {
		fmt.Fprintf(&sb, "\nThemes: %s\n", strings.Join(a.Themes, ", "))
	}
	return sb.String()
}
