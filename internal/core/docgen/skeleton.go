package docgen

import (
	"fmt"
	"strings"
)

// Skeleton produces a deterministic draft body when no completion provider
// is configured. It echoes the supplied case information so the attorney can
// edit it directly, using the [PLACEHOLDER] convention for missing data.
func Skeleton(documentType, clientInfo, instructions string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "DRAFT - FOR ATTORNEY REVIEW\n\n")
	fmt.Fprintf(&b, "%s\n\n", strings.ToUpper(documentType))

	b.WriteString("CLIENT / CASE INFORMATION\n")
	writeEchoed(&b, clientInfo)

	b.WriteString("\nINSTRUCTIONS\n")
	writeEchoed(&b, instructions)

	b.WriteString("\nBODY\n")
	b.WriteString("[PLACEHOLDER - draft body to be completed]\n")

	b.WriteString("\nSignature: [PLACEHOLDER]\n")
	b.WriteString("Date: [PLACEHOLDER]\n")

	return b.String()
}

func writeEchoed(b *strings.Builder, text string) {
	wrote := false
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			b.WriteString(line + "\n")
			wrote = true
		}
	}
	if !wrote {
		b.WriteString("[PLACEHOLDER]\n")
	}
}
