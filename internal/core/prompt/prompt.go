// Package prompt builds the request strings sent to completion providers.
// Everything here is pure string templating: inputs are treated as opaque
// text and are never rejected.
package prompt

import (
	"fmt"
	"strings"

	"github.com/smartprobono/intake-api/internal/models"
)

const (
	AgentName = "Ermi"
	AgentRole = "AI Legal Assistant"
)

// System is the fixed persona preamble shared by the chat prompts.
const System = `You are ` + AgentName + `, an AI legal assistant built into SmartProBono Lite.
You help small law firms summarize client intakes and draft basic legal documents.
Never give legal advice. Ask up to 2 clarifying questions if details are missing.
Primary demo workflow: "Custody Modification Letter - Rhode Island Family Court".
When generating drafts, produce clear, editable text with headers and placeholders.
`

// ContextLines renders a trailing conversation window as "role: content"
// lines, one message per line.
func ContextLines(messages []models.Message) string {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, m.Role+": "+m.Content)
	}
	return strings.Join(lines, "\n")
}

// Chat is the conversational-reply prompt: persona plus optional
// uploaded-document and recent-conversation blocks.
func Chat(contextLines, uploadedText string) string {
	var b strings.Builder
	b.WriteString(System)
	if uploadedText != "" {
		b.WriteString("\nUploaded document:\n---\n")
		b.WriteString(uploadedText)
		b.WriteString("\n---\n")
	}
	if contextLines != "" {
		b.WriteString("\nRecent conversation:\n")
		b.WriteString(contextLines)
		b.WriteString("\n")
	}
	b.WriteString("\nRespond naturally and helpfully to the attorney's request.\n")
	return b.String()
}

// Extraction instructs a fact-extraction pass over intake text.
func Extraction(text string) string {
	return fmt.Sprintf(`You are %s, an AI paralegal. Read the following intake text carefully and extract all relevant client facts.

Extract these fields if found:
- Client Name
- Opposing Party (if applicable)
- Case Type (e.g., custody, contract dispute, personal injury)
- Key Dates
- Court or Jurisdiction
- Summary of Facts

If any critical info is missing or unclear, ask up to 2 follow-up questions to clarify.

Present the information in a friendly, conversational way like:
"I've reviewed the file - it looks like [case description]. Here's what I've gathered so far:
- Client: [name]
- Case Type: [type]
..."

Then ask: "Before I prepare a draft, could you confirm [specific question]?"

Document to analyze:
---
%s
---
`, AgentName, text)
}

// Document instructs generation of a formal draft of the given type.
func Document(documentType, clientInfo, instructions string) string {
	return fmt.Sprintf(`You are %s, a professional legal assistant. Using the structured data below, generate a clear, editable %s draft suitable for review by an attorney.

Client/Case Information:
%s

Specific Instructions:
%s

Requirements:
- Be concise, formal, and organized
- Include clear headers and labeled sections
- Use [PLACEHOLDER] format for missing data
- Add "DRAFT - FOR ATTORNEY REVIEW" at the top
- End with signature/date placeholders

Format for easy conversion to Word/PDF.

After generating the draft, briefly offer: "Would you like me to also create [related document]?" to be proactive.
`, AgentName, documentType, clientInfo, instructions)
}

// Summary asks for a case-file summary of a finished conversation.
func Summary(conversationHistory string) string {
	return fmt.Sprintf(`Create a concise summary of this conversation between the attorney and the AI assistant.

Conversation:
---
%s
---

Please provide:
1. **Key Topics Discussed:** Brief bullet points
2. **Information Extracted:** Main facts or data gathered
3. **Documents Generated:** Any drafts or outputs created
4. **Next Steps:** Recommended actions (if any)

Keep the summary professional and suitable for case file records.
`, conversationHistory)
}
