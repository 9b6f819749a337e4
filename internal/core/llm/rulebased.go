package llm

import (
	"math/rand"
	"strings"
)

// FallbackExtraction is the fixed reply for extraction mode when no
// provider is reachable.
const FallbackExtraction = "I've reviewed your document. Here are the key details I've identified:\n\n• Client information\n• Case type\n• Important dates\n\nWould you like me to generate a draft document based on this information?"

// fallbackRules is matched in order against the latest user message.
var fallbackRules = []struct {
	keywords []string
	reply    string
}{
	{
		keywords: []string{"letter", "draft"},
		reply:    "I'd be happy to help draft a letter! Please provide the key details like client name, case type, and any specific instructions you have.",
	},
	{
		keywords: []string{"intake", "form"},
		reply:    "I can help process intake forms. Please share the information, and I'll extract the key facts and organize them for you.",
	},
	{
		keywords: []string{"nda", "agreement"},
		reply:    "I can help draft an NDA or agreement. Please provide the key details like parties involved, confidential information scope, and duration.",
	},
	{
		keywords: []string{"review", "look"},
		reply:    "I'd be happy to review your document. Please share the content or upload the file, and I'll extract the key legal facts and organize them for you.",
	},
}

// FallbackDefaults are the generic prompts used when nothing matches.
var FallbackDefaults = []string{
	"I'm here to help with your legal document needs! What specific type of document are you working on?",
	"I can help with intake forms, letters, agreements, and other legal documents. What would you like me to assist with?",
	"Let me know what you're working on - whether it's reviewing an intake, drafting a letter, or organizing case information.",
	"I'm ready to help! Tell me about your case or document needs, and I'll provide specific assistance.",
}

// Fallback is the availability floor when no provider is configured or a
// provider call fails. It never returns empty text.
func Fallback(userMessage, mode string) string {
	if mode == "extract" {
		return FallbackExtraction
	}

	lower := strings.ToLower(userMessage)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}

	return FallbackDefaults[rand.Intn(len(FallbackDefaults))]
}
