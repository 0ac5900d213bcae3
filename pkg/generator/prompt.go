package generator

import "fmt"

// composePrompt combines the tone instruction, the fixed structural
// requirements, and the raw user prompt into the single instruction string
// sent to the backend.
func composePrompt(prompt string, tone Tone) string {
	return fmt.Sprintf(`You are an expert email writing assistant. Your task is to generate professional email drafts based on user prompts.

Instructions:
- %s
- Always include a clear subject line at the top
- Structure the email properly with greeting, body, and closing
- Keep it concise but complete
- Use placeholders like [Recipient Name] or [Your Name] where appropriate
- Make it ready to send with minimal editing
- Ensure the content directly addresses the user's request

User's request: %q

Generate a complete email draft:`, toneInstructions[tone], prompt)
}
