package generator

import (
	"fmt"
	"strings"
)

// FallbackDraft produces the deterministic, network-free draft for a prompt
// and tone. This is the guaranteed-success path: it never fails and always
// returns non-empty text. Quality is traded for availability - the feature
// stays usable offline, before credential setup, and on backend outages.
func FallbackDraft(prompt string, tone Tone) string {
	subject := prompt
	body := strings.ToLower(prompt)

	switch tone {
	case ToneFriendly:
		return fmt.Sprintf(`Subject: %s

Hi [Recipient Name]!

Hope you're doing great! I wanted to reach out about %s.

Let me know what works best for you - always happy to chat and figure things out together!

Thanks so much!
[Your Name]`, subject, body)

	case ToneDirect:
		return fmt.Sprintf(`Subject: %s

[Recipient Name],

I need to %s.

Please confirm receipt and next steps.

[Your Name]`, subject, body)

	case ToneWarm:
		return fmt.Sprintf(`Subject: %s

Hello [Recipient Name],

I hope your day is going wonderfully. I wanted to personally reach out regarding %s.

I truly appreciate your understanding and look forward to hearing from you soon.

Warmest regards,
[Your Name]`, subject, body)

	default:
		return fmt.Sprintf(`Subject: %s

Dear [Recipient Name],

I hope this email finds you well. I am writing to inform you about %s.

I would appreciate your understanding and assistance with this matter. Please let me know if you need any additional information or if there are any questions.

Thank you for your time and consideration.

Best regards,
[Your Name]`, subject, body)
	}
}
