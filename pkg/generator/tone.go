package generator

// Tone is one of four fixed writing-register presets applied to generation.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneDirect       Tone = "direct"
	ToneWarm         Tone = "warm"
)

// Valid reports whether the tone is one of the known presets.
func (t Tone) Valid() bool {
	switch t {
	case ToneProfessional, ToneFriendly, ToneDirect, ToneWarm:
		return true
	}
	return false
}

// Tones lists all presets in display order.
func Tones() []Tone {
	return []Tone{ToneProfessional, ToneFriendly, ToneDirect, ToneWarm}
}

// toneInstructions describe register, formality and structural expectations
// per tone. One fixed instruction per tone; the remote backend is trusted to
// follow it.
var toneInstructions = map[Tone]string{
	ToneProfessional: "Write in a professional, formal tone. Use proper business language, be respectful and courteous. Include appropriate greetings and closings.",
	ToneFriendly:     "Write in a warm, friendly tone. Be approachable and personable while maintaining professionalism. Use conversational language.",
	ToneDirect:       "Write in a direct, concise tone. Get straight to the point without unnecessary pleasantries. Be clear and efficient.",
	ToneWarm:         "Write in a warm, empathetic tone. Show genuine care and understanding. Use encouraging and supportive language.",
}
