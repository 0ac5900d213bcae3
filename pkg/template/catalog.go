package template

// builtin is the static template catalog, loaded once at process start.
var builtin = []Template{
	{
		ID:       "meeting-reschedule",
		Title:    "Meeting Reschedule",
		Category: "Meetings",
		Fields: []Field{
			{Name: "recipient", Placeholder: "Recipient name", Kind: KindLine},
			{Name: "meeting", Placeholder: "Meeting topic", Kind: KindLine},
			{Name: "date", Placeholder: "Original date", Kind: KindLine},
			{Name: "newDate", Placeholder: "New proposed date", Kind: KindLine},
		},
		Body: "Hi {recipient},\n\nI need to reschedule our {meeting} originally planned for {date}. Would {newDate} work better for you?\n\nPlease let me know your availability.\n\nBest regards,",
	},
	{
		ID:       "deadline-extension",
		Title:    "Deadline Extension Request",
		Category: "Requests",
		Fields: []Field{
			{Name: "recipient", Placeholder: "Recipient name", Kind: KindLine},
			{Name: "project", Placeholder: "Project name", Kind: KindLine},
			{Name: "deadline", Placeholder: "Current deadline", Kind: KindLine},
			{Name: "newDeadline", Placeholder: "Requested new deadline", Kind: KindLine},
			{Name: "reason", Placeholder: "Brief reason", Kind: KindBlock},
		},
		Body: "Dear {recipient},\n\nI am writing to request an extension for {project}, currently due {deadline}. Due to {reason}, I would like to request an extension until {newDeadline}.\n\nI apologize for any inconvenience and appreciate your understanding.\n\nThank you,",
	},
	{
		ID:       "follow-up",
		Title:    "Follow-up Email",
		Category: "Follow-ups",
		Fields: []Field{
			{Name: "recipient", Placeholder: "Recipient name", Kind: KindLine},
			{Name: "topic", Placeholder: "What you're following up on", Kind: KindLine},
			{Name: "date", Placeholder: "When it was discussed", Kind: KindLine},
		},
		Body: "Hi {recipient},\n\nI wanted to follow up on our discussion about {topic} from {date}.\n\nDo you have any updates or next steps you'd like to share?\n\nLooking forward to hearing from you.\n\nBest,",
	},
	{
		ID:       "team-update",
		Title:    "Team Update",
		Category: "Updates",
		Fields: []Field{
			{Name: "project", Placeholder: "Project name", Kind: KindLine},
			{Name: "progress", Placeholder: "Current progress", Kind: KindBlock},
			{Name: "nextSteps", Placeholder: "Next steps", Kind: KindBlock},
		},
		Body: "Team,\n\nHere's a quick update on {project}:\n\nProgress: {progress}\n\nNext Steps: {nextSteps}\n\nPlease let me know if you have any questions.\n\nThanks,",
	},
}

// Catalog returns the builtin templates in display order.
// The returned slice is a copy; callers cannot mutate the catalog.
func Catalog() []Template {
	out := make([]Template, len(builtin))
	copy(out, builtin)
	return out
}

// Lookup returns the builtin template with the given id.
func Lookup(id string) (Template, bool) {
	for _, tpl := range builtin {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return Template{}, false
}
