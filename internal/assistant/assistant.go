// Package assistant tracks Rosy's advisory bubble: one current message
// plus a busy flag, recomputed as a side effect of every user action.
package assistant

import "fmt"

// State is an explicit value threaded through the update loop rather
// than a process-wide singleton, so each transition tests in isolation.
type State struct {
	Message string
	Busy    bool
}

func Greeting() State {
	return State{Message: "Hi! I'm Rosy, your magical planning assistant. ✨"}
}

func (s State) TaskAdded(text string) State {
	return State{Message: fmt.Sprintf("Yay! I added %q to your list. Need help planning it? 🎀", text)}
}

func (s State) InputNeeded() State {
	return State{Message: "Tell me a task first so I can work my magic... ✨"}
}

func (s State) Thinking() State {
	return State{Message: "Consulting the stars... 🌟", Busy: true}
}

func (s State) SuggestionsApplied(input string, count int) State {
	return State{Message: fmt.Sprintf("Beep! I broke %q into %d tiny steps for you. You've got this! 💖", input, count)}
}

// SuggestFailed is the shared apologetic rendering for a failed call
// and a call that came back empty; logs carry the distinction.
func (s State) SuggestFailed() State {
	return State{Message: "Oh no! My magic wand fizzled. Try again. 🌸"}
}

func (s State) Celebrate() State {
	return State{Message: "Woohoo! You're amazing! One task down. 🎉"}
}

func (s State) EventPlanning() State {
	return State{Message: "Preparing your magical event... 📅", Busy: true}
}

func (s State) EventReady() State {
	return State{Message: "All set! Just confirm in Google Calendar. 🗓️✨"}
}

func (s State) EventFailed() State {
	return State{Message: "I couldn't create the link, try again. 😿"}
}

func (s State) ComposePrompt() State {
	return State{Message: "What new adventure are we planning? 🌸"}
}

func (s State) Achievements(completed int) State {
	return State{Message: fmt.Sprintf("Look at everything you've done! %d magical tasks finished. 💖", completed)}
}

func (s State) StillBusy() State {
	return State{Message: "One spell at a time, please! Let me finish this one first. 🪄", Busy: true}
}

func (s State) MagicMissing() State {
	return State{Message: "My crystal ball is offline. Set an API key to unlock the magic. 🔮"}
}
