package router

import "strings"

// moveOnPhrases are the canonical signals that the user is done with
// the current topic. Detection is case-insensitive substring match, so
// "Let's move on to governance" fires on "let's move on".
var moveOnPhrases = []string{
	"let's move on",
	"lets move on",
	"move on",
	"next topic",
	"next issue",
	"next question",
	"that's all",
	"thats all",
	"that's it",
	"thats it",
	"that's enough",
	"nothing else",
	"nothing more",
	"done with this",
	"skip this",
	"not interested",
	"no more on this",
}

// ContainsMoveOnPhrase reports whether the utterance carries an
// explicit move-on signal.
func ContainsMoveOnPhrase(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range moveOnPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
