package commands

import (
	"os"
	"runtime"
)

// EmojiEnabled can be set to false to never print emojis
var EmojiEnabled = true

var emojiSupport = detectEmojiSupport(runtime.GOOS, os.Getenv)

// detectEmojiSupport guesses if the terminal renders emojis.
// CI logs and the legacy windows console do not
func detectEmojiSupport(goos string, getenv func(string) string) bool {
	if getenv("CI") != "" {
		return false
	}
	if goos != "windows" {
		return true
	}
	// the windows terminal sets WT_SESSION, raw cmd and powershell set SESSIONNAME
	if getenv("WT_SESSION") != "" {
		return true
	}
	return getenv("SESSIONNAME") == ""
}

// Emoji returns e (usually an emoji) if the current terminal (probably) supports it
func Emoji(e string) string {
	if emojiSupport && EmojiEnabled {
		return e
	}
	return ""
}
