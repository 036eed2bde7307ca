package logparser

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const timeFormat = "15:04:05"

// the tag is only printed by old (forge) versions
var lineRegex = regexp.MustCompile(`^\[(\d+:\d+:\d+)\] \[([^/\]]+)/([A-Z]+)\](?: \[([^\]]*)\])?: (.*)$`)

// LogLine is a parsed log line
type LogLine struct {
	Time    time.Time
	Thread  string
	Level   string
	Tag     string
	Message string
	Garbage bool
}

func (l LogLine) String() string {
	if l.Garbage {
		return l.Message
	}
	if l.Tag == "" {
		return fmt.Sprintf("[%s] [%s/%s]: %s", l.Time.Format(timeFormat), l.Thread, l.Level, l.Message)
	}
	return fmt.Sprintf(
		"[%s] [%s/%s] [%s]: %s",
		l.Time.Format(timeFormat),
		l.Thread,
		l.Level,
		l.Tag,
		l.Message,
	)
}

// IsProblem returns true for WARN, ERROR and FATAL lines
func (l LogLine) IsProblem() bool {
	switch l.Level {
	case "WARN", "ERROR", "FATAL":
		return true
	}
	return false
}

// ParseLine parses a string into a `LogLine`
func ParseLine(input string) *LogLine {
	input = strings.TrimRight(input, "\r\n")

	found := lineRegex.FindStringSubmatch(input)
	if len(found) == 0 {
		return &LogLine{Garbage: true, Message: input}
	}
	time, err := time.Parse(timeFormat, found[1])
	if err != nil {
		return &LogLine{Garbage: true, Message: input}
	}

	return &LogLine{
		Time:    time,
		Thread:  found[2],
		Level:   found[3],
		Tag:     found[4],
		Message: found[5],
	}
}
