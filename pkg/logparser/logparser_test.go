package logparser

import "testing"

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		garbage bool
		level   string
		tag     string
		message string
		problem bool
	}{
		{
			name:    "crap",
			arg:     "I am crap string",
			garbage: true,
			message: "I am crap string",
		},
		{
			name:    "forge",
			arg:     "[13:46:33] [main/INFO] [FML]: Forge bla bla for Minecraft 1.12.2 loading",
			level:   "INFO",
			tag:     "FML",
			message: "Forge bla bla for Minecraft 1.12.2 loading",
		},
		{
			name:    "modern warning",
			arg:     "[12:01:02] [Render thread/WARN]: Failed to load texture\r\n",
			level:   "WARN",
			message: "Failed to load texture",
			problem: true,
		},
		{
			name:    "fatal",
			arg:     "[12:01:02] [Server thread/FATAL]: Crash",
			level:   "FATAL",
			message: "Crash",
			problem: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLine(tt.arg)
			if got.Garbage != tt.garbage {
				t.Fatalf("Garbage = %v, want %v", got.Garbage, tt.garbage)
			}
			if got.Level != tt.level || got.Tag != tt.tag || got.Message != tt.message {
				t.Errorf("ParseLine() = %+v", got)
			}
			if got.IsProblem() != tt.problem {
				t.Errorf("IsProblem() = %v, want %v", got.IsProblem(), tt.problem)
			}
		})
	}
}

func TestLogLine_String(t *testing.T) {
	line := "[13:46:33] [main/INFO] [FML]: loading"
	if got := ParseLine(line).String(); got != line {
		t.Errorf("String() = %q, want %q", got, line)
	}
	line = "[13:46:33] [Render thread/INFO]: loading"
	if got := ParseLine(line).String(); got != line {
		t.Errorf("String() = %q, want %q", got, line)
	}
}
