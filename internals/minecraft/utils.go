package minecraft

import (
	"encoding/json"
	"strings"
)

// stringSlice is a slice of strings that can be unmarshalled from a string or a []string
type stringSlice []string

func (w *stringSlice) String() string {
	return strings.Join(*w, " ")
}

// UnmarshalJSON is needed because argument values sometimes are a string
func (w *stringSlice) UnmarshalJSON(data []byte) (err error) {
	if len(data) != 0 && data[0] == '[' {
		var arg []string
		if err := json.Unmarshal(data, &arg); err != nil {
			return err
		}
		*w = arg
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*w = []string{str}
	return nil
}

// Argument is one entry of the structured `arguments.game` list.
// It is either a plain string or an object with rules.
type Argument struct {
	// Value is the actual argument (one or more tokens)
	Value stringSlice `json:"value"`
	Rules Rules       `json:"rules,omitempty"`
}

// UnmarshalJSON is needed because argument sometimes is a string
func (a *Argument) UnmarshalJSON(data []byte) error {
	if len(data) != 0 && data[0] == '{' {
		type plain Argument
		var arg plain
		if err := json.Unmarshal(data, &arg); err != nil {
			return err
		}
		*a = Argument(arg)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	a.Value = []string{str}
	a.Rules = nil
	return nil
}

// MarshalJSON writes rule-less arguments back as plain strings
func (a Argument) MarshalJSON() ([]byte, error) {
	if len(a.Rules) == 0 && len(a.Value) == 1 {
		return json.Marshal(a.Value[0])
	}
	type plain Argument
	return json.Marshal(plain(a))
}
