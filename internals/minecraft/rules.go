package minecraft

// Rule is a rule that can be applied to an argument or library.
// It can be used to determine if the argument or library should be applied to a specific OS.
type Rule struct {
	Action   string          `json:"action"`
	OS       OS              `json:"os"`
	Features map[string]bool `json:"features,omitempty"`
}

// OS defines the feature of an OS that can be used in a [Rule] to determine if it should be applied.
type OS struct {
	Name string `json:"name,omitempty"`
	// Version of the os (can be a regex string)
	Version string `json:"version,omitempty"`
	// Arch of the system
	Arch string `json:"arch,omitempty"`
}

// AppliesTo returns true if this rule permits the given platform
func (r Rule) AppliesTo(p Platform) bool {
	os := p.mojangOS()
	arch := p.mojangArch()

	// features are launcher toggles (demo mode, custom resolution …) that we never enable
	if len(r.Features) != 0 {
		return false
	}

	switch r.Action {
	case "allow":
		// check name
		if r.OS.Name != "" && r.OS.Name != os {
			return false
		}

		// TODO: check version (regex), we deny it for now
		if r.OS.Version != "" {
			return false
		}

		// check arch
		if r.OS.Arch != "" && r.OS.Arch != arch {
			return false
		}

		// allow block matches os (or is empty)
		return true
	case "disallow":
		if r.OS.Name != "" && r.OS.Name == os {
			return false
		}

		if r.OS.Arch != "" && r.OS.Arch == arch {
			return false
		}

		// disallow block does not match os (or is empty)
		return true
	}

	// unknown action
	return true
}

// Rules is a list of rules. All of them have to apply
type Rules []Rule

// AppliesTo returns true if every rule permits the platform.
// An empty list always applies.
func (rs Rules) AppliesTo(p Platform) bool {
	for _, r := range rs {
		if !r.AppliesTo(p) {
			return false
		}
	}
	return true
}
