package launcher

import (
	"fmt"
	"math"

	"github.com/pbnjay/memory"
)

// DefaultMinMemory is used for -Xms if nothing was set
const DefaultMinMemory = "512M"

// DefaultMaxMemory returns the -Xmx value used if nothing was set.
// It is 1/4 of the system memory but at least 1GiB, and never more than 85% of the memory
func DefaultMaxMemory() string {
	return maxMemoryFor(memory.TotalMemory())
}

func maxMemoryFor(totalBytes uint64) string {
	sysMemMiB := float64(totalBytes) / 1024 / 1024
	if sysMemMiB == 0 {
		// unknown system memory
		return "1024M"
	}

	// 1GiB for base Minecraft
	maxRamMiB := 1024.0
	// we take 1/4 of the system memory if that is more
	maxRamMiB = math.Max(maxRamMiB, sysMemMiB/4)
	// but not more than 85% of the memory
	maxRamMiB = math.Min(maxRamMiB, sysMemMiB*0.85)

	return fmt.Sprintf("%dM", int(maxRamMiB))
}
