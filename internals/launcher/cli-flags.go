package launcher

import (
	"github.com/spf13/cobra"
)

// OverwriteFlags are cli flags used to overwrite configured launch behavior
type OverwriteFlags struct {
	Username  string
	MemoryMin string
	MemoryMax string
	Java      string
}

// CmdOverwriteFlags registers the overwrite flags on cmd
func CmdOverwriteFlags(cmd *cobra.Command) *OverwriteFlags {
	flags := OverwriteFlags{}
	cmd.Flags().StringVarP(&flags.Username, "username", "u", "", "Overwrite the player name")
	cmd.Flags().StringVar(&flags.MemoryMin, "xms", "", "Overwrite the initial java heap size (for example 512M)")
	cmd.Flags().StringVar(&flags.MemoryMax, "xmx", "", "Overwrite the maximum java heap size (for example 4G)")
	cmd.Flags().StringVar(&flags.Java, "java", "", "Overwrite the java binary to use")

	return &flags
}

// Apply sets every flag that was passed on req
func (o *OverwriteFlags) Apply(req *LaunchRequest) {
	if o.Username != "" {
		req.Username = o.Username
	}
	if o.MemoryMin != "" {
		req.MemoryMin = o.MemoryMin
	}
	if o.MemoryMax != "" {
		req.MemoryMax = o.MemoryMax
	}
	if o.Java != "" {
		req.Java = o.Java
	}
}
