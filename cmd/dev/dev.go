package dev

import "github.com/spf13/cobra"

// SubCmd groups commands that help debugging mclaunch itself
var SubCmd = &cobra.Command{
	Use:    "dev",
	Short:  "Development and debugging helpers",
	Hidden: true,
}
