// Package cmdutil provides the cobra flag-accessor helpers the CLI driver
// uses, mirroring the pack's own cmd/util.go pattern: each getter prints
// the error and exits rather than threading a parse error back up, since a
// malformed flag reflects a cobra registration bug, not user input cobra
// itself already validated.
package cmdutil

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// GetInt gets an expected signed integer flag, or exits if it is missing.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// GetString gets an expected string flag, or exits if it is missing.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// GetBool gets an expected boolean flag, or exits if it is missing.
func GetBool(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}
