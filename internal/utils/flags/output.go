package flags

import (
	"strings"

	"github.com/spf13/cobra"

	pathutils "github.com/temirov/systemcalls/internal/utils/path"
)

const (
	// OutputFileFlagName exposes the redirect target flag name.
	OutputFileFlagName = "output"
	// OutputFileFlagShorthand provides the shorthand for the redirect target flag.
	OutputFileFlagShorthand = "o"
	// OutputFileFlagUsage describes the redirect target flag purpose.
	OutputFileFlagUsage = "File receiving the command's standard output (created or truncated)"
)

// OutputFileFlag binds the redirect target flag and resolves home directory shortcuts in its value.
type OutputFileFlag struct {
	rawValue     string
	homeExpander *pathutils.HomeExpander
}

// BindOutputFileFlag attaches the redirect target flag to the provided command.
func BindOutputFileFlag(command *cobra.Command, homeExpander *pathutils.HomeExpander) *OutputFileFlag {
	if homeExpander == nil {
		homeExpander = pathutils.NewHomeExpander()
	}
	outputFileFlag := &OutputFileFlag{homeExpander: homeExpander}
	if command != nil {
		command.Flags().StringVarP(&outputFileFlag.rawValue, OutputFileFlagName, OutputFileFlagShorthand, "", OutputFileFlagUsage)
	}
	return outputFileFlag
}

// Path returns the trimmed flag value with a leading ~ expanded; empty when unset.
func (outputFileFlag *OutputFileFlag) Path() string {
	if outputFileFlag == nil {
		return ""
	}
	return outputFileFlag.homeExpander.Expand(strings.TrimSpace(outputFileFlag.rawValue))
}
