package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// OutputFlags are the flags shared by commands that render reports.
type OutputFlags struct {
	Format string
}

// AddOutputFlags registers the shared --format flag on cmd and returns the
// holder the command reads after parsing.
func AddOutputFlags(cmd *cobra.Command, formats []string) *OutputFlags {
	flags := &OutputFlags{}
	cmd.Flags().StringVarP(&flags.Format, "format", "f", formats[0],
		fmt.Sprintf("output format (%s)", strings.Join(formats, ", ")))
	return flags
}

// Validate checks the format value against the allowed set, suggesting a
// close match for typos.
func (f *OutputFlags) Validate(allowed []string) error {
	return validateFormatWithSuggestion(f.Format, allowed)
}

func validateFormatWithSuggestion(format string, allowed []string) error {
	lower := strings.ToLower(format)
	for _, a := range allowed {
		if lower == a {
			return nil
		}
	}
	for _, a := range allowed {
		if strings.HasPrefix(a, lower) || strings.HasPrefix(lower, a) {
			return fmt.Errorf("unsupported format %q (did you mean %q?)", format, a)
		}
	}
	return fmt.Errorf("unsupported format %q (supported: %s)", format, strings.Join(allowed, ", "))
}

// lookupString reads a string flag that is known to exist.
func lookupString(flags *pflag.FlagSet, name string) string {
	value, _ := flags.GetString(name)
	return value
}
