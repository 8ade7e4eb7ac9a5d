package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Larkooo/cbindgen/internal/loader"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
}

// ValidateResult is the JSON payload for a validation run.
type ValidateResult struct {
	Valid     bool                     `json:"valid"`
	ItemCount int                      `json:"item_count"`
	Errors    []loader.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate <api-dir>",
		Short: "Validate a CUE API description without generating output",
		Long: `Validate a CUE API description without generating output.

Compiles the CUE files into IR and checks the structural rules the
emitters rely on: unique item names, transparent structs with exactly
one field, enums with at least one variant.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *ValidateOptions, apiDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	loadResult, loadErrs := LoadAPI(apiDir)
	if loadResult == nil || loadResult.File == nil {
		return outputLoadErrors(formatter, loadErrs)
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", loadResult.FileCount, apiDir)

	if len(loadErrs) > 0 {
		return outputLoadErrors(formatter, loadErrs)
	}

	validationErrs := loader.Validate(loadResult.File)
	result := ValidateResult{
		Valid:     len(validationErrs) == 0,
		ItemCount: len(loadResult.File.Items),
		Errors:    validationErrs,
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else if result.Valid {
		fmt.Fprintf(formatter.Writer, "✓ Valid API description: %d item(s)\n", result.ItemCount)
	} else {
		fmt.Fprintf(formatter.Writer, "✗ Invalid API description: %d error(s)\n", len(validationErrs))
		for _, verr := range validationErrs {
			fmt.Fprintf(formatter.Writer, "  %s\n", verr.Error())
		}
	}

	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("%d validation error(s)", len(validationErrs)))
	}
	return nil
}
