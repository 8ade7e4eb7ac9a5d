package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Larkooo/cbindgen/internal/backend"
	"github.com/Larkooo/cbindgen/internal/config"
	"github.com/Larkooo/cbindgen/internal/ir"
	"github.com/Larkooo/cbindgen/internal/java"
	"github.com/Larkooo/cbindgen/internal/writer"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Config string // config file path
	Output string // output file path
	Lib    string // native library name for the load call site
}

// GenerateResult is the JSON payload for a successful generation.
type GenerateResult struct {
	Library string        `json:"library"`
	Output  string        `json:"output,omitempty"`
	Source  string        `json:"source,omitempty"`
	Stats   GenerateStats `json:"stats"`
}

// GenerateStats holds summary statistics per item kind.
type GenerateStats struct {
	Structs   int `json:"structs"`
	Unions    int `json:"unions"`
	Enums     int `json:"enums"`
	Opaques   int `json:"opaques"`
	Typedefs  int `json:"typedefs"`
	Functions int `json:"functions"`
	Constants int `json:"constants"`
	Statics   int `json:"statics"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <api-dir>",
		Short: "Generate Java JNA bindings from a CUE API description",
		Long: `Generate Java JNA bindings from a CUE API description.

The generator compiles the CUE files into an IR tree and emits one Java
source stream: a singleton that loads the native library and a Library
interface carrying the binding declarations. Without --output the source
goes to stdout.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "config file path (.toml or .yaml)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")
	cmd.Flags().StringVar(&opts.Lib, "lib", "", "native library name (default: api name)")

	return cmd
}

func runGenerate(opts *GenerateOptions, apiDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting output
		Verbose:   opts.Verbose,
	}

	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return outputGenerateError(formatter, ErrCodeBadConfig, err.Error())
		}
		cfg = loaded
	}

	loadResult, loadErrs := LoadAPI(apiDir)
	if loadResult == nil || loadResult.File == nil {
		return outputLoadErrors(formatter, loadErrs)
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", loadResult.FileCount, apiDir)

	if len(loadErrs) > 0 {
		return outputLoadErrors(formatter, loadErrs)
	}

	lib := opts.Lib
	if lib == "" {
		lib = loadResult.File.Name
	}
	if lib == "" {
		lib = filepath.Base(apiDir)
	}
	formatter.VerboseLog("Generating bindings for library %q (%d item(s))", lib, len(loadResult.File.Items))

	out := writer.New()
	backend.Emit(java.New(cfg, lib), loadResult.File, out)

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, out.Bytes(), 0644); err != nil {
			return outputGenerateError(formatter, ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err))
		}
	}

	return outputGenerateSuccess(formatter, opts, loadResult.File, lib, out.String())
}

// calculateStats computes per-kind counts from the compiled file.
func calculateStats(file *ir.File) GenerateStats {
	var stats GenerateStats
	for _, item := range file.Items {
		switch item.(type) {
		case *ir.Struct:
			stats.Structs++
		case *ir.Union:
			stats.Unions++
		case *ir.Enum:
			stats.Enums++
		case *ir.OpaqueItem:
			stats.Opaques++
		case *ir.Typedef:
			stats.Typedefs++
		case *ir.Function:
			stats.Functions++
		case *ir.Constant:
			stats.Constants++
		case *ir.Static:
			stats.Statics++
		}
	}
	return stats
}

// outputGenerateSuccess outputs the generated source or a summary.
func outputGenerateSuccess(formatter *OutputFormatter, opts *GenerateOptions, file *ir.File, lib, source string) error {
	stats := calculateStats(file)

	if formatter.Format == "json" {
		result := GenerateResult{Library: lib, Output: opts.Output, Stats: stats}
		if opts.Output == "" {
			result.Source = source
		}
		return formatter.Success(result)
	}

	if opts.Output == "" {
		// Bindings go straight to stdout in text mode.
		fmt.Fprint(formatter.Writer, source)
		return nil
	}

	fmt.Fprintf(formatter.Writer, "✓ Generated %s for library %q\n", opts.Output, lib)
	fmt.Fprintf(formatter.Writer, "  %d struct(s), %d union(s), %d enum(s), %d opaque(s), %d typedef(s), %d function(s), %d constant(s)\n",
		stats.Structs, stats.Unions, stats.Enums, stats.Opaques, stats.Typedefs, stats.Functions, stats.Constants)
	return nil
}

// outputGenerateError outputs a single generation error with command-error
// exit code.
func outputGenerateError(formatter *OutputFormatter, code, message string) error {
	if err := formatter.Error(code, message, nil); err != nil {
		return err
	}
	return NewExitError(ExitCommandError, message)
}

// outputLoadErrors outputs load/compile errors and returns a failure exit.
func outputLoadErrors(formatter *OutputFormatter, errs []error) error {
	if len(errs) == 0 {
		return outputGenerateError(formatter, ErrCodeGeneric, "no API description loaded")
	}
	for _, err := range errs {
		var loadErr *LoadError
		if le, ok := err.(*LoadError); ok {
			loadErr = le
		} else {
			loadErr = &LoadError{Code: ErrCodeGeneric, Message: err.Error()}
		}
		if ferr := formatter.Error(loadErr.Code, loadErr.Message, nil); ferr != nil {
			return ferr
		}
	}
	return NewExitError(ExitCommandError, fmt.Sprintf("%d error(s) loading API description", len(errs)))
}
