package java

import (
	"fmt"

	"github.com/Larkooo/cbindgen/internal/config"
	"github.com/Larkooo/cbindgen/internal/ir"
	"github.com/Larkooo/cbindgen/internal/writer"
)

// WriteFunction emits one interface method declaration for a native function.
func (b *Backend) WriteFunction(out *writer.SourceWriter, f *ir.Function) {
	b.WriteDocumentation(out, f.Documentation)
	b.writeDeprecated(out, f.Annotations.Deprecated)
	b.WriteType(out, f.Ret)
	out.Writef(" %s(", f.Name)
	b.writeFunctionArgs(out, f.Args)
	out.Write(");")
}

// writeFunctionArgs renders a parameter list with the configured layout.
// Unnamed and wildcard parameters get positional fallback names.
func (b *Backend) writeFunctionArgs(out *writer.SourceWriter, args []ir.FuncArg) {
	items := make([]string, len(args))
	for i, arg := range args {
		items[i] = fmt.Sprintf("%s %s", MapType(arg.Ty), argName(arg.Name, i))
	}
	b.writeList(out, items, b.cfg.Function.Args)
}

// argName returns the declared parameter name, or arg<index> for unnamed and
// wildcard parameters.
func argName(name string, index int) string {
	if name == "" || name == "_" {
		return fmt.Sprintf("arg%d", index)
	}
	return name
}

// writeList renders pre-rendered items either on the current line or one per
// indented line. LayoutAuto probes the horizontal form first and keeps it
// only when every line stays within the configured length; the same engine
// serves both field-order annotations and parameter lists.
func (b *Backend) writeList(out *writer.SourceWriter, items []string, mode config.Layout) {
	switch mode {
	case config.LayoutHorizontal:
		out.WriteHorizontalList(items, ", ")
	case config.LayoutVertical:
		out.WriteVerticalList(items, ",")
	default:
		ok := out.TryWrite(b.cfg.LineLength, func(w *writer.SourceWriter) {
			w.WriteHorizontalList(items, ", ")
		})
		if !ok {
			out.WriteVerticalList(items, ",")
		}
	}
}
