// Package java implements the Java JNA language backend: it turns an IR tree
// into a single Java source stream in which native structs, enums, typedefs
// and opaque handles become JNA Structure/IntegerType/PointerType classes and
// native functions become methods on a Library interface.
package java

import (
	"strings"

	"github.com/Larkooo/cbindgen/internal/backend"
	"github.com/Larkooo/cbindgen/internal/config"
	"github.com/Larkooo/cbindgen/internal/ir"
	"github.com/Larkooo/cbindgen/internal/writer"
)

// Backend emits Java JNA bindings. It holds only the resolved configuration
// and the native library name; all emission state lives in the SourceWriter.
type Backend struct {
	cfg     *config.Config
	libName string
}

var _ backend.LanguageBackend = (*Backend)(nil)

// New creates a Java JNA backend. libName is the native library the
// generated scaffold loads at runtime.
func New(cfg *config.Config, libName string) *Backend {
	return &Backend{cfg: cfg, libName: libName}
}

// WriteHeaders emits the header comment, generated-with comment, autogen
// warning, package declaration and the two fixed JNA imports.
func (b *Backend) WriteHeaders(out *writer.SourceWriter) {
	if b.cfg.Header != "" {
		out.NewLineIfNotStart()
		b.writeMultiline(out, b.cfg.Header)
		out.NewLine()
	}

	if b.cfg.IncludeVersion {
		out.NewLineIfNotStart()
		out.Writef("/* Generated with cbindgen:%s */", config.Version)
		out.NewLine()
	}

	if b.cfg.AutogenWarning != "" {
		out.NewLineIfNotStart()
		b.writeMultiline(out, b.cfg.AutogenWarning)
		out.NewLine()
	}

	if b.cfg.Java.Package != "" {
		out.NewLineIfNotStart()
		out.Writef("package %s;", b.cfg.Java.Package)
		out.NewLine()
		out.NewLine()
	}

	out.Write("import com.sun.jna.*;")
	out.NewLine()
	out.Write("import com.sun.jna.ptr.*;")
	out.NewLine()
}

// OpenCloseNamespaces emits the enclosing scaffold: a singleton enum that
// loads the native library and the Library interface exposing it.
func (b *Backend) OpenCloseNamespaces(op backend.NamespaceOp, out *writer.SourceWriter) {
	if op != backend.NamespaceOpen {
		out.CloseBrace(false)
		return
	}

	name := b.cfg.InterfaceName()

	out.NewLineIfNotStart()
	out.Writef("enum %sSingleton", name)
	out.OpenBrace()
	out.Write("INSTANCE;")
	out.NewLine()
	out.Writef("final %s lib = Native.load(%q, %s.class);", name, b.libName, name)
	out.CloseBrace(false)
	out.NewLine()
	out.NewLine()

	out.Writef("interface %s extends Library", name)
	out.OpenBrace()
	out.Writef("%s INSTANCE = %sSingleton.INSTANCE.lib;", name, name)
	out.NewLine()

	if b.cfg.Java.ExtraDefs != "" {
		b.writeMultiline(out, b.cfg.Java.ExtraDefs)
		out.NewLine()
	}
}

// WriteFooters emits nothing; the namespace close is the end of the stream.
func (b *Backend) WriteFooters(out *writer.SourceWriter) {}

// WriteDocumentation emits a javadoc block, or nothing for empty docs.
func (b *Backend) WriteDocumentation(out *writer.SourceWriter, d ir.Documentation) {
	if d.IsEmpty() {
		return
	}
	out.NewLineIfNotStart()
	out.Write("/**")
	for _, line := range d.Lines {
		out.NewLine()
		out.Writef(" *%s", line)
	}
	out.NewLine()
	out.Write(" */")
	out.NewLine()
}

// WriteStatic has no Java representation; statics degrade to a placeholder.
func (b *Backend) WriteStatic(out *writer.SourceWriter, s *ir.Static) {
	b.notImplemented(out, ir.ItemDebugString(s))
}

func (b *Backend) writeDeprecated(out *writer.SourceWriter, deprecated *string) {
	if deprecated == nil {
		return
	}
	if *deprecated != "" {
		out.Write("/**")
		out.NewLine()
		out.Writef(" * @deprecated %s", *deprecated)
		out.NewLine()
		out.Write(" */")
		out.NewLine()
	}
	out.Write("@Deprecated")
	out.NewLine()
}

// writeMultiline writes pass-through text that may span several lines.
func (b *Backend) writeMultiline(out *writer.SourceWriter, text string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			out.NewLine()
		}
		out.Write(line)
	}
}

// notImplemented emits the soft-failure placeholder for an unsupported IR
// shape. Emission always continues past it.
func (b *Backend) notImplemented(out *writer.SourceWriter, debug string) {
	out.Writef("/* Not implemented yet : %s */", debug)
}
