package java

import (
	"github.com/Larkooo/cbindgen/internal/config"
	"github.com/Larkooo/cbindgen/internal/writer"
)

// emit runs one backend write against a fresh writer and returns the text.
// A nil cfg uses the defaults.
func emit(cfg *config.Config, fn func(b *Backend, out *writer.SourceWriter)) string {
	if cfg == nil {
		cfg = config.Default()
	}
	b := New(cfg, "demo")
	out := writer.New()
	fn(b, out)
	return out.String()
}
