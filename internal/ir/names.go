package ir

import "golang.org/x/text/unicode/norm"

// NormalizeName returns the NFC normal form of an exported name.
//
// Loaders call this on every name before it enters the tree so that two
// source spellings of the same identifier resolve to the same emitted name,
// and so emitted output is byte-identical across runs regardless of the
// Unicode form the input file used.
func NormalizeName(name string) string {
	return norm.NFC.String(name)
}
