// Package combine merges split config and state trees back into a single
// combined tree.
package combine

const DefaultSuffix = "-state"

type Options struct {
	// Suffix names state containers and augment targets. Empty means
	// DefaultSuffix.
	Suffix string
	// RemoveStateNodes deletes merged state containers and augments.
	// Otherwise they are kept and marked status deprecated.
	RemoveStateNodes bool
	// Rename, if set, is appended to the module name, namespace and
	// belongs-to argument, and to the imports and includes listed in
	// RenameImports.
	Rename        string
	RenameImports []string
}

func (o *Options) suffix() string {
	if o.Suffix == "" {
		return DefaultSuffix
	}
	return o.Suffix
}
