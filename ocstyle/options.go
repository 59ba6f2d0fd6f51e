// Package ocstyle converts a combined module to OpenConfig style: every
// configurable container and list gets a config container holding its
// settable leaves and a state container holding read-only copies of them
// along with its operational state.
package ocstyle

const DefaultSuffix = "-oc-style"

const (
	ConfigDescription = "Contains intended configuration"
	StateDescription  = "Contains applied configuration and derived state"
	KeyDescription    = "Structural leafref to equivalent leaf in ./config container"
)

type Options struct {
	// Suffix is appended to the module name. Empty means DefaultSuffix.
	Suffix string
	// BaseImport names an import that is retargeted to OCImport, with
	// prefix OCPrefix, when the module has top-level augments. OCImport
	// defaults to BaseImport with Suffix appended; an empty OCPrefix keeps
	// the import's prefix.
	BaseImport string
	OCImport   string
	OCPrefix   string
}

func (o *Options) suffix() string {
	if o.Suffix == "" {
		return DefaultSuffix
	}
	return o.Suffix
}
