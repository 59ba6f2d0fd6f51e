package stmt

// Config is the tri-state is-configurable annotation.
type Config int

const (
	ConfigUnset Config = iota
	ConfigTrue
	ConfigFalse
)

func (c Config) String() string {
	switch c {
	case ConfigUnset:
		return "unset"
	case ConfigTrue:
		return "true"
	case ConfigFalse:
		return "false"
	default:
		return "invalid"
	}
}

// Value returns the boolean value of c. Unset reads as true, the module
// default.
func (c Config) Value() bool {
	return c != ConfigFalse
}

func ConfigOf(b bool) Config {
	if b {
		return ConfigTrue
	}
	return ConfigFalse
}

// ExplicitConfig returns the config mark carried by s itself: the
// annotation if set, otherwise an explicit config child statement.
func (s *Statement) ExplicitConfig() Config {
	if s.Config != ConfigUnset {
		return s.Config
	}
	if c := s.SearchOne("config"); c != nil {
		switch c.Arg {
		case "false":
			return ConfigFalse
		case "true":
			return ConfigTrue
		}
	}
	return ConfigUnset
}

// EffectiveConfig reports whether s is configurable, inheriting from the
// nearest explicitly marked ancestor.
func (s *Statement) EffectiveConfig() bool {
	for x := s; x != nil; x = x.Parent {
		if c := x.ExplicitConfig(); c != ConfigUnset {
			return c.Value()
		}
	}
	return true
}

// StripConfig removes every config child statement under s (s included)
// and clears the Config annotations on the way.
func StripConfig(s *Statement) {
	s.Walk(func(x *Statement) bool {
		x.Config = ConfigUnset
		for _, c := range x.Search("config") {
			c.Remove()
		}
		return true
	})
}

// PruneState removes every non-configurable data node below root.
func PruneState(root *Statement) {
	root.Walk(func(s *Statement) bool {
		if s == root || !IsNodeBearing(s.Keyword) {
			return true
		}
		if !s.EffectiveConfig() {
			s.Remove()
			return false
		}
		return true
	})
}
