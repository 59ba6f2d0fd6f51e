package stmt

var dataDefs = map[string]bool{
	"container": true,
	"leaf":      true,
	"leaf-list": true,
	"list":      true,
	"choice":    true,
	"anydata":   true,
	"anyxml":    true,
	"uses":      true,
}

// IsDataDef reports whether keyword is a data definition statement.
func IsDataDef(keyword string) bool {
	return dataDefs[keyword]
}

// IsDataNode reports whether keyword creates a node in the data tree.
func IsDataNode(keyword string) bool {
	switch keyword {
	case "container", "leaf", "leaf-list", "list", "anydata", "anyxml":
		return true
	}
	return false
}

// IsNodeBearing reports whether keyword takes a config substatement.
func IsNodeBearing(keyword string) bool {
	switch keyword {
	case "container", "leaf", "leaf-list", "list", "anyxml", "anydata", "choice":
		return true
	}
	return false
}

var statusBearing = map[string]bool{
	"container":    true,
	"leaf":         true,
	"leaf-list":    true,
	"list":         true,
	"choice":       true,
	"case":         true,
	"anydata":      true,
	"anyxml":       true,
	"augment":      true,
	"uses":         true,
	"grouping":     true,
	"typedef":      true,
	"identity":     true,
	"feature":      true,
	"extension":    true,
	"rpc":          true,
	"action":       true,
	"notification": true,
	"enum":         true,
	"bit":          true,
}

// CanHaveStatus reports whether keyword accepts a status substatement.
func CanHaveStatus(keyword string) bool {
	return statusBearing[keyword]
}
