package libdiff

// Op is the kind of a diff hunk.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Mark() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}
