package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/yangstyle/encode"
	"github.com/signadot/yangstyle/stmt"
)

type YANG struct{ *stmt.Statement }

func (y YANG) String() string {
	x := y.Statement
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf); err != nil {
		return fmt.Sprintf("[raw *stmt.Statement] %v", x)
	}
	return buf.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *stmt.Statement:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *stmt.Statement] %v", x)
				continue
			}
			args[i] = buf.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
