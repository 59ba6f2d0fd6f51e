package encode

import (
	"bytes"

	"github.com/signadot/yangstyle/stmt"
)

// MustString renders s in the YANG view, panicking on error.
func MustString(s *stmt.Statement, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(s, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
