package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse   = errors.New("parse error")
	ErrPatch   = fmt.Errorf("%w: patch", ErrParse)
	ErrKeyword = fmt.Errorf("%w: statement without keyword", ErrParse)
)
