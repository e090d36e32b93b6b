package elfutil

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotELF is returned by Decode when the buffer does not start with
// the ELF magic number.
var ErrNotELF = errors.New("not an ELF file")

// TruncatedError is returned by Decode when the buffer ends before the
// named field's bytes.
type TruncatedError struct {
	Field string
	Need  int // bytes required to read the field
	Have  int // bytes available
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("header truncated: %s needs %d bytes, only %d available", e.Field, e.Need, e.Have)
}

// IsTruncated reports whether err is a TruncatedError.
func IsTruncated(err error) bool {
	var te *TruncatedError
	return errors.As(err, &te)
}
