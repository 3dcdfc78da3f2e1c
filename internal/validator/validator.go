package validator

import "github.com/garrettladley/wellscore/internal/xerrors"

type Validator interface {
	// Validate validates the fields of the struct and returns a map of errors.
	// returns nil if no errors are found
	Validate() map[string]string
}

// Validate returns a 422 error, or nil when v is valid.
func Validate(v Validator) error {
	if fields := v.Validate(); len(fields) > 0 {
		return xerrors.Validation(fields)
	}
	return nil
}

// Fields collects the first failure per field.
type Fields map[string]string

func (f *Fields) Check(ok bool, field, msg string) {
	if ok {
		return
	}
	if *f == nil {
		*f = make(Fields)
	}
	if _, exists := (*f)[field]; !exists {
		(*f)[field] = msg
	}
}

func (f Fields) Map() map[string]string {
	if len(f) == 0 {
		return nil
	}
	return f
}
