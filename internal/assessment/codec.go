package assessment

import (
	"fmt"

	go_json "github.com/goccy/go-json"
)

// jsonColumns holds the encoded form of the three JSON columns shared by
// both stores.
type jsonColumns struct {
	formData []byte
	scores   []byte
	grade    []byte
}

func encodeColumns(a *Assessment) (jsonColumns, error) {
	var (
		c   jsonColumns
		err error
	)
	if c.formData, err = go_json.Marshal(a.Input); err != nil {
		return c, fmt.Errorf("encoding form data: %w", err)
	}
	if c.scores, err = go_json.Marshal(a.Scores); err != nil {
		return c, fmt.Errorf("encoding scores: %w", err)
	}
	if c.grade, err = go_json.Marshal(a.Grade); err != nil {
		return c, fmt.Errorf("encoding grade: %w", err)
	}
	return c, nil
}

func (c jsonColumns) decodeInto(a *Assessment) error {
	if err := go_json.Unmarshal(c.formData, &a.Input); err != nil {
		return fmt.Errorf("decoding form data: %w", err)
	}
	if err := go_json.Unmarshal(c.scores, &a.Scores); err != nil {
		return fmt.Errorf("decoding scores: %w", err)
	}
	if err := go_json.Unmarshal(c.grade, &a.Grade); err != nil {
		return fmt.Errorf("decoding grade: %w", err)
	}
	return nil
}
