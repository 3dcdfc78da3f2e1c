package assessment

import (
	"strings"
	"unicode/utf8"

	"github.com/garrettladley/wellscore/internal/validator"
	"github.com/garrettladley/wellscore/internal/wellness"
)

const MaxTitleLength = 200

type CreateRequest struct {
	Title    string               `json:"title"`
	FormData wellness.MetricInput `json:"formData"`
}

var _ validator.Validator = CreateRequest{}

func (r CreateRequest) Validate() map[string]string {
	var f validator.Fields

	f.Check(utf8.RuneCountInString(r.Title) <= MaxTitleLength, "title", "must be at most 200 characters")

	sex := strings.TrimSpace(r.FormData.Sex)
	f.Check(sex == "" || wellness.ParseSex(sex) != wellness.SexUnset, "formData.sex", "must be male or female")

	// same parser the engine uses, so an accepted age is a scored age
	if strings.TrimSpace(r.FormData.Age) != "" {
		f.Check(wellness.ParseInput(r.FormData).Age != nil, "formData.age", "must be a number")
	}

	return f.Map()
}
