package tracker

import (
	"errors"
	"strings"
	"time"

	"growthlog/backend/models"

	"github.com/go-playground/validator/v10"
)

const (
	QuickLogError = "Please fill in Date, Focus, Hours, and Quick Learning."

	MsgDateMissing   = "Please select a date."
	MsgDateFormat    = "Date must use the YYYY-MM-DD format."
	MsgFocusMissing  = "Please describe your learning focus."
	MsgHoursTooLow   = "Learning hours must be greater than 0."
	MsgHoursTooHigh  = "Learning hours cannot exceed 24."
	MsgLearningsMiss = "Please share your key learnings."
)

var validate = validator.New()

// ValidationError lists every reason a submission was rejected. Fields maps
// the JSON field name to its message; the quick log leaves it empty.
type ValidationError struct {
	Messages []string          `json:"messages"`
	Fields   map[string]string `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}

// NewQuickEntry builds an entry from the quick-log form. Any failure yields a
// single combined message.
func NewQuickEntry(in models.QuickLogInput, today time.Time) (models.ProgressEntry, *ValidationError) {
	in.Date = strings.TrimSpace(in.Date)
	in.Focus = strings.TrimSpace(in.Focus)
	in.Learnings = strings.TrimSpace(in.Learnings)
	if in.Date == "" {
		in.Date = today.Format(models.DateLayout)
	}

	if err := validate.Struct(in); err != nil {
		return models.ProgressEntry{}, &ValidationError{Messages: []string{QuickLogError}}
	}

	return models.ProgressEntry{
		Date:      in.Date,
		Focus:     in.Focus,
		Hours:     in.Hours,
		Learnings: in.Learnings,
	}, nil
}

// NewFullEntry builds an entry from the full log form. Each failing field
// contributes its own message; none short-circuits the others.
func NewFullEntry(in models.FullLogInput) (models.ProgressEntry, *ValidationError) {
	in.Date = strings.TrimSpace(in.Date)
	in.Focus = strings.TrimSpace(in.Focus)
	in.Learnings = strings.TrimSpace(in.Learnings)

	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return models.ProgressEntry{}, &ValidationError{Messages: []string{err.Error()}}
		}

		verr := &ValidationError{Fields: make(map[string]string)}
		for _, fe := range fieldErrs {
			field, msg := fullLogMessage(fe)
			if _, seen := verr.Fields[field]; seen {
				continue
			}
			verr.Fields[field] = msg
			verr.Messages = append(verr.Messages, msg)
		}
		return models.ProgressEntry{}, verr
	}

	return models.ProgressEntry{
		Date:       in.Date,
		Focus:      in.Focus,
		Hours:      in.Hours,
		Learnings:  in.Learnings,
		Challenges: in.Challenges,
		Overcame:   in.Overcame,
	}, nil
}

func fullLogMessage(fe validator.FieldError) (string, string) {
	switch fe.StructField() {
	case "Date":
		if fe.Tag() == "datetime" {
			return "date", MsgDateFormat
		}
		return "date", MsgDateMissing
	case "Focus":
		return "focus", MsgFocusMissing
	case "Hours":
		if fe.Tag() == "lte" {
			return "hours", MsgHoursTooHigh
		}
		return "hours", MsgHoursTooLow
	case "Learnings":
		return "learnings", MsgLearningsMiss
	default:
		return strings.ToLower(fe.Field()), fe.Error()
	}
}
