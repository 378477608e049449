package validation

import (
	"math"
	"sort"
	"strings"

	"compass-quiz/internal/domain"
	"compass-quiz/internal/dto"

	"github.com/oklog/ulid/v2"
)

// MaxAnswersPerRequest bounds one answers submission.
const MaxAnswersPerRequest = 200

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSessionID checks that id is a ULID as issued by the session service.
func (v *Validator) ValidateSessionID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if _, err := ulid.ParseStrict(id); err != nil {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}
	return errors
}

// ValidateStartSession validates the start session request
func (v *Validator) ValidateStartSession(req *dto.StartSessionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(req.Type) == "" {
		errors = append(errors, domain.NewMissingFieldError("type"))
	} else if !domain.QuizType(req.Type).Valid() {
		errors = append(errors, domain.NewInvalidFormatError("type", req.Type))
	}
	return errors
}

// ValidateSubmitAnswers checks the request shape only. Answer values and
// question membership are checked against the session by the service.
func (v *Validator) ValidateSubmitAnswers(req *dto.SubmitAnswersRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if len(req.Answers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("answers"))
		return errors
	}
	if len(req.Answers) > MaxAnswersPerRequest {
		errors = append(errors, domain.NewOutOfRangeError("answers", len(req.Answers), 1, MaxAnswersPerRequest))
	}
	for id := range req.Answers {
		if strings.TrimSpace(id) == "" {
			errors = append(errors, domain.NewInvalidFormatError("answers", id))
		}
	}
	return errors
}

// ValidateClassify validates the classify request
func (v *Validator) ValidateClassify(req *dto.ClassifyRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	checkScore := func(field string, value *float64) {
		if value == nil {
			errors = append(errors, domain.NewMissingFieldError(field))
		} else if !inScoreRange(*value) {
			errors = append(errors, domain.NewOutOfRangeError(field, *value, -100, 100))
		}
	}
	checkScore("economic", req.Economic)
	checkScore("authority", req.Authority)
	checkScore("cultural", req.Cultural)
	codes := make([]string, 0, len(req.Supplementary))
	for code := range req.Supplementary {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		field := "supplementary." + code
		value, ok := req.Supplementary[code].(float64)
		switch {
		case !ok:
			errors = append(errors, domain.NewInvalidFormatError(field, req.Supplementary[code]))
		case !inScoreRange(value):
			errors = append(errors, domain.NewOutOfRangeError(field, value, -100, 100))
		}
	}
	return errors
}

// ValidateMacroCell validates a macro-cell path parameter
func (v *Validator) ValidateMacroCell(code string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if strings.TrimSpace(code) == "" {
		errors = append(errors, domain.NewMissingFieldError("cell"))
	} else if !domain.MacroCell(strings.ToUpper(code)).Valid() {
		errors = append(errors, domain.NewInvalidFormatError("cell", code))
	}
	return errors
}

func inScoreRange(v float64) bool {
	return !math.IsNaN(v) && v >= -100 && v <= 100
}
