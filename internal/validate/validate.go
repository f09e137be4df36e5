// Package validate holds the form schemas callers run before invoking
// mutating store operations. The store itself never validates; these
// checks belong to the edge, next to the inputs they guard.
package validate

import (
	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// ReportForm is the shape of the create/edit report form.
type ReportForm struct {
	ProjectName string  `validate:"required"`
	Location    string  `validate:"required"`
	Weather     string  `validate:"required"`
	Temperature float64 `validate:"gte=-50,lte=50"`
	Reporter    string  `validate:"required"`
	Supervisor  string  `validate:"required"`
	WorkStart   string  `validate:"required"`
	WorkEnd     string  `validate:"required"`
	Planned     int     `validate:"gte=0,lte=100"`
	Actual      int     `validate:"gte=0,lte=100"`
}

type ChangeForm struct {
	Category    string `validate:"required,oneof=environment equipment neighbor other"`
	Description string `validate:"required"`
	Impact      string `validate:"required,oneof=minor caution critical"`
	ReportedBy  string `validate:"required"`
}

type ClientRequestForm struct {
	Type     string `validate:"required,oneof=addition change complaint question evaluation"`
	Content  string `validate:"required"`
	Priority string `validate:"required,oneof=low medium high"`
	Status   string `validate:"required,oneof=resolved reviewing open"`
}

type FeedbackForm struct {
	Type       string `validate:"required,oneof=observation suggestion issue consultation"`
	Content    string `validate:"required"`
	WorkerName string `validate:"required"`
	Priority   string `validate:"required,oneof=low medium high"`
}

type ConcernForm struct {
	Category          string `validate:"required,oneof=safety quality schedule cost other"`
	Description       string `validate:"required"`
	RiskLevel         string `validate:"required,oneof=low medium high urgent"`
	PotentialImpact   string `validate:"required"`
	RecommendedAction string `validate:"required"`
	ReportedBy        string `validate:"required"`
}

type WorkItemForm struct {
	Category    string `validate:"required"`
	Description string `validate:"required"`
}

type MaterialForm struct {
	Name     string  `validate:"required"`
	Quantity float64 `validate:"gte=0"`
	Unit     string  `validate:"required"`
}

type WorkerForm struct {
	Name        string  `validate:"required"`
	Role        string  `validate:"required"`
	HoursWorked float64 `validate:"gte=0,lte=24"`
}

type ProjectForm struct {
	Name       string `validate:"required"`
	Location   string `validate:"required"`
	Client     string `validate:"required"`
	Supervisor string `validate:"required"`
}

// Check validates form and returns field-keyed messages, or nil when the
// form is accepted.
func Check(form any) map[string]string {
	err := v.Struct(form)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"": err.Error()}
	}
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	}
	return "invalid value"
}
