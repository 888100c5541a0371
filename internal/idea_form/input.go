package ideaform

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/capstone-ideas/ideagen-backend/internal/idea_generation/domain"
)

// SubmissionInput is the field state of one form instance.
type SubmissionInput struct {
	PromptText   string
	Categories   []string
	ProjectTypes []string
}

// ToRequest projects the input onto the wire payload. The prompt text is sent
// verbatim and selections keep their order. Project types are only sent by
// the typed variant.
func (in SubmissionInput) ToRequest(variant Variant) domain.GenerationRequest {
	req := domain.GenerationRequest{
		Body:       in.PromptText,
		Categories: append([]string{}, in.Categories...),
	}
	if variant.ProjectTypes {
		req.Types = append([]string{}, in.ProjectTypes...)
	}
	return req
}

// ValidationError maps a field name to a human-readable message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

type categoriesForm struct {
	Categories []string `json:"categories" validate:"required,min=1,max=8,dive,required,category"`
}

type projectTypesForm struct {
	Categories   []string `json:"categories" validate:"required,min=1,max=8,dive,required,category"`
	ProjectTypes []string `json:"types" validate:"required,min=1,max=8,dive,required,project_type"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return IsCategory(fl.Field().String())
	})
	_ = v.RegisterValidation("project_type", func(fl validator.FieldLevel) bool {
		return IsProjectType(fl.Field().String())
	})

	return v
}

// Validate checks the selections of in for the given variant. The prompt
// text is unconstrained.
func Validate(in SubmissionInput, variant Variant) error {
	var target any = categoriesForm{Categories: in.Categories}
	if variant.ProjectTypes {
		target = projectTypesForm{Categories: in.Categories, ProjectTypes: in.ProjectTypes}
	}

	err := validate.Struct(target)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate input: %w", err)
	}

	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		field := fieldName(fe.Field())
		if _, seen := out.Fields[field]; seen {
			continue
		}
		out.Fields[field] = message(fe)
	}
	return out
}

// fieldName drops the element index that dive adds ("categories[2]").
func fieldName(f string) string {
	if i := strings.IndexByte(f, '['); i >= 0 {
		return f[:i]
	}
	return f
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.String {
			return "selections must not be empty"
		}
		return fmt.Sprintf("select at least %d item(s)", domain.MinSelections)
	case "min":
		return fmt.Sprintf("select at least %s item(s)", fe.Param())
	case "max":
		return fmt.Sprintf("select at most %s item(s)", fe.Param())
	case "category":
		return fmt.Sprintf("%q is not a known category", fe.Value())
	case "project_type":
		return fmt.Sprintf("%q is not a known project type", fe.Value())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
