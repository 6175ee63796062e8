package entities

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	dnderr "github.com/KirkDiggler/skill-seeder/internal/errors"
)

var (
	validatorOnce sync.Once
	skillValidate *validator.Validate
)

// timedStats are the stats a buff or debuff may modify
var timedStats = []Stat{StatAttack, StatDefense, StatAgility}

func skillValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report stored field names rather than Go field names
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("trimmed", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == strings.TrimSpace(value)
		})

		skillValidate = v
	})
	return skillValidate
}

// Validate checks that the skill is well-formed: every required field is
// present and the effect carries exactly the fields of its declared type.
// Balance values are not checked.
func (s *Skill) Validate() error {
	if s == nil {
		return dnderr.InvalidArgument("skill cannot be nil")
	}

	var problems []string
	if err := skillValidator().Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return dnderr.Wrap(err, "failed to validate skill")
		}
		for _, fieldErr := range fieldErrs {
			problems = append(problems, describeFieldError(fieldErr))
		}
	}

	if s.Effect != nil {
		problems = append(problems, s.Effect.shapeProblems()...)
	}

	if len(problems) > 0 {
		return dnderr.Validationf("skill %q is malformed: %s", s.Name, strings.Join(problems, "; ")).
			WithMeta("problems", problems)
	}

	return nil
}

func (e *Effect) shapeProblems() []string {
	var problems []string

	switch e.Type {
	case EffectTypeBuff, EffectTypeDebuff:
		if !slices.Contains(timedStats, e.Stat) {
			problems = append(problems, fmt.Sprintf("effect.stat: %s effect needs one of attack, defense or agility", e.Type))
		}
		if e.Duration <= 0 {
			problems = append(problems, fmt.Sprintf("effect.duration: %s effect needs a positive duration", e.Type))
		}
	case EffectTypeDamage, EffectTypeHeal:
		if e.Stat != "" {
			problems = append(problems, fmt.Sprintf("effect.stat: not allowed on a %s effect", e.Type))
		}
		if e.Duration != 0 {
			problems = append(problems, fmt.Sprintf("effect.duration: not allowed on a %s effect", e.Type))
		}
	}

	return problems
}

func describeFieldError(fieldErr validator.FieldError) string {
	field := fieldErr.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	if fieldErr.Param() != "" {
		return fmt.Sprintf("%s: failed %s=%s", field, fieldErr.Tag(), fieldErr.Param())
	}
	return fmt.Sprintf("%s: failed %s", field, fieldErr.Tag())
}
