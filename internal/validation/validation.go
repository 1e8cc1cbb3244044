package validation

import (
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	dateTag   = "date"
	dateText  = "{0} must be a date in YYYY-MM-DD format"
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	roleTag  = "role"
	roleText = "{0} must be one of admin, assistant_admin, coordinator, trainer, participant, supervisor"
	roles    = map[string]bool{
		"admin": true, "assistant_admin": true, "coordinator": true,
		"trainer": true, "participant": true, "supervisor": true,
	}

	requiredTag  = "required"
	requiredText = "{0} is required"
)

// Error carries one translated message per offending JSON field.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return strings.Join(msgs, "; ")
}

type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func New() *Validator {
	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")
	validate := validator.New()
	initValidators(validate, translator)
	return &Validator{validate: validate, translator: translator}
}

// Struct validates v and returns *Error for field failures.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fieldKey(fe)] = fe.Translate(v.translator)
	}
	return &Error{Fields: fields}
}

func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func initValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// JSON names in messages instead of Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(dateTag, func(fl validator.FieldLevel) bool {
		return dateRegex.MatchString(fl.Field().String())
	})
	registerTranslation(validate, translator, dateTag, dateText)

	_ = validate.RegisterValidation(roleTag, func(fl validator.FieldLevel) bool {
		return roles[fl.Field().String()]
	})
	registerTranslation(validate, translator, roleTag, roleText)

	registerTranslation(validate, translator, requiredTag, requiredText, true)
}

func registerTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}
