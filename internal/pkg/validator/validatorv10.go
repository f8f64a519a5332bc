package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// MessageTag is the struct tag that replaces the translated message of any
// failing rule on that field.
const MessageTag = "message"

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewV10Validator constructs a V10Validator with English translations.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate validates a struct and returns a *Report on failure.
//
// Report keys are the Go struct field names. A field tagged with `message:"..."`
// reports that text instead of the translated rule message.
func (v *V10Validator) Validate(data any) error {
	if err := v.validate.Struct(data); err != nil {
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			return err
		}

		report := NewReport()
		for _, fe := range validateErrs {
			msg := messageTag(reflect.TypeOf(data), fe.StructNamespace())
			if msg == "" {
				msg = fe.Translate(v.translator)
			}
			report.Merge(fe.Field(), msg)
		}

		return report
	}

	return nil
}

// messageTag walks namespace ("Type.Field.Nested[0].Leaf") down from t and
// returns the MessageTag of the leaf field.
func messageTag(t reflect.Type, namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return ""
	}

	var sf reflect.StructField
	for _, part := range parts[1:] {
		if i := strings.IndexByte(part, '['); i >= 0 {
			part = part[:i]
		}

		t = indirectType(t)
		if t == nil || t.Kind() != reflect.Struct {
			return ""
		}

		f, ok := t.FieldByName(part)
		if !ok {
			return ""
		}
		sf = f
		t = f.Type
	}

	return sf.Tag.Get(MessageTag)
}

func indirectType(t reflect.Type) reflect.Type {
	for t != nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map:
			t = t.Elem()
		default:
			return t
		}
	}

	return t
}
