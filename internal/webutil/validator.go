package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator is shared by all handlers.
var Validator *validator.Validate

// Trans renders validation errors in English.
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":        "Name",
	"code":        "Language code",
	"category_id": "Category",
	"hotspot_id":  "Word",
}

func fieldLabel(field string) string {
	if label, ok := fieldNameTranslations[field]; ok {
		return label
	}
	return field
}

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	// Report json names instead of Go field names.
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// ★ここからリクエストボディで使うタグのメッセージを上書き
	override := func(tag, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fieldLabel(fe.Field()), fe.Param())
			return t
		})
	}
	override("required", "{0} is required.")
	override("min", "{0} must be at least {1} characters long.")
	override("max", "{0} must be at most {1} characters long.")
	override("len", "{0} must be exactly {1} characters long.")
	override("lowercase", "{0} must be lowercase.")
}
