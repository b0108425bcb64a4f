package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ptbr_translations "github.com/go-playground/validator/v10/translations/pt_BR"

	"cadastro/internal/core/model/request"
	"cadastro/internal/core/model/response"
)

var (
	Validator  *validator.Validate
	Translator ut.Translator
)

var fieldNames = map[string]string{
	"name":          "Nome",
	"email":         "Email",
	"age":           "Idade",
	"isActive":      "Ativo",
	"nome":          "Nome",
	"descricao":     "Descrição",
	"genero":        "Gênero",
	"duracao":       "Duração",
	"anolancamento": "Ano de lançamento",
}

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	// errors carry the JSON name of the field, not the Go one
	Validator.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]

		if name == "-" {
			return ""
		}

		return name
	})

	Validator.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(request.OptionalInt); ok {
			return v.Ptr()
		}

		return nil
	}, request.OptionalInt{})

	ptBR := pt_BR.New()
	uni := ut.New(ptBR, ptBR)

	var found bool
	Translator, found = uni.GetTranslator("pt_BR")

	if !found {
		panic("translator pt_BR not found")
	}

	if err := ptbr_translations.RegisterDefaultTranslations(Validator, Translator); err != nil {
		panic(err)
	}

	addCustomTranslations()
}

func addCustomTranslations() {
	Validator.RegisterTranslation("required", Translator, func(ut ut.Translator) error {
		return ut.Add("required", "{0} é obrigatório", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required", FieldName(fe.Field()))
		return t
	})

	Validator.RegisterTranslation("min", Translator, func(ut ut.Translator) error {
		if err := ut.Add("min-string", "{0} deve ter no mínimo {1} caracteres", true); err != nil {
			return err
		}

		return ut.Add("min-number", "{0} deve ser maior ou igual a {1}", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(boundKey("min", fe.Kind()), FieldName(fe.Field()), fe.Param())
		return t
	})

	Validator.RegisterTranslation("max", Translator, func(ut ut.Translator) error {
		if err := ut.Add("max-string", "{0} deve ter no máximo {1} caracteres", true); err != nil {
			return err
		}

		return ut.Add("max-number", "{0} deve ser menor ou igual a {1}", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(boundKey("max", fe.Kind()), FieldName(fe.Field()), fe.Param())
		return t
	})

	Validator.RegisterTranslation("email", Translator, func(ut ut.Translator) error {
		return ut.Add("email", "{0} deve ser um email válido", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("email", FieldName(fe.Field()))
		return t
	})
}

func boundKey(tag string, kind reflect.Kind) string {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return tag + "-number"
	default:
		return tag + "-string"
	}
}

// FieldName returns the Portuguese label of a JSON field.
func FieldName(field string) string {
	if name, exists := fieldNames[field]; exists {
		return name
	}

	return field
}

func Validate(payload any) error {
	return Validator.Struct(payload)
}

func FormatValidationErrors(err error) []response.ValidationError {
	var errors []response.ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			errors = append(errors, response.ValidationError{
				Field:   fieldError.Field(),
				Message: fieldError.Translate(Translator),
			})
		}
	}

	return errors
}
