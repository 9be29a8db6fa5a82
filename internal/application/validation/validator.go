// Package validation decodifica y valida payloads de entrada con go-playground/validator,
// devolviendo errores por campo en lugar de un error plano.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldErrors mapa campo -> mensajes legibles.
type FieldErrors map[string][]string

// Add agrega un mensaje al campo.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Messages mensaje a mostrar por campo cuando falla cualquiera de sus reglas.
// Una clave "campo.regla" tiene prioridad sobre "campo".
type Messages map[string]string

// Validator envoltorio del validador con los nombres de campo del formulario.
type Validator struct {
	v *validator.Validate
}

// New construye el validador: nombres desde el tag `form` y decimal.Decimal tratado como número.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return &Validator{v: v}
}

// Struct valida s. Devuelve nil si es válido; si no, los errores por campo
// usando msgs (o un mensaje genérico si el campo no tiene uno definido).
func (val *Validator) Struct(s any, msgs Messages) (FieldErrors, error) {
	err := val.v.Struct(s)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, fmt.Errorf("validate: %w", err)
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		field := fe.Field()
		msg, ok := msgs[field+"."+fe.Tag()]
		if !ok {
			msg, ok = msgs[field]
		}
		if !ok {
			msg = fmt.Sprintf("%s no cumple la regla %q", field, fe.Tag())
		}
		if !contains(out[field], msg) {
			out.Add(field, msg)
		}
	}
	return out, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
