package http

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// formFields devuelve los campos del formulario como mapa plano (urlencoded o multipart).
// Ante claves repetidas gana el último valor.
func formFields(c *fiber.Ctx) (map[string]string, error) {
	fields := make(map[string]string)
	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		for k, vs := range form.Value {
			if len(vs) > 0 {
				fields[k] = vs[len(vs)-1]
			}
		}
		return fields, nil
	}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		fields[string(k)] = string(v)
	})
	return fields, nil
}

// credentialBag arma la bolsa de credenciales cruda desde JSON o formulario, sin validar.
func credentialBag(c *fiber.Ctx) (map[string]any, error) {
	if strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEApplicationJSON) {
		bag := map[string]any{}
		if err := json.Unmarshal(c.Body(), &bag); err != nil {
			return nil, err
		}
		return bag, nil
	}
	fields, err := formFields(c)
	if err != nil {
		return nil, err
	}
	bag := make(map[string]any, len(fields))
	for k, v := range fields {
		bag[k] = v
	}
	return bag, nil
}
