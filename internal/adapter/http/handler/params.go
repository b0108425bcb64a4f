package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"cadastro/internal/adapter/http/helper"
	"cadastro/internal/adapter/http/validation"
)

const maxBodyBytes = 1 << 20

var (
	errEmptyBody    = errors.New("empty body")
	errTrailingData = errors.New("unexpected data after JSON body")
)

// bindStrict decodes the JSON body into params rejecting unknown fields and
// trailing data, then runs the struct validation. On failure the error
// response is already written and false is returned.
func bindStrict(c *gin.Context, params any) bool {
	if err := decodeStrict(c, params); err != nil {
		field, message := describeDecodeError(err)
		helper.SendBadRequestError(c, field, message)
		return false
	}

	if err := validation.Validate(params); err != nil {
		helper.SendValidationError(c, err)
		return false
	}

	return true
}

func decodeStrict(c *gin.Context, params any) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return errEmptyBody
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))

	if err != nil {
		return err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return errEmptyBody
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(params); err != nil {
		return err
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}

	return nil
}

func describeDecodeError(err error) (string, string) {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.Is(err, errEmptyBody):
		return "body", "Corpo da requisição é obrigatório"
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return "body", "JSON inválido"
	case errors.As(err, &typeErr):
		field := typeErr.Field

		if field == "" {
			return "body", "O corpo da requisição deve ser um objeto JSON"
		}

		return field, fmt.Sprintf("%s deve ser do tipo %s", validation.FieldName(field), typeName(typeErr.Type.Kind().String()))
	}

	// encoding/json has no typed error for unknown fields
	if name, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		name = strings.Trim(name, `"`)
		return name, fmt.Sprintf("O campo %s não é permitido", name)
	}

	return "body", "JSON inválido"
}

func typeName(kind string) string {
	switch {
	case strings.HasPrefix(kind, "int"), strings.HasPrefix(kind, "uint"), strings.HasPrefix(kind, "float"):
		return "número"
	case kind == "bool":
		return "booleano"
	case kind == "string":
		return "texto"
	default:
		return kind
	}
}

// ParseID reads the :id path parameter as a positive base-10 integer.
func ParseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")

	id, err := strconv.ParseInt(raw, 10, 64)

	if err != nil || id <= 0 || strconv.FormatInt(id, 10) != raw {
		helper.SendBadRequestError(c, "id", "O ID deve ser um número inteiro positivo")
		return 0, false
	}

	return id, true
}

// parseActive reads the optional ?active filter. An empty value means no filter.
func parseActive(c *gin.Context) (*bool, bool) {
	raw, present := c.GetQuery("active")

	if !present || raw == "" {
		return nil, true
	}

	if raw != "true" && raw != "false" {
		helper.SendBadRequestError(c, "active", "O filtro active deve ser true ou false")
		return nil, false
	}

	active := raw == "true"

	return &active, true
}
