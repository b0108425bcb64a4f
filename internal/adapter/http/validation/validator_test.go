package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"cadastro/internal/core/model/request"
)

func validateJSON[T any](t *testing.T, body string) error {
	t.Helper()

	var payload T

	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("invalid fixture %s: %v", body, err)
	}

	return Validate(payload)
}

func TestCreateUserValidation(t *testing.T) {
	t.Run("accepts a complete payload", func(t *testing.T) {
		err := validateJSON[request.CreateUserRequest](t, `{"name":"Ana","email":"ana@example.com","age":30,"isActive":true}`)

		assert.NoError(t, err)
	})

	t.Run("accepts a missing, null or empty age", func(t *testing.T) {
		for _, body := range []string{
			`{"name":"Ana","email":"ana@example.com"}`,
			`{"name":"Ana","email":"ana@example.com","age":null}`,
			`{"name":"Ana","email":"ana@example.com","age":""}`,
		} {
			assert.NoError(t, validateJSON[request.CreateUserRequest](t, body), body)
		}
	})

	t.Run("reports missing required fields with labels", func(t *testing.T) {
		err := validateJSON[request.CreateUserRequest](t, `{}`)
		errors := FormatValidationErrors(err)

		assert.Len(t, errors, 2)
		assert.Equal(t, "name", errors[0].Field)
		assert.Equal(t, "Nome é obrigatório", errors[0].Message)
		assert.Equal(t, "email", errors[1].Field)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		err := validateJSON[request.CreateUserRequest](t, `{"name":"Ana","email":"not-an-email"}`)
		errors := FormatValidationErrors(err)

		assert.Len(t, errors, 1)
		assert.Equal(t, "Email deve ser um email válido", errors[0].Message)
	})

	t.Run("rejects ages out of range", func(t *testing.T) {
		for body, message := range map[string]string{
			`{"name":"Ana","email":"ana@example.com","age":0}`:   "Idade deve ser maior ou igual a 1",
			`{"name":"Ana","email":"ana@example.com","age":121}`: "Idade deve ser menor ou igual a 120",
			`{"name":"Ana","email":"ana@example.com","age":"0"}`: "Idade deve ser maior ou igual a 1",
		} {
			errors := FormatValidationErrors(validateJSON[request.CreateUserRequest](t, body))

			if assert.Len(t, errors, 1, body) {
				assert.Equal(t, "age", errors[0].Field)
				assert.Equal(t, message, errors[0].Message)
			}
		}
	})
}

func TestUpdateUserValidation(t *testing.T) {
	t.Run("accepts an empty patch", func(t *testing.T) {
		assert.NoError(t, validateJSON[request.UpdateUserRequest](t, `{}`))
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		errors := FormatValidationErrors(validateJSON[request.UpdateUserRequest](t, `{"name":""}`))

		assert.Len(t, errors, 1)
		assert.Equal(t, "Nome deve ter no mínimo 1 caracteres", errors[0].Message)
	})

	t.Run("validates only supplied fields", func(t *testing.T) {
		errors := FormatValidationErrors(validateJSON[request.UpdateUserRequest](t, `{"email":"x"}`))

		assert.Len(t, errors, 1)
		assert.Equal(t, "email", errors[0].Field)
	})
}

func TestMovieValidation(t *testing.T) {
	t.Run("accepts a complete payload", func(t *testing.T) {
		err := validateJSON[request.CreateMovieRequest](t, `{"nome":"Matrix","descricao":"Sci-fi","genero":"Ação","duracao":136,"anolancamento":1999}`)

		assert.NoError(t, err)
	})

	t.Run("rejects a release year before 1900", func(t *testing.T) {
		errors := FormatValidationErrors(validateJSON[request.CreateMovieRequest](t, `{"nome":"A","descricao":"B","genero":"C","duracao":10,"anolancamento":1800}`))

		assert.Len(t, errors, 1)
		assert.Equal(t, "anolancamento", errors[0].Field)
		assert.Equal(t, "Ano de lançamento deve ser maior ou igual a 1900", errors[0].Message)
	})

	t.Run("requires every field on create", func(t *testing.T) {
		errors := FormatValidationErrors(validateJSON[request.CreateMovieRequest](t, `{}`))

		assert.Len(t, errors, 5)
	})

	t.Run("reports a range error for a zero duration on create", func(t *testing.T) {
		errors := FormatValidationErrors(validateJSON[request.CreateMovieRequest](t, `{"nome":"A","descricao":"B","genero":"C","duracao":0,"anolancamento":1999}`))

		assert.Len(t, errors, 1)
		assert.Equal(t, "duracao", errors[0].Field)
		assert.Equal(t, "Duração deve ser maior ou igual a 1", errors[0].Message)
	})

	t.Run("rejects values beyond a 32-bit column", func(t *testing.T) {
		errors := FormatValidationErrors(validateJSON[request.CreateMovieRequest](t, `{"nome":"A","descricao":"B","genero":"C","duracao":3000000000,"anolancamento":1999}`))

		assert.Len(t, errors, 1)
		assert.Equal(t, "Duração deve ser menor ou igual a 2147483647", errors[0].Message)
	})

	t.Run("patch rejects a zero duration", func(t *testing.T) {
		errors := FormatValidationErrors(validateJSON[request.UpdateMovieRequest](t, `{"duracao":0}`))

		assert.Len(t, errors, 1)
		assert.Equal(t, "Duração deve ser maior ou igual a 1", errors[0].Message)
	})
}
