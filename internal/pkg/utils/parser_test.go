package utils

import (
	"testing"

	"clinidash-core/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestDecodeEntity(t *testing.T) {
	wrapperKeys := []string{"patient", "paciente", "data"}

	t.Run("Bare Object", func(t *testing.T) {
		out := new(models.Patient)
		err := DecodeEntity(json.RawMessage(`{"id_paciente":1,"nombre":"Ana"}`), wrapperKeys, out)

		assert.NoError(t, err)
		assert.Equal(t, 1, out.ID)
	})

	t.Run("Wrapped Object", func(t *testing.T) {
		out := new(models.Patient)
		err := DecodeEntity(json.RawMessage(`{"paciente":{"id_paciente":2,"nombre":"Luis"}}`), wrapperKeys, out)

		assert.NoError(t, err)
		assert.Equal(t, 2, out.ID)
	})

	t.Run("Wrapper Keys Probed In Order", func(t *testing.T) {
		out := new(models.Patient)
		body := `{"patient":{"id_paciente":1},"paciente":{"id_paciente":2}}`
		err := DecodeEntity(json.RawMessage(body), wrapperKeys, out)

		assert.NoError(t, err)
		assert.Equal(t, 1, out.ID)
	})

	t.Run("Empty Body Leaves The Target Zero", func(t *testing.T) {
		out := new(models.Patient)
		err := DecodeEntity(nil, wrapperKeys, out)

		assert.NoError(t, err)
		assert.Zero(t, out.ID)
	})

	t.Run("Malformed Body Fails", func(t *testing.T) {
		out := new(models.Patient)
		err := DecodeEntity(json.RawMessage(`{broken`), wrapperKeys, out)

		assert.Error(t, err)
	})
}
