package dian_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Diana-hub4/Demo-dian-back/internal/invoice/dian"
)

var testCompany = dian.Company{
	NIT:          "123456789-1",
	Name:         "Conta DIAN",
	TechnicalKey: "test-technical-key",
}

func TestGenerateCUFE(t *testing.T) {
	in := dian.CUFEInputs{
		InvoiceNumber: "FV-000042",
		IssueDate:     time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Total:         1190000,
		ClientID:      "900123456-7",
	}

	t.Run("is deterministic", func(t *testing.T) {
		first, err := dian.GenerateCUFE(testCompany, in)
		assert.NoError(t, err)
		second, err := dian.GenerateCUFE(testCompany, in)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
		// SHA-384 hex digest
		assert.Len(t, first, 96)
	})

	t.Run("changes when any input changes", func(t *testing.T) {
		base, err := dian.GenerateCUFE(testCompany, in)
		assert.NoError(t, err)

		changed := in
		changed.Total = 1190001
		other, err := dian.GenerateCUFE(testCompany, changed)
		assert.NoError(t, err)

		assert.NotEqual(t, base, other)
	})

	t.Run("depends on the technical key", func(t *testing.T) {
		base, err := dian.GenerateCUFE(testCompany, in)
		assert.NoError(t, err)

		otherCompany := testCompany
		otherCompany.TechnicalKey = "another-key"
		other, err := dian.GenerateCUFE(otherCompany, in)
		assert.NoError(t, err)

		assert.NotEqual(t, base, other)
	})
}

func TestGenerateQRCode(t *testing.T) {
	encoded, err := dian.GenerateQRCode(testCompany, dian.QRInputs{
		InvoiceNumber: "FV-000042",
		IssueDate:     time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC),
		Total:         1190000,
		TotalTaxes:    190000,
		CUFE:          "ABC123",
	})

	assert.NoError(t, err)

	png, err := base64.StdEncoding.DecodeString(encoded)
	assert.NoError(t, err)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
