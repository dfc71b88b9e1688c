// Package dian generates the electronic invoicing artifacts required by the
// Colombian tax authority: the CUFE fingerprint and the verification QR code.
package dian

import (
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

// Company identifies the invoice issuer. The technical key is assigned by
// DIAN when the numbering range is authorized.
type Company struct {
	NIT          string
	Name         string
	TechnicalKey string
}

type CUFEInputs struct {
	InvoiceNumber string
	IssueDate     time.Time
	Total         float64
	ClientID      string
}

// GenerateCUFE produces the unique invoice fingerprint: SHA-384 over the
// canonical JSON of the identifying fields, uppercase hex. Canonical means
// keys sorted lexicographically, which encoding/json guarantees for maps.
func GenerateCUFE(company Company, in CUFEInputs) (string, error) {
	payload := map[string]string{
		"invoice_number": in.InvoiceNumber,
		"issue_date":     in.IssueDate.Format("2006-01-02"),
		"total":          formatAmount(in.Total),
		"client_id":      in.ClientID,
		"company_nit":    company.NIT,
		"technical_key":  company.TechnicalKey,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	sum := sha512.Sum384(data)
	return strings.ToUpper(hex.EncodeToString(sum[:])), nil
}

type QRInputs struct {
	InvoiceNumber string
	IssueDate     time.Time
	Total         float64
	TotalTaxes    float64
	CUFE          string
}

// GenerateQRCode renders the DIAN verification payload as a PNG QR code and
// returns it base64-encoded for storage alongside the invoice.
func GenerateQRCode(company Company, in QRInputs) (string, error) {
	payload := map[string]string{
		"invoice_number": in.InvoiceNumber,
		"issue_date":     in.IssueDate.Format(time.RFC3339),
		"total":          formatAmount(in.Total),
		"total_taxes":    formatAmount(in.TotalTaxes),
		"cufe":           in.CUFE,
		"company_nit":    company.NIT,
		"company_name":   company.Name,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	png, err := qrcode.Encode(string(data), qrcode.Low, 256)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(png), nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
