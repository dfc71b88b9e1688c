package invoice

import "time"

type InvoiceItemRequest struct {
	ProductCode string  `json:"product_code"`
	ProductName string  `json:"product_name" binding:"required"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gte=0"`
	Discount    float64 `json:"discount" binding:"gte=0,lte=100"`
	Tax         float64 `json:"tax" binding:"gte=0,lte=100"`
}

type CreateInvoiceRequest struct {
	IDClient       string               `json:"id_client" binding:"required,uuid"`
	InvoiceType    string               `json:"invoice_type" binding:"required,oneof=electronica nomina exportacion"`
	ClientName     string               `json:"client_name" binding:"required"`
	ClientTaxID    string               `json:"client_tax_id" binding:"required"`
	ClientEmail    string               `json:"client_email" binding:"omitempty,email"`
	PaymentDueDate *string              `json:"payment_due_date"`
	TaxWithholding float64              `json:"tax_withholding" binding:"gte=0"`
	ICAWithholding float64              `json:"ica_withholding" binding:"gte=0"`
	PaymentMethods *string              `json:"payment_methods"`
	Items          []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent paid cancelled"`
}

type InvoiceItemResponse struct {
	ID          string  `json:"id"`
	ProductCode string  `json:"product_code,omitempty"`
	ProductName string  `json:"product_name"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Discount    float64 `json:"discount"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

type InvoiceResponse struct {
	ID            string  `json:"id"`
	IDUser        string  `json:"id_user"`
	IDClient      string  `json:"id_client"`
	InvoiceNumber string  `json:"invoice_number"`
	InvoiceType   string  `json:"invoice_type"`
	CUFE          *string `json:"cufe,omitempty"`
	QRCode        *string `json:"qr_code,omitempty"`

	IssueDate      string  `json:"issue_date"`
	PaymentDueDate *string `json:"payment_due_date,omitempty"`

	ClientName  string `json:"client_name"`
	ClientTaxID string `json:"client_tax_id"`
	ClientEmail string `json:"client_email,omitempty"`

	Subtotal      float64 `json:"subtotal"`
	TotalDiscount float64 `json:"total_discount"`
	TotalTaxes    float64 `json:"total_taxes"`
	Total         float64 `json:"total"`

	TaxWithholding float64 `json:"tax_withholding"`
	ICAWithholding float64 `json:"ica_withholding"`

	Status string                `json:"status"`
	Items  []InvoiceItemResponse `json:"items"`
}

func mapToResponse(inv Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:            inv.ID.String(),
		IDUser:        inv.IDUser.String(),
		IDClient:      inv.IDClient.String(),
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceType:   inv.InvoiceType,
		CUFE:          inv.CUFE,
		QRCode:        inv.QRCode,
		IssueDate:     inv.IssueDate.Format(time.RFC3339),
		ClientName:    inv.ClientName,
		ClientTaxID:   inv.ClientTaxID,
		ClientEmail:   inv.ClientEmail,

		Subtotal:      inv.Subtotal,
		TotalDiscount: inv.TotalDiscount,
		TotalTaxes:    inv.TotalTaxes,
		Total:         inv.Total,

		TaxWithholding: inv.TaxWithholding,
		ICAWithholding: inv.ICAWithholding,

		Status: inv.Status,
		Items:  make([]InvoiceItemResponse, len(inv.Items)),
	}

	if inv.PaymentDueDate != nil {
		v := inv.PaymentDueDate.Format(time.RFC3339)
		resp.PaymentDueDate = &v
	}

	for i, item := range inv.Items {
		resp.Items[i] = InvoiceItemResponse{
			ID:          item.ID.String(),
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Discount:    item.Discount,
			Tax:         item.Tax,
			Total:       item.Total,
		}
	}

	return resp
}

func mapToListResponse(invoices []Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = mapToResponse(inv)
	}
	return res
}
