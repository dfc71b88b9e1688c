package supplier

type CreateSupplierRequest struct {
	Name                 string `json:"name" binding:"required"`
	PersonType           string `json:"person_type" binding:"required,oneof=Natural Legal Company"`
	TaxID                string `json:"tax_id" binding:"required"`
	DocumentType         string `json:"document_type" binding:"required,oneof=id_card foreign_id other"`
	IdentificationNumber string `json:"identification_number" binding:"required"`
	BusinessReason       string `json:"business_reason" binding:"required"`
	Email                string `json:"email" binding:"required,email"`
	ContactNumber        string `json:"contact_number" binding:"required"`
	Address              string `json:"address" binding:"required"`
	City                 string `json:"city" binding:"required"`
	RegimeType           string `json:"regime_type" binding:"required,oneof=Simplified Common Special"`
	Status               string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateSupplierRequest struct {
	Name                 *string `json:"name"`
	PersonType           *string `json:"person_type" binding:"omitempty,oneof=Natural Legal Company"`
	TaxID                *string `json:"tax_id"`
	DocumentType         *string `json:"document_type" binding:"omitempty,oneof=id_card foreign_id other"`
	IdentificationNumber *string `json:"identification_number"`
	BusinessReason       *string `json:"business_reason"`
	Email                *string `json:"email" binding:"omitempty,email"`
	ContactNumber        *string `json:"contact_number"`
	Address              *string `json:"address"`
	City                 *string `json:"city"`
	RegimeType           *string `json:"regime_type" binding:"omitempty,oneof=Simplified Common Special"`
	Status               *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type SupplierResponse struct {
	ID                   string `json:"id"`
	IDUser               string `json:"id_user"`
	Name                 string `json:"name"`
	PersonType           string `json:"person_type"`
	TaxID                string `json:"tax_id"`
	DocumentType         string `json:"document_type"`
	IdentificationNumber string `json:"identification_number"`
	BusinessReason       string `json:"business_reason"`
	Email                string `json:"email"`
	ContactNumber        string `json:"contact_number"`
	Address              string `json:"address"`
	City                 string `json:"city"`
	RegimeType           string `json:"regime_type"`
	Status               string `json:"status"`
	CreatedAt            string `json:"created_at"`
}

func mapToResponse(s Supplier) SupplierResponse {
	return SupplierResponse{
		ID:                   s.ID.String(),
		IDUser:               s.IDUser.String(),
		Name:                 s.Name,
		PersonType:           s.PersonType,
		TaxID:                s.TaxID,
		DocumentType:         s.DocumentType,
		IdentificationNumber: s.IdentificationNumber,
		BusinessReason:       s.BusinessReason,
		Email:                s.Email,
		ContactNumber:        s.ContactNumber,
		Address:              s.Address,
		City:                 s.City,
		RegimeType:           s.RegimeType,
		Status:               s.Status,
		CreatedAt:            s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func mapToListResponse(suppliers []Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		res[i] = mapToResponse(s)
	}
	return res
}
