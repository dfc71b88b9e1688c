package client

type CreateClientRequest struct {
	Name                 string `json:"name" binding:"required"`
	PersonType           string `json:"person_type" binding:"required,oneof=Natural Legal Company"`
	TaxID                string `json:"tax_id" binding:"required"`
	DocumentType         string `json:"document_type" binding:"required,oneof=id_card foreign_id other"`
	IdentificationNumber string `json:"identification_number" binding:"required"`
	Status               string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateClientRequest struct {
	Name                 *string `json:"name"`
	PersonType           *string `json:"person_type" binding:"omitempty,oneof=Natural Legal Company"`
	TaxID                *string `json:"tax_id"`
	DocumentType         *string `json:"document_type" binding:"omitempty,oneof=id_card foreign_id other"`
	IdentificationNumber *string `json:"identification_number"`
	Status               *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type ClientResponse struct {
	ID                   string `json:"id"`
	IDUser               string `json:"id_user"`
	Name                 string `json:"name"`
	PersonType           string `json:"person_type"`
	TaxID                string `json:"tax_id"`
	DocumentType         string `json:"document_type"`
	IdentificationNumber string `json:"identification_number"`
	Status               string `json:"status"`
}

func mapToResponse(c Client) ClientResponse {
	return ClientResponse{
		ID:                   c.ID.String(),
		IDUser:               c.IDUser.String(),
		Name:                 c.Name,
		PersonType:           c.PersonType,
		TaxID:                c.TaxID,
		DocumentType:         c.DocumentType,
		IdentificationNumber: c.IdentificationNumber,
		Status:               c.Status,
	}
}

func mapToListResponse(clients []Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = mapToResponse(c)
	}
	return res
}
