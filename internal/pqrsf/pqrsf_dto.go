package pqrsf

import "time"

type CreatePQRSFRequest struct {
	PqrsfType string `json:"pqrsf_type" binding:"required,oneof=peticion queja reclamo sugerencia felicitacion"`
	Message   string `json:"message" binding:"required"`
}

type UpdatePQRSFRequest struct {
	PqrsfType *string `json:"pqrsf_type" binding:"omitempty,oneof=peticion queja reclamo sugerencia felicitacion"`
	Message   *string `json:"message"`
}

type PQRSFResponse struct {
	ID        string `json:"id"`
	PqrsfType string `json:"pqrsf_type"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type ProcessResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func mapToResponse(p PQRSF) PQRSFResponse {
	return PQRSFResponse{
		ID:        p.ID.String(),
		PqrsfType: p.PqrsfType,
		Message:   p.Message,
		Status:    p.Status,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(items []PQRSF) []PQRSFResponse {
	res := make([]PQRSFResponse, len(items))
	for i, p := range items {
		res[i] = mapToResponse(p)
	}
	return res
}
