package responses

import "schedboard-service/internal/pkg/pagination"

type ResponseDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Total      int                   `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
	Window     []pagination.PageItem `json:"window,omitempty"`
	NextURL    string                `json:"next_url,omitempty"`
	PrevURL    string                `json:"prev_url,omitempty"`
}
