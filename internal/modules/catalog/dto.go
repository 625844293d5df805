package catalog

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required,min=3"`
	Description string `json:"description" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        string `json:"name" binding:"required,min=3"`
	Description string `json:"description" binding:"required"`
}

type ListServicesQuery struct {
	Query   string `form:"query"`
	From    string `form:"from"`
	To      string `form:"to"`
	Page    int    `form:"page"`
	PerPage int    `form:"perPage"`
}
