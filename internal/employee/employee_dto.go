package employee

type CreateEmployeeRequest struct {
	FullName string `json:"full_name" binding:"required"`
	PIS      string `json:"pis"`
	CPF      string `json:"cpf"`
}

type EmployeeResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	FullName  string `json:"full_name"`
	PIS       string `json:"pis,omitempty"`
	CPF       string `json:"cpf,omitempty"`
	IsActive  bool   `json:"is_active"`
}
