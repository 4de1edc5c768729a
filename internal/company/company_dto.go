package company

type CreateCompanyRequest struct {
	Name     string `json:"name" binding:"required"`
	CNPJ     string `json:"cnpj" binding:"required"`
	CEI      string `json:"cei"`
	Address  string `json:"address"`
	Timezone string `json:"timezone"`
}

type CompanyResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CNPJ     string `json:"cnpj"`
	CEI      string `json:"cei,omitempty"`
	Address  string `json:"address,omitempty"`
	Timezone string `json:"timezone"`
}
