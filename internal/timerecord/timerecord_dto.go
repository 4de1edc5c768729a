package timerecord

type PunchRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Type       string `json:"type" binding:"required"`
	RecordedAt string `json:"recorded_at" binding:"required"`
	Source     string `json:"source"`
}

type TimeRecordResponse struct {
	ID         string `json:"id"`
	CompanyID  string `json:"company_id"`
	EmployeeID string `json:"employee_id"`
	Type       string `json:"type"`
	RecordedAt string `json:"recorded_at"`
	Source     string `json:"source"`
}
