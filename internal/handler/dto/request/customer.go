package request

type UpdateCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Language string `json:"language"`
}
