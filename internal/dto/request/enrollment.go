package request

type EnrollmentRequest struct {
	Name     string `json:"name" validate:"required,min=3"`
	CPF      string `json:"cpf" validate:"required,len=11"`
	Birthday string `json:"birthday" validate:"required"`
	Phone    string `json:"phone" validate:"required,min=10,max=15"`
}
