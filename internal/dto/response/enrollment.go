package response

import (
	"conference-booking/internal/data/entity"
)

type EnrollmentResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Birthday string `json:"birthday"`
	Phone    string `json:"phone"`
}

func EnrollmentToResponse(enrollment *entity.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:       enrollment.ID,
		Name:     enrollment.Name,
		CPF:      enrollment.CPF,
		Birthday: enrollment.Birthday.Format("2006-01-02"),
		Phone:    enrollment.Phone,
	}
}
