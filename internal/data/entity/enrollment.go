package entity

import "time"

// Enrollment links a User to their registration data. A user gets exactly
// one enrollment, and tickets hang off it.
type Enrollment struct {
	Base
	UserID   int64     `db:"user_id"`
	Name     string    `db:"name"`
	CPF      string    `db:"cpf"`
	Birthday time.Time `db:"birthday"`
	Phone    string    `db:"phone"`
}
