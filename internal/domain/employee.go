package domain

import (
	"time"
)

type Employee struct {
	ID          int64     `json:"-"`
	EmployeeID  string    `json:"employee_id"`
	Name        string    `json:"name"`
	Department  string    `json:"department"`
	Salary      float64   `json:"salary"`
	JoiningDate Date      `json:"joining_date"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"created_at"`
	Version     int32     `json:"-"`
}
