package employee

// WorkingHours is the contracted daily window, both ends as "HH:MM".
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Employee struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Position     string       `json:"position"`
	Department   string       `json:"department"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	HireDate     string       `json:"hireDate"` // YYYY-MM-DD
	WorkingHours WorkingHours `json:"workingHours"`
}

// SampleEmployee is written once when the employee collection is empty.
func SampleEmployee(id string) Employee {
	return Employee{
		ID:         id,
		Name:       "Sample Employee",
		Position:   "Developer",
		Department: "IT",
		Email:      "employee@example.com",
		Phone:      "081-234-5678",
		HireDate:   "2024-01-01",
		WorkingHours: WorkingHours{
			Start: "09:00",
			End:   "18:00",
		},
	}
}
