package domain

// Employee represents a single person in the roster
type Employee struct {
	ID         string
	Name       string
	Title      string
	Department string
	Email      string
	Location   string
	StartDate  string // ISO date, display only
}

// LoadProgress represents the current roster loading state
type LoadProgress struct {
	IsLoading     bool
	EmployeesRead int
	Source        string
}
