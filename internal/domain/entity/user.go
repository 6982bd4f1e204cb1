package entity

// User is an application user. Email is the uniqueness key.
type User struct {
	ID    string
	Email string
	Name  string
	Role  string
}
