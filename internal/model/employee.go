package model

// Employee mirrors a record of the Employees collection on the data
// platform. The platform owns the collection; this service only reads it.
// The json tags follow the collection's field names so records decode
// straight off the platform's REST responses.
//
// Fields:
//
//	ID        – primary key identifier of the employee.
//	Username  – Employee_Username, the clock-in username (unique).
//	PinHash   – employee_pin, bcrypt hash of the clock-in PIN.
//	FirstName – First_Name, display name shown after login.
type Employee struct {
	ID        int    `json:"id"`
	Username  string `json:"Employee_Username"`
	PinHash   string `json:"employee_pin"`
	FirstName string `json:"First_Name"`
}

// Identity is the authenticated principal a client holds after a
// successful login. It is a convenience cache for the UI only; mutating
// operations re-check the employee against the platform.
type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Credentials is the ephemeral input of one login attempt.
type Credentials struct {
	Name     string
	Password string
}
