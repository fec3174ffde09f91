package types

// =============== Wizard draft ===============

type SalaryType string

const (
	SalaryTypeAnnual SalaryType = "salary"
	SalaryTypeHourly SalaryType = "hourly"
)

type SalaryExpectation struct {
	Amount int        `json:"amount"`
	Type   SalaryType `json:"type"`
}

type Location struct {
	Place             string `json:"place"`
	AnywhereInCountry bool   `json:"anywhere_in_country"`
	AnywhereInWorld   bool   `json:"anywhere_in_world"`
}

// Draft is the in-progress profile record accumulated across wizard steps.
// Every field is optional until submission; the backend is the final
// validator.
type Draft struct {
	JobTitle          string
	SalaryExpectation *SalaryExpectation
	Skills            []string
	RemoteType        string
	Location          Location
	Benefits          []string
	CareerLevel       string
	WorkType          string
}

// =============== Wire shapes ===============

// ProfilePayload is the POST /profiles body. Absent optional fields are
// submitted as explicit nulls, never omitted; skills and benefits are
// always arrays.
type ProfilePayload struct {
	JobTitle          string             `json:"job_title"`
	SalaryExpectation *SalaryExpectation `json:"salary_expectation"`
	Skills            []string           `json:"skills"`
	RemoteType        *string            `json:"remote_type"`
	Location          string             `json:"location"`
	Benefits          []string           `json:"benefits"`
	CareerLevel       *string            `json:"career_level"`
	WorkType          *string            `json:"work_type"`
}

// Profile is the canonical, server-confirmed version of a submitted draft.
type Profile struct {
	ID                string             `json:"id"`
	JobTitle          string             `json:"job_title"`
	SalaryExpectation *SalaryExpectation `json:"salary_expectation"`
	Skills            []string           `json:"skills"`
	RemoteType        string             `json:"remote_type"`
	Location          string             `json:"location"`
	Benefits          []string           `json:"benefits"`
	CareerLevel       string             `json:"career_level"`
	WorkType          string             `json:"work_type"`
	PaymentStatus     string             `json:"payment_status"`
}

// ResumeAnalysis is the cached POST /resume/analyze result. Field names
// match the backend wire format.
type ResumeAnalysis struct {
	DetectedRole     string `json:"detectedRole,omitempty"`
	DetectedLocation string `json:"detectedLocation,omitempty"`
}

// UserStatus is the GET /me response used for post-login routing.
type UserStatus struct {
	Role          string `json:"role"`
	FullName      string `json:"full_name"`
	ProfileStatus string `json:"profile_status"`
	Payment       string `json:"payment"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// =============== Jobs / payment / admin ===============

type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	Type        string `json:"type"`
	Experience  string `json:"experience"`
}

type Application struct {
	ID        string `json:"id"`
	JobID     string `json:"job_id"`
	JobTitle  string `json:"job_title"`
	Applicant string `json:"applicant"`
	Status    string `json:"status"`
}

// PaymentRequest is the multipart POST /payment/submit body. ReceiptPath
// points at the local receipt file attached under the "receipt" field.
type PaymentRequest struct {
	Name          string
	Email         string
	Method        string
	Plan          string
	TermsAccepted bool
	ReceiptPath   string
}

type AdminStats struct {
	Users        int `json:"users"`
	Jobs         int `json:"jobs"`
	Applications int `json:"applications"`
	Profiles     int `json:"profiles"`
}

// AdminProfile is a profile row on the admin dashboard, including payment
// verification state.
type AdminProfile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	JobTitle      string `json:"job_title"`
	PaymentStatus string `json:"payment_status"`
}
