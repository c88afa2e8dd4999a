package forms

import "strconv"

// Boundary contracts for form submissions. Each struct enumerates the fields
// the backend expects, with coercions and bounds enforced here so the UI gets
// field-level messages instead of opaque backend rejections. No business
// logic lives in these types.

// Pay frequencies the payroll engine understands.
const PayFrequencies = "weekly biweekly semi-monthly monthly"

type Announcement struct {
	Title    string `json:"title" validate:"required,min=3,max=120"`
	Category string `json:"category" validate:"required,oneof=general policy event celebration"`
	Body     string `json:"body" validate:"required"`
}

type Asset struct {
	Name            string `json:"name" validate:"required"`
	SerialNumber    string `json:"serialNumber" validate:"required"`
	Category        string `json:"category" validate:"required,oneof=laptop phone furniture vehicle other"`
	PurchasePrice   string `json:"purchasePrice" validate:"required,currency"`
	PurchaseDate    string `json:"purchaseDate" validate:"required,datetime=2006-01-02"`
	UsefulLifeYears int    `json:"usefulLifeYears" validate:"required,gt=0"`
	AssignedTo      string `json:"assignedTo" validate:"omitempty"`
}

type Bonus struct {
	EmployeeID   string `json:"employeeId" validate:"required"`
	Amount       string `json:"amount" validate:"required,currency"`
	Reason       string `json:"reason" validate:"required"`
	PayrollMonth string `json:"payrollMonth" validate:"required,datetime=2006-01"`
}

type CompanyTax struct {
	Name        string  `json:"name" validate:"required"`
	RatePercent float64 `json:"ratePercent" validate:"gte=0,lte=100"`
	Authority   string  `json:"authority" validate:"required"`
	TaxNumber   string  `json:"taxNumber" validate:"omitempty"`
}

type Department struct {
	Name           string `json:"name" validate:"required,min=2"`
	Code           string `json:"code" validate:"omitempty,max=10"`
	HeadEmployeeID string `json:"headEmployeeId" validate:"omitempty"`
}

type Expense struct {
	EmployeeID  string `json:"employeeId" validate:"required"`
	Description string `json:"description" validate:"required"`
	Amount      string `json:"amount" validate:"required,currency"`
	IncurredOn  string `json:"incurredOn" validate:"required,datetime=2006-01-02"`
	Category    string `json:"category" validate:"required,oneof=travel equipment training medical other"`
}

type PayGroup struct {
	Name      string `json:"name" validate:"required"`
	Frequency string `json:"frequency" validate:"required,oneof=weekly biweekly semi-monthly monthly"`
	PayDay    int    `json:"payDay" validate:"gte=1,lte=31"`
}

type JobRole struct {
	Title        string `json:"title" validate:"required"`
	DepartmentID string `json:"departmentId" validate:"required"`
	MinSalary    string `json:"minSalary" validate:"omitempty,currency"`
	MaxSalary    string `json:"maxSalary" validate:"omitempty,currency"`
}

type Loan struct {
	EmployeeID       string `json:"employeeId" validate:"required"`
	Principal        string `json:"principal" validate:"required,currency"`
	TermMonths       int    `json:"termMonths" validate:"required,gt=0"`
	MonthlyDeduction string `json:"monthlyDeduction" validate:"omitempty,currency"`
	StartMonth       string `json:"startMonth" validate:"required,datetime=2006-01"`
}

type OnboardingProfile struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"omitempty"`
	StartDate    string `json:"startDate" validate:"required,datetime=2006-01-02"`
	DepartmentID string `json:"departmentId" validate:"required"`
	JobRoleID    string `json:"jobRoleId" validate:"required"`
	PayGroupID   string `json:"payGroupId" validate:"required"`
}

type PayFrequency struct {
	Name string `json:"name" validate:"required,oneof=weekly biweekly semi-monthly monthly"`
}

type SalaryBreakdown struct {
	Name             string  `json:"name" validate:"required"`
	BasicPercent     float64 `json:"basicPercent" validate:"gte=0,lte=100"`
	HousingPercent   float64 `json:"housingPercent" validate:"gte=0,lte=100"`
	TransportPercent float64 `json:"transportPercent" validate:"gte=0,lte=100"`
	OtherPercent     float64 `json:"otherPercent" validate:"gte=0,lte=100"`
}

// ParseAmount coerces a string-typed currency field into a float. Call only
// after Validate has accepted the form.
func ParseAmount(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
