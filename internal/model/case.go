package model

import "time"

// Vehicle describes the damaged vehicle as copied from its registration
// document. Flat string group; not lifecycle-managed on its own.
type Vehicle struct {
	Plate            string `json:"plate"`
	RegistrationDate string `json:"registration_date,omitempty"`
	OwnerName        string `json:"owner_name,omitempty"`
	OwnerTC          string `json:"owner_tc,omitempty"`
	Brand            string `json:"brand,omitempty"`
	Model            string `json:"model,omitempty"`
	Year             string `json:"year,omitempty"`
	ChassisNo        string `json:"chassis_no,omitempty"`
	EngineNo         string `json:"engine_no,omitempty"`
	Color            string `json:"color,omitempty"`
	EnginePower      string `json:"engine_power,omitempty"`
}

// Driver describes the driver at the time of the accident.
type Driver struct {
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	BirthDate    string `json:"birth_date,omitempty"`
	TCNo         string `json:"tc_no,omitempty"`
	LicenseNo    string `json:"license_no,omitempty"`
	LicenseClass string `json:"license_class,omitempty"`
	IssueDate    string `json:"issue_date,omitempty"`
	ExpiryDate   string `json:"expiry_date,omitempty"`
	BloodType    string `json:"blood_type,omitempty"`
}

// Accident captures the incident details and the counter-party policy.
type Accident struct {
	Date             string `json:"date,omitempty"`
	Location         string `json:"location,omitempty"`
	Description      string `json:"description,omitempty"`
	FaultRate        string `json:"fault_rate,omitempty"`
	ReportNo         string `json:"report_no,omitempty"`
	InsuranceCompany string `json:"insurance_company,omitempty"`
	PolicyNo         string `json:"policy_no,omitempty"`
}

// Client is the represented party (the vehicle owner pursuing the claim).
type Client struct {
	FullName string `json:"full_name"`
	TCNo     string `json:"tc_no,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	IBAN     string `json:"iban,omitempty"`
	Address  string `json:"address,omitempty"`
}

// StageEntry is one append-only record in a case's stage history.
type StageEntry struct {
	Stage Stage     `json:"stage"`
	Date  time.Time `json:"date"`
	Note  string    `json:"note,omitempty"`
}

// Expense is one entry in a case's expense ledger.
type Expense struct {
	ID     string    `json:"id"`
	Label  string    `json:"label"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// IncomeItem is an extra revenue line recorded at settlement time.
type IncomeItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Settlement is the final financial computation of a case, written exactly
// once when the case is closed and immutable afterwards.
type Settlement struct {
	CompensationAmount  float64      `json:"compensation_amount"`
	FeeFromCompensation float64      `json:"fee_from_compensation"`
	CounterAttorneyFee  float64      `json:"counter_attorney_fee"`
	WithholdingTax      float64      `json:"withholding_tax"`
	InterestAmount      float64      `json:"interest_amount"`
	OtherIncomeItems    []IncomeItem `json:"other_income_items,omitempty"`
	TotalRevenue        float64      `json:"total_revenue"`
	TotalExpenses       float64      `json:"total_expenses"`
	NetProfit           float64      `json:"net_profit"`
	OwnerShare          float64      `json:"owner_share"`
	LawyerShare         float64      `json:"lawyer_share"`
	ClientPayment       float64      `json:"client_payment"`
}

// Case is a single value-loss claim file tracked through its lifecycle.
// Pure domain model, no database-specific dependencies or tags.
type Case struct {
	ID            string       `json:"id"`
	CaseNo        string       `json:"case_no"`
	Vehicle       Vehicle      `json:"vehicle"`
	Driver        Driver       `json:"driver"`
	Accident      Accident     `json:"accident"`
	Client        Client       `json:"client"`
	FeePercentage float64      `json:"fee_percentage"`
	LawyerID      *string      `json:"lawyer_id,omitempty"`
	AssignedAt    *time.Time   `json:"assigned_at,omitempty"`
	Status        Stage        `json:"status"`
	StageHistory  []StageEntry `json:"stage_history"`
	Expenses      []Expense    `json:"expenses"`
	Settlement    *Settlement  `json:"settlement,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Closed reports whether the case has reached its terminal stage.
func (c *Case) Closed() bool {
	return c.Status == StageClosed
}

// ExpenseTotal sums the current expense ledger.
func (c *Case) ExpenseTotal() float64 {
	var total float64
	for _, e := range c.Expenses {
		total += e.Amount
	}
	return total
}
