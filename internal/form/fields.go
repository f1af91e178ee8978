// Package form defines the employee profile form: its sixteen fields, their
// bounds and categorical domains, and the display labels shown for them.
// Raw values are what the encoder sees; labels are presentation only.
package form

import "math"

// Kind is the input widget a field uses.
type Kind int

const (
	KindNumber Kind = iota // integer input with bounds
	KindSelect             // pick one of Options
)

// NoMax marks a numeric field without an upper bound.
const NoMax = math.MaxInt32

// Field describes one form input.
type Field struct {
	Name    string
	Kind    Kind
	Group   int
	Min     int
	Max     int
	Default int

	// Options holds the raw values of a select, in display order.
	Options []string

	// OneHot is set for categorical fields expanded into indicator
	// columns. Ordinal selects (Education, JobLevel) stay numeric.
	OneHot bool
}

// HasMax reports whether the field has an upper bound.
func (f Field) HasMax() bool {
	return f.Kind == KindNumber && f.Max != NoMax
}

// Clamp brings v into the field's bounds.
func (f Field) Clamp(v int) int {
	if v < f.Min {
		return f.Min
	}
	if v > f.Max {
		return f.Max
	}
	return v
}

// Field names. They double as the classifier's numeric column names and as
// the prefix of one-hot indicator columns.
const (
	Age                     = "Age"
	BusinessTravel          = "BusinessTravel"
	Department              = "Department"
	DistanceFromHome        = "DistanceFromHome"
	Education               = "Education"
	JobLevel                = "JobLevel"
	JobRole                 = "JobRole"
	MonthlyIncome           = "MonthlyIncome"
	NumCompaniesWorked      = "NumCompaniesWorked"
	PercentSalaryHike       = "PercentSalaryHike"
	StockOptionLevel        = "StockOptionLevel"
	TotalWorkingYears       = "TotalWorkingYears"
	TrainingTimesLastYear   = "TrainingTimesLastYear"
	YearsAtCompany          = "YearsAtCompany"
	YearsSinceLastPromotion = "YearsSinceLastPromotion"
	YearsWithCurrManager    = "YearsWithCurrManager"
)

// RecordOrder is the column order of the flat record handed to the encoder.
var RecordOrder = []string{
	Age, BusinessTravel, Department, DistanceFromHome, Education, JobLevel,
	JobRole, MonthlyIncome, NumCompaniesWorked, PercentSalaryHike,
	StockOptionLevel, TotalWorkingYears, TrainingTimesLastYear,
	YearsAtCompany, YearsSinceLastPromotion, YearsWithCurrManager,
}

// OneHotFields lists the categorical fields expanded by the encoder.
var OneHotFields = []string{BusinessTravel, Department, JobRole}

// Categorical domains, sorted by raw value.
var (
	TravelValues = []string{"Non-Travel", "Travel_Frequently", "Travel_Rarely"}

	DepartmentValues = []string{"Human Resources", "Research & Development", "Sales"}

	JobRoleValues = []string{
		"Healthcare Representative",
		"Human Resources",
		"Laboratory Technician",
		"Manager",
		"Manufacturing Director",
		"Research Director",
		"Research Scientist",
		"Sales Executive",
		"Sales Representative",
	}
)

// OrdinalDomain is the training domain of Education and JobLevel.
var OrdinalDomain = []int{1, 2, 3, 4, 5}

// numberFields holds bounds and defaults for the integer inputs.
var numberFields = map[string]Field{
	Age:                     {Name: Age, Group: 0, Min: 18, Max: 70, Default: 30},
	DistanceFromHome:        {Name: DistanceFromHome, Group: 0, Min: 0, Max: 100},
	MonthlyIncome:           {Name: MonthlyIncome, Group: 1, Min: 1000, Max: NoMax, Default: 5000},
	PercentSalaryHike:       {Name: PercentSalaryHike, Group: 1, Min: 0, Max: NoMax},
	YearsAtCompany:          {Name: YearsAtCompany, Group: 2, Min: 0, Max: NoMax},
	YearsSinceLastPromotion: {Name: YearsSinceLastPromotion, Group: 2, Min: 0, Max: NoMax},
	YearsWithCurrManager:    {Name: YearsWithCurrManager, Group: 2, Min: 0, Max: NoMax},
	TotalWorkingYears:       {Name: TotalWorkingYears, Group: 2, Min: 0, Max: NoMax},
	NumCompaniesWorked:      {Name: NumCompaniesWorked, Group: 2, Min: 0, Max: NoMax},
	TrainingTimesLastYear:   {Name: TrainingTimesLastYear, Group: 2, Min: 0, Max: NoMax},
	StockOptionLevel:        {Name: StockOptionLevel, Group: 2, Min: 0, Max: NoMax},
}

// formOrder is the on-screen order: personal, professional, company history.
var formOrder = []string{
	Age, BusinessTravel, DistanceFromHome, Education,
	Department, JobLevel, JobRole, MonthlyIncome, PercentSalaryHike,
	YearsAtCompany, YearsSinceLastPromotion, YearsWithCurrManager,
	TotalWorkingYears, NumCompaniesWorked, TrainingTimesLastYear, StockOptionLevel,
}

// NumberField returns the bounds of an integer input.
func NumberField(name string) (Field, bool) {
	f, ok := numberFields[name]
	if ok {
		f.Kind = KindNumber
	}
	return f, ok
}
