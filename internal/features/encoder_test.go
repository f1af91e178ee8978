package features

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/churnlens/internal/form"
)

// trainingColumns mirrors a get_dummies frame fit on the full HR dataset.
var trainingColumns = []string{
	"Age", "DistanceFromHome", "Education", "JobLevel", "MonthlyIncome",
	"NumCompaniesWorked", "PercentSalaryHike", "StockOptionLevel",
	"TotalWorkingYears", "TrainingTimesLastYear", "YearsAtCompany",
	"YearsSinceLastPromotion", "YearsWithCurrManager",
	"BusinessTravel_Non-Travel", "BusinessTravel_Travel_Frequently", "BusinessTravel_Travel_Rarely",
	"Department_Human Resources", "Department_Research & Development", "Department_Sales",
	"JobRole_Healthcare Representative", "JobRole_Human Resources", "JobRole_Laboratory Technician",
	"JobRole_Manager", "JobRole_Manufacturing Director", "JobRole_Research Director",
	"JobRole_Research Scientist", "JobRole_Sales Executive", "JobRole_Sales Representative",
}

func minimumProfile() form.Profile {
	return form.Profile{
		Age:            18,
		BusinessTravel: "Non-Travel",
		Department:     "Human Resources",
		Education:      1,
		JobLevel:       1,
		JobRole:        "Human Resources",
		MonthlyIncome:  1000,
	}
}

func sampleProfile() form.Profile {
	return form.Profile{
		Age:                     35,
		BusinessTravel:          "Travel_Frequently",
		Department:              "Research & Development",
		DistanceFromHome:        12,
		Education:               3,
		JobLevel:                2,
		JobRole:                 "Research Scientist",
		MonthlyIncome:           4200,
		NumCompaniesWorked:      2,
		PercentSalaryHike:       14,
		StockOptionLevel:        1,
		TotalWorkingYears:       10,
		TrainingTimesLastYear:   3,
		YearsAtCompany:          5,
		YearsSinceLastPromotion: 1,
		YearsWithCurrManager:    4,
	}
}

func TestExpand(t *testing.T) {
	cols := Expand(sampleProfile())
	require.Len(t, cols, 16)

	assert.Equal(t, Column{Name: "Age", Value: 35}, cols[0])
	assert.Equal(t, Column{Name: "YearsWithCurrManager", Value: 4}, cols[12])
	assert.Equal(t, []Column{
		{Name: "BusinessTravel_Travel_Frequently", Value: 1},
		{Name: "Department_Research & Development", Value: 1},
		{Name: "JobRole_Research Scientist", Value: 1},
	}, cols[13:])
}

func TestExpand_RawValueIsTheIndicator(t *testing.T) {
	for _, travel := range form.TravelValues {
		for _, dept := range form.DepartmentValues {
			for _, role := range form.JobRoleValues {
				p := minimumProfile()
				p.BusinessTravel, p.Department, p.JobRole = travel, dept, role

				on := map[string]bool{}
				for _, c := range Expand(p)[len(p.Numeric()):] {
					on[c.Name] = c.Value == 1
				}
				assert.Len(t, on, 3)
				assert.True(t, on["BusinessTravel_"+travel])
				assert.True(t, on["Department_"+dept])
				assert.True(t, on["JobRole_"+role])
			}
		}
	}
}

func TestEncode_MatchesDeclaredOrder(t *testing.T) {
	v, err := Encode(sampleProfile(), trainingColumns)
	require.NoError(t, err)

	assert.Equal(t, trainingColumns, v.Columns)
	require.Equal(t, len(trainingColumns), v.Len())

	want := map[string]float64{
		"Age": 35, "DistanceFromHome": 12, "Education": 3, "JobLevel": 2,
		"MonthlyIncome": 4200, "NumCompaniesWorked": 2, "PercentSalaryHike": 14,
		"StockOptionLevel": 1, "TotalWorkingYears": 10, "TrainingTimesLastYear": 3,
		"YearsAtCompany": 5, "YearsSinceLastPromotion": 1, "YearsWithCurrManager": 4,
		"BusinessTravel_Travel_Frequently": 1,
		"Department_Research & Development": 1,
		"JobRole_Research Scientist": 1,
	}
	for i, name := range v.Columns {
		assert.Equal(t, want[name], v.Values[i], name)
	}
}

func TestEncode_ReconcilesMissingAndExtra(t *testing.T) {
	p := minimumProfile()
	p.Age = 44

	v, err := Encode(p, []string{"Age", "Department_Sales"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Age", "Department_Sales"}, v.Columns)
	assert.Equal(t, []float64{44, 0}, v.Values)

	assert.ElementsMatch(t, []string{
		"DistanceFromHome", "Education", "JobLevel", "MonthlyIncome",
		"NumCompaniesWorked", "PercentSalaryHike", "StockOptionLevel",
		"TotalWorkingYears", "TrainingTimesLastYear", "YearsAtCompany",
		"YearsSinceLastPromotion", "YearsWithCurrManager",
		"BusinessTravel_Non-Travel", "Department_Human Resources", "JobRole_Human Resources",
	}, Dropped(p, []string{"Age", "Department_Sales"}))
}

func TestEncode_ColumnSetIsExactlyDeclared(t *testing.T) {
	lists := [][]string{
		{"Department_Sales"},
		{"Unseen_Column", "Age"},
		{"JobRole_Manager", "JobRole_Human Resources", "MonthlyIncome"},
		trainingColumns,
		append([]string{"Zeta"}, trainingColumns...),
	}
	for _, declared := range lists {
		v, err := Encode(sampleProfile(), declared)
		require.NoError(t, err)
		assert.Equal(t, declared, v.Columns)
		assert.Len(t, v.Values, len(declared))
	}
}

func TestEncode_Idempotent(t *testing.T) {
	a, err := Encode(sampleProfile(), trainingColumns)
	require.NoError(t, err)
	b, err := Encode(sampleProfile(), trainingColumns)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, a.String(), b.String())
}

func TestEncode_MinimumProfile(t *testing.T) {
	v, err := Encode(minimumProfile(), trainingColumns)
	require.NoError(t, err)

	got, ok := v.Value("Age")
	require.True(t, ok)
	assert.Equal(t, 18.0, got)

	got, _ = v.Value("MonthlyIncome")
	assert.Equal(t, 1000.0, got)
	got, _ = v.Value("JobRole_Human Resources")
	assert.Equal(t, 1.0, got)
	got, _ = v.Value("JobRole_Manager")
	assert.Equal(t, 0.0, got)

	var ones int
	for _, x := range v.Values[13:] {
		if x == 1 {
			ones++
		}
	}
	assert.Equal(t, 3, ones)
}

func TestEncode_NoDeclaredFeatures(t *testing.T) {
	_, err := Encode(sampleProfile(), nil)
	assert.True(t, errors.Is(err, ErrNoDeclaredFeatures))

	_, err = Encode(sampleProfile(), []string{})
	assert.True(t, errors.Is(err, ErrNoDeclaredFeatures))
}

func TestEncode_DuplicateDeclared(t *testing.T) {
	_, err := Encode(sampleProfile(), []string{"Age", "Age"})
	assert.Error(t, err)
}

func TestVectorString(t *testing.T) {
	v := Vector{Columns: []string{"Age", "Department_Sales"}, Values: []float64{30, 0}}
	assert.Equal(t, "Age=30, Department_Sales=0", v.String())

	_, ok := v.Value("missing")
	assert.False(t, ok)
}
