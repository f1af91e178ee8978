package form

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/churnlens/internal/locale"
)

func newTestSchema(t *testing.T, loc locale.Locale) *Schema {
	t.Helper()
	s, err := NewSchema([]int{2, 1, 4, 3, 5}, []int{2, 1, 3, 4, 5}, loc)
	require.NoError(t, err)
	return s
}

func minimumProfile() Profile {
	return Profile{
		Age:            18,
		BusinessTravel: "Non-Travel",
		Department:     "Human Resources",
		Education:      1,
		JobLevel:       1,
		JobRole:        "Human Resources",
		MonthlyIncome:  1000,
	}
}

func TestSchemaHasSixteenFields(t *testing.T) {
	s := newTestSchema(t, locale.English)
	fields := s.Fields()
	require.Len(t, fields, 16)

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	record := append([]string(nil), RecordOrder...)
	sort.Strings(names)
	sort.Strings(record)
	assert.Equal(t, record, names)
}

func TestSchemaGroups(t *testing.T) {
	s := newTestSchema(t, locale.English)
	count := map[int]int{}
	for _, f := range s.Fields() {
		count[f.Group]++
	}
	assert.Equal(t, map[int]int{0: 4, 1: 5, 2: 7}, count)
	assert.Equal(t, "Company history", s.GroupTitle(2))
	assert.Equal(t, "", s.GroupTitle(3))
}

func TestCategoricalOptionsAreSorted(t *testing.T) {
	s := newTestSchema(t, locale.Portuguese)
	for _, name := range OneHotFields {
		f, ok := s.Field(name)
		require.True(t, ok)
		assert.True(t, f.OneHot)
		assert.True(t, sort.StringsAreSorted(f.Options), "%s options not sorted", name)
	}
}

func TestOrdinalOptionsKeepDatasetOrder(t *testing.T) {
	s := newTestSchema(t, locale.English)
	edu, _ := s.Field(Education)
	assert.Equal(t, []string{"2", "1", "4", "3", "5"}, edu.Options)
	assert.False(t, edu.OneHot)
}

func TestOptionLabels(t *testing.T) {
	en := newTestSchema(t, locale.English)
	pt := newTestSchema(t, locale.Portuguese)

	assert.Equal(t, "Travels frequently", en.OptionLabel(BusinessTravel, "Travel_Frequently"))
	assert.Equal(t, "Viaja Frequentemente", pt.OptionLabel(BusinessTravel, "Travel_Frequently"))
	assert.Equal(t, "Vendas", pt.OptionLabel(Department, "Sales"))
	assert.Equal(t, "Técnico de Laboratório", pt.OptionLabel(JobRole, "Laboratory Technician"))
	assert.Equal(t, "3", pt.OptionLabel(Education, "3"))

	// every raw value has a label in every locale
	for _, s := range []*Schema{en, pt} {
		for _, name := range OneHotFields {
			f, _ := s.Field(name)
			for _, raw := range f.Options {
				_, ok := optionLabels[s.Locale()][name][raw]
				assert.True(t, ok, "%s: %s/%s has no label", s.Locale(), name, raw)
			}
		}
	}
}

func TestLabelsAndHelp(t *testing.T) {
	pt := newTestSchema(t, locale.Portuguese)
	assert.Equal(t, "Idade", pt.Label(Age))
	assert.Contains(t, pt.Help(Education), "Doutorado")
	assert.Equal(t, "", pt.Help(Age))
	assert.Equal(t, "Unknown", pt.Label("Unknown"))
}

func TestDefaults(t *testing.T) {
	s := newTestSchema(t, locale.English)
	p := s.Defaults()

	assert.Equal(t, 30, p.Age)
	assert.Equal(t, 5000, p.MonthlyIncome)
	assert.Equal(t, 0, p.DistanceFromHome)
	assert.Equal(t, "Non-Travel", p.BusinessTravel)
	assert.Equal(t, "Human Resources", p.Department)
	assert.Equal(t, "Healthcare Representative", p.JobRole)
	assert.Equal(t, 2, p.Education)
	assert.Equal(t, 2, p.JobLevel)
	assert.NoError(t, p.Validate())
}

func TestNewSchemaRequiresOptions(t *testing.T) {
	_, err := NewSchema(nil, []int{1}, locale.English)
	assert.Error(t, err)
	_, err = NewSchema([]int{1}, nil, locale.English)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, minimumProfile().Validate())

	tests := []struct {
		name   string
		mutate func(*Profile)
		field  string
	}{
		{"age below", func(p *Profile) { p.Age = 17 }, Age},
		{"age above", func(p *Profile) { p.Age = 71 }, Age},
		{"distance above", func(p *Profile) { p.DistanceFromHome = 101 }, DistanceFromHome},
		{"income below", func(p *Profile) { p.MonthlyIncome = 999 }, MonthlyIncome},
		{"negative years", func(p *Profile) { p.YearsAtCompany = -1 }, YearsAtCompany},
		{"education zero", func(p *Profile) { p.Education = 0 }, Education},
		{"job level six", func(p *Profile) { p.JobLevel = 6 }, JobLevel},
		{"translated travel label", func(p *Profile) { p.BusinessTravel = "Viaja Raramente" }, BusinessTravel},
		{"unknown department", func(p *Profile) { p.Department = "Legal" }, Department},
		{"unknown role", func(p *Profile) { p.JobRole = "Intern" }, JobRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := minimumProfile()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, []string{tt.field}, verr.Fields)
		})
	}
}

func TestValidateAcceptsEveryDomainValue(t *testing.T) {
	p := minimumProfile()
	for _, v := range TravelValues {
		p.BusinessTravel = v
		assert.NoError(t, p.Validate(), v)
	}
	for _, v := range DepartmentValues {
		p.Department = v
		assert.NoError(t, p.Validate(), v)
	}
	for _, v := range JobRoleValues {
		p.JobRole = v
		assert.NoError(t, p.Validate(), v)
	}
}

func TestClamp(t *testing.T) {
	p := minimumProfile()
	p.Age = 5
	p.DistanceFromHome = 500
	p.MonthlyIncome = 10
	p.YearsWithCurrManager = -3
	p.TotalWorkingYears = 40

	c := p.Clamp()
	assert.Equal(t, 18, c.Age)
	assert.Equal(t, 100, c.DistanceFromHome)
	assert.Equal(t, 1000, c.MonthlyIncome)
	assert.Equal(t, 0, c.YearsWithCurrManager)
	assert.Equal(t, 40, c.TotalWorkingYears)
	assert.NoError(t, c.Validate())

	// original untouched
	assert.Equal(t, 5, p.Age)
}

func TestGetSet(t *testing.T) {
	var p Profile
	require.NoError(t, p.Set(Age, " 42 "))
	require.NoError(t, p.Set(JobRole, "Manager"))
	assert.Equal(t, 42, p.Age)
	assert.Equal(t, "Manager", p.JobRole)

	got, err := p.Get(Age)
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	got, err = p.Get(JobRole)
	require.NoError(t, err)
	assert.Equal(t, "Manager", got)

	assert.Error(t, p.Set(Age, "forty"))
	err = p.Set("Salary", "1")
	assert.True(t, errors.Is(err, ErrUnknownField))
	_, err = p.Get("Salary")
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestNumericAndCategorical(t *testing.T) {
	p := minimumProfile()
	p.YearsWithCurrManager = 7

	num := p.Numeric()
	require.Len(t, num, 13)
	assert.Equal(t, NumericValue{Name: Age, Value: 18}, num[0])
	assert.Equal(t, NumericValue{Name: YearsWithCurrManager, Value: 7}, num[12])

	cat := p.Categorical()
	assert.Equal(t, []CategoricalValue{
		{Name: BusinessTravel, Value: "Non-Travel"},
		{Name: Department, Value: "Human Resources"},
		{Name: JobRole, Value: "Human Resources"},
	}, cat)
}

func TestOutOfDomain(t *testing.T) {
	s, err := NewSchema([]int{1, 2, 7}, []int{1, 2, 3, 4, 5}, locale.English)
	require.NoError(t, err)

	extra, missing := s.OutOfDomain(Education)
	assert.Equal(t, []int{7}, extra)
	assert.Equal(t, []int{3, 4, 5}, missing)

	extra, missing = s.OutOfDomain(JobLevel)
	assert.Empty(t, extra)
	assert.Empty(t, missing)

	extra, missing = s.OutOfDomain(JobRole)
	assert.Nil(t, extra)
	assert.Nil(t, missing)
}
