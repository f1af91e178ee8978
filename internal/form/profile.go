package form

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Profile is one submitted employee record. Field names match the
// classifier's raw column names. Categorical fields hold raw values, never
// display labels.
type Profile struct {
	Age                     int    `validate:"gte=18,lte=70"`
	BusinessTravel          string `validate:"oneof=Non-Travel Travel_Frequently Travel_Rarely"`
	Department              string `validate:"oneof='Human Resources' 'Research & Development' Sales"`
	DistanceFromHome        int    `validate:"gte=0,lte=100"`
	Education               int    `validate:"gte=1,lte=5"`
	JobLevel                int    `validate:"gte=1,lte=5"`
	JobRole                 string `validate:"oneof='Healthcare Representative' 'Human Resources' 'Laboratory Technician' Manager 'Manufacturing Director' 'Research Director' 'Research Scientist' 'Sales Executive' 'Sales Representative'"`
	MonthlyIncome           int    `validate:"gte=1000"`
	NumCompaniesWorked      int    `validate:"gte=0"`
	PercentSalaryHike       int    `validate:"gte=0"`
	StockOptionLevel        int    `validate:"gte=0"`
	TotalWorkingYears       int    `validate:"gte=0"`
	TrainingTimesLastYear   int    `validate:"gte=0"`
	YearsAtCompany          int    `validate:"gte=0"`
	YearsSinceLastPromotion int    `validate:"gte=0"`
	YearsWithCurrManager    int    `validate:"gte=0"`
}

// ErrUnknownField is returned by Get and Set for names outside the form.
var ErrUnknownField = errors.New("unknown field")

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile fields: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return e.Err }

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func profileValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks bounds and categorical domains.
func (p Profile) Validate() error {
	err := profileValidator().Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return &ValidationError{Fields: fields, Err: err}
}

// Clamp returns a copy with every numeric field brought into bounds.
func (p Profile) Clamp() Profile {
	v := reflect.ValueOf(&p).Elem()
	for name := range numberFields {
		f, _ := NumberField(name)
		fv := v.FieldByName(name)
		fv.SetInt(int64(f.Clamp(int(fv.Int()))))
	}
	return p
}

// Get returns the raw value of a field as a string.
func (p Profile) Get(name string) (string, error) {
	fv, err := profileField(reflect.ValueOf(&p).Elem(), name)
	if err != nil {
		return "", err
	}
	if fv.Kind() == reflect.String {
		return fv.String(), nil
	}
	return strconv.FormatInt(fv.Int(), 10), nil
}

// Set assigns a raw value to a field. Integer fields parse raw as base 10.
func (p *Profile) Set(name, raw string) error {
	fv, err := profileField(reflect.ValueOf(p).Elem(), name)
	if err != nil {
		return err
	}
	if fv.Kind() == reflect.String {
		fv.SetString(raw)
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("field %s: %w", name, err)
	}
	fv.SetInt(int64(n))
	return nil
}

// Numeric returns the integer fields in record order.
func (p Profile) Numeric() []NumericValue {
	v := reflect.ValueOf(p)
	out := make([]NumericValue, 0, len(RecordOrder)-len(OneHotFields))
	for _, name := range RecordOrder {
		fv := v.FieldByName(name)
		if fv.Kind() == reflect.String {
			continue
		}
		out = append(out, NumericValue{Name: name, Value: float64(fv.Int())})
	}
	return out
}

// Categorical returns the one-hot fields with their raw values.
func (p Profile) Categorical() []CategoricalValue {
	v := reflect.ValueOf(p)
	out := make([]CategoricalValue, 0, len(OneHotFields))
	for _, name := range OneHotFields {
		out = append(out, CategoricalValue{Name: name, Value: v.FieldByName(name).String()})
	}
	return out
}

// NumericValue is a named numeric column.
type NumericValue struct {
	Name  string
	Value float64
}

// CategoricalValue is a named raw categorical value.
type CategoricalValue struct {
	Name  string
	Value string
}

func profileField(v reflect.Value, name string) (reflect.Value, error) {
	fv := v.FieldByName(name)
	if !fv.IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return fv, nil
}
