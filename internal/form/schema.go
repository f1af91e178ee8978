package form

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/abhisek/churnlens/internal/locale"
)

// Schema is the form definition for one session: the static fields plus the
// ordinal option lists observed in the reference dataset.
type Schema struct {
	fields []Field
	byName map[string]int
	locale locale.Locale
}

// NewSchema builds the form. educationLevels and jobLevels are the values
// observed in the reference dataset, in the order they should be offered.
func NewSchema(educationLevels, jobLevels []int, loc locale.Locale) (*Schema, error) {
	if len(educationLevels) == 0 {
		return nil, fmt.Errorf("no %s options", Education)
	}
	if len(jobLevels) == 0 {
		return nil, fmt.Errorf("no %s options", JobLevel)
	}

	selects := map[string]Field{
		BusinessTravel: {Group: 0, Options: TravelValues, OneHot: true},
		Education:      {Group: 0, Options: intOptions(educationLevels)},
		Department:     {Group: 1, Options: DepartmentValues, OneHot: true},
		JobLevel:       {Group: 1, Options: intOptions(jobLevels)},
		JobRole:        {Group: 1, Options: JobRoleValues, OneHot: true},
	}

	s := &Schema{byName: make(map[string]int, len(formOrder)), locale: loc}
	for _, name := range formOrder {
		var f Field
		if nf, ok := NumberField(name); ok {
			f = nf
		} else {
			f = selects[name]
			f.Name = name
			f.Kind = KindSelect
			f.Options = slices.Clone(f.Options)
		}
		s.byName[name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// Fields returns the fields in on-screen order.
func (s *Schema) Fields() []Field {
	return slices.Clone(s.fields)
}

// Field looks up a field by name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Locale returns the display locale.
func (s *Schema) Locale() locale.Locale {
	return s.locale
}

// Label returns the display label of a field.
func (s *Schema) Label(name string) string {
	if l, ok := locale.Pick(fieldLabels, s.locale)[name]; ok {
		return l
	}
	return name
}

// Help returns the help text of a field, or "".
func (s *Schema) Help(name string) string {
	return locale.Pick(fieldHelp, s.locale)[name]
}

// GroupTitle returns the heading of a column group.
func (s *Schema) GroupTitle(group int) string {
	titles := locale.Pick(groupTitles, s.locale)
	if group < 0 || group >= len(titles) {
		return ""
	}
	return titles[group]
}

// OptionLabel translates a raw select value for display. Values without a
// translation (the ordinal levels) are shown as-is.
func (s *Schema) OptionLabel(name, raw string) string {
	if l, ok := locale.Pick(optionLabels, s.locale)[name][raw]; ok {
		return l
	}
	return raw
}

// Defaults returns the profile the form starts with: numeric defaults and
// the first option of every select.
func (s *Schema) Defaults() Profile {
	var p Profile
	for _, f := range s.fields {
		var raw string
		if f.Kind == KindSelect {
			raw = f.Options[0]
		} else {
			raw = strconv.Itoa(f.Default)
		}
		// Names come from the schema itself, Set cannot fail here.
		_ = p.Set(f.Name, raw)
	}
	return p
}

// OutOfDomain reports ordinal option values outside OrdinalDomain and
// domain values absent from the options. Either indicates that the dataset
// and the classifier disagree about the ordinal domain.
func (s *Schema) OutOfDomain(name string) (extra []int, missing []int) {
	f, ok := s.Field(name)
	if !ok || f.Kind != KindSelect || f.OneHot {
		return nil, nil
	}
	seen := make(map[int]bool, len(f.Options))
	for _, o := range f.Options {
		n, err := strconv.Atoi(o)
		if err != nil {
			continue
		}
		seen[n] = true
		if !slices.Contains(OrdinalDomain, n) {
			extra = append(extra, n)
		}
	}
	for _, d := range OrdinalDomain {
		if !seen[d] {
			missing = append(missing, d)
		}
	}
	return extra, missing
}

func intOptions(vals []int) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = strconv.Itoa(v)
	}
	return out
}
