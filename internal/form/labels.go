package form

import "github.com/abhisek/churnlens/internal/locale"

var groupTitles = map[locale.Locale][3]string{
	locale.English:    {"Personal", "Professional", "Company history"},
	locale.Portuguese: {"Informações Pessoais", "Informações Profissionais", "Histórico na Empresa"},
}

var fieldLabels = map[locale.Locale]map[string]string{
	locale.English: {
		Age:                     "Age",
		BusinessTravel:          "Business travel",
		DistanceFromHome:        "Distance from home (km)",
		Education:               "Education level",
		Department:              "Department",
		JobLevel:                "Job level",
		JobRole:                 "Job role",
		MonthlyIncome:           "Monthly income",
		PercentSalaryHike:       "Salary hike (%)",
		YearsAtCompany:          "Years at company",
		YearsSinceLastPromotion: "Years since last promotion",
		YearsWithCurrManager:    "Years with current manager",
		TotalWorkingYears:       "Total working years",
		NumCompaniesWorked:      "Previous companies",
		TrainingTimesLastYear:   "Trainings last year",
		StockOptionLevel:        "Stock option level",
	},
	locale.Portuguese: {
		Age:                     "Idade",
		BusinessTravel:          "Viagens a trabalho",
		DistanceFromHome:        "Distância de casa (km)",
		Education:               "Nível de Educação",
		Department:              "Departamento",
		JobLevel:                "Nível do cargo",
		JobRole:                 "Cargo",
		MonthlyIncome:           "Salário Mensal",
		PercentSalaryHike:       "Percentual de aumento salarial (%)",
		YearsAtCompany:          "Tempo na empresa (anos)",
		YearsSinceLastPromotion: "Anos desde a última promoção",
		YearsWithCurrManager:    "Anos com o gestor atual",
		TotalWorkingYears:       "Total de anos de experiência",
		NumCompaniesWorked:      "Número de empresas anteriores",
		TrainingTimesLastYear:   "Treinamentos no último ano",
		StockOptionLevel:        "Nível de opções de ações",
	},
}

var fieldHelp = map[locale.Locale]map[string]string{
	locale.English: {
		Education:        "1: Below college, 2: College, 3: Bachelor, 4: Master, 5: Doctor",
		JobLevel:         "1: Junior, 2: Mid-level, 3: Senior, 4: Coordinator, 5: Manager / Director",
		StockOptionLevel: "The higher the number, the more stock options the employee holds.",
	},
	locale.Portuguese: {
		Education:        "1: Abaixo da faculdade, 2: Universidade, 3: Bacharelado, 4: Mestrado, 5: Doutorado",
		JobLevel:         "1: Junior, 2: Pleno, 3: Sênior, 4: Coordenador, 5: Gerente / Diretor",
		StockOptionLevel: "Quanto maior o número, mais opções de ações o funcionário possui.",
	},
}

// optionLabels translates raw categorical values into display labels.
var optionLabels = map[locale.Locale]map[string]map[string]string{
	locale.English: {
		BusinessTravel: {
			"Non-Travel":        "Does not travel",
			"Travel_Frequently": "Travels frequently",
			"Travel_Rarely":     "Travels rarely",
		},
		Department: {
			"Human Resources":        "Human Resources",
			"Research & Development": "Research & Development",
			"Sales":                  "Sales",
		},
		JobRole: {
			"Healthcare Representative": "Healthcare Representative",
			"Human Resources":           "Human Resources",
			"Laboratory Technician":     "Laboratory Technician",
			"Manager":                   "Manager",
			"Manufacturing Director":    "Manufacturing Director",
			"Research Director":         "Research Director",
			"Research Scientist":        "Research Scientist",
			"Sales Executive":           "Sales Executive",
			"Sales Representative":      "Sales Representative",
		},
	},
	locale.Portuguese: {
		BusinessTravel: {
			"Non-Travel":        "Não Viaja",
			"Travel_Frequently": "Viaja Frequentemente",
			"Travel_Rarely":     "Viaja Raramente",
		},
		Department: {
			"Human Resources":        "Recursos Humanos",
			"Research & Development": "Pesquisa & Desenvolvimento",
			"Sales":                  "Vendas",
		},
		JobRole: {
			"Healthcare Representative": "Representante de Saúde",
			"Human Resources":           "Recursos Humanos",
			"Laboratory Technician":     "Técnico de Laboratório",
			"Manager":                   "Gerente",
			"Manufacturing Director":    "Diretor de Manufatura",
			"Research Director":         "Diretor de Pesquisa",
			"Research Scientist":        "Cientista de Pesquisa",
			"Sales Executive":           "Executivo de Vendas",
			"Sales Representative":      "Representante de Vendas",
		},
	},
}
