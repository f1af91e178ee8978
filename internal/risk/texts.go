package risk

import "github.com/abhisek/churnlens/internal/locale"

type block struct {
	status  string
	title   string
	actions []Action
}

var disclaimers = map[locale.Locale]string{
	locale.English:    "The model gives an estimate. Use it as a starting point for a constructive conversation.",
	locale.Portuguese: "O modelo fornece uma estimativa. Use-a como um ponto de partida para um diálogo construtivo.",
}

var recommendations = map[locale.Locale]map[Tier]block{
	locale.English: {
		TierLow: {
			status: "LOW RISK of leaving.",
			title:  "Actions to sustain engagement and satisfaction",
			actions: []Action{
				{"Continuous monitoring", "Hold periodic check-ins to make sure the employee stays satisfied and engaged."},
				{"Growth opportunities", "Keep offering challenges and learning opportunities to sustain high performance."},
				{"Recognition", "Recognise and celebrate achievements to reinforce the feeling of being valued."},
				{"Quality of life", "Encourage a healthy balance between personal and professional life."},
			},
		},
		TierMedium: {
			status: "MEDIUM RISK of leaving. Pay attention!",
			title:  "Suggested actions to mitigate the risk",
			actions: []Action{
				{"Open dialogue", "Schedule a conversation to understand the employee's expectations and possible dissatisfaction."},
				{"Development plan", "Build an individual development plan showing a clear growth path in the company."},
				{"Compensation review", "Review how competitive salary and benefits are."},
				{"Mentoring", "Pair the employee with a mentor for guidance and support."},
				{"Constructive feedback", "Give more frequent, development-oriented feedback."},
			},
		},
		TierHigh: {
			status: "HIGH RISK of leaving. Act quickly!",
			title:  "Critical retention actions",
			actions: []Action{
				{"Development and career", "Create an individual development plan with clear, urgent goals. Offer mentoring or coaching."},
				{"Recognition and value", "Highlight achievements and urgently review the compensation and benefits plan."},
				{"Engagement and climate", "Hold an in-depth check-in to hear their needs and, where possible, make working hours more flexible."},
				{"Leadership and management", "Coach the manager towards more empathetic leadership and make sure the workload is fair."},
			},
		},
	},
	locale.Portuguese: {
		TierLow: {
			status: "BAIXO RISCO de desligamento.",
			title:  "Ações para manter o engajamento e a satisfação",
			actions: []Action{
				{"Monitoramento contínuo", "Realize check-ins periódicos para garantir que o colaborador continue satisfeito e engajado."},
				{"Oportunidades de crescimento", "Continue oferecendo desafios e oportunidades de aprendizado para manter o alto desempenho."},
				{"Reconhecimento", "Reconheça e celebre as conquistas para reforçar o sentimento de valorização."},
				{"Qualidade de vida", "Estimule o equilíbrio entre vida pessoal e profissional."},
			},
		},
		TierMedium: {
			status: "MÉDIO RISCO de desligamento. Atenção!",
			title:  "Ações sugeridas para mitigar o risco",
			actions: []Action{
				{"Diálogo aberto", "Agende uma conversa com o colaborador para entender suas expectativas e possíveis insatisfações."},
				{"Plano de desenvolvimento", "Crie um plano de carreira individualizado (PDI), mostrando um caminho claro de crescimento na empresa."},
				{"Análise de remuneração", "Revise a competitividade do salário e dos benefícios."},
				{"Mentoria", "Conecte o colaborador com um mentor para oferecer orientação e apoio."},
				{"Feedback construtivo", "Promova feedbacks mais frequentes e orientados para o desenvolvimento."},
			},
		},
		TierHigh: {
			status: "ALTO RISCO de desligamento. Aja rapidamente!",
			title:  "Ações de retenção críticas",
			actions: []Action{
				{"Desenvolvimento e Carreira", "Crie um plano de desenvolvimento individual com metas claras e urgentes. Ofereça mentoria ou coaching."},
				{"Reconhecimento e Valorização", "Destaque suas conquistas e revise urgentemente o plano de remuneração e benefícios."},
				{"Engajamento e Clima", "Realize um check-in profundo para ouvir as necessidades e, se possível, flexibilize a jornada de trabalho."},
				{"Liderança e Gestão", "Capacite o gestor para práticas de liderança mais empáticas e garanta que a carga de trabalho seja justa."},
			},
		},
	},
}
