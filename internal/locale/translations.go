package locale

import "golang.org/x/text/language"

type Lang string

const (
	English    Lang = "en"
	Spanish    Lang = "es"
	French     Lang = "fr"
	Arabic     Lang = "ar"
	Swahili    Lang = "sw"
	Portuguese Lang = "pt"
)

// Languages lists the supported languages; English is first and is the fallback.
var Languages = []Lang{English, Spanish, French, Arabic, Swahili, Portuguese}

var matcher = language.NewMatcher([]language.Tag{
	language.English, language.Spanish, language.French,
	language.Arabic, language.Swahili, language.Portuguese,
})

var translations = map[Lang]map[string]string{
	English: {
		"welcome": "Welcome to Bilantra", "goodMorning": "Good morning", "goodAfternoon": "Good afternoon",
		"goodEvening": "Good evening", "dashboard": "Dashboard", "cashFlow": "Cash Flow",
		"inventory": "Inventory", "revenue": "Revenue", "weeklyRevenue": "Weekly Revenue",
		"loanReadiness": "Loan Readiness", "quickInvoice": "Quick Invoice", "logout": "Logout",
		"reports": "Reports", "team": "Team", "expenses": "Expenses", "profit": "Profit",
	},
	Spanish: {
		"welcome": "Bienvenido a Bilantra", "goodMorning": "Buenos días", "goodAfternoon": "Buenas tardes",
		"goodEvening": "Buenas noches", "dashboard": "Panel de Control", "cashFlow": "Flujo de Efectivo",
		"inventory": "Inventario", "revenue": "Ingresos", "weeklyRevenue": "Ingresos Semanales",
		"loanReadiness": "Preparación para Préstamo", "quickInvoice": "Factura Rápida", "logout": "Cerrar Sesión",
		"reports": "Informes", "team": "Equipo", "expenses": "Gastos", "profit": "Beneficio",
	},
	French: {
		"welcome": "Bienvenue sur Bilantra", "goodMorning": "Bonjour", "goodAfternoon": "Bon après-midi",
		"goodEvening": "Bonsoir", "dashboard": "Tableau de Bord", "cashFlow": "Flux de Trésorerie",
		"inventory": "Inventaire", "revenue": "Revenus", "weeklyRevenue": "Revenus Hebdomadaires",
		"loanReadiness": "Préparation au Prêt", "quickInvoice": "Facture Rapide", "logout": "Déconnexion",
		"reports": "Rapports", "team": "Équipe", "expenses": "Dépenses", "profit": "Profit",
	},
	Arabic: {
		"welcome": "مرحباً بك في بيلانترا", "goodMorning": "صباح الخير", "goodAfternoon": "مساء الخير",
		"goodEvening": "مساء الخير", "dashboard": "لوحة التحكم", "cashFlow": "التدفق النقدي",
		"inventory": "المخزون", "revenue": "الإيرادات", "weeklyRevenue": "الإيرادات الأسبوعية",
		"loanReadiness": "جاهزية القرض", "quickInvoice": "فاتورة سريعة", "logout": "تسجيل الخروج",
		"reports": "التقارير", "team": "الفريق", "expenses": "المصروفات", "profit": "الربح",
	},
	Swahili: {
		"welcome": "Karibu Bilantra", "goodMorning": "Habari za asubuhi", "goodAfternoon": "Habari za mchana",
		"goodEvening": "Habari za jioni", "dashboard": "Dashibodi", "cashFlow": "Mtiririko wa Fedha",
		"inventory": "Hifadhi", "revenue": "Mapato", "weeklyRevenue": "Mapato ya Kila Wiki",
		"loanReadiness": "Utayari wa Mkopo", "quickInvoice": "Ankara ya Haraka", "logout": "Toka",
		"reports": "Ripoti", "team": "Timu", "expenses": "Matumizi", "profit": "Faida",
	},
	Portuguese: {
		"welcome": "Bem-vindo ao Bilantra", "goodMorning": "Bom dia", "goodAfternoon": "Boa tarde",
		"goodEvening": "Boa noite", "dashboard": "Painel", "cashFlow": "Fluxo de Caixa",
		"inventory": "Inventário", "revenue": "Receita", "weeklyRevenue": "Receita Semanal",
		"loanReadiness": "Preparação para Empréstimo", "quickInvoice": "Fatura Rápida", "logout": "Sair",
		"reports": "Relatórios", "team": "Equipe", "expenses": "Despesas", "profit": "Lucro",
	},
}

// Supported reports whether code names a translated language.
func Supported(code string) bool {
	_, ok := translations[Lang(code)]
	return ok
}

// T looks key up in lang, then English, then returns the key itself.
func T(lang Lang, key string) string {
	if v, ok := translations[lang][key]; ok {
		return v
	}
	if v, ok := translations[English][key]; ok {
		return v
	}
	return key
}

// Labels returns the full label table for lang with English fallbacks filled in.
func Labels(lang Lang) map[string]string {
	out := make(map[string]string, len(translations[English]))
	for k := range translations[English] {
		out[k] = T(lang, k)
	}
	return out
}

// Greeting picks the time-of-day greeting for an hour in 0..23.
func Greeting(lang Lang, hour int) string {
	switch {
	case hour < 12:
		return T(lang, "goodMorning")
	case hour < 18:
		return T(lang, "goodAfternoon")
	default:
		return T(lang, "goodEvening")
	}
}

// Match picks the best supported language for an Accept-Language header.
func Match(acceptLanguage string) Lang {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return English
	}
	return Languages[idx]
}
