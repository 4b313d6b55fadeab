package report

import (
	"fmt"

	"github.com/MrJamesThe3rd/finchat/internal/finance"
)

// Insights compares the current month with the previous one (nil when
// unknown) and with its budgets.
func Insights(cur, prev *finance.MonthlySummary) []string {
	currency := cur.User.Currency

	var out []string

	if prev != nil && prev.Expense > 0 {
		ratio := float64(cur.Expense) / float64(prev.Expense)

		switch {
		case cur.Expense*10 > prev.Expense*12:
			out = append(out, fmt.Sprintf("⚠️ Seus gastos aumentaram %s em relação ao mês anterior.", percent((ratio-1)*100)))
		case cur.Expense*10 < prev.Expense*8:
			out = append(out, fmt.Sprintf("✅ Parabéns! Você reduziu seus gastos em %s em relação ao mês anterior.", percent((1-ratio)*100)))
		}

		before := make(map[string]int64, len(prev.ByCategory))
		for _, c := range prev.ByCategory {
			before[c.Category] = c.Amount
		}

		for _, c := range cur.ByCategory {
			p := before[c.Category]
			if p > 0 && c.Amount*10 > p*13 {
				out = append(out, fmt.Sprintf("⚠️ Seus gastos com %s aumentaram %s em relação ao mês anterior.",
					c.Category, percent((float64(c.Amount)/float64(p)-1)*100)))
			}
		}
	}

	for _, st := range cur.Budgets {
		switch p := st.Percentage(); {
		case p > 90:
			out = append(out, fmt.Sprintf("⚠️ Você já utilizou %s do seu orçamento para %s.", percent(p), st.Category))
		case p < 30 && st.Budget > 0:
			out = append(out, fmt.Sprintf("✅ Você está controlando bem seus gastos com %s, utilizando apenas %s do orçamento.", st.Category, percent(p)))
		}
	}

	switch {
	case cur.Expense > cur.Income:
		out = append(out, fmt.Sprintf("⚠️ Suas despesas (%s) estão maiores que suas receitas (%s) este mês.",
			finance.FormatMoney(currency, cur.Expense), finance.FormatMoney(currency, cur.Income)))
	case cur.Income == 0:
	case cur.Expense*10 > cur.Income*9:
		out = append(out, fmt.Sprintf("⚠️ Suas despesas estão consumindo %s da sua renda. Tente reduzir para ter mais folga financeira.",
			percent(float64(cur.Expense)/float64(cur.Income)*100)))
	default:
		out = append(out, fmt.Sprintf("✅ Você está economizando %s da sua renda este mês. Continue assim!",
			percent((1-float64(cur.Expense)/float64(cur.Income))*100)))
	}

	if n := len(cur.Reminders); n > 0 {
		var total int64
		for _, r := range cur.Reminders {
			total += r.Amount
		}

		out = append(out, fmt.Sprintf("📅 Você tem %d contas a pagar este mês, totalizando %s.", n, finance.FormatMoney(currency, total)))
	}

	if n := len(cur.FutureIncomes); n > 0 {
		var total int64
		for _, fi := range cur.FutureIncomes {
			total += fi.Amount
		}

		out = append(out, fmt.Sprintf("💰 Você tem %d receitas futuras previstas para este mês, totalizando %s.", n, finance.FormatMoney(currency, total)))
	}

	if len(out) == 0 {
		out = append(out, "Não temos insights específicos para mostrar neste momento. Continue registrando suas transações para obter análises mais detalhadas.")
	}

	return out
}

// Recommendations suggests where the user could save this month.
func Recommendations(cur *finance.MonthlySummary) []string {
	currency := cur.User.Currency

	var out []string

	if len(cur.ByCategory) > 0 {
		top := cur.ByCategory[0]
		if top.Amount*10 > cur.Expense*3 {
			out = append(out, fmt.Sprintf("🔍 Seus maiores gastos são com %s (%s). Considere reduzir um pouco nesta categoria.",
				top.Category, finance.FormatMoney(currency, top.Amount)))
		}
	}

	for _, st := range cur.Budgets {
		if st.Budget > 0 && st.Spent > st.Budget {
			out = append(out, fmt.Sprintf("💸 Você estourou o orçamento de %s em %s. No próximo mês, tente se manter dentro do limite.",
				st.Category, finance.FormatMoney(currency, st.Spent-st.Budget)))
		}
	}

	if cur.Income > 0 && cur.Expense*10 > cur.Income*7 {
		out = append(out, fmt.Sprintf("💰 Tente economizar pelo menos %s por mês para construir uma reserva de emergência.",
			finance.FormatMoney(currency, cur.Income/5)))
	}

	if len(cur.ByCategory) <= 3 {
		out = append(out, "💼 Considere diversificar suas fontes de renda para aumentar sua estabilidade financeira.")
	}

	if cur.Income > 0 && cur.Balance()*10 > cur.Income*3 {
		out = append(out, "📈 Você tem um bom saldo positivo. Considere investir parte desse valor para fazer seu dinheiro trabalhar para você.")
	}

	if len(out) == 0 {
		out = append(out, "Continue mantendo o controle das suas finanças. Não temos recomendações específicas neste momento.")
	}

	return out
}
