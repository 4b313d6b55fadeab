package bankcsv

type amountMode int

const (
	// amountSingle is one signed column, e.g. "Valor" with "-45,90".
	amountSingle amountMode = iota
	// amountSplit is separate debit and credit columns.
	amountSplit
)

// Profile describes the column layout of one bank's CSV export. Column
// names are compared lower-cased.
type Profile struct {
	Name       string
	DateCol    string
	DescCols   []string
	AmountMode amountMode
	AmountCol  string
	DebitCol   string
	CreditCol  string
	// ExpensePositive flips the sign convention, as credit card bills list
	// purchases as positive values.
	ExpensePositive bool
}

func (p Profile) requiredCols() []string {
	cols := append([]string{p.DateCol}, p.DescCols...)

	switch p.AmountMode {
	case amountSingle:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is tried in order, so layouts with more columns come first.
var profiles = []Profile{
	{
		Name:       "inter",
		DateCol:    "data lançamento",
		DescCols:   []string{"histórico", "descrição"},
		AmountMode: amountSingle,
		AmountCol:  "valor",
	},
	{
		Name:       "nubank-conta",
		DateCol:    "data",
		DescCols:   []string{"descrição"},
		AmountMode: amountSingle,
		AmountCol:  "valor",
	},
	{
		Name:            "nubank-cartao",
		DateCol:         "date",
		DescCols:        []string{"title"},
		AmountMode:      amountSingle,
		AmountCol:       "amount",
		ExpensePositive: true,
	},
	{
		Name:       "itau",
		DateCol:    "data",
		DescCols:   []string{"lançamento"},
		AmountMode: amountSingle,
		AmountCol:  "valor",
	},
	{
		Name:       "debito-credito",
		DateCol:    "data",
		DescCols:   []string{"descrição"},
		AmountMode: amountSplit,
		DebitCol:   "débito",
		CreditCol:  "crédito",
	},
}
