package models

import "github.com/shopspring/decimal"

// InvestmentType classifies an investment. The set is open: values outside
// the predefined constants are kept as-is.
type InvestmentType string

const (
	InvestmentTypeStocks      InvestmentType = "Ações"
	InvestmentTypeFixedIncome InvestmentType = "Renda Fixa"
	InvestmentTypeTreasury    InvestmentType = "Tesouro Direto"
	InvestmentTypeCrypto      InvestmentType = "Cripto"
	InvestmentTypeFunds       InvestmentType = "Fundos"
)

// Investment is a single ledger record.
//
// ID is assigned by the ledger at creation time and never changes. The JSON
// field names define the persisted layout of the investment-ledger store key.
type Investment struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Type       InvestmentType  `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Date       Date            `json:"date"`
	ReturnRate decimal.Decimal `json:"returnRate"`
	ExpDate    Date            `json:"expDate"`
	Notes      string          `json:"notes"`
}

// InvestmentDraft carries every user-editable field of an Investment,
// i.e. everything except the ID. Used for both create and update.
type InvestmentDraft struct {
	Name       string
	Type       InvestmentType
	Amount     decimal.Decimal
	Date       Date
	ReturnRate decimal.Decimal
	ExpDate    Date
	Notes      string
}

var oneHundred = decimal.NewFromInt(100)

// EstimatedProfit returns amount * returnRate / 100, computed on the
// record's current values.
func (i Investment) EstimatedProfit() decimal.Decimal {
	return i.Amount.Mul(i.ReturnRate).Div(oneHundred)
}
