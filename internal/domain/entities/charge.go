package entities

// ChargeType tags an ad-hoc charge line.
type ChargeType string

const (
	ChargeTypeChallan    ChargeType = "Challan"
	ChargeTypeDamage     ChargeType = "Damage"
	ChargeTypeAdditional ChargeType = "Additional"
)

func (t ChargeType) Valid() bool {
	switch t {
	case ChargeTypeChallan, ChargeTypeDamage, ChargeTypeAdditional:
		return true
	}
	return false
}

// ChargeLine is one locally editable charge. Amounts are kept as entered.
type ChargeLine struct {
	Type   ChargeType `json:"type"`
	Amount float64    `json:"amount"`
}

// SumCharges adds up the line amounts without rounding.
func SumCharges(lines []ChargeLine) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.Amount
	}
	return total
}

// FirstAmount returns the amount of the first line of the given type, or 0.
func FirstAmount(lines []ChargeLine, t ChargeType) float64 {
	for _, l := range lines {
		if l.Type == t {
			return l.Amount
		}
	}
	return 0
}

// SumRecords adds up challan or damage record amounts.
func SumRecords(records []ChargeRecord) float64 {
	total := 0.0
	for _, r := range records {
		total += r.Amount
	}
	return total
}
