// README: Money value object for ride prices; the remote API reports reais as decimals.
package types

const CurrencyBRL = "BRL"

type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func BRL(amount float64) Money {
	return Money{Amount: amount, Currency: CurrencyBRL}
}
