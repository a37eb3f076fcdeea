package models

import "github.com/shopspring/decimal"

// Tabela fixa de preços por plano, em reais. O valor em centavos é o que
// vai para o gateway de pagamento.
var planoPrices = map[string]struct {
	amount   decimal.Decimal
	centavos int64
}{
	PlanoPix:    {decimal.New(29700, -2), 29700},
	PlanoCartao: {decimal.New(2970, -2), 2970},
}

// PlanoAmount devolve o valor do plano em reais. O segundo retorno indica
// se o plano existe na tabela.
func PlanoAmount(plano string) (decimal.Decimal, bool) {
	p, ok := planoPrices[plano]
	return p.amount, ok
}

// PlanoAmountCentavos devolve o valor do plano em centavos, como o gateway
// espera receber.
func PlanoAmountCentavos(plano string) (int64, bool) {
	p, ok := planoPrices[plano]
	return p.centavos, ok
}
