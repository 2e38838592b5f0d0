package entity

import "time"

// Partner representa un socio de la firma. Sus aportes y retiros viven en el
// libro de caja (categorías partner_contribution / partner_withdrawal); el
// saldo de su billetera se deriva siempre de esas filas, nunca se almacena.
type Partner struct {
	ID        string
	Name      string
	Phone     string
	Active    bool
	CreatedAt time.Time
}
