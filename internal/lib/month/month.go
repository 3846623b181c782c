// Package month contém o cálculo de meses restantes até um prazo,
// usado pelo gerador de insights para avaliar metas.
package month

import (
	"math"
	"time"
)

// Remaining conta os meses restantes entre now e o prazo, arredondando
// para cima em blocos de 30 dias. Nunca devolve menos que 1, mesmo com
// o prazo no passado — a contribuição mensal necessária permanece finita.
func Remaining(deadline, now time.Time) int {
	days := deadline.Sub(now).Hours() / 24
	months := int(math.Ceil(days / 30))
	if months < 1 {
		return 1
	}
	return months
}
