// Package access implementa a política de acesso baseada na assinatura
// do usuário. As funções são puras: recebem o registro do usuário e
// devolvem a decisão, sem consultar relógio nem banco.
package access

import "github.com/financeflow-app/financeflow/internal/models"

// Decision é o destino decidido pelo guard de rotas.
type Decision int

const (
	// DecisionLogin — usuário ausente: redirecionar para o login.
	DecisionLogin Decision = iota
	// DecisionUpgrade — autenticado sem assinatura ativa: tela de upgrade.
	DecisionUpgrade
	// DecisionAllow — assinatura ativa: liberar a tela protegida.
	DecisionAllow
)

// HasActiveSubscription informa se o usuário tem assinatura ativa.
//
// A regra considera apenas o status: um usuário com status "ativo"
// mantém acesso mesmo com DataFimAssinatura no passado. A precedência
// do status sobre a data é intencional — garante que a liberação manual
// feita pelo administrador sempre funcione sem precisar ajustar a data.
func HasActiveSubscription(u *models.User) bool {
	if u == nil {
		return false
	}
	return u.StatusAssinatura == models.StatusAtivo
}

// Decide traduz o registro do usuário na decisão do guard de rotas.
// Usuário ausente (lookup falhou ou sessão inexistente) cai em
// DecisionLogin: a política fecha o acesso em caso de dúvida.
func Decide(u *models.User) Decision {
	if u == nil {
		return DecisionLogin
	}
	if !HasActiveSubscription(u) {
		return DecisionUpgrade
	}
	return DecisionAllow
}
