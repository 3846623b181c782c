package models

// UserRegisteredMessage é publicada no broker quando um cadastro é
// concluído. Consumida pelo notification-sender para o email de
// boas-vindas.
type UserRegisteredMessage struct {
	Email string `json:"email"`
	Nome  string `json:"nome"`
}

// SubscriptionStatusMessage é publicada quando o administrador altera a
// assinatura de um usuário. Consumida pelo notification-sender para o
// email de aviso de mudança de status.
type SubscriptionStatusMessage struct {
	Email  string `json:"email"`
	Nome   string `json:"nome"`
	Status string `json:"status"`
	Plano  string `json:"plano,omitempty"`
}
