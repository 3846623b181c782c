package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/financeflow-app/financeflow/internal/models"
)

func TestHasActiveSubscription(t *testing.T) {
	passado := time.Now().AddDate(0, -1, 0)
	futuro := time.Now().AddDate(0, 1, 0)

	tests := []struct {
		name string
		user *models.User
		want bool
	}{
		{
			name: "usuário nil",
			user: nil,
			want: false,
		},
		{
			name: "status ativo libera mesmo com data fim no passado",
			user: &models.User{StatusAssinatura: models.StatusAtivo, DataFimAssinatura: &passado},
			want: true,
		},
		{
			name: "status expirado bloqueia mesmo com data fim no futuro",
			user: &models.User{StatusAssinatura: models.StatusExpirado, DataFimAssinatura: &futuro},
			want: false,
		},
		{
			name: "status inativo bloqueia",
			user: &models.User{StatusAssinatura: models.StatusInativo},
			want: false,
		},
		{
			name: "nunca assinou bloqueia",
			user: &models.User{StatusAssinatura: models.StatusNaoAssinou},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasActiveSubscription(tt.user))
		})
	}
}

func TestDecide(t *testing.T) {
	assert.Equal(t, DecisionLogin, Decide(nil))
	assert.Equal(t, DecisionUpgrade, Decide(&models.User{StatusAssinatura: models.StatusExpirado}))
	assert.Equal(t, DecisionAllow, Decide(&models.User{StatusAssinatura: models.StatusAtivo}))
}
