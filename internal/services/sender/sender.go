// Package sender implementa o serviço de envio de emails transacionais:
// boas-vindas no cadastro e aviso de mudança de assinatura.
package sender

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/financeflow-app/financeflow/internal/lib/sl"
	"github.com/financeflow-app/financeflow/internal/lib/smtp"
	"github.com/financeflow-app/financeflow/internal/models"
)

// Service consome as mensagens do broker e envia os emails via SMTP.
type Service struct {
	transport smtp.TransportInterface
	log       *slog.Logger
}

// New cria um novo Service.
func New(transport smtp.TransportInterface, log *slog.Logger) *Service {
	return &Service{
		transport: transport,
		log:       log,
	}
}

// Textos em português por padrão do produto.
var statusDescriptions = map[string]string{
	models.StatusAtivo:      "sua assinatura está ativa",
	models.StatusExpirado:   "sua assinatura expirou",
	models.StatusInativo:    "sua assinatura foi desativada",
	models.StatusNaoAssinou: "sua assinatura foi removida",
}

// SendWelcomeEmail trata a mensagem de cadastro concluído.
func (s *Service) SendWelcomeEmail(body []byte) error {
	var message models.UserRegisteredMessage
	if err := json.Unmarshal(body, &message); err != nil {
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	subject := "Bem-vindo ao FinanceFlow!"
	bodyText := fmt.Sprintf("Olá, %s!\n\nSeu cadastro no FinanceFlow foi concluído.\n\nAssine um plano para liberar o painel financeiro, as categorias de orçamento, as metas e os insights personalizados.",
		message.Nome)

	return s.send(message.Email, subject, bodyText)
}

// SendSubscriptionStatusEmail trata a mensagem de mudança de assinatura.
func (s *Service) SendSubscriptionStatusEmail(body []byte) error {
	var message models.SubscriptionStatusMessage
	if err := json.Unmarshal(body, &message); err != nil {
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	descricao, ok := statusDescriptions[message.Status]
	if !ok {
		descricao = fmt.Sprintf("o status da sua assinatura mudou para %q", message.Status)
	}
	bodyText := fmt.Sprintf("Olá, %s!\n\nAtualização da sua conta FinanceFlow: %s.", message.Nome, descricao)
	if message.Plano != "" && message.Plano != models.PlanoNenhum {
		bodyText += fmt.Sprintf("\n\nPlano atual: %s.", message.Plano)
	}

	return s.send(message.Email, "Atualização da sua assinatura", bodyText)
}

func (s *Service) send(to, subject, bodyText string) error {
	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", s.transport.GetSMTPUser()),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			s.log.Error("failed to close smtp client", sl.Err(closeErr))
		}
	}()

	if err = client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set mail sender", sl.Err(err))
		return fmt.Errorf("failed to set mail sender: %w", err)
	}
	if err = client.Rcpt(to); err != nil {
		s.log.Error("failed to set recipient", sl.Err(err))
		return fmt.Errorf("failed to set recipient %s: %w", to, err)
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get write closer", sl.Err(err))
		return fmt.Errorf("failed to get write closer: %w", err)
	}
	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write message", sl.Err(err))
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = wc.Close(); err != nil {
		s.log.Error("failed to close write closer", sl.Err(err))
		return fmt.Errorf("failed to close write closer: %w", err)
	}

	s.log.Info("email sent", slog.String("to", to), slog.String("subject", subject))
	return nil
}
