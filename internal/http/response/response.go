// Package response contém os tipos e funções auxiliares para formar as
// respostas JSON unificadas dos handlers HTTP: sucesso, erro e mensagens
// de validação num único formato.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response descreve a estrutura padrão de resposta do servidor.
// Status é "OK" ou "Error"; Error carrega o texto nos casos de falha;
// Data carrega o corpo nos casos de sucesso.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// ErrorResponse é a estrutura de erro usada nas anotações do Swagger.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

const (
	// StatusOK — valor de status para resposta de sucesso.
	StatusOK = "OK"
	// StatusError — valor de status para resposta com erro.
	StatusError = "Error"
)

// StatusOKWithData devolve um Response de sucesso com os dados informados.
func StatusOKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error devolve um Response de erro com a mensagem informada.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError forma um Response de erro a partir das violações de
// validação, cada uma convertida em texto legível e unida por vírgula.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		case "gte", "gt":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a non-negative number", err.Field()))
		case "datetime":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only date in format %s", err.Field(), err.Param()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{
		Status: StatusError,
		Error:  strings.Join(errsMsgs, ", "),
	}
}
