// Package response contém os tipos e funções auxiliares para formar as
// respostas JSON unificadas dos handlers HTTP. O pacote padroniza o retorno
// de sucesso, de erro e das mensagens de validação num formato único.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Response descreve a estrutura padrão da resposta JSON do servidor.
// Status é o estado da requisição ("OK" ou "Error").
// Error é o texto do erro (opcional, quando houver falha).
// Data são os dados da resposta (opcional, quando houver sucesso).
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// ErrorResponse é a estrutura de erro usada na documentação Swagger.
// Aparece nas anotações @Failure como o tipo retornado em falhas.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

const (
	// StatusOK é o valor de status da resposta bem-sucedida.
	StatusOK = "OK"
	// StatusError é o valor de status da resposta com erro.
	StatusError = "Error"
)

// StatusOKWithData devolve um Response de sucesso com os dados informados.
func StatusOKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error devolve um ErrorResponse com a mensagem informada.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError monta um Response de erro a partir das falhas de validação.
// Cada violação vira um texto legível, unidas por vírgula.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email address", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too short", err.Field()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of: %s", err.Field(), err.Param()))
		case "alphanum":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only numbers and letters", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{
		Status: StatusError,
		Error:  strings.Join(errsMsgs, ", "),
	}
}
