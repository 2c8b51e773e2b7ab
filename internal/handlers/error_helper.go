package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/organizeja/gestor-api/internal/httperr"
)

// Mensagens exibíveis por código de negócio.
var businessMessages = map[string]string{
	httperr.CodeInsufficientStock: "Estoque insuficiente para a baixa solicitada.",
	httperr.CodeInvalidState:      "O evento não aceita essa transição de status.",
	httperr.CodeProductNotFound:   "Produto não encontrado.",
	httperr.CodeServiceNotFound:   "Serviço não encontrado.",
	httperr.CodeEventNotFound:     "Evento não encontrado.",
	httperr.CodeClientNotFound:    "Cliente não encontrado.",
	"invalid_quantity":            "Quantidade inválida.",
	"missing_unit_cost":           "Movimento de entrada exige custo unitário.",
	"invalid_movement_type":       "Tipo de movimento inválido.",
	"missing_client":              "Informe o cliente do evento.",
	"missing_service":             "Informe o serviço do evento.",
	"missing_title":               "Informe o título do evento.",
	"invalid_period":              "O fim do evento precisa ser depois do início.",
	"invalid_status":              "Status inválido.",
	"use_complete_endpoint":       "Conclusão de evento tem endpoint próprio.",
	"settlement_in_progress":      "Liquidação deste evento já está em andamento.",
	"invalid_plan":                "Plano inválido.",
	"invalid_image":               "Arquivo de imagem inválido.",
}

// writeBusinessError converte um BusinessError vindo dos usecases no
// status HTTP correspondente; qualquer outro erro vira 500.
func writeBusinessError(c *gin.Context, err error) {
	be, ok := httperr.AsBusiness(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	msg := businessMessages[be.Code]
	if msg == "" {
		msg = "Operação inválida."
	}

	switch be.Code {
	case httperr.CodeProductNotFound,
		httperr.CodeServiceNotFound,
		httperr.CodeEventNotFound,
		httperr.CodeClientNotFound:
		httperr.NotFound(c, be.Code, msg)

	case httperr.CodeInsufficientStock:
		httperr.UnprocessableEntity(c, be.Code, msg)

	case httperr.CodeInvalidState, "settlement_in_progress":
		httperr.Conflict(c, be.Code, msg)

	default:
		httperr.BadRequest(c, be.Code, msg)
	}
}
