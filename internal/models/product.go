package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ProductStatusAtivo        = "Ativo"
	ProductStatusInativo      = "Inativo"
	ProductStatusEstoqueBaixo = "Estoque Baixo"
)

type ProductCategory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`

	Nome   string `gorm:"size:100;not null" json:"nome"`
	Codigo string `gorm:"size:50" json:"codigo"`

	CategoriaID *uuid.UUID       `gorm:"type:uuid" json:"categoria_id"`
	Categoria   *ProductCategory `gorm:"foreignKey:CategoriaID" json:"categoria,omitempty"`

	// Preço de venda e custo médio ponderado; o custo só é
	// recalculado em movimentos de entrada.
	Preco     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"preco"`
	CostPrice decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"cost_price"`

	Quantidade     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"quantidade"`
	EstoqueMinimo  decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"estoque_minimo"`
	Unidade        string          `gorm:"size:10;default:'un'" json:"unidade"`
	Fornecedor     string          `gorm:"size:100" json:"fornecedor"`

	DataUltimaEntrada *time.Time `json:"data_ultima_entrada"`

	Status    string `gorm:"size:20;default:'Ativo'" json:"status"`
	Descricao string `gorm:"size:255" json:"descricao"`

	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LowStock indica se o produto está no limiar de reposição.
func (p *Product) LowStock() bool {
	return p.Quantidade.LessThanOrEqual(p.EstoqueMinimo)
}
