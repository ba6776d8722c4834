package valueobjects

import "fmt"

type TicketType string

const (
	TypeOrientacao      TicketType = "orientacao"
	TypeCorrecaoTecnica TicketType = "correcao_tecnica"
	TypeErroTemporario  TicketType = "erro_temporario"
	TypeDuvidaNegocial  TicketType = "duvida_negocial"
	TypeMelhorias       TicketType = "melhorias"
	TypeOutros          TicketType = "outros"
)

var validTicketTypes = map[TicketType]bool{
	TypeOrientacao:      true,
	TypeCorrecaoTecnica: true,
	TypeErroTemporario:  true,
	TypeDuvidaNegocial:  true,
	TypeMelhorias:       true,
	TypeOutros:          true,
}

func (t TicketType) String() string {
	return string(t)
}

func (t TicketType) IsValid() bool {
	return validTicketTypes[t]
}

func NewTicketType(s string) (TicketType, error) {
	t := TicketType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return t, nil
}
