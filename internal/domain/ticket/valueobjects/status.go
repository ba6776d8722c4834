package valueobjects

import "fmt"

type Status string

const (
	StatusAberto      Status = "aberto"
	StatusFechado     Status = "fechado"
	StatusPendente    Status = "pendente"
	StatusEmAndamento Status = "em_andamento"
)

var validStatuses = map[Status]bool{
	StatusAberto:      true,
	StatusFechado:     true,
	StatusPendente:    true,
	StatusEmAndamento: true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// IsArchived reports whether the status removes the ticket from the
// default board view. Tickets are archived by closing, never deleted.
func (s Status) IsArchived() bool {
	return s == StatusFechado
}

func (s Status) IsAberto() bool {
	return s == StatusAberto
}

func (s Status) IsFechado() bool {
	return s == StatusFechado
}

func (s Status) IsPendente() bool {
	return s == StatusPendente
}

func (s Status) IsEmAndamento() bool {
	return s == StatusEmAndamento
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return status, nil
}
