package valueobjects

import "fmt"

type Priority string

const (
	PriorityBaixa Priority = "baixa"
	PriorityMedia Priority = "media"
	PriorityAlta  Priority = "alta"
)

var validPriorities = map[Priority]bool{
	PriorityBaixa: true,
	PriorityMedia: true,
	PriorityAlta:  true,
}

// priorityWeights defines the total order alta > media > baixa used when
// sorting the board by priority.
var priorityWeights = map[Priority]int{
	PriorityBaixa: 1,
	PriorityMedia: 2,
	PriorityAlta:  3,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

// Weight returns the sort weight of the priority; unknown values sort
// below baixa.
func (p Priority) Weight() int {
	return priorityWeights[p]
}

func (p Priority) IsBaixa() bool {
	return p == PriorityBaixa
}

func (p Priority) IsMedia() bool {
	return p == PriorityMedia
}

func (p Priority) IsAlta() bool {
	return p == PriorityAlta
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}
