package valueobjects

import "fmt"

// Stage is the kanban column a ticket sits in, tracking its position in
// the development lifecycle.
type Stage string

const (
	StageBacklog         Stage = "backlog"
	StageDesenvolvimento Stage = "desenvolvimento"
	StageHomologacao     Stage = "homologacao"
	StageProducao        Stage = "producao"
)

// stageOrder fixes the left-to-right column order of the board.
var stageOrder = []Stage{
	StageBacklog,
	StageDesenvolvimento,
	StageHomologacao,
	StageProducao,
}

var validStages = map[Stage]bool{
	StageBacklog:         true,
	StageDesenvolvimento: true,
	StageHomologacao:     true,
	StageProducao:        true,
}

func (s Stage) String() string {
	return string(s)
}

func (s Stage) IsValid() bool {
	return validStages[s]
}

// AllStages returns the board columns in display order.
func AllStages() []Stage {
	stages := make([]Stage, len(stageOrder))
	copy(stages, stageOrder)
	return stages
}

func NewStage(s string) (Stage, error) {
	stage := Stage(s)
	if !stage.IsValid() {
		return "", fmt.Errorf("invalid stage: %s", s)
	}
	return stage, nil
}
