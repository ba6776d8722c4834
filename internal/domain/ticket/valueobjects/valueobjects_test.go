package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"aberto", "aberto", false},
		{"fechado", "fechado", false},
		{"pendente", "pendente", false},
		{"em_andamento", "em_andamento", false},
		{"empty", "", true},
		{"unknown", "resolvido", true},
		{"uppercase not accepted", "Aberto", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := NewStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.input, status.String())
		})
	}
}

func TestStatus_IsArchived(t *testing.T) {
	assert.True(t, StatusFechado.IsArchived())
	assert.False(t, StatusAberto.IsArchived())
	assert.False(t, StatusPendente.IsArchived())
	assert.False(t, StatusEmAndamento.IsArchived())
}

func TestNewPriority(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"baixa", "baixa", false},
		{"media", "media", false},
		{"alta", "alta", false},
		{"empty", "", true},
		{"unknown", "urgente", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priority, err := NewPriority(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.input, priority.String())
		})
	}
}

func TestPriority_Weight(t *testing.T) {
	assert.Equal(t, 1, PriorityBaixa.Weight())
	assert.Equal(t, 2, PriorityMedia.Weight())
	assert.Equal(t, 3, PriorityAlta.Weight())

	assert.Greater(t, PriorityAlta.Weight(), PriorityMedia.Weight())
	assert.Greater(t, PriorityMedia.Weight(), PriorityBaixa.Weight())
}

func TestNewTicketType(t *testing.T) {
	valid := []string{"orientacao", "correcao_tecnica", "erro_temporario", "duvida_negocial", "melhorias", "outros"}
	for _, input := range valid {
		ticketType, err := NewTicketType(input)
		assert.NoError(t, err, input)
		assert.Equal(t, input, ticketType.String())
	}

	_, err := NewTicketType("bug")
	assert.Error(t, err)
	_, err = NewTicketType("")
	assert.Error(t, err)
}

func TestNewStage(t *testing.T) {
	valid := []string{"backlog", "desenvolvimento", "homologacao", "producao"}
	for _, input := range valid {
		stage, err := NewStage(input)
		assert.NoError(t, err, input)
		assert.Equal(t, input, stage.String())
	}

	_, err := NewStage("qa")
	assert.Error(t, err)
}

func TestAllStages_Order(t *testing.T) {
	stages := AllStages()

	assert.Equal(t, []Stage{StageBacklog, StageDesenvolvimento, StageHomologacao, StageProducao}, stages)

	// Mutating the returned slice must not affect subsequent calls.
	stages[0] = StageProducao
	assert.Equal(t, StageBacklog, AllStages()[0])
}
