package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"farmbook/entities"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		status string
		action Action
		want   bool
	}{
		{entities.CycleStatusPlanned, Activate, true},
		{entities.CycleStatusPlanned, Complete, false},
		{entities.CycleStatusPlanned, Fail, true},
		{entities.CycleStatusPlanned, Abandon, true},
		{entities.CycleStatusActive, Activate, false},
		{entities.CycleStatusActive, Complete, true},
		{entities.CycleStatusActive, Fail, true},
		{entities.CycleStatusActive, Abandon, true},
		{entities.CycleStatusCompleted, Fail, false},
		{entities.CycleStatusFailed, Abandon, false},
		{entities.CycleStatusAbandoned, Activate, false},
		{entities.CycleStatusPlanned, Action("harvest"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Allowed(tc.status, tc.action), "%s/%s", tc.status, tc.action)
	}
}

func TestTable(t *testing.T) {
	table := Table()
	assert.Len(t, table, 5)
	assert.Equal(t, []Action{Activate, Fail, Abandon}, table[0].Actions)
	assert.Equal(t, []Action{Complete, Fail, Abandon}, table[1].Actions)
	for _, e := range table[2:] {
		assert.True(t, e.Terminal, e.Status)
		assert.Empty(t, e.Actions, e.Status)
	}
	assert.Equal(t, entities.CycleStatusAbandoned, Target(Abandon))
}
