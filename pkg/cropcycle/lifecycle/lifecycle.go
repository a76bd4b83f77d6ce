// Package lifecycle is the crop cycle status table: which actions each
// status accepts and where they lead.
package lifecycle

import "farmbook/entities"

type Action string

const (
	Activate Action = "activate"
	Complete Action = "complete"
	Fail     Action = "fail"
	Abandon  Action = "abandon"
)

type rule struct {
	from []string
	to   string
}

var rules = map[Action]rule{
	Activate: {from: []string{entities.CycleStatusPlanned}, to: entities.CycleStatusActive},
	Complete: {from: []string{entities.CycleStatusActive}, to: entities.CycleStatusCompleted},
	Fail:     {from: []string{entities.CycleStatusPlanned, entities.CycleStatusActive}, to: entities.CycleStatusFailed},
	Abandon:  {from: []string{entities.CycleStatusPlanned, entities.CycleStatusActive}, to: entities.CycleStatusAbandoned},
}

// Statuses in display order.
var Statuses = []string{
	entities.CycleStatusPlanned,
	entities.CycleStatusActive,
	entities.CycleStatusCompleted,
	entities.CycleStatusFailed,
	entities.CycleStatusAbandoned,
}

var actionOrder = []Action{Activate, Complete, Fail, Abandon}

// Allowed reports whether action may run on a cycle in status.
func Allowed(status string, action Action) bool {
	r, ok := rules[action]
	if !ok {
		return false
	}
	for _, f := range r.from {
		if f == status {
			return true
		}
	}
	return false
}

// Target is the status action leads to.
func Target(action Action) string { return rules[action].to }

// Actions lists what status accepts, in a stable order.
func Actions(status string) []Action {
	out := []Action{}
	for _, a := range actionOrder {
		if Allowed(status, a) {
			out = append(out, a)
		}
	}
	return out
}

type StatusEntry struct {
	Status   string   `json:"status"`
	Terminal bool     `json:"terminal"`
	Actions  []Action `json:"actions"`
}

// Table renders the whole lookup for clients.
func Table() []StatusEntry {
	out := make([]StatusEntry, 0, len(Statuses))
	for _, s := range Statuses {
		out = append(out, StatusEntry{Status: s, Terminal: entities.IsCycleTerminal(s), Actions: Actions(s)})
	}
	return out
}
