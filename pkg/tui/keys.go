package tui

// Binding documents one key of the planner UI.
type Binding struct {
	Keys string
	Help string
}

// Bindings lists the keys handled in normal mode, in help order.
var Bindings = []Binding{
	{"tab", "switch between todo list and schedule"},
	{"j / k", "move down / up"},
	{"g / G", "jump to first / last row"},
	{"enter", "arm the todo item, or assign the armed item to the slot"},
	{"esc", "disarm, or cancel editing"},
	{"a", "add a todo item"},
	{"e", "edit the label (or the hour note on the schedule)"},
	{"x", "toggle completion"},
	{"d", "delete the todo item and all its assignments"},
	{"u", "remove the last assignment of the slot"},
	{"n", "edit the note of the hour under the cursor"},
	{"q", "quit"},
}

const shortHelp = "tab pane · enter pick · a add · e edit · x done · d delete · u unassign · n note · esc cancel · q quit"
