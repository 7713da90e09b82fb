// Package menu runs the interactive bill manager session.
package menu

// Selection is a top-level menu choice.
type Selection int

const (
	// SelectionAdd is menu entry 1, Add Bill.
	SelectionAdd Selection = iota + 1
	// SelectionView is menu entry 2, View Bill.
	SelectionView
	// SelectionRemove is menu entry 3, Delete Bill.
	SelectionRemove
	// SelectionEdit is menu entry 4, Edit Bill.
	SelectionEdit
)

// ParseSelection maps the literal menu input to a Selection.
func ParseSelection(input string) (Selection, bool) {
	switch input {
	case "1":
		return SelectionAdd, true
	case "2":
		return SelectionView, true
	case "3":
		return SelectionRemove, true
	case "4":
		return SelectionEdit, true
	default:
		return 0, false
	}
}

// String returns the lowercase action name used in log attributes.
func (s Selection) String() string {
	switch s {
	case SelectionAdd:
		return "add"
	case SelectionView:
		return "view"
	case SelectionRemove:
		return "remove"
	case SelectionEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Lines is the menu as printed before every selection prompt.
var Lines = []string{
	"",
	"-----Bill Manager-----",
	"1. Add Bill",
	"2. View Bill",
	"3. Delete Bill",
	"4. Edit Bill",
	"",
	"Enter the selection: ",
}
