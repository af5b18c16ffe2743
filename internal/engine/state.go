package engine

import "github.com/tatianab/text-adventure/internal/keys"

// ActionState is the mode that decides what a key press means.
type ActionState int

const (
	AtLocation ActionState = iota
	LocationItemSelected
	ExaminingLocationItem
	ViewingInventory
	InventoryItemSelected
	ExaminingInventoryItem
)

func (s ActionState) String() string {
	switch s {
	case AtLocation:
		return "at_location"
	case LocationItemSelected:
		return "location_item_selected"
	case ExaminingLocationItem:
		return "examining_location_item"
	case ViewingInventory:
		return "viewing_inventory"
	case InventoryItemSelected:
		return "inventory_item_selected"
	case ExaminingInventoryItem:
		return "examining_inventory_item"
	default:
		return "unknown"
	}
}

// Action is what an accepted key press does.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionSelectLocationItem
	ActionSearch
	ActionShowInventory
	ActionHideInventory
	ActionSelectInventoryItem
	ActionTake
	ActionDrop
	ActionExamine
	ActionUse
	ActionUnselect
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMove:
		return "move"
	case ActionSelectLocationItem:
		return "select_location_item"
	case ActionSearch:
		return "search"
	case ActionShowInventory:
		return "show_inventory"
	case ActionHideInventory:
		return "hide_inventory"
	case ActionSelectInventoryItem:
		return "select_inventory_item"
	case ActionTake:
		return "take"
	case ActionDrop:
		return "drop"
	case ActionExamine:
		return "examine"
	case ActionUse:
		return "use"
	case ActionUnselect:
		return "unselect"
	default:
		return "unknown"
	}
}

// Fixed action keys. Search and Inventory are reserved and live in the
// keys package; these only apply once an item is selected, so authored
// content may reuse them.
const (
	KeyTake     = "T"
	KeyDrop     = "D"
	KeyExamine  = "E"
	KeyUse      = "U"
	KeyUnselect = "C"
)

type trigger int

const (
	onKey trigger = iota
	onConnection
	onLocationItem
	onInventoryItem
)

type rule struct {
	trigger trigger
	key     string // onKey only
	label   string // onKey only
	action  Action
	next    ActionState
}

// rules is the action state machine. Within a state the first matching
// rule wins.
var rules = map[ActionState][]rule{
	AtLocation: {
		{trigger: onConnection, action: ActionMove, next: AtLocation},
		{trigger: onLocationItem, action: ActionSelectLocationItem, next: LocationItemSelected},
		{trigger: onKey, key: keys.Search, label: "Search", action: ActionSearch, next: AtLocation},
		{trigger: onKey, key: keys.Inventory, label: "Inventory", action: ActionShowInventory, next: ViewingInventory},
	},
	LocationItemSelected: {
		{trigger: onKey, key: KeyTake, label: "Take", action: ActionTake, next: AtLocation},
		{trigger: onKey, key: KeyExamine, label: "Examine", action: ActionExamine, next: ExaminingLocationItem},
		{trigger: onKey, key: KeyUse, label: "Use", action: ActionUse, next: LocationItemSelected},
		{trigger: onKey, key: KeyUnselect, label: "Cancel", action: ActionUnselect, next: AtLocation},
	},
	ExaminingLocationItem: {
		{trigger: onKey, key: KeyTake, label: "Take", action: ActionTake, next: AtLocation},
		{trigger: onKey, key: KeyUse, label: "Use", action: ActionUse, next: ExaminingLocationItem},
		{trigger: onKey, key: KeyUnselect, label: "Cancel", action: ActionUnselect, next: AtLocation},
	},
	ViewingInventory: {
		{trigger: onInventoryItem, action: ActionSelectInventoryItem, next: InventoryItemSelected},
		{trigger: onKey, key: keys.Inventory, label: "Close inventory", action: ActionHideInventory, next: AtLocation},
	},
	InventoryItemSelected: {
		{trigger: onKey, key: KeyDrop, label: "Drop", action: ActionDrop, next: ViewingInventory},
		{trigger: onKey, key: KeyExamine, label: "Examine", action: ActionExamine, next: ExaminingInventoryItem},
		{trigger: onKey, key: KeyUse, label: "Use", action: ActionUse, next: InventoryItemSelected},
		{trigger: onKey, key: KeyUnselect, label: "Cancel", action: ActionUnselect, next: ViewingInventory},
	},
	ExaminingInventoryItem: {
		{trigger: onKey, key: KeyDrop, label: "Drop", action: ActionDrop, next: ViewingInventory},
		{trigger: onKey, key: KeyUse, label: "Use", action: ActionUse, next: ExaminingInventoryItem},
		{trigger: onKey, key: KeyUnselect, label: "Cancel", action: ActionUnselect, next: ViewingInventory},
	},
}
