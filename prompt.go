package prompter

// PromptKind identifies which of the six variants a Prompt carries.
type PromptKind int

const (
	KindInput PromptKind = iota
	KindList
	KindCheckbox
	KindChoice
	KindConfirm
	KindText
)

func (k PromptKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindList:
		return "list"
	case KindCheckbox:
		return "checkbox"
	case KindChoice:
		return "choice"
	case KindConfirm:
		return "confirm"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// PromptItem is the shape shared by List, Checkbox, and Choice entries.
// Shortcut, Default, and InitiallyChecked are only meaningful for the
// variants that use them; the common fields (Name, Text, Selectable,
// Disabled, DisabledText) apply uniformly.
type PromptItem struct {
	Name         string
	Text         AttributedString
	Selectable   bool
	Disabled     bool
	DisabledText string
	Shortcut     rune // 0 means "no shortcut bound"

	Default          bool // Choice only: committed when EXIT arrives with no typed character
	InitiallyChecked bool // Checkbox only
}

// NewPromptItem creates a selectable item with no shortcut.
func NewPromptItem(name string, text AttributedString) PromptItem {
	return PromptItem{Name: name, Text: text, Selectable: true}
}

// WithShortcut attaches a one-rune jump/selection key.
func (i PromptItem) WithShortcut(r rune) PromptItem {
	i.Shortcut = r
	return i
}

// AsDisabled marks the item non-selectable with an explanatory suffix
// rendered as "(reason)".
func (i PromptItem) AsDisabled(reason string) PromptItem {
	i.Selectable = false
	i.Disabled = true
	i.DisabledText = reason
	return i
}

// AsSeparator marks the item non-selectable with no disabled styling, used
// for visual dividers between groups of items.
func (i PromptItem) AsSeparator() PromptItem {
	i.Selectable = false
	i.Disabled = false
	return i
}

// AsDefault marks a Choice item as the one committed when Enter arrives
// with no character typed.
func (i PromptItem) AsDefault() PromptItem {
	i.Default = true
	return i
}

// AsChecked marks a Checkbox item as initially checked.
func (i PromptItem) AsChecked() PromptItem {
	i.InitiallyChecked = true
	return i
}

// Prompt is a tagged variant over the six prompt kinds. The New* builders
// below populate only the fields relevant to Kind; the With* setters do not
// check Kind, and each executor reads only its own kind's fields.
type Prompt struct {
	Kind    PromptKind
	Name    string
	Message AttributedString

	// Input
	DefaultValue string
	Mask         rune
	Validator    StringValidator

	// List / Checkbox / Choice
	Items []PromptItem

	// Confirm
	DefaultConfirm   bool
	ConfirmValidator BoolValidator

	// Text
	Body AttributedString
}

// NewInputPrompt builds an Input prompt, committing buf verbatim on EXIT,
// or defaultValue when buf is empty and one was supplied.
func NewInputPrompt(name string, message AttributedString) *Prompt {
	return &Prompt{Kind: KindInput, Name: name, Message: message}
}

func (p *Prompt) WithDefault(v string) *Prompt {
	p.DefaultValue = v
	return p
}

func (p *Prompt) WithMask(r rune) *Prompt {
	p.Mask = r
	return p
}

func (p *Prompt) WithValidator(v StringValidator) *Prompt {
	p.Validator = v
	return p
}

// NewListPrompt builds a single-select List prompt over items.
func NewListPrompt(name string, message AttributedString, items ...PromptItem) *Prompt {
	return &Prompt{Kind: KindList, Name: name, Message: message, Items: items}
}

// NewCheckboxPrompt builds a multi-select Checkbox prompt over items.
func NewCheckboxPrompt(name string, message AttributedString, items ...PromptItem) *Prompt {
	return &Prompt{Kind: KindCheckbox, Name: name, Message: message, Items: items}
}

// NewChoicePrompt builds a single-key Choice prompt over items. An item
// without a Shortcut cannot be picked by a keypress (it can still be the
// AsDefault item); non-selectable items render as separators.
func NewChoicePrompt(name string, message AttributedString, items ...PromptItem) *Prompt {
	return &Prompt{Kind: KindChoice, Name: name, Message: message, Items: items}
}

// NewConfirmPrompt builds a yes/no Confirm prompt.
func NewConfirmPrompt(name string, message AttributedString, defaultValue bool) *Prompt {
	return &Prompt{Kind: KindConfirm, Name: name, Message: message, DefaultConfirm: defaultValue}
}

func (p *Prompt) WithConfirmValidator(v BoolValidator) *Prompt {
	p.ConfirmValidator = v
	return p
}

// NewTextPrompt builds a Text prompt: a static styled block that commits
// automatically without waiting for input.
func NewTextPrompt(name string, message, body AttributedString) *Prompt {
	return &Prompt{Kind: KindText, Name: name, Message: message, Body: body}
}

// ResultKind mirrors PromptKind for the value actually carried by a result.
type ResultKind int

const (
	ResultInput ResultKind = iota
	ResultList
	ResultCheckbox
	ResultChoice
	ResultConfirm
	ResultText
)

// PromptResult is the tagged variant committed by an executor. Only the
// field matching Kind is meaningful.
type PromptResult struct {
	Kind ResultKind
	Name string

	StringValue string              // Input, List (selected item name), Choice (selected item name)
	Set         map[string]struct{} // Checkbox: selected item names
	BoolValue   bool                // Confirm
}

// AsString returns StringValue, the zero value for any other result kind.
func (r PromptResult) AsString() string { return r.StringValue }

// AsBool returns BoolValue, the zero value for any other result kind.
func (r PromptResult) AsBool() bool { return r.BoolValue }

// AsSet returns Set, nil for any other result kind.
func (r PromptResult) AsSet() map[string]struct{} { return r.Set }

// ResultMap is the map of committed results returned by a flow run, keyed
// by prompt name.
type ResultMap map[string]PromptResult

// itemByName finds an item by name, used to render the selected item's
// text in summary answers.
func itemByName(items []PromptItem, name string) (PromptItem, bool) {
	for _, it := range items {
		if it.Name == name {
			return it, true
		}
	}
	return PromptItem{}, false
}

// firstSelectable returns the index of the first selectable item, or -1 if
// none exist (the "zero selectable items" edge case of §3's invariants).
func firstSelectable(items []PromptItem) int {
	for i, it := range items {
		if it.Selectable {
			return i
		}
	}
	return -1
}
