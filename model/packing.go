package model

// PackingItem is a single checkable entry of a packing list. Identifiers are
// unique within the owning category, not globally.
type PackingItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Packed    bool   `json:"packed"`
	Essential bool   `json:"essential"`
}

// PackingCategory groups packing items. The icon is decorative only.
type PackingCategory struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Icon  string        `json:"icon"`
	Items []PackingItem `json:"items"`
}
