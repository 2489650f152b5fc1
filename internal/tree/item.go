package tree

// Icon is an opaque image handle. The terminal renderer draws it verbatim
// in front of the title, so it is usually a single glyph.
type Icon string

// Item is one node of the selectable tree. The set of variants is closed:
// *Leaf, *Branch and Separator.
type Item interface {
	item()
}

// Leaf is a selectable item without children.
type Leaf struct {
	Title string
	Icon  Icon
	Data  any
}

// Branch is a selectable item whose children are offered one level deeper.
type Branch struct {
	Title    string
	Icon     Icon
	Data     any
	Children []Item
}

// Separator divides groups of siblings inside a menu. It cannot be selected.
// Only the value Separator{} is a separator; a *Separator is not a valid
// Item and is treated as neither selectable nor a separator.
type Separator struct{}

func (*Leaf) item()     {}
func (*Branch) item()   {}
func (Separator) item() {}

// NewLeaf builds a leaf item.
func NewLeaf(title string, icon Icon) *Leaf {
	return &Leaf{Title: title, Icon: icon}
}

// NewBranch builds a branch item with the given children.
func NewBranch(title string, icon Icon, children ...Item) *Branch {
	return &Branch{Title: title, Icon: icon, Children: children}
}

// TitleOf returns the display title of an item, empty for separators.
func TitleOf(it Item) string {
	switch v := it.(type) {
	case *Leaf:
		if v == nil {
			return ""
		}
		return v.Title
	case *Branch:
		if v == nil {
			return ""
		}
		return v.Title
	default:
		return ""
	}
}

// IconOf returns the icon of an item, empty for separators.
func IconOf(it Item) Icon {
	switch v := it.(type) {
	case *Leaf:
		if v == nil {
			return ""
		}
		return v.Icon
	case *Branch:
		if v == nil {
			return ""
		}
		return v.Icon
	default:
		return ""
	}
}

// DataOf returns the payload attached to an item.
func DataOf(it Item) any {
	switch v := it.(type) {
	case *Leaf:
		if v == nil {
			return nil
		}
		return v.Data
	case *Branch:
		if v == nil {
			return nil
		}
		return v.Data
	default:
		return nil
	}
}

// ChildrenOf returns the children of a branch and reports whether it is one.
func ChildrenOf(it Item) ([]Item, bool) {
	b, ok := it.(*Branch)
	if !ok || b == nil {
		return nil, false
	}
	return b.Children, true
}

// IsSeparator reports whether it is a separator.
func IsSeparator(it Item) bool {
	_, ok := it.(Separator)
	return ok
}

// Selectable reports whether it can become part of a selected path.
func Selectable(it Item) bool {
	switch v := it.(type) {
	case *Leaf:
		return v != nil
	case *Branch:
		return v != nil
	default:
		return false
	}
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
