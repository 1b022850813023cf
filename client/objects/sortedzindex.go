package objects

import (
	"fmt"
)

// GetChild returns the child with id, or nil.
func (o *BaseObject) GetChild(id string) GameObject {
	for _, child := range o.children {
		if child.GetID() == id {
			return child
		}
	}
	return nil
}

// AddChild initializes child and inserts it after every child with a
// lower or equal z-index.
func (o *BaseObject) AddChild(child GameObject) error {
	if o.GetChild(child.GetID()) != nil {
		return fmt.Errorf("child object with id %s already exists", child.GetID())
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	child.SetParent(o)
	for i, obj := range o.children {
		if obj.GetZIndex() > child.GetZIndex() {
			o.children = append(o.children[:i], append([]GameObject{child}, o.children[i:]...)...)
			return nil
		}
	}
	o.children = append(o.children, child)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	for i, child := range o.children {
		if child.GetID() != id {
			continue
		}
		if err := DestroyTree(child); err != nil {
			return fmt.Errorf("failed to destroy child object tree: %v", err)
		}
		o.children = append(o.children[:i], o.children[i+1:]...)
		child.SetParent(nil)
		return nil
	}
	return fmt.Errorf("child object with id %s does not exist", id)
}

// RemoveFromParent detaches the object from its parent, if any.
func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return nil
	}
	return o.parent.RemoveChild(o.id)
}
