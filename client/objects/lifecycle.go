package objects

import "github.com/hajimehoshi/ebiten/v2"

type Lifecycle interface {
	// Game flow methods
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// InitTree initializes obj and then its children.
func InitTree(obj GameObject) error {
	if err := obj.Init(); err != nil {
		return err
	}
	for _, child := range obj.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the children of obj and then obj.
func DestroyTree(obj GameObject) error {
	for _, child := range obj.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	return obj.Destroy()
}

// UpdateTree updates obj and then its children. Children may remove
// themselves while being updated.
func UpdateTree(obj GameObject) error {
	if err := obj.Update(); err != nil {
		return err
	}
	children := append([]GameObject(nil), obj.GetChildren()...)
	for _, child := range children {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws obj and then its children in z-index order.
func DrawTree(obj GameObject, screen *ebiten.Image) {
	obj.Draw(screen)
	for _, child := range obj.GetChildren() {
		DrawTree(child, screen)
	}
}
