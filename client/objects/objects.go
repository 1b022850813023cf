package objects

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChildren() []GameObject
	AddChild(child GameObject) error
	RemoveChild(id string) error
}

// BaseObject is embedded by every object. It keeps its children sorted
// by z-index so the tree draws back to front.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children []GameObject
}

var _ GameObject = &BaseObject{}

type NewBaseObjectOpts struct {
	ZIndex int
}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:       id,
		children: make([]GameObject, 0),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen *ebiten.Image) {}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children
}
