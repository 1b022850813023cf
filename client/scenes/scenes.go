package scenes

import (
	"fmt"

	"github.com/cbodonnell/arcade/client/objects"
	"github.com/cbodonnell/arcade/client/render"
	"github.com/cbodonnell/arcade/pkg/game/constants"
	"github.com/cbodonnell/arcade/pkg/log"
	"github.com/cbodonnell/arcade/pkg/session"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	objects.Lifecycle

	// Scene specific methods
	GetRoot() objects.GameObject
}

type BaseScene struct {
	Root *objects.BaseObject

	render   *render.Context
	noticeID string
}

func NewBaseScene(id string, render *render.Context) *BaseScene {
	return &BaseScene{
		Root:   objects.NewBaseObject(id, nil),
		render: render,
	}
}

func (s *BaseScene) GetRoot() objects.GameObject {
	return s.Root
}

func (s *BaseScene) Init() error {
	return objects.InitTree(s.Root)
}

func (s *BaseScene) Destroy() error {
	return objects.DestroyTree(s.Root)
}

func (s *BaseScene) Update() error {
	return objects.UpdateTree(s.Root)
}

func (s *BaseScene) Draw(screen *ebiten.Image) {
	objects.DrawTree(s.Root, screen)
}

var _ session.Notifier = &BaseScene{}

// Notify shows message in red for ticks, replacing any earlier notice.
func (s *BaseScene) Notify(message string, ticks int) {
	if s.noticeID != "" && s.Root.GetChild(s.noticeID) != nil {
		if err := s.Root.RemoveChild(s.noticeID); err != nil {
			log.Error("Failed to remove notice: %v", err)
		}
	}

	s.noticeID = fmt.Sprintf("notice-%s", uuid.NewString())
	notice := objects.NewTextEffect(s.noticeID, objects.NewTextEffectOptions{
		Text:   message,
		Face:   s.render.Fonts.Normal,
		X:      constants.ScreenWidth / 4,
		Y:      constants.ScreenHeight / 2,
		Color:  render.ColorRed,
		TTL:    ticks,
		ZIndex: 10,
	})
	if err := s.Root.AddChild(notice); err != nil {
		log.Error("Failed to add notice: %v", err)
	}
}
