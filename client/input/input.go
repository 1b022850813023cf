package input

import (
	"github.com/cbodonnell/arcade/client/flow"
	"github.com/cbodonnell/arcade/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle both keyboard and touch inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		return true
	}
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightRight) {
				return true
			}
		} else {
			// The button 0/1 might not be A/B buttons.
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
				return true
			}
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton1) {
				return true
			}
		}
	}
	return false
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsQuitRequested reports the quit signal: Escape or a window close request.
// Window close requests are only reported when closing is handled by the game.
func IsQuitRequested() bool {
	return IsNegativeJustPressed() || ebiten.IsWindowBeingClosed()
}

// KeyBinding maps a key press to a session action.
type KeyBinding struct {
	Key    ebiten.Key
	Action session.ActionType
}

var commonBindings = []KeyBinding{
	{Key: ebiten.KeyS, Action: session.ActionSave},
	{Key: ebiten.KeyL, Action: session.ActionLoad},
	{Key: ebiten.KeyR, Action: session.ActionReset},
}

var SnakeBindings = append([]KeyBinding{
	{Key: ebiten.KeyArrowUp, Action: session.ActionUp},
	{Key: ebiten.KeyArrowDown, Action: session.ActionDown},
	{Key: ebiten.KeyArrowLeft, Action: session.ActionLeft},
	{Key: ebiten.KeyArrowRight, Action: session.ActionRight},
}, commonBindings...)

var TicTacToeBindings = commonBindings

// Actions returns the session actions for this frame in binding order.
// A pointer click is reported when withClicks is set. The quit signal
// comes last so the frame's other input is still applied.
func Actions(bindings []KeyBinding, withClicks bool) []session.Action {
	actions := make([]session.Action, 0)
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.Key) {
			actions = append(actions, session.NewAction(b.Action))
		}
	}
	if withClicks {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			actions = append(actions, session.NewClickAction(x, y))
		}
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			x, y := ebiten.TouchPosition(id)
			actions = append(actions, session.NewClickAction(x, y))
		}
	}
	if IsQuitRequested() {
		actions = append(actions, session.NewAction(session.ActionQuit))
	}
	return actions
}

// MenuTrigger returns the menu selection made this frame, if any.
func MenuTrigger() (flow.Trigger, bool) {
	switch {
	case IsQuitRequested():
		return flow.TriggerQuit, true
	case inpututil.IsKeyJustPressed(ebiten.Key1) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad1):
		return flow.TriggerSelectSnake, true
	case inpututil.IsKeyJustPressed(ebiten.Key2) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad2):
		return flow.TriggerSelectTicTacToe, true
	}
	return 0, false
}
