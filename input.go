package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds one frame of polled input state.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// JumpPressed is true only on the frame the jump key goes down.
	JumpPressed    bool
	SwitchPressed  bool
	PausePressed   bool
	RestartPressed bool
	DebugToggled   bool
	CopyPressed    bool
}

// Update polls the keyboard and, when present, the first gamepad.
func (i *Input) Update() {
	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}

	var gpJump, gpSwitch bool
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			moveX = -1
		} else if leftX > 0.3 {
			moveX = 1
		}
		gpJump = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpSwitch = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightRight)
	}

	i.MoveX = moveX
	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace) || gpJump
	i.SwitchPressed = inpututil.IsKeyJustPressed(ebiten.KeyQ) || gpSwitch
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.RestartPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.DebugToggled = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	i.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyF5)
}
