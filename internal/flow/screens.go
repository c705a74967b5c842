package flow

import (
	"fmt"

	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/game"
)

// Title is the game name shown on the title screen.
const Title = "Dodge me Not"

// SkinPreviewCenter is where frontends draw the selected skin.
var SkinPreviewCenter = core.Point{X: 375, Y: 100}

func titleButtons() []Button {
	return []Button{
		{Label: "<", Action: StatePrev, Center: pt(200, 100), FontSize: 40},
		{Label: ">", Action: StateNext, Center: pt(550, 100), FontSize: 40},
		{Label: "Start", Action: StateNewGame, Center: pt(375, 300), FontSize: 25},
		{Label: "Options", Action: StateOptions, Center: pt(375, 337.5), FontSize: 25},
		{Label: "View High Scores", Action: StateViewScores, Center: pt(375, 375), FontSize: 25},
		{Label: "About us", Action: StateAbout, Center: pt(375, 412.5), FontSize: 25},
		{Label: "Quit", Action: StateConfirmQuit, Center: pt(375, 450), FontSize: 25},
	}
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

func optionsButtons(s game.Settings) []Button {
	return []Button{
		{Label: "Sounds: " + onOff(s.Sound), Action: StateSound, Center: pt(380, 150), FontSize: 20},
		{Label: "Music: " + onOff(s.Music), Action: StateMusic, Center: pt(380, 200), FontSize: 20},
		{Label: "Difficulty: " + s.Mode().String(), Action: StateDiff, Center: pt(380, 250), FontSize: 20},
		{Label: "Controls: " + s.Controls().Label(), Action: StateControls, Center: pt(380, 300), FontSize: 20},
		returnButton(),
	}
}

func confirmButtons() []Button {
	return []Button{
		{Label: "Yes", Action: StateQuit, Center: pt(UIWidth/2-100, 300), FontSize: 30},
		{Label: "No", Action: StateTitle, Center: pt(UIWidth/2+100, 300), FontSize: 30},
	}
}

// Buttons returns the buttons of the current screen in focus order.
func (c *Controller) Buttons() []Button {
	switch c.Screen() {
	case ScreenTitle:
		return titleButtons()
	case ScreenOptions:
		return optionsButtons(*c.settings)
	case ScreenScores, ScreenAbout, ScreenPause, ScreenGameOver:
		return []Button{returnButton()}
	case ScreenConfirmQuit:
		return confirmButtons()
	}
	return nil
}

// ButtonStates returns the draw state of each button from Buttons.
func (c *Controller) ButtonStates() []ButtonState {
	buttons := c.Buttons()
	states := make([]ButtonState, len(buttons))
	for i, b := range buttons {
		states[i] = StateOf(b, c.cursor, c.hasCursor, i == c.focus)
	}
	return states
}

var crownColors = [3]core.Color{core.ColorBrightYellow, core.ColorWhite, core.ColorOrange}

// Labels returns the static text of the current screen.
func (c *Controller) Labels() []Label {
	white := core.ColorBrightWhite
	switch c.Screen() {
	case ScreenTitle:
		return []Label{
			{Text: c.cat.Skin(c.settings.Skin).Name, Center: pt(375, 140), FontSize: 15, Color: core.ColorGray},
			{Text: Title, Center: pt(375, 220), FontSize: 50, Color: core.ColorBrightYellow},
		}

	case ScreenOptions:
		return []Label{{Text: "Options", Center: pt(375, 50), FontSize: 30, Color: white}}

	case ScreenScores:
		labels := []Label{
			{Text: "Top 10 High Scores", Center: pt(375, 50), FontSize: 30, Color: white},
			{Text: "Player", Center: pt(175, 125), FontSize: 20, Color: white},
			{Text: "Level", Center: pt(375, 125), FontSize: 20, Color: white},
			{Text: "Score", Center: pt(575, 125), FontSize: 20, Color: white},
		}
		y := 170.0
		for i, r := range c.scores {
			if i < len(crownColors) {
				labels = append(labels, Label{Text: "♛", Center: pt(50, y), FontSize: 15, Color: crownColors[i]})
			}
			labels = append(labels,
				Label{Text: r.PlayerName, Center: pt(175, y), FontSize: 15, Color: white},
				Label{Text: fmt.Sprint(r.Level), Center: pt(375, y), FontSize: 15, Color: white},
				Label{Text: fmt.Sprint(r.Score), Center: pt(575, y), FontSize: 15, Color: white},
			)
			y += 25
		}
		return labels

	case ScreenAbout:
		return []Label{
			{Text: "About us", Center: pt(375, 50), FontSize: 30, Color: white},
			{Text: "This game is developed by", Center: pt(375, 130), FontSize: 20, Color: white},
			{Text: "the Dodge me Not team", Center: pt(375, 230), FontSize: 25, Color: core.ColorBrightYellow},
			{Text: "Sound effects and music are synthesized at runtime", Center: pt(375, 340), FontSize: 15, Color: white},
			{Text: "Terminal frontend built on Bubble Tea", Center: pt(375, 370), FontSize: 15, Color: white},
			{Text: "Window frontend built on Ebitengine", Center: pt(375, 400), FontSize: 15, Color: white},
		}

	case ScreenPause:
		return []Label{
			{Text: "Paused", Center: pt(375, 250), FontSize: 80, Color: white},
			{Text: "Press ESC again to Continue", Center: pt(375, 300), FontSize: 15, Color: white},
		}

	case ScreenGameOver:
		labels := []Label{
			{Text: "GAME OVER", Center: pt(380, 50), FontSize: 30, Color: core.ColorBrightRed},
			{Text: "Type your name and press Enter to Save", Center: pt(380, 100), FontSize: 15, Color: white},
			{Text: fmt.Sprintf("Level: %d", c.result.Level), Center: pt(380, 250), FontSize: 30, Color: white},
			{Text: fmt.Sprintf("Score: %d", c.result.Score), Center: pt(380, 290), FontSize: 30, Color: white},
		}
		switch {
		case c.saved:
			labels = append(labels, Label{Text: "Saved", Center: pt(380, 350), FontSize: 20, Color: core.ColorBrightGreen})
		case c.saveFailed:
			labels = append(labels, Label{Text: "Could not save", Center: pt(380, 350), FontSize: 20, Color: core.ColorBrightRed})
		}
		return labels

	case ScreenConfirmQuit:
		return []Label{{Text: "Confirm Exit?", Center: pt(375, 200), FontSize: 50, Color: white}}
	}
	return nil
}

// NameBoxCenter is where frontends place the name entry on game over.
var NameBoxCenter = core.Point{X: 375, Y: 155}
