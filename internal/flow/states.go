// Package flow drives the screens around a run: title, options, high
// scores, about, pause, game over and quit confirmation. Frontends feed
// it clicks, key presses and ticks and draw the buttons and labels it
// lays out.
package flow

// State is a transition request, usually carried by a button.
// Some states are screens; the rest are actions that resolve to a screen.
type State int

const (
	StateTitle State = iota
	StateNewGame
	StateOptions
	StateViewScores
	StateAbout
	StatePrev
	StateNext
	StateMusic
	StateSound
	StateDiff
	StateControls
	StateConfirmQuit
	StateQuit
)

var stateNames = [...]string{
	StateTitle:       "title",
	StateNewGame:     "new game",
	StateOptions:     "options",
	StateViewScores:  "view scores",
	StateAbout:       "about",
	StatePrev:        "prev",
	StateNext:        "next",
	StateMusic:       "music",
	StateSound:       "sound",
	StateDiff:        "difficulty",
	StateControls:    "controls",
	StateConfirmQuit: "confirm quit",
	StateQuit:        "quit",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Screen is what is currently shown. Play, Pause and GameOver live on
// the modal stack above a run.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenOptions
	ScreenScores
	ScreenAbout
	ScreenConfirmQuit
	ScreenPlay
	ScreenPause
	ScreenGameOver
	ScreenQuit
)

var screenNames = [...]string{
	ScreenTitle:       "title",
	ScreenOptions:     "options",
	ScreenScores:      "scores",
	ScreenAbout:       "about",
	ScreenConfirmQuit: "confirm quit",
	ScreenPlay:        "play",
	ScreenPause:       "pause",
	ScreenGameOver:    "game over",
	ScreenQuit:        "quit",
}

func (s Screen) String() string {
	if s >= 0 && int(s) < len(screenNames) {
		return screenNames[s]
	}
	return "unknown"
}
