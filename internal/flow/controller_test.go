package flow

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge/internal/audio"
	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/game"
	"github.com/vovakirdan/dodge/internal/storage"
)

type recorder struct {
	effects []audio.Effect
	calls   []string
	playing bool
}

func (r *recorder) Play(e audio.Effect) { r.effects = append(r.effects, e) }
func (r *recorder) StartMusic()         { r.calls = append(r.calls, "start"); r.playing = true }
func (r *recorder) PauseMusic()         { r.calls = append(r.calls, "pause"); r.playing = false }
func (r *recorder) ResumeMusic()        { r.calls = append(r.calls, "resume"); r.playing = true }
func (r *recorder) StopMusic()          { r.calls = append(r.calls, "stop"); r.playing = false }
func (r *recorder) MusicPlaying() bool  { return r.playing }

func (r *recorder) played(e audio.Effect) int {
	n := 0
	for _, got := range r.effects {
		if got == e {
			n++
		}
	}
	return n
}

type fakeBook struct {
	records   []storage.Record
	insertErr error
	topErr    error
}

func (b *fakeBook) Insert(name string, level, score int) (int64, error) {
	if b.insertErr != nil {
		return 0, b.insertErr
	}
	id := int64(len(b.records) + 1)
	b.records = append(b.records, storage.Record{ID: id, PlayerName: name, Level: level, Score: score})
	return id, nil
}

func (b *fakeBook) Top(n int) ([]storage.Record, error) {
	if b.topErr != nil {
		return nil, b.topErr
	}
	out := append([]storage.Record(nil), b.records...)
	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func newTestController(t *testing.T, tun config.Tuning, book ScoreBook) (*Controller, *recorder) {
	t.Helper()
	cat, err := game.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	rec := &recorder{}
	c := New(Options{
		Tuning:  tun,
		Catalog: cat,
		Scores:  book,
		Audio:   rec,
		Logger:  log.New(&strings.Builder{}),
		Rand:    rand.New(rand.NewSource(3)),
	})
	return c, rec
}

func buttonFor(t *testing.T, c *Controller, action State) Button {
	t.Helper()
	for _, b := range c.Buttons() {
		if b.Action == action {
			return b
		}
	}
	t.Fatalf("no %v button on %v screen", action, c.Screen())
	return Button{}
}

func hasLabel(c *Controller, text string) bool {
	for _, l := range c.Labels() {
		if l.Text == text {
			return true
		}
	}
	return false
}

// playUntilOver keeps a floor-only run going until it ends.
func playUntilOver(t *testing.T, c *Controller) {
	t.Helper()
	c.Go(StateNewGame)
	for i := 0; i < 5000 && c.Screen() == ScreenPlay; i++ {
		c.Tick(nil)
	}
	if c.Screen() != ScreenGameOver {
		t.Fatalf("run did not end, screen %v", c.Screen())
	}
}

func deadlyTuning() config.Tuning {
	tun := config.DefaultTuning()
	tun.Spawner.Elevated = nil
	tun.Timing.HitDelay = 0
	return tun
}

func TestNewStartsOnTitleWithMusic(t *testing.T) {
	c, rec := newTestController(t, config.DefaultTuning(), nil)
	if c.Screen() != ScreenTitle {
		t.Fatalf("screen = %v, want title", c.Screen())
	}
	if len(rec.calls) != 1 || rec.calls[0] != "start" {
		t.Errorf("music calls = %v, want [start]", rec.calls)
	}

	// Returning to the title does not restart music that is playing.
	c.Go(StateOptions)
	c.Go(StateTitle)
	if len(rec.calls) != 1 {
		t.Errorf("music restarted while playing: %v", rec.calls)
	}
}

func TestDiffToggleResetsSpeed(t *testing.T) {
	c, _ := newTestController(t, config.DefaultTuning(), nil)

	c.Go(StateDiff)
	if c.Screen() != ScreenOptions {
		t.Errorf("diff lands on %v, want options", c.Screen())
	}
	if s := c.Settings(); !s.Hard || s.Speed != 8 {
		t.Errorf("after toggle: hard=%v speed=%v, want true 8", s.Hard, s.Speed)
	}
	if !hasButton(c, "Difficulty: HARD") {
		t.Error("options should show Difficulty: HARD")
	}

	c.Go(StateDiff)
	if s := c.Settings(); s.Hard || s.Speed != 3 {
		t.Errorf("after second toggle: hard=%v speed=%v, want false 3", s.Hard, s.Speed)
	}
}

func hasButton(c *Controller, label string) bool {
	for _, b := range c.Buttons() {
		if b.Label == label {
			return true
		}
	}
	return false
}

func TestSkinCycleWraps(t *testing.T) {
	c, _ := newTestController(t, config.DefaultTuning(), nil)

	c.Go(StatePrev)
	if c.Settings().Skin != 5 || c.Screen() != ScreenTitle {
		t.Errorf("prev from 1: skin %d on %v, want 5 on title", c.Settings().Skin, c.Screen())
	}
	c.Go(StateNext)
	if c.Settings().Skin != 1 {
		t.Errorf("next from 5: skin %d, want 1", c.Settings().Skin)
	}
}

func TestOptionToggles(t *testing.T) {
	c, rec := newTestController(t, config.DefaultTuning(), nil)

	c.Go(StateMusic)
	if c.Settings().Music || rec.calls[len(rec.calls)-1] != "pause" {
		t.Errorf("music off: settings %v calls %v", c.Settings().Music, rec.calls)
	}
	c.Go(StateTitle)
	if rec.calls[len(rec.calls)-1] != "pause" {
		t.Errorf("title started music while disabled: %v", rec.calls)
	}
	c.Go(StateMusic)
	if !c.Settings().Music || rec.calls[len(rec.calls)-1] != "resume" {
		t.Errorf("music on: settings %v calls %v", c.Settings().Music, rec.calls)
	}

	c.Go(StateControls)
	if !c.Settings().ArrowKeys || !hasButton(c, "Controls: ARROW keys") {
		t.Error("controls toggle did not switch to arrow keys")
	}

	c.Go(StateSound)
	if c.Settings().Sound || !hasButton(c, "Sounds: OFF") {
		t.Error("sound toggle did not switch off")
	}
	c.Click(buttonFor(t, c, StateTitle).Center)
	if n := rec.played(audio.EffectClick); n != 0 {
		t.Errorf("click played %d times with sound off", n)
	}
}

func TestClickStartsRun(t *testing.T) {
	c, rec := newTestController(t, config.DefaultTuning(), nil)

	if c.Click(core.Point{X: 5, Y: 5}) {
		t.Error("click on empty space fired a button")
	}
	if !c.Click(buttonFor(t, c, StateNewGame).Center) {
		t.Fatal("click on Start did not fire")
	}
	if c.Screen() != ScreenPlay || c.Run() == nil {
		t.Fatalf("screen %v run %v, want play with a run", c.Screen(), c.Run())
	}
	if rec.played(audio.EffectClick) != 1 {
		t.Error("click sound not played")
	}
}

func TestFocusNavigation(t *testing.T) {
	c, _ := newTestController(t, config.DefaultTuning(), nil)

	c.Tick([]core.InputEvent{core.Press(core.KeyUp)})
	if got := c.Buttons()[c.Focused()].Action; got != StateConfirmQuit {
		t.Fatalf("first Up focuses %v, want the last button", got)
	}
	states := c.ButtonStates()
	if states[c.Focused()] != ButtonHighlighted || states[0] != ButtonNormal {
		t.Errorf("button states = %v", states)
	}

	c.Tick([]core.InputEvent{core.Press(core.KeyEnter)})
	if c.Screen() != ScreenConfirmQuit {
		t.Fatalf("screen = %v, want confirm quit", c.Screen())
	}

	c.Tick([]core.InputEvent{core.Press(core.KeyDown), core.Press(core.KeyDown)})
	c.Activate()
	if c.Screen() != ScreenTitle {
		t.Fatalf("No should return to title, got %v", c.Screen())
	}

	c.Key(core.KeyEscape)
	c.Focus(1)
	c.Activate()
	if !c.Done() {
		t.Errorf("Yes should quit, screen %v", c.Screen())
	}
}

func TestPauseAndResume(t *testing.T) {
	c, _ := newTestController(t, config.DefaultTuning(), nil)
	c.Go(StateNewGame)
	c.Tick(nil)

	c.Tick([]core.InputEvent{core.Press(core.KeyEscape)})
	if c.Screen() != ScreenPause {
		t.Fatalf("screen = %v, want pause", c.Screen())
	}
	if st := c.Stack(); len(st) != 2 || st[0] != ScreenPlay {
		t.Errorf("stack = %v, want [play pause]", st)
	}

	ticks := c.Run().Ticks()
	c.Tick(nil)
	if c.Run().Ticks() != ticks {
		t.Error("run advanced while paused")
	}

	c.Tick([]core.InputEvent{core.Press(core.KeyEscape)})
	if c.Screen() != ScreenPlay || c.Run().Status() != game.StatusRunning {
		t.Fatalf("after Esc: screen %v status %v", c.Screen(), c.Run().Status())
	}
	c.Tick(nil)
	if c.Run().Ticks() != ticks+1 {
		t.Error("run did not continue after resume")
	}
}

func TestReleaseDuringPauseReachesRun(t *testing.T) {
	c, _ := newTestController(t, config.DefaultTuning(), nil)
	c.Go(StateNewGame)

	c.Tick([]core.InputEvent{core.Press(core.KeyA)})
	c.Tick([]core.InputEvent{core.Press(core.KeyEscape)})
	if c.Screen() != ScreenPause || !c.Run().Intents().Left {
		t.Fatalf("screen %v left %v, want pause with left held", c.Screen(), c.Run().Intents().Left)
	}

	c.Tick([]core.InputEvent{core.Release(core.KeyA)})
	c.Tick([]core.InputEvent{core.Press(core.KeyEscape)})
	if c.Screen() != ScreenPlay {
		t.Fatalf("screen = %v, want play", c.Screen())
	}
	c.Tick(nil)
	if c.Run().Intents().Left {
		t.Error("left intent still set after resume")
	}
}

func TestPauseReturnAbandonsRun(t *testing.T) {
	book := &fakeBook{}
	c, _ := newTestController(t, config.DefaultTuning(), book)
	c.Go(StateNewGame)
	run := c.Run()
	c.Tick([]core.InputEvent{core.Press(core.KeyEscape)})

	c.Click(returnButton().Center)
	if c.Screen() != ScreenTitle {
		t.Fatalf("screen = %v, want title", c.Screen())
	}
	if run.Status() != game.StatusAbandoned {
		t.Errorf("run status = %v, want abandoned", run.Status())
	}
	if c.Run() != nil {
		t.Error("controller kept the abandoned run")
	}
	if len(book.records) != 0 {
		t.Errorf("abandoned run stored %d records", len(book.records))
	}
}

func TestGameOverSavesOnce(t *testing.T) {
	book := &fakeBook{}
	c, rec := newTestController(t, deadlyTuning(), book)
	playUntilOver(t, c)

	if rec.calls[len(rec.calls)-1] != "stop" {
		t.Errorf("music not stopped on game over: %v", rec.calls)
	}
	if rec.played(audio.EffectHit) != 1 || rec.played(audio.EffectGameOver) != 1 {
		t.Errorf("effects = %v, want one hit and one game over", rec.effects)
	}

	res := c.Result()
	if !hasLabel(c, "GAME OVER") {
		t.Error("game over label missing")
	}

	if !c.SubmitName("   ") {
		t.Fatal("first submit did not save")
	}
	if c.SubmitName("Bob") {
		t.Error("second submit saved again")
	}
	if len(book.records) != 1 {
		t.Fatalf("stored %d records, want 1", len(book.records))
	}
	r := book.records[0]
	if r.PlayerName != AnonymousName || r.Level != res.Level || r.Score != res.Score {
		t.Errorf("stored %+v, want Anonymous/%d/%d", r, res.Level, res.Score)
	}
	if !hasLabel(c, "Saved") {
		t.Error("Saved label missing")
	}

	c.Click(returnButton().Center)
	if c.Screen() != ScreenTitle {
		t.Errorf("return from game over lands on %v", c.Screen())
	}
}

func TestStoreErrorsDegrade(t *testing.T) {
	book := &fakeBook{insertErr: errors.New("disk full"), topErr: errors.New("locked")}
	c, _ := newTestController(t, deadlyTuning(), book)
	playUntilOver(t, c)

	if c.SubmitName("Ada") {
		t.Error("submit reported success on insert error")
	}
	if !c.SaveFailed() || !hasLabel(c, "Could not save") {
		t.Error("save failure not reported")
	}
	if c.Screen() != ScreenGameOver {
		t.Errorf("screen = %v after failed save", c.Screen())
	}

	c.Go(StateViewScores)
	if c.Screen() != ScreenScores || len(c.HighScores()) != 0 {
		t.Errorf("scores screen with failing store: %v, %d records", c.Screen(), len(c.HighScores()))
	}
}

func TestNoStore(t *testing.T) {
	c, _ := newTestController(t, deadlyTuning(), nil)
	playUntilOver(t, c)
	if c.SubmitName("Ada") || !c.SaveFailed() {
		t.Error("saving without a store should fail softly")
	}
	c.Go(StateViewScores)
	if c.Screen() != ScreenScores {
		t.Errorf("screen = %v, want scores", c.Screen())
	}
}

func TestScoresScreenLabels(t *testing.T) {
	book := &fakeBook{}
	book.Insert("Ada", 3, 1200)
	book.Insert("Bob", 5, 3100)
	book.Insert("Cy", 1, 200)
	book.Insert("Di", 1, 100)

	c, _ := newTestController(t, config.DefaultTuning(), book)
	c.Go(StateViewScores)

	if got := c.HighScores(); len(got) != 4 || got[0].PlayerName != "Bob" {
		t.Fatalf("high scores = %+v", got)
	}
	crowns := 0
	for _, l := range c.Labels() {
		if l.Text == "♛" {
			crowns++
		}
	}
	if crowns != 3 {
		t.Errorf("crowns = %d, want 3", crowns)
	}
	for _, want := range []string{"Top 10 High Scores", "Bob", "3100", "Di"} {
		if !hasLabel(c, want) {
			t.Errorf("label %q missing", want)
		}
	}
}

func TestRunUsesSettingsSnapshot(t *testing.T) {
	c, _ := newTestController(t, config.DefaultTuning(), nil)
	c.Go(StateDiff)
	c.Go(StateNewGame)
	if got := c.Run().Progress().Speed; got != 8 {
		t.Errorf("run speed = %v, want hard baseline 8", got)
	}
}
