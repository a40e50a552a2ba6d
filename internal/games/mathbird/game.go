// Package mathbird implements the Math Bird game: a side-scrolling ride
// through gated obstacles whose gaps carry arithmetic answer zones. The
// simulation runs in virtual playfield units at a fixed tick rate; rendering
// maps those units onto terminal cells.
package mathbird

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/mathbird/internal/config"
	"github.com/vovakirdan/mathbird/internal/core"
	"github.com/vovakirdan/mathbird/internal/questions"
	"github.com/vovakirdan/mathbird/internal/registry"
)

// GameState constants
const (
	StateMenu     = "menu"     // Waiting for the first activate
	StatePlaying  = "playing"  // Run in progress
	StatePaused   = "paused"   // Frozen mid-run
	StateGameOver = "gameover" // Run ended, summary emitted
)

// answerFlashTicks is how long answer feedback stays on screen.
const answerFlashTicks = 45

// GameMode selects between the math ride and the classic, question-free ride.
type GameMode int

const (
	ModeMath GameMode = iota
	ModeClassic
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// packPath stores the question pack file set via CLI
var packPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Presets shape question
// operand ranges only; pacing never changes with them.
func SetDifficultyPreset(preset string) {
	p := config.DifficultyPreset(preset)
	if config.ValidPreset(p) {
		difficultyPreset = p
	} else {
		difficultyPreset = ""
	}
}

// SetPackPath points question supply at a YAML pack file instead of the
// generator.
func SetPackPath(path string) {
	packPath = path
}

// Game implements the Math Bird game logic.
type Game struct {
	mode GameMode

	// World
	bird      Bird
	obstacles []*Obstacle
	pool      *Pool
	sync      *Synchronizer
	score     *ScoreState

	// Run state
	state      string
	passScore  int
	nextSpawnX float64
	nextID     ObstacleID
	tickCount  int

	// stepCount is monotonic across auto-recoveries; the fault window is
	// measured against it.
	stepCount   uint64
	faults      *faultTracker
	summaryDone bool

	// Answer feedback shown briefly after a pick
	flashTicks   int
	flashCorrect bool
	flashDelta   int

	rng     *rand.Rand
	runtime core.RuntimeConfig
	cfg     config.MathbirdConfig

	// injected overrides the configured question supply; survives Reset
	injected questions.Source

	events EventSink
	logger *log.Logger
}

// New creates a new Math Bird game instance.
func New() *Game {
	return &Game{mode: ModeMath, events: NopEvents{}}
}

// NewClassic creates a classic-mode instance: plain obstacles, no questions.
func NewClassic() *Game {
	return &Game{mode: ModeClassic, events: NopEvents{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "mathbird_classic"
	}
	return "mathbird"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Math Bird (Classic)"
	}
	return "Math Bird"
}

// SetEvents installs the lifecycle observer. A nil sink restores the no-op
// default.
func (g *Game) SetEvents(sink EventSink) {
	if sink == nil {
		sink = NopEvents{}
	}
	g.events = sink
}

// SetLogger installs a logger for recoverable anomalies (refused spawns,
// tick faults). Logging is off by default.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// SetQuestionSource overrides where questions come from. Takes effect on the
// next Reset and survives restarts; pass nil to return to the configured
// pack or generator.
func (g *Game) SetQuestionSource(src questions.Source) {
	g.injected = src
}

// SetDifficulty is a no-op. Obstacle pacing stays constant no matter the
// requested level; difficulty presets shape question operand ranges at
// config load time instead.
func (g *Game) SetDifficulty(string) {}

// Reset initializes or restarts the game and returns to the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadMathbird(configPath)
	if err != nil {
		cfg = config.DefaultMathbirdConfig()
		cfg.Normalize()
	}
	if difficultyPreset != "" {
		config.ApplyMathbirdPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.pool = NewPool(cfg.Obstacles.PoolCapacity)
	g.score = NewScoreState(cfg.Scoring.CorrectBonus, cfg.Scoring.IncorrectPenalty)
	g.faults = newFaultTracker(cfg.Recovery)
	g.stepCount = 0
	g.obstacles = g.obstacles[:0]
	g.sync = NewSynchronizer(g.buildSource())

	if g.events == nil {
		g.events = NopEvents{}
	}

	g.resetRun()
	g.state = StateMenu
}

// buildSource picks the question supply for the run: an injected source
// wins, then a pack file, then the seeded generator. Classic mode plays
// without questions entirely.
func (g *Game) buildSource() questions.Source {
	if g.mode == ModeClassic {
		return nil
	}
	if g.injected != nil {
		return g.injected
	}

	if packPath != "" {
		pack, err := questions.LoadPack(packPath)
		if err == nil {
			return pack.Deck(g.rng)
		}
		if g.logger != nil {
			g.logger.Warn("question pack unusable, falling back to generator", "path", packPath, "err", err)
		}
	}

	qcfg := g.cfg.Questions
	opts := questions.GenOptions{
		AddSpan:    questions.Span{Min: qcfg.AddRange.Min, Max: qcfg.AddRange.Max},
		SubSpan:    questions.Span{Min: qcfg.SubRange.Min, Max: qcfg.SubRange.Max},
		MulSpan:    questions.Span{Min: qcfg.MulRange.Min, Max: qcfg.MulRange.Max},
		DivSpan:    questions.Span{Min: qcfg.DivRange.Min, Max: qcfg.DivRange.Max},
		Difficulty: qcfg.Difficulty,
	}
	for _, name := range qcfg.Categories {
		if cat := questions.Category(name); cat.Valid() {
			opts.Categories = append(opts.Categories, cat)
		}
	}
	return questions.NewDeck(questions.Generate(qcfg.BatchSize, opts, g.rng), g.rng)
}

// resetRun rebuilds the per-run world: bird at start height, no obstacles,
// spawn cursor off the right edge, scores zeroed. The fault window and the
// question source survive; reseeding happens only in Reset.
func (g *Game) resetRun() {
	g.bird = Bird{
		X:     g.cfg.Player.X,
		Y:     g.cfg.Playfield.Height / 2,
		W:     g.cfg.Player.Width,
		H:     g.cfg.Player.Height,
		Alive: true,
	}

	for _, o := range g.obstacles {
		g.pool.Put(o)
	}
	g.obstacles = g.obstacles[:0]

	g.sync.Reset()
	g.score.Reset()
	g.passScore = 0
	g.nextID = 0
	g.tickCount = 0
	g.summaryDone = false
	g.flashTicks = 0
	g.nextSpawnX = g.cfg.Playfield.Width + g.cfg.Obstacles.MinSpacing
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) (res core.StepResult) {
	g.stepCount++
	defer func() {
		if r := recover(); r != nil {
			g.handleFault(r)
			res = core.StepResult{State: g.State()}
		}
	}()

	switch g.state {
	case StateMenu:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.startRun()
		}
	case StateGameOver:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.resetRun()
			g.startRun()
		}
	case StatePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.state = StatePlaying
		}
	case StatePlaying:
		if in.Has(core.ActionPause) {
			g.state = StatePaused
			break
		}
		g.advanceFrame(in)
	}

	return core.StepResult{State: g.State()}
}

// startRun begins a run from a freshly reset world.
func (g *Game) startRun() {
	g.state = StatePlaying
	g.events.GameStarted()

	if g.mode == ModeMath {
		if g.sync.LockNext() {
			g.events.QuestionChanged(g.sync.Current())
		}
	}

	// The starting activate doubles as the first flap.
	g.bird.Jump(g.cfg.Physics.JumpImpulse)
}

// advanceFrame runs one playing tick. The order is fixed: one answer per
// frame, association before selection, and spawn-only-under-a-locked-question
// all depend on it.
func (g *Game) advanceFrame(in core.InputFrame) {
	g.tickCount++
	dt := g.dtMS()

	if in.Has(core.ActionJump) {
		g.bird.Jump(g.cfg.Physics.JumpImpulse)
	}
	g.bird.Integrate(dt, g.cfg.Physics, g.cfg.Playfield.FloorY())

	dx := g.cfg.Obstacles.Speed * dt * 60.0 / 1000.0
	for _, o := range g.obstacles {
		o.Advance(dx)
	}

	g.nextSpawnX -= dx
	if g.nextSpawnX <= g.cfg.Playfield.Width {
		g.trySpawn()
	}

	g.sync.RecomputeClosestAssociation(g.obstacles, g.bird.X)

	if g.bird.Alive {
		if sel := resolveSelection(g.obstacles, g.sync, g.bird.Bounds()); sel != nil {
			g.applyAnswer(sel)
		}
		if resolveFatal(g.obstacles, g.bird.Bounds(), g.cfg.Playfield.FloorY(), g.cfg.Obstacles.CollisionInset) {
			g.bird.Alive = false
		}
	}

	if !g.bird.Alive {
		g.endRun()
		return
	}

	for _, o := range g.obstacles {
		if o.CheckPassed(g.bird.X) {
			g.passScore++
			g.events.PassScoreChanged(g.passScore)
		}
	}

	g.retireOffscreen()

	if g.flashTicks > 0 {
		g.flashTicks--
	}
}

// applyAnswer scores a latched selection and advances the question lock.
// The score mutation completes before any event fires, so a faulting sink
// can never leave the tracker half-applied.
func (g *Game) applyAnswer(sel *selection) {
	payload := sel.obstacle.Answer
	correctVal := payload.Upper.Value
	if payload.Lower.Correct {
		correctVal = payload.Lower.Value
	}

	delta := g.cfg.Scoring.CorrectBonus
	if sel.zone.Correct {
		g.score.Correct()
	} else {
		delta = -g.cfg.Scoring.IncorrectPenalty
		g.score.Incorrect()
	}

	g.flashTicks = answerFlashTicks
	g.flashCorrect = sel.zone.Correct
	g.flashDelta = delta

	g.events.AnswerFeedback(sel.zone.Correct, delta, correctVal)
	g.events.MathScoreChanged(g.score.points, g.score.streak)

	if g.sync.HandleInteraction(sel.obstacle.ID) {
		g.events.QuestionChanged(g.sync.Current())
	}
}

// trySpawn places one obstacle at the right edge. In math mode a spawn is
// refused while no question is locked: nothing is added and the spawn cursor
// stays put, so the attempt repeats next tick.
func (g *Game) trySpawn() {
	if g.mode == ModeMath && !g.sync.HasQuestion() {
		if g.logger != nil {
			g.logger.Debug("spawn refused: no locked question", "tick", g.tickCount)
		}
		return
	}

	obst := g.cfg.Obstacles
	field := g.cfg.Playfield

	o := g.pool.Get()
	g.nextID++
	o.ID = g.nextID
	o.X = field.Width
	o.Width = obst.Width
	o.GapH = g.randRange(obst.MinGapHeight, obst.MaxGapHeight)
	o.Passed = false
	o.Answer = nil

	// The gap center keeps at least the minimum wall on both sides.
	half := o.GapH / 2
	o.GapCenterY = g.randRange(obst.MinWallHeight+half, field.FloorY()-obst.MinWallHeight-half)

	if g.mode == ModeMath {
		o.attachAnswer(g.sync.Current(), g.cfg.Zones, g.rng)
	}

	g.obstacles = append(g.obstacles, o)
	g.nextSpawnX = field.Width + o.Width + g.randRange(obst.MinSpacing, obst.MaxSpacing)
}

// retireOffscreen returns fully off-screen obstacles to the pool and drops
// their association.
func (g *Game) retireOffscreen() {
	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.IsOffscreen() {
			g.sync.RemoveAssociation(o.ID)
			g.pool.Put(o)
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(g.obstacles); i++ {
		g.obstacles[i] = nil
	}
	g.obstacles = kept
}

// endRun transitions to game over and emits the summary exactly once.
func (g *Game) endRun() {
	g.bird.Alive = false
	g.state = StateGameOver
	if g.summaryDone {
		return
	}
	g.summaryDone = true
	g.events.GameOver(g.summary())
}

// summary builds the end-of-run record from the score tracker.
func (g *Game) summary() Summary {
	return Summary{
		PassScore:  g.passScore,
		Points:     g.score.points,
		Streak:     g.score.streak,
		BestStreak: g.score.bestStreak,
		Correct:    g.score.correct,
		Incorrect:  g.score.incorrect,
		Accuracy:   g.score.Accuracy(),
	}
}

// handleFault is the tick-boundary recovery path. Faults accumulate in a
// sliding window over the monotonic step counter: at the soft limit the run
// is reset wholesale, at the hard limit the game is forced over so a
// persistent fault cannot cascade.
func (g *Game) handleFault(cause any) {
	n := g.faults.record(g.stepCount)

	if g.logger != nil {
		g.logger.Error("tick fault recovered", "cause", cause, "faults_in_window", n)
	}

	switch {
	case n >= g.faults.hard:
		g.faults.reset()
		g.forceGameOver()
	case n >= g.faults.soft:
		g.resetRun()
		g.state = StateMenu
	}
}

// forceGameOver ends the run even if the event sink itself is faulting. The
// state transition lands before the summary emission, so a second fault
// cannot keep the game alive.
func (g *Game) forceGameOver() {
	defer func() {
		if r := recover(); r != nil && g.logger != nil {
			g.logger.Error("summary emission faulted", "cause", r)
		}
	}()
	g.endRun()
}

// randRange returns a uniform value in [min, max].
func (g *Game) randRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + g.rng.Float64()*(max-min)
}

// dtMS returns the per-tick timestep in milliseconds.
func (g *Game) dtMS() float64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1000.0 / float64(rate)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.passScore,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("mathbird", func() registry.Game {
		return New()
	})
	registry.Register("mathbird_classic", func() registry.Game {
		return NewClassic()
	})
}
