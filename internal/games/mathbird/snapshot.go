package mathbird

import "math"

// Snapshot captures the complete simulation state in primitive fields for
// determinism checks and state restore. Obstacles are flattened into parallel
// arrays; float fields hash through their bit patterns so two snapshots hash
// equal only on exact state equality.
type Snapshot struct {
	Tick      uint64
	State     string
	PassScore int

	BirdY     float64
	BirdVel   float64
	BirdAlive bool

	Points     int
	Streak     int
	BestStreak int
	Correct    int
	Incorrect  int

	NextSpawnX float64
	NextID     int

	// Obstacle state (each obstacle is 4 floats: X, GapCenterY, GapH, Width)
	ObstacleCount int
	ObstacleData  []float64
	// Each obstacle is 7 ints: ID, Passed, HasAnswer, Answered,
	// UpperValue, LowerValue, UpperCorrect
	ObstacleFlags []int

	QuestionID int // 0 when no question is locked
	AssocID    int
	HasAssoc   bool
}

const (
	obstacleDataStride  = 4
	obstacleFlagsStride = 7
)

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	data := make([]float64, len(g.obstacles)*obstacleDataStride)
	flags := make([]int, len(g.obstacles)*obstacleFlagsStride)
	for i, o := range g.obstacles {
		di := i * obstacleDataStride
		data[di] = o.X
		data[di+1] = o.GapCenterY
		data[di+2] = o.GapH
		data[di+3] = o.Width

		fi := i * obstacleFlagsStride
		flags[fi] = int(o.ID)
		if o.Passed {
			flags[fi+1] = 1
		}
		if o.Answer != nil {
			flags[fi+2] = 1
			if o.Answer.Answered {
				flags[fi+3] = 1
			}
			flags[fi+4] = o.Answer.Upper.Value
			flags[fi+5] = o.Answer.Lower.Value
			if o.Answer.Upper.Correct {
				flags[fi+6] = 1
			}
		}
	}

	questionID := 0
	if q := g.sync.Current(); q != nil {
		questionID = q.ID
	}

	return Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:     g.state,
		PassScore: g.passScore,

		BirdY:     g.bird.Y,
		BirdVel:   g.bird.Vel,
		BirdAlive: g.bird.Alive,

		Points:     g.score.points,
		Streak:     g.score.streak,
		BestStreak: g.score.bestStreak,
		Correct:    g.score.correct,
		Incorrect:  g.score.incorrect,

		NextSpawnX: g.nextSpawnX,
		NextID:     int(g.nextID),

		ObstacleCount: len(g.obstacles),
		ObstacleData:  data,
		ObstacleFlags: flags,

		QuestionID: questionID,
		AssocID:    int(g.sync.assocID),
		HasAssoc:   g.sync.hasAssoc,
	}
}

// ApplySnapshot restores game state from a snapshot. The target must be reset
// with the same config; answer payloads come back with their zone values and
// latches but without question content, so a restored run is for state
// inspection and hash comparison, not for resuming the question sequence.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.state = snap.State
	g.passScore = snap.PassScore

	g.bird.Y = snap.BirdY
	g.bird.Vel = snap.BirdVel
	g.bird.Alive = snap.BirdAlive

	g.score.points = snap.Points
	g.score.streak = snap.Streak
	g.score.bestStreak = snap.BestStreak
	g.score.correct = snap.Correct
	g.score.incorrect = snap.Incorrect

	g.nextSpawnX = snap.NextSpawnX
	g.nextID = ObstacleID(snap.NextID)

	// Rebuild obstacles
	g.obstacles = g.obstacles[:0]
	for i := 0; i < snap.ObstacleCount; i++ {
		di := i * obstacleDataStride
		fi := i * obstacleFlagsStride
		if di+3 >= len(snap.ObstacleData) || fi+6 >= len(snap.ObstacleFlags) {
			break
		}

		o := &Obstacle{
			ID:         ObstacleID(snap.ObstacleFlags[fi]),
			X:          snap.ObstacleData[di],
			GapCenterY: snap.ObstacleData[di+1],
			GapH:       snap.ObstacleData[di+2],
			Width:      snap.ObstacleData[di+3],
			Passed:     snap.ObstacleFlags[fi+1] == 1,
		}

		if snap.ObstacleFlags[fi+2] == 1 {
			upperRect, lowerRect := o.zoneRects(g.cfg.Zones)
			upperCorrect := snap.ObstacleFlags[fi+6] == 1
			o.Answer = &AnswerPayload{
				Upper: AnswerZone{
					Bounds:  upperRect,
					Value:   snap.ObstacleFlags[fi+4],
					Correct: upperCorrect,
					Upper:   true,
				},
				Lower: AnswerZone{
					Bounds:  lowerRect,
					Value:   snap.ObstacleFlags[fi+5],
					Correct: !upperCorrect,
				},
				Answered: snap.ObstacleFlags[fi+3] == 1,
			}
		}

		g.obstacles = append(g.obstacles, o)
	}

	g.sync.restore(snap.QuestionID, ObstacleID(snap.AssocID), snap.HasAssoc)
	g.flashTicks = 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.PassScore) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.BirdY)
	h = h*31 + math.Float64bits(snap.BirdVel)
	if snap.BirdAlive {
		h = h*31 + 1
	} else {
		h = h * 31
	}
	h = h*31 + uint64(snap.Points)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Streak)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BestStreak) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Correct)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Incorrect)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.NextSpawnX)
	h = h*31 + uint64(snap.NextID)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ObstacleCount) //#nosec G115 -- hash computation

	for _, v := range snap.ObstacleData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.ObstacleFlags {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + uint64(snap.QuestionID) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AssocID)    //#nosec G115 -- hash computation
	if snap.HasAssoc {
		h = h*31 + 1
	}
	return h
}
