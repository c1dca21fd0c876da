package progression

import (
	"slices"

	"github.com/lixenwraith/survivor/vmath"
)

// AddHeartDrop places a heart pickup; ids are monotonic within a run
func AddHeartDrop(s State, pos vmath.Vec2F) (State, Drop) {
	d := Drop{ID: s.NextDropID, Kind: DropHeart, Position: pos}
	s.NextDropID++
	s.Drops = append(slices.Clip(s.Drops), d)
	return s, d
}

// RemoveDrop deletes the drop with id, reporting whether it existed
func RemoveDrop(s State, id int) (State, bool) {
	idx := slices.IndexFunc(s.Drops, func(d Drop) bool { return d.ID == id })
	if idx < 0 {
		return s, false
	}
	s.Drops = slices.Delete(slices.Clone(s.Drops), idx, idx+1)
	return s, true
}

// ClearDrops removes every drop
func ClearDrops(s State) State {
	s.Drops = nil
	return s
}
