package dash

import (
	"math"

	"github.com/solarlune/resolv"
)

// Broad-phase tags.
const (
	tagPlayer      = "player"
	tagCollectible = "collectible"
	tagHazard      = "hazard"
)

// broadCellSize is the spatial hash cell size in playfield pixels.
const broadCellSize = 32

// broadphase keeps every live entity in a resolv spatial hash so the
// resolver only runs exact overlap tests against entities sharing a cell
// with the player. Entities outside the space (still entering from the
// right, or leaving on the left) are simply not in any cell.
type broadphase struct {
	space *resolv.Space
}

func newBroadphase(width, height float64) *broadphase {
	cols := int(math.Ceil(width/broadCellSize)) + 1
	rows := int(math.Ceil(height/broadCellSize)) + 1
	return &broadphase{
		space: resolv.NewSpace(cols*broadCellSize, rows*broadCellSize, broadCellSize, broadCellSize),
	}
}

// add registers a box and returns its handle.
func (b *broadphase) add(x, y, w, h float64, tag string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tag)
	b.space.Add(obj)
	return obj
}

// move updates a handle's position and cell membership.
func (b *broadphase) move(obj *resolv.Object, x, y float64) {
	if obj == nil {
		return
	}
	obj.X, obj.Y = x, y
	obj.Update()
}

// remove drops a handle from the space.
func (b *broadphase) remove(obj *resolv.Object) {
	if obj == nil {
		return
	}
	b.space.Remove(obj)
}

// near returns the handles with the given tag that share a cell with obj.
func (b *broadphase) near(obj *resolv.Object, tag string) map[*resolv.Object]struct{} {
	if obj == nil {
		return nil
	}
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	found := check.ObjectsByTags(tag)
	set := make(map[*resolv.Object]struct{}, len(found))
	for _, o := range found {
		set[o] = struct{}{}
	}
	return set
}
