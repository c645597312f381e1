package dash

import "testing"

func TestBroadphaseNear(t *testing.T) {
	b := newBroadphase(960, 540)
	player := b.add(140, 404, 44, 56, tagPlayer)
	nearSpike := b.add(170, 430, 30, 30, tagHazard)
	far := b.add(800, 430, 30, 30, tagHazard)
	star := b.add(150, 410, 22, 22, tagCollectible)

	near := b.near(player, tagHazard)
	if _, ok := near[nearSpike]; !ok {
		t.Error("overlapping spike should be a candidate")
	}
	if _, ok := near[far]; ok {
		t.Error("distant spike should not be a candidate")
	}
	if _, ok := near[star]; ok {
		t.Error("tag filter should exclude stars")
	}

	b.remove(nearSpike)
	if _, ok := b.near(player, tagHazard)[nearSpike]; ok {
		t.Error("removed spike should no longer be a candidate")
	}

	b.move(far, 150, 430)
	if _, ok := b.near(player, tagHazard)[far]; !ok {
		t.Error("moved spike should become a candidate")
	}
}

func TestBroadphaseOffscreenObjects(t *testing.T) {
	b := newBroadphase(960, 540)
	player := b.add(140, 404, 44, 56, tagPlayer)
	b.add(1100, 430, 30, 30, tagHazard)
	b.add(-80, 430, 30, 30, tagHazard)

	if n := len(b.near(player, tagHazard)); n != 0 {
		t.Errorf("%d off-screen spikes reported near the player", n)
	}
	b.remove(nil)
	b.move(nil, 0, 0)
}
