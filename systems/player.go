package systems

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerInput copies each player's actions into the character that
// player drives. Jump reads the input buffer so a press shortly before
// landing still counts.
func UpdatePlayerInput(ecs *ecs.ECS) {
	in, ok := getInput(ecs)
	if !ok {
		return
	}
	reg, ok := getRegistry(ecs)
	if !ok {
		return
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		c, ok := reg.Get(p.Character)
		if !ok {
			return
		}
		st, ok := in.Manager.Player(p.Index)
		if !ok {
			return
		}
		h, _ := st.Direction()
		c.SetInput(h, st.IsBuffered(cfg.ActionJump), st.IsPressed(cfg.ActionDuck))
	})
}

// UpdateCharacters advances every character by one fixed step, then drops
// the buffered jump of characters that jumped.
func UpdateCharacters(ecs *ecs.ECS) {
	reg, ok := getRegistry(ecs)
	if !ok {
		return
	}
	reg.Update(fixedStep(ecs))

	in, ok := getInput(ecs)
	if !ok {
		return
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		c, ok := reg.Get(p.Character)
		if !ok || !c.JustJumped() {
			return
		}
		if st, ok := in.Manager.Player(p.Index); ok {
			st.ConsumeBuffered(cfg.ActionJump)
		}
	})
}
