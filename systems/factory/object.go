package factory

import (
	"github.com/automoto/blockrunner/components"
	"github.com/automoto/blockrunner/physics"
	"github.com/automoto/blockrunner/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// attachObject mirrors body into the world's resolv space so other entities
// can find it by tag.
func attachObject(entry *donburi.Entry, w *world.World, body physics.Body, tag string) {
	obj := resolv.NewObject(body.X, body.Y, body.Width(), body.Height(), tag)
	obj.Data = entry
	w.Space().Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
}
