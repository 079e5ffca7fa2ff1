package systems

import (
	"github.com/automoto/blockrunner/components"
	"github.com/automoto/blockrunner/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// syncObject moves the entity's resolv object to its body.
func syncObject(entry *donburi.Entry, body physics.Body) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	obj.X, obj.Y = body.X, body.Y
	obj.Update()
}

// removeEntity deletes an entity along with its resolv object.
func removeEntity(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.World.Remove(entry.Entity())
}
