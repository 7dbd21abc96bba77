package factory

import (
	"github.com/sjmiguel8/box-brawl/archetypes"
	"github.com/sjmiguel8/box-brawl/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlatform wraps a platform sensor in an entity. The object's Data is
// the platform's index in the arena.
func CreatePlatform(w donburi.World, object *resolv.Object, index int) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)
	object.Data = index
	components.Object.SetValue(platform, components.ObjectData{Object: object})

	return platform
}
