package scene

import (
	"fmt"
	"sort"
)

// SceneInfo represents metadata about a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by Create
	DisplayName string
	Description string
	build       func() *Scene
}

var builtinScenes = map[string]SceneInfo{
	"sphere": {
		ID:          "sphere",
		DisplayName: "Sphere",
		Description: "A single white sphere above a floor, one point light",
		build:       NewSphereScene,
	},
	"cornell": {
		ID:          "cornell",
		DisplayName: "Cornell Box",
		Description: "Coloured room with a mirror sphere and a diffuse sphere",
		build:       NewCornellScene,
	},
	"refraction": {
		ID:          "refraction",
		DisplayName: "Refraction",
		Description: "Coloured room with a mirror sphere and a glass sphere",
		build:       NewRefractionScene,
	},
	"sandbox": {
		ID:          "sandbox",
		DisplayName: "Sandbox",
		Description: "Seeded field of random spheres under mixed lights",
		build:       NewSandboxScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, info := range builtinScenes {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds a fresh instance of the named built-in scene. The returned
// scene still needs Preprocess before rendering.
func Create(name string) (*Scene, error) {
	info, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return info.build(), nil
}
