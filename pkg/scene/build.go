package scene

import (
	"fmt"
	"path/filepath"

	"github.com/df07/go-mc-renderer/pkg/core"
	"github.com/df07/go-mc-renderer/pkg/geometry"
	"github.com/df07/go-mc-renderer/pkg/loaders"
	"github.com/df07/go-mc-renderer/pkg/material"
	"github.com/df07/go-mc-renderer/pkg/sky"
)

// Build creates a preprocessed scene from a description. Relative environment
// map paths are resolved against baseDir.
func Build(desc *loaders.Description, baseDir string) (*Scene, error) {
	materials := make(map[string]material.Material, len(desc.Materials))
	for name, section := range desc.Materials {
		mat, err := buildMaterial(section)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}

	shapes := make([]geometry.Shape, 0, len(desc.Objects))
	for i, object := range desc.Objects {
		mat, ok := materials[object.Material]
		if !ok {
			return nil, fmt.Errorf("object %d: unknown material %q", i, object.Material)
		}
		shape, err := buildShape(object, mat)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		shapes = append(shapes, shape)
	}

	skyModel, err := BuildSky(desc.Sky, baseDir)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Shapes:               shapes,
		Sky:                  skyModel,
		MaxDepth:             desc.Renderer.MaxDepth,
		RussianRouletteDepth: desc.Renderer.RussianRouletteDepth,
	}
	s.Preprocess()
	return s, nil
}

// BuildSky creates the sky model named by the section
func BuildSky(section loaders.SkySection, baseDir string) (sky.Sky, error) {
	switch section.Type {
	case "", "uniform":
		return sky.NewUniform(vec(section.Emission)), nil
	case "simple":
		return sky.NewSimple(vec(section.Meridian), vec(section.Horizon)), nil
	case "ibl":
		path := section.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		ibl, err := sky.NewImageBased(path, section.LongitudeOffset)
		if err != nil {
			return nil, fmt.Errorf("sky: %w", err)
		}
		return ibl, nil
	default:
		return nil, fmt.Errorf("unknown sky type %q", section.Type)
	}
}

func buildMaterial(section loaders.MaterialSection) (material.Material, error) {
	switch section.Type {
	case "lambertian":
		return material.NewLambertian(vec(section.Albedo)), nil
	case "metal":
		return material.NewMetal(vec(section.Albedo), section.Fuzz), nil
	case "dielectric":
		if section.IOR <= 0 {
			return nil, fmt.Errorf("dielectric ior must be positive, got %v", section.IOR)
		}
		return material.NewDielectric(section.IOR), nil
	case "emissive":
		return material.NewEmissive(vec(section.Emission)), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", section.Type)
	}
}

func buildShape(object loaders.ObjectSection, mat material.Material) (geometry.Shape, error) {
	switch object.Type {
	case "sphere":
		if object.Radius <= 0 {
			return nil, fmt.Errorf("sphere radius must be positive, got %v", object.Radius)
		}
		return geometry.NewSphere(vec(object.Center), object.Radius, mat), nil
	case "triangle":
		v := object.Vertices
		tri := geometry.NewTriangle(vec(v[0]), vec(v[1]), vec(v[2]), mat)
		if tri.Area() == 0 {
			return nil, fmt.Errorf("triangle is degenerate")
		}
		return tri, nil
	case "quad":
		if vec(object.U).Cross(vec(object.V)).IsZero() {
			return nil, fmt.Errorf("quad edges are parallel")
		}
		return geometry.NewQuad(vec(object.Corner), vec(object.U), vec(object.V), mat), nil
	default:
		return nil, fmt.Errorf("unknown object type %q", object.Type)
	}
}

func vec(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}
