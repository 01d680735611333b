package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// World is an ordered collection of hittables and is itself a Hittable.
// It must not be modified while a render is reading it.
type World struct {
	Objects []Hittable
}

// NewWorld creates a world holding the given objects
func NewWorld(objects ...Hittable) *World {
	return &World{Objects: append([]Hittable(nil), objects...)}
}

// Add appends objects to the world
func (w *World) Add(objects ...Hittable) {
	w.Objects = append(w.Objects, objects...)
}

// Len returns the number of top-level objects
func (w *World) Len() int {
	return len(w.Objects)
}

// Hit returns the nearest hit among all objects. Each object is queried with
// the closest t found so far as its upper bound, so on equal t the object
// added first wins.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, object := range w.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
