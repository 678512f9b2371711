package tracer

import (
	"github.com/chewxy/math32"
	"github.com/gmittal/spheretrace/pkg/core"
	"github.com/gmittal/spheretrace/pkg/scene"
)

// Hit is the closest surface found along a ray.
type Hit struct {
	Sphere *scene.Sphere
	T      float32     // ray parameter of the hit
	Point  core.Vector // ray.At(T)
}

// ClosestIntersection finds the sphere whose nearer root lies strictly
// inside (tMin, tMax) and is smallest. Only the nearer root of each sphere is
// considered, so a ray starting inside a sphere does not see it.
func (t *Tracer) ClosestIntersection(ray core.Ray, tMin, tMax float32) (Hit, bool) {
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return Hit{}, false
	}

	var best *scene.Sphere
	bestT := tMax
	for i := range t.scene.Spheres {
		s := &t.scene.Spheres[i]
		root, ok := nearRoot(ray, a, s)
		if ok && root > tMin && root < bestT {
			best, bestT = s, root
		}
	}

	if best == nil {
		return Hit{}, false
	}
	return Hit{Sphere: best, T: bestT, Point: ray.At(bestT)}, true
}

// nearRoot solves a·t² + b·t + c = 0 for the ray against s and returns the
// smaller root.
func nearRoot(ray core.Ray, a float32, s *scene.Sphere) (float32, bool) {
	fromCenter := ray.Origin.Subtract(s.Center)
	b := 2 * fromCenter.Dot(ray.Direction)
	c := fromCenter.Dot(fromCenter) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	return (-b - math32.Sqrt(disc)) / (2 * a), true
}
