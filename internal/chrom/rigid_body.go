package chrom

import (
	"math"

	"github.com/sarat-asymmetrica/dockvedic/internal/geom"
	"github.com/sarat-asymmetrica/dockvedic/internal/model"
	"github.com/sarat-asymmetrica/dockvedic/internal/randsrc"
)

// TetherMode controls whether a RigidBody element is free to roam the
// whole docking site or constrained to stay near a reference coordinate
// recorded at construction time, the tethered-docking mode used for
// cross-docking validation against a known binding pose.
type TetherMode int

const (
	TetherFree TetherMode = iota
	TetherConstrained
)

// RigidBody is the chromosome element for a ligand's overall pose: a
// translation of its centroid plus an orientation quaternion, synchronised
// against every atom of the model by rotating about the centroid and then
// translating.
type RigidBody struct {
	model  *model.Model
	rand   *randsrc.Source
	tether TetherMode
	tetherRef geom.Coord
	tetherMaxDist float64

	refCentroid geom.Coord
	refCoords   []geom.Coord // atom coords relative to refCentroid at SyncFromModel time

	translation geom.Vector
	orientation geom.Quaternion

	// maxTrans/maxRot bound Randomise's initial spread; Mutate scales them
	// by relStepSize.
	maxTrans float64
	maxRot   float64

	dist MutationDist
}

// NewRigidBody constructs a RigidBody element over m using src for
// randomisation, with maxTrans (Angstroms) and maxRot (radians) governing
// the magnitude of a full-strength Randomise/Mutate step.
func NewRigidBody(m *model.Model, src *randsrc.Source, maxTrans, maxRot float64) *RigidBody {
	r := &RigidBody{model: m, rand: src, maxTrans: maxTrans, maxRot: maxRot, orientation: geom.Identity()}
	r.SyncFromModel()
	return r
}

// SetTether enables tethered mode: translations beyond maxDist of ref are
// rejected by Mutate/Randomise by clamping, not by resampling, matching
// the "soft" tether behaviour of a TetherSF restraint term rather than a
// hard search-space cut.
func (r *RigidBody) SetTether(ref geom.Coord, maxDist float64) {
	r.tether = TetherConstrained
	r.tetherRef = ref
	r.tetherMaxDist = maxDist
}

func (r *RigidBody) Reset() {
	r.translation = geom.Vector{}
	r.orientation = geom.Identity()
	r.SyncToModel()
}

func (r *RigidBody) Randomise(stepSize float64) {
	t := r.maxTrans * stepSize
	r.translation = geom.Vector{
		X: r.rand.Uniform(-t, t),
		Y: r.rand.Uniform(-t, t),
		Z: r.rand.Uniform(-t, t),
	}
	axis := geom.Vector{X: r.rand.NormFloat64(), Y: r.rand.NormFloat64(), Z: r.rand.NormFloat64()}
	theta := r.rand.Uniform(-r.maxRot, r.maxRot) * stepSize
	r.orientation = geom.FromAxisAngle(axis, theta)
	r.clampTether()
	r.SyncToModel()
}

// SetMutationPolicy selects the distribution Mutate draws its translation
// and rotation steps from: DistGaussian (default) or DistUniform. Any
// other value falls back to DistGaussian.
func (r *RigidBody) SetMutationPolicy(dist MutationDist) {
	if dist != DistUniform {
		dist = DistGaussian
	}
	r.dist = dist
}

// deviate draws one sample from the element's mutation policy: a
// standard-normal deviate under DistGaussian, or a deviate uniform over
// [-1, 1) under DistUniform; the caller scales it by the DoF's own step.
func (r *RigidBody) deviate() float64 {
	if r.dist == DistUniform {
		return r.rand.Uniform(-1, 1)
	}
	return r.rand.NormFloat64()
}

func (r *RigidBody) Mutate(relStepSize float64) {
	t := r.maxTrans * relStepSize
	r.translation = r.translation.Add(geom.Vector{
		X: r.deviate() * t,
		Y: r.deviate() * t,
		Z: r.deviate() * t,
	})
	axis := geom.Vector{X: r.rand.NormFloat64(), Y: r.rand.NormFloat64(), Z: r.rand.NormFloat64()}
	theta := r.deviate() * r.maxRot * relStepSize
	r.orientation = geom.FromAxisAngle(axis, theta).Mul(r.orientation).Normalize()
	r.clampTether()
	r.SyncToModel()
}

func (r *RigidBody) clampTether() {
	if r.tether != TetherConstrained || r.tetherMaxDist <= 0 {
		return
	}
	center := r.refCentroid.Add(r.translation)
	d := center.Dist(r.tetherRef)
	if d > r.tetherMaxDist {
		scale := r.tetherMaxDist / d
		toRef := r.tetherRef.Sub(r.refCentroid)
		overshoot := r.translation.Sub(toRef)
		r.translation = toRef.Add(overshoot.Scale(scale))
	}
}

func (r *RigidBody) SyncFromModel() {
	r.refCentroid = r.model.Centroid()
	r.refCoords = make([]geom.Coord, len(r.model.Atoms))
	for i, a := range r.model.Atoms {
		r.refCoords[i] = geom.Coord{X: a.Coord.X - r.refCentroid.X, Y: a.Coord.Y - r.refCentroid.Y, Z: a.Coord.Z - r.refCentroid.Z}
	}
	r.translation = geom.Vector{}
	r.orientation = geom.Identity()
}

func (r *RigidBody) SyncToModel() {
	newCenter := r.refCentroid.Add(r.translation)
	for i := range r.model.Atoms {
		rel := geom.Vector{X: r.refCoords[i].X, Y: r.refCoords[i].Y, Z: r.refCoords[i].Z}
		rotated := r.orientation.Rotate(rel)
		r.model.Atoms[i].Coord = newCenter.Add(rotated)
	}
}

func (r *RigidBody) Clone() Element {
	clone := *r
	clone.refCoords = append([]geom.Coord(nil), r.refCoords...)
	return &clone
}

func (r *RigidBody) Length() int      { return 7 } // tx,ty,tz,qw,qx,qy,qz
func (r *RigidBody) XOverLength() int { return 1 } // crosses over as one unit

func (r *RigidBody) AppendVector(dst []float64) []float64 {
	return append(dst, r.translation.X, r.translation.Y, r.translation.Z,
		r.orientation.W, r.orientation.X, r.orientation.Y, r.orientation.Z)
}

func (r *RigidBody) SetVector(src []float64, pos *int) error {
	if len(src)-*pos < r.Length() {
		return errShortVector(len(src)-*pos, r.Length())
	}
	p := *pos
	r.translation = geom.Vector{X: src[p], Y: src[p+1], Z: src[p+2]}
	r.orientation = geom.Quaternion{W: src[p+3], X: src[p+4], Y: src[p+5], Z: src[p+6]}.Normalize()
	*pos += r.Length()
	r.clampTether()
	r.SyncToModel()
	return nil
}

func (r *RigidBody) AppendStepVector(dst []float64) []float64 {
	t := r.maxTrans
	q := r.maxRot
	return append(dst, t, t, t, q, q, q, q)
}

func (r *RigidBody) CompareVector(src []float64, pos *int) float64 {
	if len(src)-*pos < r.Length() {
		*pos += r.Length()
		return -1
	}
	p := *pos
	current := [7]float64{
		r.translation.X, r.translation.Y, r.translation.Z,
		r.orientation.W, r.orientation.X, r.orientation.Y, r.orientation.Z,
	}
	steps := [7]float64{r.maxTrans, r.maxTrans, r.maxTrans, r.maxRot, r.maxRot, r.maxRot, r.maxRot}
	var maxRel float64
	for i, step := range steps {
		if step <= 0 {
			step = 1
		}
		if rel := math.Abs(src[p+i]-current[i]) / step; rel > maxRel {
			maxRel = rel
		}
	}
	*pos += r.Length()
	return maxRel
}
