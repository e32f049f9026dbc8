package scoring

import (
	"math"

	"github.com/sarat-asymmetrica/dockvedic/internal/geom"
	"github.com/sarat-asymmetrica/dockvedic/internal/model"
	"github.com/sarat-asymmetrica/dockvedic/internal/object"
	"github.com/sarat-asymmetrica/dockvedic/internal/variant"
	"github.com/sarat-asymmetrica/dockvedic/internal/workspace"
)

const (
	ParamPolarPlate      = "PLATEAU"
	ParamPolarR12Factor  = "R12FACTOR"
	ParamPolarR12Incr    = "R12INCR"
	ParamPolarDeltaMin   = "DELTAMIN"
	ParamPolarDeltaMax   = "DELTAMAX"
	ParamPolarDepth      = "DEPTH"
	ParamPolarThetaPlate = "THETAPLATEAU"
	ParamPolarPhiPlate   = "PHIPLATEAU"
)

// PolarIdxSF is the directional donor/acceptor term: a trapezoidal distance
// envelope around an R0 computed from the pair's van der Waals radii,
// gated by one or two angular envelopes depending on the acceptor's
// geometry (simple, plane, or lone-pair), scaled by each atom's cached
// user1 weighting factor. Only cross pairs (ligand donor vs. receptor
// acceptor or vice versa) contribute; like-like pairs score zero.
type PolarIdxSF struct {
	*BaseIdxSF

	// Sub-scores from the most recent RawScore call, reported under
	// distinct keys alongside the ligand-inclusive total GetFullName()
	// carries.
	intraReceptor   float64
	intraSolvent    float64
	receptorSolvent float64
}

// NewPolarIdxSF constructs the term with a 5A nominal range, matching the
// shorter effective reach of a directional hydrogen bond versus the
// dispersion-driven VdW term.
func NewPolarIdxSF(name string) *PolarIdxSF {
	p := &PolarIdxSF{BaseIdxSF: NewBaseIdxSF("PolarIdxSF", name, 5.0)}
	p.AddParameter(ParamPolarPlate, variant.Double(15.0))
	p.AddParameter(ParamPolarR12Factor, variant.Double(1.0))
	p.AddParameter(ParamPolarR12Incr, variant.Double(0.1))
	p.AddParameter(ParamPolarDeltaMin, variant.Double(0.25))
	p.AddParameter(ParamPolarDeltaMax, variant.Double(0.95))
	p.AddParameter(ParamPolarDepth, variant.Double(-4.0))
	p.AddParameter(ParamPolarThetaPlate, variant.Double(15.0))
	p.AddParameter(ParamPolarPhiPlate, variant.Double(30.0))
	p.BindSelf(p)
	return p
}

func (p *PolarIdxSF) plateau() float64     { return p.GetParameter(ParamPolarPlate).AsDouble() * math.Pi / 180 }
func (p *PolarIdxSF) r12Factor() float64   { return p.GetParameter(ParamPolarR12Factor).AsDouble() }
func (p *PolarIdxSF) r12Incr() float64     { return p.GetParameter(ParamPolarR12Incr).AsDouble() }
func (p *PolarIdxSF) deltaMin() float64    { return p.GetParameter(ParamPolarDeltaMin).AsDouble() }
func (p *PolarIdxSF) deltaMax() float64    { return p.GetParameter(ParamPolarDeltaMax).AsDouble() }
func (p *PolarIdxSF) depth() float64       { return p.GetParameter(ParamPolarDepth).AsDouble() }
func (p *PolarIdxSF) thetaPlateau() float64 {
	return p.GetParameter(ParamPolarThetaPlate).AsDouble() * math.Pi / 180
}
func (p *PolarIdxSF) phiPlateau() float64 {
	return p.GetParameter(ParamPolarPhiPlate).AsDouble() * math.Pi / 180
}

func (p *PolarIdxSF) Update(s object.Subject) {
	p.Invalidate()
	rebuildReceptorGrid(p.BaseIdxSF, s)
}

// f1 is the trapezoidal envelope shared by every directional scoring
// primitive in this term: 1 within dMin of zero, falling linearly to 0 at
// dMax, 0 beyond.
func f1(delta, dMin, dMax float64) float64 {
	d := math.Abs(delta)
	if d <= dMin {
		return 1.0
	}
	if d >= dMax {
		return 0
	}
	return 1.0 - (d-dMin)/(dMax-dMin)
}

// angleAt returns the angle at vertex v between rays to a and b.
func angleAt(v, a, b geom.Coord) float64 {
	return geom.Angle(v.Sub(a), v.Sub(b))
}

// bondedNeighbor returns the first atom bonded to atomIdx other than
// exclude, or -1 if none exists; used to find an acceptor parent's
// "grandparent" atom for plane/lone-pair normal construction.
func bondedNeighbor(m *model.Model, atomIdx, exclude int) int {
	for _, b := range m.Bonds {
		if b.Atom1 == atomIdx && b.Atom2 != exclude {
			return b.Atom2
		}
		if b.Atom2 == atomIdx && b.Atom1 != exclude {
			return b.Atom1
		}
	}
	return -1
}

// buildPolarCenters constructs one InteractionCenter per donor or acceptor
// atom of m. A donor's Atom1 is the atom itself (the typing collaborator
// marks the polar hydrogen IsDonor) and Atom2 its bonded heavy parent. An
// acceptor's Atom1 is the heavy atom itself, Atom2 its bonded parent, and
// Atom3 a "grandparent" found by walking the parent's other bond when the
// atom's AcceptorGeometry calls for plane/lone-pair directionality.
// Guanidinium/metal pseudo-centres are not constructed here: classifying
// an atom as guanidinium carbon or metal is atom-typing, out of core
// scope, so those atoms score via the plain distance+user1 path instead
// of a dedicated three-atom centre.
func buildPolarCenters(m *model.Model) []*model.InteractionCenter {
	centers := make([]*model.InteractionCenter, 0, len(m.Atoms))
	for i := range m.Atoms {
		a := &m.Atoms[i]
		if !a.IsDonor && !a.IsAcceptor {
			continue
		}
		c := &model.InteractionCenter{
			Model: m, Atom1: i, Atom2: -1, Atom3: -1,
			Geometry: a.AcceptorGeometry, IsDonor: a.IsDonor, IsAcceptor: a.IsAcceptor,
		}
		if a.ParentIndex >= 0 && a.ParentIndex != i && a.ParentIndex < len(m.Atoms) {
			c.Atom2 = a.ParentIndex
			if a.IsAcceptor && a.AcceptorGeometry != model.LonePairNone {
				if gp := bondedNeighbor(m, a.ParentIndex, i); gp >= 0 {
					c.Atom3 = gp
				}
			}
		}
		centers = append(centers, c)
	}
	return centers
}

// planeNormal returns the unit normal of the plane through center (p0),
// its parent (p1), and its grandparent (p2), used for PLANE/LONEPAIR
// acceptor geometry.
func planeNormal(p0, p1, p2 geom.Coord) geom.Vector {
	return p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
}

// donorAngleTerm scores the Parent-H...Acceptor angle at a donor centre.
func (p *PolarIdxSF) donorAngleTerm(donor *model.InteractionCenter, acceptorCoord geom.Coord) float64 {
	if donor.Atom2 < 0 {
		return 1.0
	}
	parent := donor.Model.Atoms[donor.Atom2].Coord
	angle := angleAt(donor.Coord(), parent, acceptorCoord)
	return f1(angle, p.plateau(), math.Pi/2)
}

// acceptorAngleTerm scores the acceptor side: a plain f1 over the
// parent-acceptor-donor angle for a simple (no-geometry) acceptor, the
// bond-vector/plane-normal angle for a PLANE acceptor, and an independent
// theta/phi decomposition relative to the lone-pair plane for a LONEPAIR
// acceptor.
func (p *PolarIdxSF) acceptorAngleTerm(acc *model.InteractionCenter, donorCoord geom.Coord) float64 {
	if acc.Atom2 < 0 {
		return 1.0
	}
	parent := acc.Model.Atoms[acc.Atom2].Coord
	switch acc.Geometry {
	case model.LonePairPlane:
		if acc.Atom3 < 0 {
			angle := angleAt(acc.Coord(), parent, donorCoord)
			return f1(angle, p.plateau(), math.Pi/2)
		}
		grandparent := acc.Model.Atoms[acc.Atom3].Coord
		normal := planeNormal(acc.Coord(), parent, grandparent)
		bond := donorCoord.Sub(acc.Coord())
		angle := geom.Angle(bond, normal)
		// The bond should lie IN the plane (perpendicular to the normal),
		// so score the deviation from 90 degrees rather than from 0.
		return f1(math.Abs(angle-math.Pi/2), p.plateau(), math.Pi/2)
	case model.LonePairExplicit:
		if acc.Atom3 < 0 {
			angle := angleAt(acc.Coord(), parent, donorCoord)
			return f1(angle, p.plateau(), math.Pi/2)
		}
		grandparent := acc.Model.Atoms[acc.Atom3].Coord
		normal := planeNormal(acc.Coord(), parent, grandparent)
		toDonor := donorCoord.Sub(acc.Coord())
		theta := math.Abs(geom.Angle(toDonor, normal) - math.Pi/2)
		lonePairDir := acc.Coord().Sub(parent)
		inPlane := toDonor.Sub(normal.Scale(toDonor.Dot(normal)))
		phi := geom.Angle(inPlane, lonePairDir)
		return f1(theta, p.thetaPlateau(), math.Pi/2) * f1(phi, p.phiPlateau(), math.Pi/2)
	default:
		angle := angleAt(acc.Coord(), parent, donorCoord)
		return f1(angle, p.plateau(), math.Pi/2)
	}
}

// pairScore evaluates one donor/acceptor InteractionCenter pair: the R0-
// centred trapezoidal distance envelope times the donor- and acceptor-side
// angular envelopes times both atoms' cached user1 weighting.
func (p *PolarIdxSF) pairScore(donor, acc *model.InteractionCenter) float64 {
	donorHeavy := donor.Coord()
	if donor.Atom2 >= 0 {
		donorHeavy = donor.Model.Atoms[donor.Atom2].Coord
	}
	acceptorHeavy := acc.Coord()
	r := donorHeavy.Dist(acceptorHeavy)
	donorAtom := &donor.Model.Atoms[donor.Atom1]
	accAtom := &acc.Model.Atoms[acc.Atom1]
	r0 := p.r12Factor()*(donorAtom.VdwRadius+accAtom.VdwRadius) + p.r12Incr()
	distTerm := f1(r-r0, p.deltaMin(), p.deltaMax())
	if distTerm == 0 {
		return 0
	}
	angleTerm := p.donorAngleTerm(donor, acceptorHeavy) * p.acceptorAngleTerm(acc, donorHeavy)
	if angleTerm == 0 {
		return 0
	}
	weight := 1.0
	if donorAtom.User1 != 0 {
		weight *= donorAtom.User1
	}
	if accAtom.User1 != 0 {
		weight *= accAtom.User1
	}
	return p.depth() * distTerm * angleTerm * weight
}

// scorePairs sums pairScore over every complementary donor/acceptor pair
// between the two center lists within range.
func (p *PolarIdxSF) scorePairs(a, b []*model.InteractionCenter) float64 {
	var total float64
	for _, ca := range a {
		for _, cb := range b {
			if ca.Model == cb.Model && ca.Atom1 == cb.Atom1 {
				continue
			}
			complementary := (ca.IsDonor && cb.IsAcceptor) || (ca.IsAcceptor && cb.IsDonor)
			if !complementary {
				continue
			}
			if ca.Coord().Dist(cb.Coord()) > p.EffectiveRange() {
				continue
			}
			if ca.IsDonor {
				total += p.pairScore(ca, cb)
			} else {
				total += p.pairScore(cb, ca)
			}
		}
	}
	return total
}

// RawScore returns the ligand-inclusive (inter) contribution: ligand
// donor/acceptor atoms against receptor and solvent centers. The
// system-only buckets (intra-receptor, intra-solvent, receptor<->solvent)
// are computed as a side effect and reported separately by ScoreMap,
// mirroring the "system vs. inter energy" split the scoring function as a
// whole must report.
func (p *PolarIdxSF) RawScore() float64 {
	ligand, err := p.Ligand()
	if err != nil {
		return 0
	}
	receptor, err := p.Receptor()
	if err != nil {
		return 0
	}
	ws := p.GetWorkSpace()
	p.EnsureGrid(receptorCentersFiltered(ws, receptor, p.GetCorrectedRange()))

	ligandCenters := buildPolarCenters(ligand)
	receptorCenters := buildPolarCenters(receptor)
	byAtom1 := make(map[int]*model.InteractionCenter, len(receptorCenters))
	for _, rc := range receptorCenters {
		byAtom1[rc.Atom1] = rc
	}

	var inter float64
	for _, lc := range ligandCenters {
		for _, center := range p.NearbyCenters(lc.Coord()) {
			rc, ok := byAtom1[center.Atom1]
			if !ok {
				continue
			}
			complementary := (lc.IsDonor && rc.IsAcceptor) || (lc.IsAcceptor && rc.IsDonor)
			if !complementary {
				continue
			}
			if lc.Coord().Dist(rc.Coord()) > p.EffectiveRange() {
				continue
			}
			if lc.IsDonor {
				inter += p.pairScore(lc, rc)
			} else {
				inter += p.pairScore(rc, lc)
			}
		}
	}

	p.intraReceptor = p.scorePairs(receptorSelected(receptorCenters), receptorCenters)

	solvents := p.Solvents()
	p.intraSolvent = 0
	p.receptorSolvent = 0
	var solventCenters [][]*model.InteractionCenter
	for _, sm := range solvents {
		solventCenters = append(solventCenters, buildPolarCenters(sm))
	}
	for i, sm := range solvents {
		if sm.Inactive {
			continue
		}
		inter += p.scorePairs(solventCenters[i], ligandCenters)
		p.receptorSolvent += p.scorePairs(solventCenters[i], receptorCenters)
		for j := i + 1; j < len(solvents); j++ {
			if solvents[j].Inactive {
				continue
			}
			p.intraSolvent += p.scorePairs(solventCenters[i], solventCenters[j])
		}
	}

	return inter
}

// receptorSelected filters centers down to those built on a flexible
// (Selected) receptor atom, the half of an intra-receptor pair that must
// move for the interaction to matter.
func receptorSelected(centers []*model.InteractionCenter) []*model.InteractionCenter {
	out := make([]*model.InteractionCenter, 0, len(centers))
	for _, c := range centers {
		if c.Model.Atoms[c.Atom1].Selected {
			out = append(out, c)
		}
	}
	return out
}

func (p *PolarIdxSF) Score() float64 { return p.BaseSF.Score(p.RawScore()) }

func (p *PolarIdxSF) ScoreMap(sm workspace.ScoreMap) {
	if !p.IsEnabled() {
		return
	}
	raw := p.RawScore()
	sm[p.GetFullName()] = raw
	sm["score.total"] += p.Weight() * raw
	sm[p.GetFullName()+".sys.intra_receptor"] = p.intraReceptor
	sm[p.GetFullName()+".sys.intra_solvent"] = p.intraSolvent
	sm[p.GetFullName()+".sys.receptor_solvent"] = p.receptorSolvent
	sysTotal := p.Weight() * (p.intraReceptor + p.intraSolvent + p.receptorSolvent)
	sm["score.total"] += sysTotal
}
