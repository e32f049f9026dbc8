package scoring

import (
	"math"

	"github.com/sarat-asymmetrica/dockvedic/internal/model"
	"github.com/sarat-asymmetrica/dockvedic/internal/object"
	"github.com/sarat-asymmetrica/dockvedic/internal/variant"
	"github.com/sarat-asymmetrica/dockvedic/internal/workspace"
)

const (
	ParamVdwE0       = "E0"
	ParamVdwAttrK    = "ATTRK"
	ParamVdwRepK     = "REPK"
	ParamVdwUseDist  = "USE_4_8"
	ParamVdwEcut     = "ECUT"
	ParamVdwFlexPad  = "FLEXPAD"
	ParamVdwAttrCut  = "ATTRCUT"
	ParamVdwRepCut   = "REPCUT"
	ParamVdwAnnoLipo = "ANNOTATE_LIPO"
	ParamVdwLipoCut  = "LIPOTHRESHOLD"
)

// triposVdwParams gives a (sigma radius, well-depth) pair per Tripos/SYBYL
// atom type; a small, deliberately incomplete table covering the types
// that show up in most ligand/receptor pairs. An entry for the atom's
// TriposType takes precedence over the atom's own VdwRadius.
var triposVdwParams = map[string]struct{ radius, e0 float64 }{
	"C.3":   {1.90, 0.150},
	"C.2":   {1.90, 0.150},
	"C.ar":  {1.85, 0.140},
	"N.3":   {1.75, 0.160},
	"N.ar":  {1.75, 0.160},
	"O.2":   {1.60, 0.200},
	"O.3":   {1.60, 0.200},
	"O.co2": {1.60, 0.210},
	"S.3":   {2.00, 0.250},
	"P.3":   {2.10, 0.200},
	"F":     {1.47, 0.080},
	"Cl":    {1.75, 0.276},
	"Br":    {1.85, 0.389},
	"H":     {1.20, 0.016},
}

// vdwParamsFor resolves the (sigma-radius, well-depth) pair for a: the
// Tripos table entry for its TriposType if there is one, otherwise the
// atom's own VdwRadius with a generic 0.1 well depth.
func vdwParamsFor(a *model.Atom) (radius, e0 float64) {
	if p, ok := triposVdwParams[a.TriposType]; ok {
		return p.radius, p.e0
	}
	return a.VdwRadius, 0.1
}

// VdwIdxSF is the grid-indexed van der Waals term: a soft 4-8 (or 12-6 when
// USE_4_8 is false) potential per ligand/receptor atom pair, summed only
// over pairs the interaction grid reports as nearby so the cost stays
// roughly linear in ligand atom count rather than quadratic in total
// atoms, plus the intra-receptor flexible-residue, solvent-solvent, and
// receptor-solvent contributions the full scoring function also owns.
type VdwIdxSF struct {
	*BaseIdxSF
	flexFlex  map[int][]int
	flexRigid map[int][]int

	nAttr, nRep int
	lipoCount   int
}

// NewVdwIdxSF constructs the term with a 6A nominal range, the distance
// beyond which van der Waals contributions are considered negligible.
func NewVdwIdxSF(name string) *VdwIdxSF {
	v := &VdwIdxSF{BaseIdxSF: NewBaseIdxSF("VdwIdxSF", name, 6.0)}
	v.AddParameter(ParamVdwAttrK, variant.Double(4.0))
	v.AddParameter(ParamVdwRepK, variant.Double(8.0))
	v.AddParameter(ParamVdwUseDist, variant.Bool(true))
	v.AddParameter(ParamVdwEcut, variant.Double(120.0))
	v.AddParameter(ParamVdwFlexPad, variant.Double(3.0))
	v.AddParameter(ParamVdwAttrCut, variant.Double(-0.5))
	v.AddParameter(ParamVdwRepCut, variant.Double(0.5))
	v.AddParameter(ParamVdwAnnoLipo, variant.Bool(false))
	v.AddParameter(ParamVdwLipoCut, variant.Double(-0.3))
	v.BindSelf(v)
	return v
}

func (v *VdwIdxSF) attrK() float64   { return v.GetParameter(ParamVdwAttrK).AsDouble() }
func (v *VdwIdxSF) repK() float64    { return v.GetParameter(ParamVdwRepK).AsDouble() }
func (v *VdwIdxSF) use48() bool      { return v.GetParameter(ParamVdwUseDist).AsBool() }
func (v *VdwIdxSF) ecut() float64    { return v.GetParameter(ParamVdwEcut).AsDouble() }
func (v *VdwIdxSF) flexPad() float64 { return v.GetParameter(ParamVdwFlexPad).AsDouble() }
func (v *VdwIdxSF) attrCut() float64 { return v.GetParameter(ParamVdwAttrCut).AsDouble() }
func (v *VdwIdxSF) repCut() float64  { return v.GetParameter(ParamVdwRepCut).AsDouble() }
func (v *VdwIdxSF) annoLipo() bool   { return v.GetParameter(ParamVdwAnnoLipo).AsBool() }
func (v *VdwIdxSF) lipoCut() float64 { return v.GetParameter(ParamVdwLipoCut).AsDouble() }

// Update rebuilds the receptor interaction grid whenever the workspace
// notifies, since a new receptor conformer invalidates the cached lists.
func (v *VdwIdxSF) Update(s object.Subject) {
	v.Invalidate()
	rebuildReceptorGrid(v.BaseIdxSF, s)
}

// rebuildReceptorGrid pulls the receptor model out of ws (if s is indeed
// the registered workspace) and stamps one interaction center per
// non-hydrogen receptor atom within cavity-distance range; shared by
// VdwIdxSF and PolarIdxSF.
func rebuildReceptorGrid(b *BaseIdxSF, s object.Subject) {
	ws, ok := s.(*workspace.WorkSpace)
	if !ok {
		return
	}
	receptor, err := ws.GetModel(0)
	if err != nil {
		return
	}
	b.EnsureGrid(receptorCentersFiltered(ws, receptor, b.GetCorrectedRange()))
}

// receptorCentersFiltered drops hydrogens and, when a docking site is
// registered, atoms further than maxDist from the cavity, since neither
// can contribute a pair inside the term's effective range.
func receptorCentersFiltered(ws *workspace.WorkSpace, receptor *model.Model, maxDist float64) []*model.InteractionCenter {
	site := ws.GetDockingSite()
	centers := make([]*model.InteractionCenter, 0, len(receptor.Atoms))
	for i := range receptor.Atoms {
		a := &receptor.Atoms[i]
		if a.Element == "H" {
			continue
		}
		if site != nil && site.DistanceOutside(a.Coord) > maxDist {
			continue
		}
		centers = append(centers, &model.InteractionCenter{
			Model: receptor, Atom1: i, Atom2: -1, Atom3: -1,
			Geometry: a.AcceptorGeometry, IsDonor: a.IsDonor, IsAcceptor: a.IsAcceptor,
		})
	}
	return centers
}

// vdwPair evaluates the soft 4-8 (or 12-6) potential between two atoms
// separated by r Angstroms, with well depth e0 and equilibrium distance
// the sum of the two van der Waals radii, clamped so a single close
// contact can never swamp the rest of the pose's score.
func vdwPair(r, sigma, e0 float64, attrK, repK, ecut float64) float64 {
	if r < 1e-6 {
		r = 1e-6
	}
	ratio := sigma / r
	raw := e0 * (math.Pow(ratio, repK) - 2*math.Pow(ratio, attrK))
	if raw > ecut {
		return ecut
	}
	return raw
}

// rebuildFlexMaps partitions the receptor's atoms into the flexible
// (Selected) and rigid subsets and records, for every flexible atom, the
// rigid and flexible partners within flex-pad-widened effective range:
// the intra-receptor interaction maps the scoring pass walks alongside
// the ligand-receptor grid.
func (v *VdwIdxSF) rebuildFlexMaps(receptor *model.Model) {
	v.flexFlex = make(map[int][]int)
	v.flexRigid = make(map[int][]int)
	pad := v.EffectiveRange() + v.flexPad()
	for i := range receptor.Atoms {
		if !receptor.Atoms[i].Selected {
			continue
		}
		ai := &receptor.Atoms[i]
		for j := range receptor.Atoms {
			if i == j {
				continue
			}
			aj := &receptor.Atoms[j]
			if ai.Coord.Dist(aj.Coord) > pad {
				continue
			}
			if aj.Selected {
				if j > i {
					v.flexFlex[i] = append(v.flexFlex[i], j)
				}
			} else {
				v.flexRigid[i] = append(v.flexRigid[i], j)
			}
		}
	}
}

// RawScore sums the pairwise VdW potential between every ligand atom and
// every receptor center within indexed range, the intra-receptor
// flexible interaction maps, and any registered solvent models.
func (v *VdwIdxSF) RawScore() float64 {
	ligand, err := v.Ligand()
	if err != nil {
		return 0
	}
	receptor, err := v.Receptor()
	if err != nil {
		return 0
	}
	ws := v.GetWorkSpace()
	v.EnsureGrid(receptorCentersFiltered(ws, receptor, v.GetCorrectedRange()))
	if v.flexFlex == nil {
		v.rebuildFlexMaps(receptor)
	}
	attrK, repK := v.attrK(), v.repK()
	if !v.use48() {
		attrK, repK = 6.0, 12.0
	}
	ecut := v.ecut()
	v.nAttr, v.nRep, v.lipoCount = 0, 0, 0

	var total float64
	accum := func(r float64, la, ra *model.Atom) float64 {
		sr, se0 := vdwParamsFor(la)
		rr, re0 := vdwParamsFor(ra)
		sigma := sr + rr
		e0 := math.Sqrt(math.Max(se0, 1e-6) * math.Max(re0, 1e-6))
		e := vdwPair(r, sigma, e0, attrK, repK, ecut)
		if e <= v.attrCut() {
			v.nAttr++
		} else if e >= v.repCut() {
			v.nRep++
		}
		if v.annoLipo() && la.IsLipophile && ra.IsLipophile && e <= v.lipoCut() {
			v.lipoCount++
		}
		return e
	}

	// Ligand x receptor, via the grid.
	for i := range ligand.Atoms {
		la := &ligand.Atoms[i]
		for _, center := range v.NearbyCenters(la.Coord) {
			ra := &receptor.Atoms[center.Atom1]
			r := la.Coord.Dist(ra.Coord)
			if r > v.EffectiveRange() {
				continue
			}
			total += accum(r, la, ra)
		}
	}

	// Intra-receptor: flexible<->rigid and flexible<->flexible.
	for i, partners := range v.flexRigid {
		ai := &receptor.Atoms[i]
		for _, j := range partners {
			aj := &receptor.Atoms[j]
			r := ai.Coord.Dist(aj.Coord)
			if r > v.EffectiveRange() {
				continue
			}
			total += accum(r, ai, aj)
		}
	}
	for i, partners := range v.flexFlex {
		ai := &receptor.Atoms[i]
		for _, j := range partners {
			aj := &receptor.Atoms[j]
			r := ai.Coord.Dist(aj.Coord)
			if r > v.EffectiveRange() {
				continue
			}
			total += accum(r, ai, aj)
		}
	}

	// Solvent: ligand<->solvent, solvent<->solvent (when the free-solvent
	// sublist is non-empty), receptor<->solvent for every active model.
	solvents := v.Solvents()
	for si, sm := range solvents {
		if sm.Inactive {
			continue
		}
		for i := range ligand.Atoms {
			la := &ligand.Atoms[i]
			for j := range sm.Atoms {
				sa := &sm.Atoms[j]
				r := la.Coord.Dist(sa.Coord)
				if r > v.EffectiveRange() {
					continue
				}
				total += accum(r, la, sa)
			}
		}
		for i := range receptor.Atoms {
			ra := &receptor.Atoms[i]
			for j := range sm.Atoms {
				sa := &sm.Atoms[j]
				r := ra.Coord.Dist(sa.Coord)
				if r > v.EffectiveRange() {
					continue
				}
				total += accum(r, ra, sa)
			}
		}
		for sj := si + 1; sj < len(solvents); sj++ {
			other := solvents[sj]
			if other.Inactive {
				continue
			}
			for i := range sm.Atoms {
				for j := range other.Atoms {
					a, b := &sm.Atoms[i], &other.Atoms[j]
					r := a.Coord.Dist(b.Coord)
					if r > v.EffectiveRange() {
						continue
					}
					total += accum(r, a, b)
				}
			}
		}
	}

	return total
}

func (v *VdwIdxSF) Score() float64 { return v.BaseSF.Score(v.RawScore()) }

func (v *VdwIdxSF) ScoreMap(sm workspace.ScoreMap) {
	if !v.IsEnabled() {
		return
	}
	raw := v.RawScore()
	sm[v.GetFullName()] = raw
	sm["score.total"] += v.Weight() * raw
	sm[v.GetFullName()+".nattr"] = float64(v.nAttr)
	sm[v.GetFullName()+".nrep"] = float64(v.nRep)
	if v.annoLipo() {
		sm["score.inter.vdw.lipo"] = float64(v.lipoCount)
	}
}
