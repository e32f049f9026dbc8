package main

import (
	"fmt"

	"github.com/sarat-asymmetrica/dockvedic/internal/chrom"
	"github.com/sarat-asymmetrica/dockvedic/internal/dockio"
	"github.com/sarat-asymmetrica/dockvedic/internal/model"
	"github.com/sarat-asymmetrica/dockvedic/internal/prmfile"
	"github.com/sarat-asymmetrica/dockvedic/internal/randsrc"
	"github.com/sarat-asymmetrica/dockvedic/internal/scoring"
	"github.com/sarat-asymmetrica/dockvedic/internal/transform"
	"github.com/sarat-asymmetrica/dockvedic/internal/workspace"
)

// searchRig bundles everything a run needs: the workspace with its
// receptor/ligand models attached, the scoring aggregate, the ligand
// chromosome, and (when the parameter file names one) the transform
// pipeline.
type searchRig struct {
	ws        *workspace.WorkSpace
	sf        *scoring.SFAgg
	pipeline  *transform.TransformAgg
	c         *chrom.Chromosome
	ligand    *model.Model
	receptor  *model.Model
	rnd       *randsrc.Source
}

// buildSearchRig loads the receptor/ligand fixtures and the parameter
// file at prmPath, then wires a workspace exactly the way `dock score`
// and `dock run` both need: AddModels(receptor, ligand), the SF aggregate
// registered and installed via both agg.Register(ws) and ws.SetSF(agg)
// (registration attaches the Observer; SetSF separately installs the
// active scorer — the two are not the same step), and a chromosome built
// from the ligand's rigid body plus one Dihedral per rotatable bond.
func buildSearchRig(receptorPath, ligandPath, prmPath string, seed int64, sfSections, stageSections string) (*searchRig, error) {
	receptorFixture, err := dockio.LoadModelFixtureFile(receptorPath)
	if err != nil {
		return nil, fmt.Errorf("loading receptor: %w", err)
	}
	ligandFixture, err := dockio.LoadModelFixtureFile(ligandPath)
	if err != nil {
		return nil, fmt.Errorf("loading ligand: %w", err)
	}

	src, err := prmfile.ParseFile(prmPath)
	if err != nil {
		return nil, fmt.Errorf("loading parameter file: %w", err)
	}

	receptor := receptorFixture.ToModel()
	ligand := ligandFixture.ToModel()

	ws := workspace.New()
	ws.AddModels(receptor, ligand)

	sf, err := prmfile.CreateSFAggFromSource(src, "root", sfSections)
	if err != nil {
		return nil, fmt.Errorf("building scoring function: %w", err)
	}
	sf.Register(ws)
	ws.SetSF(sf)
	prmfile.ApplyQueuedParams(src, sf)

	rnd := randsrc.New(seed)
	c := buildLigandChromosome(ligand, rnd)

	var pipeline *transform.TransformAgg
	if stageSections != "" {
		pipeline, err = prmfile.CreateTransformAggFromSource(src, "protocol", stageSections, c, rnd)
		if err != nil {
			return nil, fmt.Errorf("building transform pipeline: %w", err)
		}
		pipeline.Register(ws)
		ws.SetTransform(pipeline)
		prmfile.ApplyQueuedParams(src, pipeline)
	}

	return &searchRig{ws: ws, sf: sf, pipeline: pipeline, c: c, ligand: ligand, receptor: receptor, rnd: rnd}, nil
}

// buildLigandChromosome adds one RigidBody element spanning the whole
// ligand plus one Dihedral per bond the fixture marked rotatable. The
// affected-atom set for a bond is every atom at or past its second atom
// in fixture order, the same convention a linear testdata ligand (atoms
// listed outward from the anchor) satisfies without needing a bonded-graph
// walk.
func buildLigandChromosome(ligand *model.Model, rnd *randsrc.Source) *chrom.Chromosome {
	c := chrom.NewChromosome()
	for i := range ligand.Atoms {
		ligand.Atoms[i].Selected = true
	}
	_ = c.Add(chrom.NewRigidBody(ligand, rnd, 1.0, 30.0))

	for _, bond := range rotatableBondsOf(ligand) {
		affected := make([]int, 0, len(ligand.Atoms)-bond[1])
		for i := bond[1]; i < len(ligand.Atoms); i++ {
			affected = append(affected, i)
		}
		_ = c.Add(chrom.NewDihedral(ligand, rnd, bond[0], bond[1], affected, 30.0))
	}
	return c
}

func rotatableBondsOf(m *model.Model) [][2]int {
	var out [][2]int
	for _, b := range m.Bonds {
		if b.RotatableBond {
			out = append(out, [2]int{b.Atom1, b.Atom2})
		}
	}
	return out
}
