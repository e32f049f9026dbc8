package prmfile

import (
	"strings"

	"github.com/sarat-asymmetrica/dockvedic/internal/chrom"
	"github.com/sarat-asymmetrica/dockvedic/internal/errs"
	"github.com/sarat-asymmetrica/dockvedic/internal/randsrc"
	"github.com/sarat-asymmetrica/dockvedic/internal/transform"
	"github.com/sarat-asymmetrica/dockvedic/internal/variant"
)

// ParamTransformClass is the key inside a PROTOCOL section that names
// which transform class to instantiate for that stage.
const ParamTransformClass = "TRANSFORM"

// CreateTransform builds a single named transform stage. seed and src are
// shared across every stage of a protocol (they are run-level, not
// section-level, configuration), the way a single chromosome and random
// source are threaded through RandomPopTransform/SimAnnTransform/
// SimplexTransform by the CLI's run command.
func CreateTransform(strClass, strName string, seed *chrom.Chromosome, src *randsrc.Source) (transform.Step, error) {
	class := strings.TrimPrefix(strClass, "Rbt")
	switch class {
	case "NullTransform":
		return transform.NewNullTransform(strName), nil
	case "RandomPopTransform":
		return transform.NewRandomPopTransform(strName, seed, src), nil
	case "SimAnnTransform":
		return transform.NewSimAnnTransform(strName, seed, src), nil
	case "SimplexTransform":
		return transform.NewSimplexTransform(strName, seed), nil
	case "GATransform":
		return transform.NewGATransform(strName), nil
	case "TransformAgg":
		return transform.NewTransformAgg(strName), nil
	default:
		return nil, errs.BadArgument("unknown transform class " + strClass)
	}
}

// CreateTransformAggFromSource builds a protocol pipeline from every
// section in src that defines a TRANSFORM parameter, in file order. This
// mirrors CreateSFAggFromSource's section-scanning shape extended to the
// transform family: the original factory this is grounded on only builds
// scoring functions, since the reference implementation's protocol stages
// were wired in C++ rather than read from a parameter file.
func CreateTransformAggFromSource(src *Source, strName, strStages string, seed *chrom.Chromosome, rnd *randsrc.Source) (*transform.TransformAgg, error) {
	sections, strict := sectionList(src, strStages)
	agg := transform.NewTransformAgg(strName)

	for _, section := range sections {
		src.SetSection(section)
		if !src.IsParameterPresent(ParamTransformClass) {
			if strict {
				return nil, errs.FileMissingParameter(section, ParamTransformClass)
			}
			continue
		}
		class := src.GetParameterValueAsString(ParamTransformClass)
		step, err := CreateTransform(class, section, seed, rnd)
		if err != nil {
			return nil, err
		}
		settable, ok := step.(interface {
			SetParameter(name string, val variant.Value) error
			IsParameterValid(name string) bool
		})
		if ok {
			for _, key := range src.GetParameterList() {
				if key == ParamTransformClass || !settable.IsParameterValid(key) {
					continue
				}
				if err := settable.SetParameter(key, variant.String(src.GetParameterValueAsString(key))); err != nil {
					return nil, err
				}
			}
		}
		agg.Add(step)
	}
	return agg, nil
}
