package prmfile

import (
	"strings"

	"github.com/sarat-asymmetrica/dockvedic/internal/errs"
	"github.com/sarat-asymmetrica/dockvedic/internal/scoring"
	"github.com/sarat-asymmetrica/dockvedic/internal/variant"
)

// ParamSFClass is the key inside a section that names which scoring
// function class to instantiate for that section.
const ParamSFClass = "SCORING_FUNCTION"

// CreateSF builds a single named term of the given class. strSFClass
// tolerates a legacy "Rbt" prefix (RbtVdwIdxSF, RbtPolarIdxSF, ...) for
// compatibility with parameter files carried over unmodified from an
// older format.
func CreateSF(strSFClass, strName string) (scoring.Term, error) {
	class := strings.TrimPrefix(strSFClass, "Rbt")
	switch class {
	case "VdwIdxSF":
		return scoring.NewVdwIdxSF(strName), nil
	case "PolarIdxSF":
		return scoring.NewPolarIdxSF(strName), nil
	case "ConstSF":
		return scoring.NewConstSF(strName, 0), nil
	case "CavityRestraintSF":
		return scoring.NewCavityRestraintSF(strName), nil
	case "SFAgg":
		return scoring.NewSFAgg(strName), nil
	default:
		return nil, errs.BadArgument("unknown scoring function class " + strSFClass)
	}
}

// CreateSFAggFromSource builds an aggregate named strName from every
// section in src that defines a SCORING_FUNCTION parameter. strSFClasses
// is a comma-delimited allow-list of section names to instantiate; when
// empty, every section in the source is scanned, and a section missing
// SCORING_FUNCTION is silently skipped rather than treated as an error
// (it may be a PROTOCOL or other non-SF section in the same file).
func CreateSFAggFromSource(src *Source, strName, strSFClasses string) (*scoring.SFAgg, error) {
	sections, strict := sectionList(src, strSFClasses)
	agg := scoring.NewSFAgg(strName)

	for _, section := range sections {
		src.SetSection(section)
		if !src.IsParameterPresent(ParamSFClass) {
			if strict {
				return nil, errs.FileMissingParameter(section, ParamSFClass)
			}
			continue
		}
		class := src.GetParameterValueAsString(ParamSFClass)
		term, err := CreateSF(class, section)
		if err != nil {
			return nil, err
		}
		settable, ok := term.(interface {
			SetParameter(name string, val variant.Value) error
			IsParameterValid(name string) bool
		})
		if ok {
			for _, key := range src.GetParameterList() {
				if key == ParamSFClass || !settable.IsParameterValid(key) {
					continue
				}
				if err := settable.SetParameter(key, variant.String(src.GetParameterValueAsString(key))); err != nil {
					return nil, err
				}
			}
		}
		agg.Add(term)
	}
	return agg, nil
}

// sectionList splits a comma-delimited allow-list, or (when empty) returns
// every section in src and reports that missing-SCORING_FUNCTION sections
// should not be treated as errors.
func sectionList(src *Source, strSFClasses string) (sections []string, strict bool) {
	strSFClasses = strings.TrimSpace(strSFClasses)
	if strSFClasses == "" {
		return src.GetSectionList(), false
	}
	for _, s := range strings.Split(strSFClasses, ",") {
		if s = strings.TrimSpace(s); s != "" {
			sections = append(sections, s)
		}
	}
	return sections, true
}
