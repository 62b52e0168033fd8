package filter

import (
	"fmt"
	"strings"

	"go-jobradar/internal/config"
)

// Tier is the priority level assigned to a matched posting.
type Tier struct {
	Name   string
	Glyph  string
	Weight int
}

// Classifier decides whether a posting is worth reporting and at what tier.
// Implementations are pure: same inputs, same answer.
type Classifier interface {
	Classify(title, description string) (Tier, bool)
}

// Context pairs a bonus keyword set with the tier it promotes to.
type Context struct {
	Set  KeywordSet
	Tier Tier
}

// SimplePolicy requires a target-title hit on the normalized title, then
// promotes to the first matching context's tier (config order decides
// which context wins when several apply), falling back to the base tier.
type SimplePolicy struct {
	Targets  KeywordSet
	Contexts []Context
	Base     Tier
}

func (p SimplePolicy) Classify(title, description string) (Tier, bool) {
	titleClean := Normalize(title)
	descClean := strings.ToLower(description)

	//title match is required
	if !p.Targets.MatchesAny(titleClean) {
		return Tier{}, false
	}

	//context is a bonus: title or description
	for _, c := range p.Contexts {
		if c.Set.MatchesAny(titleClean, descClean) {
			return c.Tier, true
		}
	}
	return p.Base, true
}

// TieredPolicy crosses aspirational and symptom role sets with a required
// domain context. Precedence is fixed, first match wins:
//
//	aspirational + context -> Perfect
//	aspirational alone     -> Aspirational
//	symptom + context      -> Symptom
//	otherwise              -> no tier
type TieredPolicy struct {
	AspirationalRoles KeywordSet
	SymptomRoles      KeywordSet
	Context           KeywordSet

	Perfect      Tier
	Aspirational Tier
	Symptom      Tier
}

func (p TieredPolicy) Classify(title, description string) (Tier, bool) {
	titleClean := Normalize(title)
	descClean := strings.ToLower(description)

	isAspirational := p.AspirationalRoles.MatchesAny(titleClean)
	isSymptom := p.SymptomRoles.MatchesAny(titleClean)
	hasContext := p.Context.MatchesAny(titleClean, descClean)

	switch {
	case isAspirational && hasContext:
		return p.Perfect, true
	case isAspirational:
		return p.Aspirational, true
	case isSymptom && hasContext:
		return p.Symptom, true
	}
	return Tier{}, false
}

// FromConfig builds the classifier described by a scan profile.
func FromConfig(cc config.Classify) (Classifier, error) {
	switch cc.Policy {
	case "simple":
		if len(cc.TargetTitles) == 0 {
			return nil, fmt.Errorf("simple policy needs target_titles")
		}
		p := SimplePolicy{
			Targets: NewKeywordSet(cc.TargetTitles, cc.FoldAccents),
			Base:    tierFromConfig(cc.BaseTier),
		}
		for _, c := range cc.Contexts {
			p.Contexts = append(p.Contexts, Context{
				Set:  NewKeywordSet(c.Keywords, cc.FoldAccents),
				Tier: tierFromConfig(c.Tier),
			})
		}
		return p, nil
	case "tiered":
		if len(cc.AspirationalTitles) == 0 && len(cc.SymptomTitles) == 0 {
			return nil, fmt.Errorf("tiered policy needs aspirational_titles or symptom_titles")
		}
		return TieredPolicy{
			AspirationalRoles: NewKeywordSet(cc.AspirationalTitles, cc.FoldAccents),
			SymptomRoles:      NewKeywordSet(cc.SymptomTitles, cc.FoldAccents),
			Context:           NewKeywordSet(cc.ContextKeywords, cc.FoldAccents),
			Perfect:           tierFromConfig(cc.PerfectTier),
			Aspirational:      tierFromConfig(cc.AspirationalTier),
			Symptom:           tierFromConfig(cc.SymptomTier),
		}, nil
	}
	return nil, fmt.Errorf("unknown classify policy %q", cc.Policy)
}

func tierFromConfig(t config.Tier) Tier {
	return Tier{Name: t.Name, Glyph: t.Glyph, Weight: t.Weight}
}
