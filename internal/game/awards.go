package game

// AwardDef is the static definition of a hidden award.
type AwardDef struct {
	Code        string `yaml:"code"` // stored lower-case
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

// Award is an award definition plus its discovery flag.
type Award struct {
	AwardDef
	Found bool
}

// AwardRegistry tracks the hidden awards of one game in declaration order.
type AwardRegistry struct {
	awards []*Award
	byCode map[string]*Award
}

// NewAwardRegistry creates a registry with every award undiscovered.
func NewAwardRegistry(defs []AwardDef) *AwardRegistry {
	r := &AwardRegistry{byCode: make(map[string]*Award, len(defs))}
	for _, d := range defs {
		d.Code = normalizeCode(d.Code)
		if _, dup := r.byCode[d.Code]; dup {
			continue
		}
		a := &Award{AwardDef: d}
		r.awards = append(r.awards, a)
		r.byCode[d.Code] = a
	}
	return r
}

// Submit unlocks the award matching code, compared case-insensitively.
// An award unlocks at most once; the unlocked award is returned only on
// the first discovery.
func (r *AwardRegistry) Submit(code string) (CodeResult, *Award) {
	a, ok := r.byCode[normalizeCode(code)]
	if !ok {
		return CodeUnrecognized, nil
	}
	if a.Found {
		return CodeAlreadyFound, nil
	}
	a.Found = true
	return CodeFound, a
}

// Awards returns copies of all awards in declaration order.
func (r *AwardRegistry) Awards() []Award {
	out := make([]Award, 0, len(r.awards))
	for _, a := range r.awards {
		out = append(out, *a)
	}
	return out
}

// AnyFound reports whether at least one award has been discovered.
func (r *AwardRegistry) AnyFound() bool {
	for _, a := range r.awards {
		if a.Found {
			return true
		}
	}
	return false
}

// FoundCount returns the number of discovered awards.
func (r *AwardRegistry) FoundCount() int {
	n := 0
	for _, a := range r.awards {
		if a.Found {
			n++
		}
	}
	return n
}
