package match

import "github.com/harishsure007/Jobflowai/internal/catalog"

// ExpandSynonyms returns a superset of tokens with configured equivalents
// added. Expansion runs for at most hops rounds and stops early when a
// round adds nothing or the set reaches cap, so dense or cyclic synonym
// graphs cannot grow the set without bound. Deterministic for a fixed
// catalog and bounds.
func ExpandSynonyms(tokens Set, cat *catalog.Catalog, hops, cap int) Set {
	if len(tokens) == 0 {
		return make(Set)
	}

	expanded := tokens.Clone()
	for hop := 0; hop < hops; hop++ {
		if expanded.Len() >= cap {
			break
		}

		added := false
		for _, tok := range sortedSlice(expanded) {
			for _, syn := range cat.Synonyms(tok) {
				if expanded.Has(syn) {
					continue
				}
				if expanded.Len() >= cap {
					return expanded
				}
				expanded.Add(syn)
				added = true
			}
		}

		if !added {
			break
		}
	}
	return expanded
}
