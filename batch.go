package errfactory

// ByCode builds one family per definition, keyed by code.
// A later definition with the same code replaces an earlier one.
// Any invalid definition aborts the batch.
func ByCode(defs ...Definition) (map[string]*Family, error) {
	return index(defs, (*Family).Code)
}

// ByName builds one family per definition, keyed by derived name.
// A later definition with the same name replaces an earlier one.
// Any invalid definition aborts the batch.
func ByName(defs ...Definition) (map[string]*Family, error) {
	return index(defs, (*Family).Name)
}

func index(defs []Definition, key func(*Family) string) (map[string]*Family, error) {
	families := make(map[string]*Family, len(defs))
	for _, def := range defs {
		f, err := Define(def)
		if err != nil {
			return nil, err
		}
		families[key(f)] = f
	}
	return families, nil
}
