package records

// JoinDescriptions attaches description metadata onto a primary collection.
//
// A two-level lookup table is built from secondary: group by outerKey, then
// index each group by innerKey (first record per key wins, duplicates are
// dropped). Each primary record is then looked up under its own
// (outerKey, innerKey) pair; on a match the result is the shallow merge of
// the primary record with the matched description, description fields taking
// precedence on collision. Primary records with no match are passed through
// unchanged.
//
// The returned slice has the same length and order as primary. Neither input
// slice nor any input record is modified; every returned record is a fresh
// copy.
func JoinDescriptions(primary, secondary []Record, outerKey, innerKey string) []Record {
	grouped := GroupByField(secondary, outerKey)
	table := make(map[string]map[string]Record, len(grouped))
	for k, group := range grouped {
		table[k] = IndexByField(group, innerKey)
	}

	out := make([]Record, len(primary))
	for i, rec := range primary {
		merged := rec.Clone()

		if outer, ok := rec.Key(outerKey); ok {
			if inner, ok := rec.Key(innerKey); ok {
				if match, ok := table[outer][inner]; ok {
					for k, v := range match {
						merged[k] = v
					}
				}
			}
		}

		out[i] = merged
	}

	return out
}
