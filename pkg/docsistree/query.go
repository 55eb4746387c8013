package docsistree

// First returns the first record of the given type among records, and
// whether one was found.
func First(records []TlvRecord, tlvType int) (TlvRecord, bool) {
	for _, r := range records {
		if r.Type == tlvType {
			return r, true
		}
	}
	return TlvRecord{}, false
}

// All returns every record of the given type among records, in document
// order.
func All(records []TlvRecord, tlvType int) []TlvRecord {
	var out []TlvRecord
	for _, r := range records {
		if r.Type == tlvType {
			out = append(out, r)
		}
	}
	return out
}

// Require returns the first record of the given type, or ok=false if none
// is present — for callers implementing a "required field" check outside
// the validator (the validator itself reports MISSING_REQUIRED_TLV as an
// issue rather than using this directly).
func Require(records []TlvRecord, tlvType int) (TlvRecord, bool) {
	return First(records, tlvType)
}
