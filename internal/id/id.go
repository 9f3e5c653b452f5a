package id

// Prefixes for generated fallback invoice numbers.
const (
	ClientPrefix = "FAC"
	VendorPrefix = "FF"
)

// fragmentLen is how many trailing characters of the record id make up
// the fallback number.
const fragmentLen = 6

// Fallback builds a fallback invoice number from a record id: the
// prefix plus the trailing id fragment, e.g. "FAC-a1b2c3". The same id
// always yields the same number. Uniqueness is best-effort only; there
// is no sequence authority behind these numbers.
func Fallback(prefix, recordID string) string {
	frag := recordID
	if len(frag) > fragmentLen {
		frag = frag[len(frag)-fragmentLen:]
	}
	return prefix + "-" + frag
}

// ClientFallback returns the fallback number for a client invoice.
func ClientFallback(recordID string) string {
	return Fallback(ClientPrefix, recordID)
}

// VendorFallback returns the fallback number for a vendor invoice.
func VendorFallback(recordID string) string {
	return Fallback(VendorPrefix, recordID)
}
