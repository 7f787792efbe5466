// Package inspect examines a numser stream without knowing its element type.
//
// Inspect reads the header, checks the signature and version, and then
// classifies what follows it:
//
//   - LayoutFlat: exactly Count*ElemSize payload bytes
//   - LayoutNested: exactly Count complete inner flat streams of the same
//     element size
//   - LayoutTruncated: fewer bytes than a flat payload needs, and not a
//     valid nested stream
//   - LayoutUnknown: anything else, e.g. trailing garbage
//
// The report also carries an xxHash64 digest of everything after the outer
// header, the element types the stored size could stand for, and how much
// the payload would shrink under each compression algorithm.
//
//	report, err := inspect.Inspect(f)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Layout, report.Header.Count, report.TypeCandidates)
package inspect
