package iceberg

// Promote resolves a type change for the same field between a file's
// (existing) type and the requested read/current type, allowing only the
// fixed lattice of widening conversions. Only primitives promote: any
// container type rejects, even when both sides are equal. Identity between
// primitives is always allowed; everything else rejects with ResolveError.
func Promote(file, to Type) (Type, error) {
	if !file.IsPrimitive() || !to.IsPrimitive() {
		return Type{}, resolveErrorf("Cannot promote %s to %s", file.String(), to.String())
	}
	if file.Equals(to) {
		return file, nil
	}

	switch {
	case file.Kind == KindInt && to.Kind == KindLong:
		return to, nil
	case file.Kind == KindFloat && to.Kind == KindDouble:
		return to, nil
	case file.Kind == KindString && to.Kind == KindBinary:
		return to, nil
	case file.Kind == KindBinary && to.Kind == KindString:
		return to, nil
	case file.Kind == KindDecimal && to.Kind == KindDecimal:
		if file.Scale == to.Scale && file.Precision <= to.Precision {
			return to, nil
		}
	case file.Kind == KindFixed && to.Kind == KindUUID:
		if file.Length == 16 {
			return to, nil
		}
	}

	return Type{}, resolveErrorf("Cannot promote %s to %s", file.String(), to.String())
}
