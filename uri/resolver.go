package uri

import (
	"http-grammar/lib/ds/stack"
)

// RefResolver resolves URI references against a base URI.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-5
type RefResolver struct {
	base Uri
}

func NewRefResolver(base Uri) *RefResolver {
	return &RefResolver{base: base}
}

// Resolve computes the target URI of ref against the base.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-5.2.2
func (rr *RefResolver) Resolve(ref UriReference) Uri {
	switch r := ref.(type) {
	case Uri:
		auth, segs, rooted := splitHierarchy(r.Hierarchy)
		return Uri{
			Scheme:    r.Scheme,
			Hierarchy: buildHierarchy(auth, removeDotSegments(segs), rooted),
			Query:     r.Query,
			Fragment:  r.Fragment,
		}
	case RelativeReference:
		return rr.resolveRelative(r)
	}
	return Uri{}
}

func (rr *RefResolver) resolveRelative(ref RelativeReference) (out Uri) {
	out.Scheme = rr.base.Scheme
	out.Fragment = ref.Fragment

	baseAuth, baseSegs, baseRooted := splitHierarchy(rr.base.Hierarchy)

	switch rel := ref.Relative.(type) {
	case RelativeAuthority:
		auth := rel.Authority
		out.Hierarchy = buildHierarchy(&auth, removeDotSegments(rel.Path), true)
		out.Query = ref.Query

	case RelativeAbsolute:
		out.Hierarchy = buildHierarchy(baseAuth, removeDotSegments(rel.Path), true)
		out.Query = ref.Query

	case RelativeNoScheme:
		merged := mergePath(baseAuth != nil, baseSegs, rel.Path)
		rooted := baseRooted || baseAuth != nil
		out.Hierarchy = buildHierarchy(baseAuth, removeDotSegments(merged), rooted)
		out.Query = ref.Query

	case RelativeEmpty:
		out.Hierarchy = buildHierarchy(baseAuth, baseSegs, baseRooted)
		if ref.Query != nil {
			out.Query = ref.Query
		} else {
			out.Query = rr.base.Query
		}
	}

	return out
}

// splitHierarchy flattens a hierarchy part into its authority, path
// segments, and whether the path is rooted (begins with "/").
func splitHierarchy(h HierarchyPart) (auth *Authority, segs []string, rooted bool) {
	switch part := h.(type) {
	case HierarchyAuthority:
		a := part.Authority
		return &a, part.Path, true
	case HierarchyAbsolute:
		return nil, part.Path, true
	case HierarchyRootless:
		return nil, part.Path, false
	}
	return nil, nil, false
}

func buildHierarchy(auth *Authority, segs []string, rooted bool) HierarchyPart {
	if auth != nil {
		return HierarchyAuthority{Authority: *auth, Path: PathAbsoluteOrEmpty(segs)}
	}
	if rooted {
		if len(segs) == 1 && segs[0] == "" {
			segs = nil
		}
		return HierarchyAbsolute{Path: PathAbsolute(segs)}
	}
	if len(segs) == 0 {
		return HierarchyEmpty{}
	}
	return HierarchyRootless{Path: PathRootless(segs)}
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-5.2.3
func mergePath(baseHasAuthority bool, baseSegs, refSegs []string) []string {
	if baseHasAuthority && len(baseSegs) == 0 {
		return refSegs
	}
	if len(baseSegs) == 0 {
		return refSegs
	}

	merged := make([]string, 0, len(baseSegs)-1+len(refSegs))
	merged = append(merged, baseSegs[:len(baseSegs)-1]...)
	merged = append(merged, refSegs...)
	return merged
}

// removeDotSegments interprets "." and ".." segments.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-5.2.4
func removeDotSegments(segs []string) []string {
	out := stack.New[string](uint(len(segs)))

	for i, seg := range segs {
		last := i == len(segs)-1
		switch seg {
		case ".":
			if last {
				out.Push("")
			}
		case "..":
			out.Pop()
			if last {
				out.Push("")
			}
		default:
			out.Push(seg)
		}
	}

	return out.Data()
}
