package pagemeta

// Convention selects how debug markers are encoded in a page.
type Convention string

// Convention constants.
const (
	// ConventionDiv markers are hidden divs:
	//
	//	<div class="" style="display: none;">
	//	  <div class="debug-data-item" data-name="node_id" data-value="12345"></div>
	//	</div>
	ConventionDiv Convention = "div"

	// ConventionMeta markers are document meta tags:
	//
	//	<meta name="node_id" content="12345">
	ConventionMeta Convention = "meta"

	// ConventionAuto uses div markers when a page has any and falls back
	// to meta tags otherwise.
	ConventionAuto Convention = "auto"
)

// DefaultConvention is used when no convention is configured.
const DefaultConvention = ConventionDiv

// ParseConvention returns the Convention named by s.
// An empty string yields DefaultConvention.
func ParseConvention(s string) (Convention, error) {
	switch Convention(s) {
	case "":
		return DefaultConvention, nil
	case ConventionDiv, ConventionMeta, ConventionAuto:
		return Convention(s), nil
	}
	return "", Errorf(EINVALID, "unknown marker convention %q (want %q, %q or %q)", s, ConventionDiv, ConventionMeta, ConventionAuto)
}
