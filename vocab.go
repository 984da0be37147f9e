package tokengraph

// symmetricConflicts is the hard-coded table of name pairs that describe the
// same slot under two naming conventions. Aliasing one to the other would
// create a two-token cycle, so the cycle guard sends these straight to the
// literal fallback. Checked in both directions.
var symmetricConflicts = map[string]string{
	"foreground": "textColor",
	"background": "backgroundColor",
	"border":     "borderColor",
	"ring":       "ringColor",
	"outline":    "outlineColor",
}

// isSymmetricConflict reports whether (name, ref) is a known convention pair.
func isSymmetricConflict(name, ref string) bool {
	if symmetricConflicts[name] == ref {
		return true
	}
	return symmetricConflicts[ref] == name
}

// semanticEntry declares one semantic role: its name, export group, and the
// reference string to resolve per mode. Order matters: peer references
// (e.g. ghost-background → transparent) must appear after their target.
type semanticEntry struct {
	name  string
	group string
	light string
	dark  string
}

// semanticVocabulary is the fixed set of semantic roles. References are
// primitive names, peer semantic names, or keywords; the resolution cascade
// decides which.
var semanticVocabulary = []semanticEntry{
	{"background", "surface", "gray-50", "gray-950"},
	{"foreground", "surface", "gray-950", "gray-50"},
	{"muted", "surface", "gray-100", "gray-900"},
	{"muted-foreground", "surface", "gray-600", "gray-400"},

	{"primary", "brand", "primary-600", "primary-500"},
	{"primary-foreground", "brand", "white", "white"},
	{"secondary", "brand", "gray-200", "gray-800"},
	{"secondary-foreground", "brand", "gray-900", "gray-100"},
	{"accent", "brand", "primary-100", "primary-900"},
	{"accent-foreground", "brand", "primary-900", "primary-100"},

	{"destructive", "status", "red", "red"},
	{"destructive-foreground", "status", "white", "white"},
	{"success", "status", "green", "green"},
	{"success-foreground", "status", "white", "white"},
	{"warning", "status", "yellow", "yellow"},
	{"warning-foreground", "status", "gray-950", "gray-950"},

	{"border", "line", "gray-200", "gray-800"},
	{"input", "line", "gray-300", "gray-700"},
	{"ring", "line", "primary-500", "primary-400"},

	// Peer aliases. transparent must precede the ghost roles so they can
	// alias it instead of parsing a literal.
	{"transparent", "utility", "transparent", "transparent"},
	{"ghost-background", "utility", "transparent", "transparent"},
	{"ghost-foreground", "utility", "foreground", "foreground"},
	{"outline-border", "utility", "border", "border"},
	{"outline-ring", "utility", "ring", "ring"},
	{"default-background", "utility", "background", "background"},
}

// componentEntry declares one component property token. The reference is
// mode-independent; per-mode variation lives in the semantic tier it points
// at.
type componentEntry struct {
	name  string
	group string
	ref   string
}

// componentVocabulary is the fixed set of per-component property groups:
// button variants × {background, foreground, border, ring}, then the shared
// container components. References name semantic roles, which the cascade
// prefers over primitives for this tier.
var componentVocabulary = []componentEntry{
	{"button-background", "button/default", "primary"},
	{"button-foreground", "button/default", "primary-foreground"},
	{"button-border", "button/default", "primary"},
	{"button-ring", "button/default", "ring"},

	{"button-secondary-background", "button/secondary", "secondary"},
	{"button-secondary-foreground", "button/secondary", "secondary-foreground"},
	{"button-secondary-border", "button/secondary", "secondary"},
	{"button-secondary-ring", "button/secondary", "ring"},

	{"button-destructive-background", "button/destructive", "destructive"},
	{"button-destructive-foreground", "button/destructive", "destructive-foreground"},
	{"button-destructive-border", "button/destructive", "destructive"},
	{"button-destructive-ring", "button/destructive", "destructive"},

	{"button-ghost-background", "button/ghost", "ghost-background"},
	{"button-ghost-foreground", "button/ghost", "ghost-foreground"},
	{"button-ghost-border", "button/ghost", "transparent"},
	{"button-ghost-ring", "button/ghost", "ring"},

	{"button-outline-background", "button/outline", "transparent"},
	{"button-outline-foreground", "button/outline", "foreground"},
	{"button-outline-border", "button/outline", "outline-border"},
	{"button-outline-ring", "button/outline", "outline-ring"},

	{"card-background", "card", "background"},
	{"card-foreground", "card", "foreground"},
	{"card-border", "card", "border"},

	{"input-background", "input", "background"},
	{"input-foreground", "input", "foreground"},
	{"input-border", "input", "input"},
	{"input-ring", "input", "ring"},

	{"dialog-background", "dialog", "background"},
	{"dialog-foreground", "dialog", "foreground"},
	{"dialog-border", "dialog", "border"},

	{"toast-background", "toast", "muted"},
	{"toast-foreground", "toast", "muted-foreground"},
	{"toast-border", "toast", "border"},

	{"popover-background", "popover", "background"},
	{"popover-foreground", "popover", "foreground"},
	{"popover-border", "popover", "border"},
}
