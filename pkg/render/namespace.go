package render

// Canonical wiki namespaces that affect rendering. Only image and media
// links get special treatment; every other namespace renders as a regular
// page link.
const (
	nsMedia    = "NS_MEDIA"
	nsSpecial  = "NS_SPECIAL"
	nsTalk     = "NS_TALK"
	nsUser     = "NS_USER"
	nsProject  = "NS_PROJECT"
	nsImage    = "NS_IMAGE"
	nsTemplate = "NS_TEMPLATE"
	nsHelp     = "NS_HELP"
	nsCategory = "NS_CATEGORY"
)

// wikiNS maps a link qualifier to its canonical namespace, per language.
var wikiNS = map[string]map[string]string{
	"en": {
		"Media":          nsMedia,
		"Special":        nsSpecial,
		"Talk":           nsTalk,
		"User":           nsUser,
		"User talk":      nsUser,
		"Project":        nsProject,
		"Project talk":   nsProject,
		"Image":          nsImage,
		"File":           nsImage,
		"Image talk":     nsImage,
		"File talk":      nsImage,
		"Template":       nsTemplate,
		"Template talk":  nsTemplate,
		"Help":           nsHelp,
		"Help talk":      nsHelp,
		"Category":       nsCategory,
		"Category talk":  nsCategory,
	},
}

// wikiNamespace resolves a link qualifier against the namespace table of
// lang, falling back to the English table for unknown languages.
func wikiNamespace(lang, qual string) (string, bool) {
	tab, ok := wikiNS[lang]
	if !ok {
		tab = wikiNS["en"]
	}
	ns, ok := tab[qual]
	return ns, ok
}
