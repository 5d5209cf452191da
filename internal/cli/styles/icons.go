package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe   = "\uf0ac" // browser/web
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconHistory = "\uf1da" // history
	IconTrash   = "\uf1f8" // trash
	IconSearch  = "\uf002" // search
	IconCursor  = "\uf054" // chevron-right
)
