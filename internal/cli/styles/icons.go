package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconInfo     = "\uf05a" // info
	IconConfig   = "\ue615" // config
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconDesktop  = "\uf108" // desktop
	IconDatabase = "\uf1c0" // database
	IconWindow   = "\uf2d0" // window
	IconFloat    = "\uf2d2" // window restore
	IconMinimize = "\uf2d1" // window minimize
)
