package input

// KeyKind is a terminal-independent key event.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyRune
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyUp
	KeyDown
	// KeyAdd opens player entry from the browse screen.
	KeyAdd
	// KeyQuit leaves the application from the browse screen.
	KeyQuit
	// KeyInterrupt leaves the application from any mode.
	KeyInterrupt
)

// Key is one input event. Rune is only set for KeyRune.
type Key struct {
	Kind KeyKind
	Rune rune
}

func Rune(r rune) Key { return Key{Kind: KeyRune, Rune: r} }

func Press(k KeyKind) Key { return Key{Kind: k} }
