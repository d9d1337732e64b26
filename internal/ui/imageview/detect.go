package imageview

import (
	"os"
	"strings"
)

// Detect returns the protocol for mode ("kitty", "sixel", "none" or
// "auto"), or nil when images are disabled or unsupported.
func Detect(mode string) Protocol {
	switch mode {
	case "kitty":
		return KittyProtocol{}
	case "sixel":
		return NewSixelProtocol()
	case "none":
		return nil
	}

	if IsKittySupported() {
		return KittyProtocol{}
	}
	if IsSixelSupported() {
		return NewSixelProtocol()
	}
	return nil
}

// IsKittySupported checks if the terminal supports Kitty graphics protocol.
func IsKittySupported() bool {
	// Contour inherits parent terminal variables but has no Kitty support.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	if os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	if version := os.Getenv("KONSOLE_VERSION"); len(version) >= 4 && version[:4] >= "2204" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}

// IsSixelSupported checks if the terminal supports Sixel graphics.
func IsSixelSupported() bool {
	term := os.Getenv("TERM")

	switch os.Getenv("TERM_PROGRAM") {
	case "vscode", "mintty", "iTerm.app", "contour":
		return true
	}
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return true
	}
	if term == "foot" || term == "foot-extra" {
		return true
	}
	// xterm only has sixel when built with it; TERM is the best hint we get.
	return term == "xterm" || strings.HasPrefix(term, "xterm-")
}
