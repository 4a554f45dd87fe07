package slides

import (
	"fmt"
	"html"
	"strings"

	"github.com/go-faster/errors"
)

var (
	ErrDeckNotFound  = errors.New("slides: deck not found")
	ErrSlideNotFound = errors.New("slides: slide not found")
	ErrInvalidMedia  = errors.New("slides: invalid media")
)

type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindLink  Kind = "link"
)

// Media is an embeddable resource reference. Width 0 leaves the width to the host.
type Media struct {
	Kind  Kind   `toml:"kind"`
	Src   string `toml:"src"`
	Width int    `toml:"width"`
	Align string `toml:"align"`
}

func Image(src string, width int, align string) Media {
	return Media{Kind: KindImage, Src: src, Width: width, Align: align}
}

func Video(src string, width int) Media {
	return Media{Kind: KindVideo, Src: src, Width: width}
}

func Link(url string) Media {
	return Media{Kind: KindLink, Src: url}
}

func (m Media) Validate() error {
	if strings.TrimSpace(m.Src) == "" {
		return errors.Wrap(ErrInvalidMedia, "empty src")
	}
	if m.Width < 0 {
		return errors.Wrapf(ErrInvalidMedia, "negative width %d", m.Width)
	}
	switch m.Kind {
	case KindImage, KindVideo, KindLink:
		return nil
	default:
		return errors.Wrapf(ErrInvalidMedia, "unknown kind %q", m.Kind)
	}
}

// HTML renders the snippet a notebook-style display host embeds.
func (m Media) HTML() string {
	src := html.EscapeString(m.Src)
	var b strings.Builder
	switch m.Kind {
	case KindLink:
		fmt.Fprintf(&b, `<a href="%s" target="_blank">%s</a>`, src, src)
		return b.String()
	case KindVideo:
		fmt.Fprintf(&b, `<video src="%s"`, src)
	default:
		fmt.Fprintf(&b, `<img src="%s"`, src)
	}
	if m.Width > 0 {
		fmt.Fprintf(&b, ` width="%d px"`, m.Width)
	}
	if m.Align != "" {
		fmt.Fprintf(&b, ` align="%s"`, html.EscapeString(m.Align))
	}
	if m.Kind == KindVideo {
		b.WriteString(" autoplay></video>")
	} else {
		b.WriteString(">")
	}
	return b.String()
}
