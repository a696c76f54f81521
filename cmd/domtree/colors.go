package main

import (
	"github.com/fatih/color"
	"golang.org/x/net/html"

	"github.com/domstream/go-domstream/outline"
)

type colors struct {
	enabled bool
	kind    map[html.NodeType]func(format string, a ...any) string
	del     func(format string, a ...any) string
	ins     func(format string, a ...any) string
}

func newColors(enabled bool) *colors {
	c := &colors{enabled: enabled}
	if !enabled {
		return c
	}
	c.kind = map[html.NodeType]func(string, ...any) string{
		html.DocumentNode: color.HiBlackString,
		html.DoctypeNode:  color.HiBlackString,
		html.ElementNode:  color.RGB(128, 168, 196).SprintfFunc(),
		html.TextNode:     color.RGB(128, 216, 236).SprintfFunc(),
		html.CommentNode:  color.BlueString,
	}
	c.del = color.RedString
	c.ins = color.GreenString
	return c
}

func (c *colors) line(l outline.Line) string {
	s := l.String()
	if !c.enabled {
		return s
	}
	if f, ok := c.kind[l.Node.Type]; ok {
		return f("%s", s)
	}
	return s
}

func (c *colors) label(n *html.Node) string {
	s := outline.Label(n)
	if !c.enabled {
		return s
	}
	if f, ok := c.kind[n.Type]; ok {
		return f("%s", s)
	}
	return s
}

func (c *colors) deleted(s string) string {
	if !c.enabled {
		return s
	}
	return c.del("%s", s)
}

func (c *colors) inserted(s string) string {
	if !c.enabled {
		return s
	}
	return c.ins("%s", s)
}
