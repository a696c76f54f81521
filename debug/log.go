package debug

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/net/html"
)

// Logf writes a debug line to stderr. *html.Node arguments are rendered as
// short summaries instead of struct dumps.
func Logf(msg string, args ...any) {
	for i := range args {
		if n, ok := args[i].(*html.Node); ok {
			args[i] = nodeString(n)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func nodeString(n *html.Node) string {
	if n == nil {
		return "<nil>"
	}
	switch n.Type {
	case html.DocumentNode:
		return "#document"
	case html.DoctypeNode:
		return "doctype " + n.Data
	case html.ElementNode:
		return "element <" + n.Data + ">"
	case html.TextNode:
		return "text " + strconv.Quote(n.Data)
	case html.CommentNode:
		return "comment " + strconv.Quote(n.Data)
	default:
		return fmt.Sprintf("node(%d)", n.Type)
	}
}
