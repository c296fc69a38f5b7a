package main

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/samcharles93/toksum/pkg/toksum"
)

func printTokens(ids []int) error {
	if jsonOut {
		return printJSON(ids)
	}
	fmt.Println(joinInts(ids))
	return nil
}

func printCount(n int) error {
	if jsonOut {
		return printJSON(map[string]int{"count": n})
	}
	fmt.Println(n)
	return nil
}

func printFileTokens(results []toksum.FileTokens) error {
	if jsonOut {
		return printJSON(results)
	}
	for _, r := range results {
		fmt.Printf("%s: %s\n", r.Path, joinInts(r.Tokens))
	}
	return nil
}

func printTree(node *toksum.DirNode) error {
	if jsonOut {
		return printJSON(node)
	}
	printTreeEntries(node, "")
	return nil
}

func printTreeEntries(node *toksum.DirNode, indent string) {
	for _, e := range node.Entries {
		if e.Dir != nil {
			fmt.Printf("%s%s/\n", indent, e.Name)
			printTreeEntries(e.Dir, indent+"  ")
			continue
		}
		fmt.Printf("%s%s: %s\n", indent, e.Name, joinInts(e.Tokens))
	}
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func joinInts(ids []int) string {
	if len(ids) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", id)
	}
	b.WriteByte(']')
	return b.String()
}
