package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	"reel/internal/catalog"
	"reel/internal/util"
)

type CompletionCmd struct {
	Shell string `arg:"" enum:"bash,zsh" help:"Shell type (bash, zsh)"`
}

func (cmd *CompletionCmd) Run(g *Globals) error {
	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("reel"),
		kong.Description("Personal movie catalog"),
	)
	if err != nil {
		return err
	}

	script := bashCompletion(parser.Model.Node)
	switch cmd.Shell {
	case "bash":
	case "zsh":
		script = "#compdef reel\n\nautoload -U +X bashcompinit && bashcompinit\n\n" + script
	default:
		return fmt.Errorf("unsupported shell: %s", cmd.Shell)
	}

	assert.Success(g.Out.Write([]byte(script)))
	return nil
}

func flagWords(node *kong.Node) []string {
	var words []string
	for _, group := range node.AllFlags(true) {
		for _, f := range group {
			words = append(words, "--"+f.Name)
			if f.Short != 0 {
				words = append(words, "-"+string(f.Short))
			}
		}
	}
	return words
}

func fieldWords() []string {
	var words []string
	for _, f := range catalog.Fields() {
		words = append(words, strings.ToLower(f.String()))
	}
	return words
}

func genreWords() []string {
	var words []string
	for _, g := range catalog.Genres() {
		words = append(words, g.String())
	}
	return words
}

func bashCompletion(root *kong.Node) string {
	var top []string
	var cases strings.Builder
	for _, child := range root.Children {
		if child.Hidden || child.Type != kong.CommandNode {
			continue
		}
		names := append([]string{child.Name}, child.Aliases...)
		top = append(top, names...)
		fmt.Fprintf(&cases, "        %s) COMPREPLY=($(compgen -W %q -- \"$cur\")) ;;\n",
			strings.Join(names, "|"), strings.Join(flagWords(child), " "))
	}
	top = append(top, flagWords(root)...)

	var b strings.Builder
	b.WriteString("_reel() {\n")
	b.WriteString("    local cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    local prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    case \"$prev\" in\n")
	fmt.Fprintf(&b, "        --genre|-g) COMPREPLY=($(compgen -W %q -- \"$cur\")); return ;;\n", strings.Join(genreWords(), " "))
	fmt.Fprintf(&b, "        --sort|--by) COMPREPLY=($(compgen -W %q -- \"$cur\")); return ;;\n", strings.Join(fieldWords(), " "))
	b.WriteString("    esac\n")
	b.WriteString("    if [[ $COMP_CWORD -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(top, " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n")
	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")
	b.WriteString(cases.String())
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _reel reel\n")
	return b.String()
}
