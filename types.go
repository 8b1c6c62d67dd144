package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Feresey/schemascript/schema"
)

type typesCommand struct {
	vocab *schema.Vocabulary
}

func NewTypesCommand(vocab *schema.Vocabulary) *typesCommand {
	return &typesCommand{vocab: vocab}
}

func (t *typesCommand) Command() *cli.Command {
	return &cli.Command{
		Name:   "types",
		Usage:  "list object types accepted by --filter-types and --only-types",
		Action: t.run,
	}
}

func (t *typesCommand) run(ctx *cli.Context) error {
	for _, category := range t.vocab.All() {
		fmt.Fprintln(ctx.App.Writer, category)
	}
	return nil
}
